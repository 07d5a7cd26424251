package resource

import "context"

// Mode form: buat baru atau sunting entri yang ada
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// Form kontroler form generik. Validate mengembalikan pelanggaran
// PERTAMA saja; Create/Update dipilih berdasarkan Mode.
type Form[T any] struct {
	Mode     Mode
	Draft    T
	Validate func(T) error
	Create   func(ctx context.Context, draft T) error
	Update   func(ctx context.Context, draft T) error

	submitting bool
	errMsg     string
}

// Set ubah draft lewat fungsi mutator, pesan galat lama dihapus
func (f *Form[T]) Set(ubah func(d *T)) {
	ubah(&f.Draft)
	f.errMsg = ""
}

// Submit validasi dulu; request baru dikirim bila draft lolos.
// onSuccess hanya dipanggil setelah server menerima.
func (f *Form[T]) Submit(ctx context.Context, onSuccess func()) error {
	if f.submitting {
		return nil
	}
	if f.Validate != nil {
		if err := f.Validate(f.Draft); err != nil {
			f.errMsg = err.Error()
			return err
		}
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	kirim := f.Create
	if f.Mode == ModeUpdate {
		kirim = f.Update
	}
	if err := kirim(ctx, f.Draft); err != nil {
		f.errMsg = err.Error()
		return err
	}
	f.errMsg = ""
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

func (f *Form[T]) Submitting() bool { return f.submitting }
func (f *Form[T]) Err() string      { return f.errMsg }
