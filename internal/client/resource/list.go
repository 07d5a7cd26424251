// Package resource kontroler layar generik: satu kontroler daftar
// dan satu kontroler form yang sama untuk lokasi, jenis, laporan,
// forum, analisis, dan keputusan. Perbedaan antar layar dinyatakan
// lewat Capabilities, bukan lewat kopian kontroler per resource.
package resource

import "context"

// Capabilities perilaku layar per resource per role
type Capabilities struct {
	CanCreate    bool
	CanEdit      bool
	CanDelete    bool
	RequiresAuth bool
}

// List kontroler daftar generik. Tidak aman untuk akses konkuren;
// dipakai dari satu goroutine UI.
type List[T any] struct {
	Fetch func(ctx context.Context) ([]T, error)
	Caps  Capabilities

	items      []T
	loaded     bool
	loading    bool
	refreshing bool
	errMsg     string
}

// Load muat pertama kali. Dipanggil ulang tidak apa-apa: selama
// masih loading atau sudah pernah berhasil, tidak fetch lagi.
func (l *List[T]) Load(ctx context.Context) {
	if l.loading || l.loaded {
		return
	}
	l.loading = true
	l.fetch(ctx)
	l.loading = false
}

// Refresh ambil ulang dari server. Saat gagal, daftar lama tetap
// ditampilkan dan hanya pesan galat yang diperbarui.
func (l *List[T]) Refresh(ctx context.Context) {
	l.refreshing = true
	l.fetch(ctx)
	l.refreshing = false
}

func (l *List[T]) fetch(ctx context.Context) {
	items, err := l.Fetch(ctx)
	if err != nil {
		l.errMsg = err.Error()
		return
	}
	l.items = items
	l.loaded = true
	l.errMsg = ""
}

// Mutate jalankan aksi tulis lalu fetch ulang bila sukses. Bila
// aksi gagal, daftar tidak disentuh dan error dikembalikan untuk
// ditampilkan layar.
func (l *List[T]) Mutate(ctx context.Context, aksi func(ctx context.Context) error) error {
	if err := aksi(ctx); err != nil {
		return err
	}
	l.Refresh(ctx)
	return nil
}

// Delete hapus item setelah konfirmasi. Tanpa CanDelete atau
// konfirmasi ditolak, tidak terjadi apa-apa.
func (l *List[T]) Delete(ctx context.Context, konfirmasi func() bool, hapus func(ctx context.Context) error) error {
	if !l.Caps.CanDelete {
		return nil
	}
	if konfirmasi != nil && !konfirmasi() {
		return nil
	}
	return l.Mutate(ctx, hapus)
}

func (l *List[T]) Items() []T        { return l.items }
func (l *List[T]) Loading() bool     { return l.loading }
func (l *List[T]) Refreshing() bool  { return l.refreshing }
func (l *List[T]) Err() string       { return l.errMsg }
func (l *List[T]) SudahDimuat() bool { return l.loaded }
