package resource

import (
	"context"
	"errors"
	"testing"
)

type draftUji struct {
	Nama string
}

// penghitung fake untuk memastikan request benar-benar (tidak) jalan
type kirimCounter struct {
	n   int
	err error
}

func (k *kirimCounter) kirim(ctx context.Context, d draftUji) error {
	k.n++
	return k.err
}

func TestFormSubmitDitahanSaatInvalid(t *testing.T) {
	create := &kirimCounter{}
	f := &Form[draftUji]{
		Validate: func(d draftUji) error {
			if d.Nama == "" {
				return errors.New("nama wajib diisi")
			}
			return nil
		},
		Create: create.kirim,
	}

	if err := f.Submit(context.Background(), nil); err == nil {
		t.Fatal("draft invalid harus gagal")
	}
	if create.n != 0 {
		t.Errorf("request tidak boleh jalan saat invalid, terpanggil %d kali", create.n)
	}
	if f.Err() == "" {
		t.Error("pesan galat harus tersimpan untuk layar")
	}

	f.Set(func(d *draftUji) { d.Nama = "Bakau Besar" })
	if f.Err() != "" {
		t.Error("Set harus menghapus galat lama")
	}
	if err := f.Submit(context.Background(), nil); err != nil {
		t.Fatalf("draft valid gagal: %v", err)
	}
	if create.n != 1 {
		t.Errorf("create terpanggil %d kali, want 1", create.n)
	}
}

func TestFormModeMemilihCreateAtauUpdate(t *testing.T) {
	create := &kirimCounter{}
	update := &kirimCounter{}
	f := &Form[draftUji]{
		Draft:  draftUji{Nama: "x"},
		Create: create.kirim,
		Update: update.kirim,
	}

	if err := f.Submit(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	f.Mode = ModeUpdate
	if err := f.Submit(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if create.n != 1 || update.n != 1 {
		t.Errorf("create=%d update=%d, want 1/1", create.n, update.n)
	}
}

func TestFormOnSuccessHanyaSaatBerhasil(t *testing.T) {
	create := &kirimCounter{err: errors.New("server penuh")}
	f := &Form[draftUji]{Draft: draftUji{Nama: "x"}, Create: create.kirim}

	sukses := 0
	if err := f.Submit(context.Background(), func() { sukses++ }); err == nil {
		t.Fatal("harus gagal")
	}
	if sukses != 0 {
		t.Error("onSuccess tidak boleh dipanggil saat gagal")
	}
	if f.Err() != "server penuh" {
		t.Errorf("galat server harus tampil: %q", f.Err())
	}

	create.err = nil
	if err := f.Submit(context.Background(), func() { sukses++ }); err != nil {
		t.Fatal(err)
	}
	if sukses != 1 {
		t.Errorf("onSuccess terpanggil %d kali, want 1", sukses)
	}
	if f.Err() != "" {
		t.Error("galat harus bersih setelah sukses")
	}
}
