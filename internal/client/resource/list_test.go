package resource

import (
	"context"
	"errors"
	"testing"
)

// fetcher fake dengan hasil yang bisa ditukar antar panggilan
type fetcher struct {
	n     int
	items []string
	err   error
}

func (f *fetcher) fetch(ctx context.Context) ([]string, error) {
	f.n++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func TestListLoadSekaliSaja(t *testing.T) {
	f := &fetcher{items: []string{"a", "b"}}
	l := &List[string]{Fetch: f.fetch}

	l.Load(context.Background())
	l.Load(context.Background()) // layar bisa memanggil ulang saat rebuild
	l.Load(context.Background())

	if f.n != 1 {
		t.Errorf("fetch terpanggil %d kali, want 1", f.n)
	}
	if len(l.Items()) != 2 {
		t.Errorf("items = %v", l.Items())
	}
	if !l.SudahDimuat() {
		t.Error("harus tertanda sudah dimuat")
	}
}

func TestListRefreshGagalSimpanDaftarLama(t *testing.T) {
	f := &fetcher{items: []string{"a", "b", "c"}}
	l := &List[string]{Fetch: f.fetch}
	l.Load(context.Background())

	f.err = errors.New("timeout")
	l.Refresh(context.Background())

	if len(l.Items()) != 3 {
		t.Errorf("daftar lama hilang: %v", l.Items())
	}
	if l.Err() == "" {
		t.Error("galat refresh harus tampil")
	}
	if l.Refreshing() {
		t.Error("penanda refreshing harus turun meski refresh gagal")
	}

	// refresh berikutnya sukses, galat bersih
	f.err = nil
	f.items = []string{"a"}
	l.Refresh(context.Background())
	if l.Err() != "" || len(l.Items()) != 1 {
		t.Errorf("err=%q items=%v", l.Err(), l.Items())
	}
	if l.Refreshing() {
		t.Error("penanda refreshing harus turun setelah refresh sukses")
	}
}

func TestListMutate(t *testing.T) {
	f := &fetcher{items: []string{"a"}}
	l := &List[string]{Fetch: f.fetch}
	l.Load(context.Background())

	// aksi gagal: tidak ada fetch ulang
	sebelum := f.n
	err := l.Mutate(context.Background(), func(ctx context.Context) error {
		return errors.New("ditolak server")
	})
	if err == nil {
		t.Fatal("harus gagal")
	}
	if f.n != sebelum {
		t.Error("aksi gagal tidak boleh memicu fetch ulang")
	}

	// aksi sukses: daftar diambil ulang
	f.items = []string{"a", "b"}
	if err := l.Mutate(context.Background(), func(ctx context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if len(l.Items()) != 2 {
		t.Errorf("daftar tidak segar: %v", l.Items())
	}
}

func TestListDeleteButuhCapsDanKonfirmasi(t *testing.T) {
	f := &fetcher{items: []string{"a"}}
	hapus := 0
	aksi := func(ctx context.Context) error { hapus++; return nil }

	// tanpa CanDelete: tombolnya memang tidak ada, aksi diabaikan
	l := &List[string]{Fetch: f.fetch}
	if err := l.Delete(context.Background(), func() bool { return true }, aksi); err != nil {
		t.Fatal(err)
	}
	if hapus != 0 {
		t.Error("hapus jalan tanpa kapabilitas")
	}

	// konfirmasi ditolak
	l.Caps.CanDelete = true
	if err := l.Delete(context.Background(), func() bool { return false }, aksi); err != nil {
		t.Fatal(err)
	}
	if hapus != 0 {
		t.Error("hapus jalan meski konfirmasi ditolak")
	}

	// jalan penuh
	if err := l.Delete(context.Background(), func() bool { return true }, aksi); err != nil {
		t.Fatal(err)
	}
	if hapus != 1 {
		t.Errorf("hapus terpanggil %d kali, want 1", hapus)
	}
}
