package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyToken, "abc123"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyRole, "peneliti"); err != nil {
		t.Fatal(err)
	}

	// instance baru membaca file yang sama
	s2, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.Get(KeyToken); got != "abc123" {
		t.Errorf("token = %q", got)
	}
	if got := s2.Get(KeyRole); got != "peneliti" {
		t.Errorf("role = %q", got)
	}
	if got := s2.Get(KeyGuestName); got != "" {
		t.Errorf("kunci kosong harus \"\", got %q", got)
	}
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Set(KeyToken, "abc")
	_ = s.Set(KeyGuestName, "Budi")

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	s2, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if s2.Get(KeyToken) != "" || s2.Get(KeyGuestName) != "" {
		t.Error("logout harus menghapus semua kunci")
	}
}

func TestFileStoreFileRusak(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{bukan json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("file rusak harus dianggap kosong: %v", err)
	}
	if got := s.Get(KeyToken); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestFileStoreBuatDirektori(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyToken, "x"); err != nil {
		t.Fatalf("direktori induk harus dibuat: %v", err)
	}
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	_ = s.Set(KeyToken, "t")
	if s.Get(KeyToken) != "t" {
		t.Error("set/get gagal")
	}
	_ = s.Remove(KeyToken)
	if s.Get(KeyToken) != "" {
		t.Error("remove gagal")
	}
}
