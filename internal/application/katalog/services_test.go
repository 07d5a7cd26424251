package katalog

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jagamangrove/jagamangrove/internal/domain/jenis"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type lokasiMap struct {
	rows map[lokasi.LokasiID]*lokasi.Lokasi
}

func newLokasiMap() *lokasiMap {
	return &lokasiMap{rows: map[lokasi.LokasiID]*lokasi.Lokasi{}}
}

func (m *lokasiMap) Save(ctx context.Context, l *lokasi.Lokasi) error {
	cp := *l
	m.rows[l.ID] = &cp
	return nil
}

func (m *lokasiMap) Get(ctx context.Context, id lokasi.LokasiID) (*lokasi.Lokasi, error) {
	if l, ok := m.rows[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, lokasi.ErrNotFound
}

func (m *lokasiMap) List(ctx context.Context) ([]*lokasi.Lokasi, error) {
	var out []*lokasi.Lokasi
	for _, l := range m.rows {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (m *lokasiMap) Delete(ctx context.Context, id lokasi.LokasiID) error {
	if _, ok := m.rows[id]; !ok {
		return lokasi.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *lokasiMap) Count(ctx context.Context) (int64, error) {
	return int64(len(m.rows)), nil
}

type jenisMap struct {
	rows map[jenis.JenisID]*jenis.Jenis
}

func newJenisMap() *jenisMap {
	return &jenisMap{rows: map[jenis.JenisID]*jenis.Jenis{}}
}

func (m *jenisMap) Save(ctx context.Context, j *jenis.Jenis) error {
	cp := *j
	m.rows[j.ID] = &cp
	return nil
}

func (m *jenisMap) Get(ctx context.Context, id jenis.JenisID) (*jenis.Jenis, error) {
	if j, ok := m.rows[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, jenis.ErrNotFound
}

func (m *jenisMap) List(ctx context.Context) ([]*jenis.Jenis, error) {
	var out []*jenis.Jenis
	for _, j := range m.rows {
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

func (m *jenisMap) Delete(ctx context.Context, id jenis.JenisID) error {
	delete(m.rows, id)
	return nil
}

func (m *jenisMap) Count(ctx context.Context) (int64, error) {
	return int64(len(m.rows)), nil
}

type gambarStore struct{ keys []string }

func (g *gambarStore) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error) {
	if body != nil {
		io.Copy(io.Discard, body)
	}
	g.keys = append(g.keys, key)
	return key, nil
}

func newService() (*Service, *lokasiMap, *jenisMap, *gambarStore) {
	lr := newLokasiMap()
	jr := newJenisMap()
	gs := &gambarStore{}
	svc := &Service{
		Lokasi: lr,
		Jenis:  jr,
		Gambar: gs,
		Clock:  fixedClock{t: time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)},
	}
	return svc, lr, jr, gs
}

func TestValidKoordinat(t *testing.T) {
	valid := []string{"-6.1065, 106.7746", "0,0", " 1.5 , 2.5 "}
	for _, s := range valid {
		if !ValidKoordinat(s) {
			t.Errorf("%q ditolak", s)
		}
	}
	invalid := []string{"", "106.7746", "enam koma satu, seratus enam", "1,2,3"}
	for _, s := range invalid {
		if ValidKoordinat(s) {
			t.Errorf("%q lolos", s)
		}
	}
}

func TestSimpanLokasiBaru(t *testing.T) {
	svc, _, _, _ := newService()

	l, err := svc.SimpanLokasi(context.Background(), LokasiCommand{
		Nama:      "Muara Angke",
		Koordinat: "-6.1065, 106.7746",
		Kondisi:   "baik",
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.ID == "" {
		t.Error("id harus terisi")
	}
	if l.TanggalInput.IsZero() {
		t.Error("tanggal input harus terisi dari clock")
	}
}

func TestSimpanLokasiUpdatePertahankanTanggalInput(t *testing.T) {
	svc, repo, _, _ := newService()

	l, err := svc.SimpanLokasi(context.Background(), LokasiCommand{
		Nama:      "Muara Angke",
		Koordinat: "-6.1, 106.7",
		Kondisi:   "baik",
	})
	if err != nil {
		t.Fatal(err)
	}
	asli := l.TanggalInput

	svc.Clock = fixedClock{t: asli.Add(48 * time.Hour)}
	diubah, err := svc.SimpanLokasi(context.Background(), LokasiCommand{
		ID:        string(l.ID),
		Nama:      "Muara Angke Barat",
		Koordinat: "-6.1, 106.7",
		Kondisi:   "sedang",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !diubah.TanggalInput.Equal(asli) {
		t.Errorf("tanggal input berubah: %v -> %v", asli, diubah.TanggalInput)
	}

	tersimpan, _ := repo.Get(context.Background(), l.ID)
	if tersimpan.Nama != "Muara Angke Barat" || tersimpan.Kondisi != lokasi.KondisiSedang {
		t.Errorf("perubahan tidak tersimpan: %+v", tersimpan)
	}
}

func TestSimpanLokasiUpdateTidakAda(t *testing.T) {
	svc, _, _, _ := newService()
	_, err := svc.SimpanLokasi(context.Background(), LokasiCommand{
		ID:        "tidak-ada",
		Nama:      "Hantu",
		Koordinat: "0,0",
		Kondisi:   "baik",
	})
	if err == nil {
		t.Fatal("update lokasi tak dikenal harus gagal")
	}
}

func TestSimpanJenisGambar(t *testing.T) {
	svc, _, repo, gs := newService()
	ctx := context.Background()

	j, err := svc.SimpanJenis(ctx, JenisCommand{
		NamaIlmiah:  "Rhizophora mucronata",
		NamaLokal:   "Bakau hitam",
		Gambar:      strings.NewReader("jpeg-palsu"),
		GambarNama:  "bakau.jpg",
		GambarSize:  9,
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatal(err)
	}
	if j.Gambar == "" || len(gs.keys) != 1 {
		t.Fatalf("gambar tidak terupload: %+v", j)
	}
	if !strings.HasPrefix(gs.keys[0], "jenis/") {
		t.Errorf("key = %q", gs.keys[0])
	}

	// update tanpa gambar baru: gambar lama dipertahankan
	diubah, err := svc.SimpanJenis(ctx, JenisCommand{
		ID:         string(j.ID),
		NamaIlmiah: "Rhizophora mucronata",
		NamaLokal:  "Bakau hitam besar",
	})
	if err != nil {
		t.Fatal(err)
	}
	if diubah.Gambar != j.Gambar {
		t.Errorf("gambar lama hilang: %q -> %q", j.Gambar, diubah.Gambar)
	}
	if !diubah.CreatedAt.Equal(j.CreatedAt) {
		t.Error("created_at berubah saat update")
	}

	tersimpan, _ := repo.Get(ctx, j.ID)
	if tersimpan.NamaLokal != "Bakau hitam besar" {
		t.Errorf("perubahan tidak tersimpan: %+v", tersimpan)
	}
}

func TestSimpanJenisWajibNama(t *testing.T) {
	svc, _, _, _ := newService()
	if _, err := svc.SimpanJenis(context.Background(), JenisCommand{NamaLokal: "Bakau"}); err == nil {
		t.Error("tanpa nama ilmiah harus gagal")
	}
	if _, err := svc.SimpanJenis(context.Background(), JenisCommand{NamaIlmiah: "Rhizophora"}); err == nil {
		t.Error("tanpa nama lokal harus gagal")
	}
}
