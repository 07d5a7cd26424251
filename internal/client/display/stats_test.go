package display

import (
	"testing"

	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

func TestHitungKondisi(t *testing.T) {
	list := []lokasi.Lokasi{
		{Kondisi: lokasi.KondisiBaik},
		{Kondisi: lokasi.KondisiBaik},
		{Kondisi: lokasi.KondisiBuruk},
		{Kondisi: "aneh"}, // data lama dengan enum yang sudah tidak dipakai
	}
	r := HitungKondisi(list)
	if r.Total != 4 || r.Baik != 2 || r.Sedang != 0 || r.Buruk != 1 || r.Lain != 1 {
		t.Errorf("ringkasan salah: %+v", r)
	}
	if r.Baik+r.Sedang+r.Buruk+r.Lain != r.Total {
		t.Errorf("kolom tidak menjumlah ke total: %+v", r)
	}
}

func TestHitungKondisiKosong(t *testing.T) {
	if r := HitungKondisi(nil); r.Total != 0 {
		t.Errorf("daftar kosong: %+v", r)
	}
}

func TestHitungStatus(t *testing.T) {
	list := []laporan.Laporan{
		{Status: laporan.StatusValid},
		{Status: laporan.StatusPending},
		{Status: laporan.StatusValid},
		{Status: laporan.StatusDitolak},
		{Status: "aneh"}, // data lama dengan status yang sudah tidak dipakai
	}
	s := HitungStatus(list)
	if s.Total != 5 || s.Pending != 1 || s.Valid != 2 || s.Ditolak != 1 {
		t.Errorf("hitungan salah: %+v", s)
	}
	if s.Pending+s.Valid+s.Ditolak > s.Total {
		t.Errorf("kolom melebihi total: %+v", s)
	}
}

func TestHitungStatusKosong(t *testing.T) {
	if s := HitungStatus(nil); s.Total != 0 || s.Pending != 0 || s.Valid != 0 || s.Ditolak != 0 {
		t.Errorf("daftar kosong: %+v", s)
	}
}

func TestTopJenisLaporan(t *testing.T) {
	list := []laporan.Laporan{
		{JenisLaporan: "penebangan"},
		{JenisLaporan: "abrasi"},
		{JenisLaporan: "penebangan"},
		{JenisLaporan: "sampah"},
		{JenisLaporan: "abrasi"},
		{JenisLaporan: "penebangan"},
	}
	top := TopJenisLaporan(list, 2)
	if len(top) != 2 {
		t.Fatalf("minta 2, dapat %d", len(top))
	}
	if top[0].Jenis != "penebangan" || top[0].Jumlah != 3 {
		t.Errorf("teratas salah: %+v", top[0])
	}
	if top[1].Jenis != "abrasi" || top[1].Jumlah != 2 {
		t.Errorf("kedua salah: %+v", top[1])
	}
}

func TestTopJenisLaporanSeriIkutUrutanMuncul(t *testing.T) {
	list := []laporan.Laporan{
		{JenisLaporan: "abrasi"},
		{JenisLaporan: "sampah"},
		{JenisLaporan: "sampah"},
		{JenisLaporan: "abrasi"},
	}
	top := TopJenisLaporan(list, 0)
	if top[0].Jenis != "abrasi" || top[1].Jenis != "sampah" {
		t.Errorf("seri harus urut kemunculan pertama: %+v", top)
	}
}

func TestSkorPersen(t *testing.T) {
	cases := map[float64]int{
		0:    0,
		0.85: 85,
		1:    100,
		1.7:  100, // di-clamp
		-0.3: 0,
	}
	for in, want := range cases {
		if got := SkorPersen(in); got != want {
			t.Errorf("SkorPersen(%v) = %d, want %d", in, got, want)
		}
	}
}
