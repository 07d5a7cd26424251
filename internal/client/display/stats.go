package display

import (
	"sort"

	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

// RingkasanKondisi jumlah lokasi per kondisi untuk kartu dashboard
type RingkasanKondisi struct {
	Total  int
	Baik   int
	Sedang int
	Buruk  int
	Lain   int
}

// HitungKondisi hitung per kondisi; nilai tak dikenal masuk Lain
// supaya jumlah kolom selalu sama dengan Total
func HitungKondisi(list []lokasi.Lokasi) RingkasanKondisi {
	var r RingkasanKondisi
	r.Total = len(list)
	for _, l := range list {
		switch l.Kondisi {
		case lokasi.KondisiBaik:
			r.Baik++
		case lokasi.KondisiSedang:
			r.Sedang++
		case lokasi.KondisiBuruk:
			r.Buruk++
		default:
			r.Lain++
		}
	}
	return r
}

// HitungStatus hitung laporan per status dari daftar yang sudah
// dipegang klien, jadi dashboard tetap terisi tanpa memanggil
// endpoint statistik lagi. Status tak dikenal hanya menambah Total.
func HitungStatus(list []laporan.Laporan) laporan.StatusCounts {
	var s laporan.StatusCounts
	s.Total = len(list)
	for _, l := range list {
		switch l.Status {
		case laporan.StatusPending:
			s.Pending++
		case laporan.StatusValid:
			s.Valid++
		case laporan.StatusDitolak:
			s.Ditolak++
		}
	}
	return s
}

// JenisTeratas satu baris grafik jenis laporan terbanyak
type JenisTeratas struct {
	Jenis  string
	Jumlah int
}

// TopJenisLaporan n jenis laporan tersering. Jenis dengan jumlah
// sama diurutkan sesuai kemunculan pertama di daftar.
func TopJenisLaporan(list []laporan.Laporan, n int) []JenisTeratas {
	count := map[string]int{}
	first := map[string]int{}
	for i, l := range list {
		if _, ok := count[l.JenisLaporan]; !ok {
			first[l.JenisLaporan] = i
		}
		count[l.JenisLaporan]++
	}

	rows := make([]JenisTeratas, 0, len(count))
	for jenis, jumlah := range count {
		rows = append(rows, JenisTeratas{Jenis: jenis, Jumlah: jumlah})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Jumlah != rows[j].Jumlah {
			return rows[i].Jumlah > rows[j].Jumlah
		}
		return first[rows[i].Jenis] < first[rows[j].Jenis]
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// SkorPersen skor keyakinan [0,1] jadi persen bulat untuk badge
func SkorPersen(skor float64) int {
	if skor < 0 {
		skor = 0
	}
	if skor > 1 {
		skor = 1
	}
	return int(skor*100 + 0.5)
}
