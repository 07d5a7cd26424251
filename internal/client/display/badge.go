package display

import (
	"github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

// Badge atribut visual satu nilai enum
type Badge struct {
	Label string
	Warna string
	Ikon  string
}

// fallback dipakai untuk nilai yang tidak dikenal, misal data
// lama di server dengan enum yang sudah tidak dipakai
var fallback = Badge{Label: "Tidak diketahui", Warna: "#9E9E9E", Ikon: "help"}

var kondisiBadge = map[lokasi.Kondisi]Badge{
	lokasi.KondisiBaik:   {Label: "Baik", Warna: "#4CAF50", Ikon: "check_circle"},
	lokasi.KondisiSedang: {Label: "Sedang", Warna: "#FF9800", Ikon: "error_outline"},
	lokasi.KondisiBuruk:  {Label: "Buruk", Warna: "#F44336", Ikon: "warning"},
}

var statusBadge = map[laporan.Status]Badge{
	laporan.StatusPending: {Label: "Menunggu", Warna: "#FF9800", Ikon: "hourglass_empty"},
	laporan.StatusValid:   {Label: "Valid", Warna: "#4CAF50", Ikon: "verified"},
	laporan.StatusDitolak: {Label: "Ditolak", Warna: "#F44336", Ikon: "cancel"},
}

var urgensiBadge = map[analisis.Urgensi]Badge{
	analisis.UrgensiRendah:   {Label: "Rendah", Warna: "#4CAF50", Ikon: "low_priority"},
	analisis.UrgensiSedang:   {Label: "Sedang", Warna: "#FF9800", Ikon: "report_problem"},
	analisis.UrgensiTinggi:   {Label: "Tinggi", Warna: "#FF5722", Ikon: "priority_high"},
	analisis.UrgensiMendesak: {Label: "Mendesak", Warna: "#F44336", Ikon: "notification_important"},
}

func KondisiBadge(k lokasi.Kondisi) Badge {
	if b, ok := kondisiBadge[k]; ok {
		return b
	}
	return fallback
}

func StatusBadge(s laporan.Status) Badge {
	if b, ok := statusBadge[s]; ok {
		return b
	}
	return fallback
}

func UrgensiBadge(u analisis.Urgensi) Badge {
	if b, ok := urgensiBadge[u]; ok {
		return b
	}
	return fallback
}
