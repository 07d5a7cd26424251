// Package display helper presentasi murni: pemotongan teks,
// format tanggal dan angka, serta pemetaan status ke warna/ikon.
// Tidak ada pemanggilan jaringan di sini supaya gampang dites.
package display

import (
	"fmt"
	"strings"
	"time"
)

// Truncate potong teks panjang untuk kartu daftar. Hasil maksimal
// max+3 karena elipsis hanya ditambah saat benar-benar terpotong.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

var namaBulan = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatTanggal tanggal pendek gaya lokal, contoh "3 Agu 2026"
func FormatTanggal(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}

// TimeAgo selisih waktu relatif untuk pesan forum
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "baru saja"
	case d < time.Hour:
		return fmt.Sprintf("%d menit lalu", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d jam lalu", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d hari lalu", int(d.Hours()/24))
	default:
		return FormatTanggal(t)
	}
}

// FormatRibuan angka dengan pemisah titik, contoh 12.500
func FormatRibuan(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

// FormatAnggaran rupiah; nil berarti anggaran belum ditetapkan
func FormatAnggaran(anggaran *float64) string {
	if anggaran == nil {
		return "-"
	}
	return "Rp " + FormatRibuan(int(*anggaran))
}
