package display

import (
	"testing"

	"github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

// Setiap nilai enum yang dikenal wajib punya badge sendiri;
// nilai asing selalu jatuh ke fallback abu-abu.

func TestKondisiBadgeLengkap(t *testing.T) {
	for _, k := range []lokasi.Kondisi{lokasi.KondisiBaik, lokasi.KondisiSedang, lokasi.KondisiBuruk} {
		b := KondisiBadge(k)
		if b.Label == fallback.Label {
			t.Errorf("kondisi %q tidak punya badge", k)
		}
		if b.Warna == "" || b.Ikon == "" {
			t.Errorf("badge %q tidak lengkap: %+v", k, b)
		}
	}
}

func TestStatusBadgeLengkap(t *testing.T) {
	for _, s := range []laporan.Status{laporan.StatusPending, laporan.StatusValid, laporan.StatusDitolak} {
		if b := StatusBadge(s); b.Label == fallback.Label {
			t.Errorf("status %q tidak punya badge", s)
		}
	}
}

func TestUrgensiBadgeLengkap(t *testing.T) {
	urgensi := []analisis.Urgensi{
		analisis.UrgensiRendah,
		analisis.UrgensiSedang,
		analisis.UrgensiTinggi,
		analisis.UrgensiMendesak,
	}
	for _, u := range urgensi {
		if b := UrgensiBadge(u); b.Label == fallback.Label {
			t.Errorf("urgensi %q tidak punya badge", u)
		}
	}
}

func TestBadgeFallback(t *testing.T) {
	cek := func(b Badge) {
		t.Helper()
		if b.Label != "Tidak diketahui" || b.Warna != "#9E9E9E" {
			t.Errorf("fallback salah: %+v", b)
		}
	}
	cek(KondisiBadge("rusak_total"))
	cek(StatusBadge("diproses"))
	cek(UrgensiBadge("kritis"))
	cek(KondisiBadge(""))
}
