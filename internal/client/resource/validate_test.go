package resource

import (
	"strings"
	"testing"
)

func lokasiLengkap() LokasiDraft {
	return LokasiDraft{
		Nama:      "Muara Angke",
		Koordinat: "-6.1065, 106.7746",
		Kondisi:   "baik",
	}
}

func TestValidateLokasi(t *testing.T) {
	if err := ValidateLokasi(lokasiLengkap()); err != nil {
		t.Fatalf("draft lengkap ditolak: %v", err)
	}
}

func TestValidateLokasiKoordinat(t *testing.T) {
	valid := []string{
		"-6.1065, 106.7746",
		"0,0",
		"1.5 , 2.5",
		"-90,-180",
	}
	for _, k := range valid {
		d := lokasiLengkap()
		d.Koordinat = k
		if err := ValidateLokasi(d); err != nil {
			t.Errorf("koordinat %q ditolak: %v", k, err)
		}
	}

	invalid := []string{"", "106.7746", "abc, def", "6,5,4", "6.1.0, 106"}
	for _, k := range invalid {
		d := lokasiLengkap()
		d.Koordinat = k
		if err := ValidateLokasi(d); err == nil {
			t.Errorf("koordinat %q lolos", k)
		}
	}
}

func TestValidateLokasiPelanggaranPertama(t *testing.T) {
	d := LokasiDraft{} // semua field salah
	err := ValidateLokasi(d)
	if err == nil {
		t.Fatal("draft kosong lolos")
	}
	// hanya pelanggaran teratas yang dilaporkan
	if !strings.Contains(err.Error(), "nama") {
		t.Errorf("pesan harus soal nama dulu: %v", err)
	}
}

func TestValidateLaporanPanjangIsi(t *testing.T) {
	d := LaporanDraft{LokasiID: "l1", JenisLaporan: "kerusakan"}

	d.IsiLaporan = "123456789" // 9 karakter
	if err := ValidateLaporan(d); err == nil {
		t.Error("isi 9 karakter harus ditolak")
	}

	d.IsiLaporan = "1234567890" // tepat 10
	if err := ValidateLaporan(d); err != nil {
		t.Errorf("isi 10 karakter ditolak: %v", err)
	}

	// spasi pinggir tidak dihitung
	d.IsiLaporan = "  12345678  "
	if err := ValidateLaporan(d); err == nil {
		t.Error("spasi pinggir tidak boleh menambah panjang")
	}
}

func TestValidatePesan(t *testing.T) {
	if err := ValidatePesan(PesanDraft{Isi: "halo", Login: true}); err != nil {
		t.Errorf("pesan user login ditolak: %v", err)
	}
	if err := ValidatePesan(PesanDraft{Isi: "halo", NamaTamu: "Budi"}); err != nil {
		t.Errorf("pesan tamu bernama ditolak: %v", err)
	}
	if err := ValidatePesan(PesanDraft{Isi: "halo"}); err == nil {
		t.Error("tamu tanpa nama harus ditolak")
	}
	if err := ValidatePesan(PesanDraft{Isi: "   ", Login: true}); err == nil {
		t.Error("pesan kosong harus ditolak")
	}
}

func TestValidateKeputusan(t *testing.T) {
	ok := KeputusanDraft{AnalisisID: "a1", TindakanYangDiambil: "rehabilitasi"}
	if err := ValidateKeputusan(ok); err != nil {
		t.Errorf("draft lengkap ditolak: %v", err)
	}
	if err := ValidateKeputusan(KeputusanDraft{TindakanYangDiambil: "x"}); err == nil {
		t.Error("tanpa analisis harus ditolak")
	}
	if err := ValidateKeputusan(KeputusanDraft{AnalisisID: "a1"}); err == nil {
		t.Error("tanpa tindakan harus ditolak")
	}
}
