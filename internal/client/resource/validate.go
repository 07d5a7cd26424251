package resource

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

// Validasi di sisi klien supaya pengguna dapat pesan sebelum
// request jalan; server tetap memvalidasi ulang.

var koordinatRe = regexp.MustCompile(`^-?\d+(\.\d+)?\s*,\s*-?\d+(\.\d+)?$`)

// LokasiDraft isian form lokasi
type LokasiDraft struct {
	ID           string
	Nama         string
	Koordinat    string
	JumlahPohon  int
	Kerapatan    float64
	TinggiRata   float64
	DiameterRata float64
	Kondisi      string
	Luas         float64
	Deskripsi    string
}

// ValidateLokasi pelanggaran pertama saja, urut dari atas form
func ValidateLokasi(d LokasiDraft) error {
	if strings.TrimSpace(d.Nama) == "" {
		return errors.New("nama lokasi wajib diisi")
	}
	if !koordinatRe.MatchString(strings.TrimSpace(d.Koordinat)) {
		return errors.New("koordinat harus berformat \"lat, lon\"")
	}
	if !lokasi.ValidKondisi(d.Kondisi) {
		return errors.New("pilih kondisi: baik, sedang, atau buruk")
	}
	return nil
}

// JenisDraft isian form jenis mangrove
type JenisDraft struct {
	ID         string
	NamaIlmiah string
	NamaLokal  string
	Deskripsi  string
	GambarPath string
}

func ValidateJenis(d JenisDraft) error {
	if strings.TrimSpace(d.NamaIlmiah) == "" {
		return errors.New("nama ilmiah wajib diisi")
	}
	if strings.TrimSpace(d.NamaLokal) == "" {
		return errors.New("nama lokal wajib diisi")
	}
	return nil
}

// LaporanDraft isian form laporan warga
type LaporanDraft struct {
	LokasiID     string
	JenisLaporan string
	IsiLaporan   string
	FotoPath     string
}

func ValidateLaporan(d LaporanDraft) error {
	if d.LokasiID == "" {
		return errors.New("pilih lokasi terlebih dahulu")
	}
	if strings.TrimSpace(d.JenisLaporan) == "" {
		return errors.New("jenis laporan wajib diisi")
	}
	if len(strings.TrimSpace(d.IsiLaporan)) < laporan.MinIsiLaporan {
		return errors.New("isi laporan minimal 10 karakter")
	}
	return nil
}

// PesanDraft isian pesan forum; NamaTamu wajib bila belum login
type PesanDraft struct {
	Isi      string
	NamaTamu string
	Login    bool
}

func ValidatePesan(d PesanDraft) error {
	if strings.TrimSpace(d.Isi) == "" {
		return errors.New("pesan tidak boleh kosong")
	}
	if !d.Login && strings.TrimSpace(d.NamaTamu) == "" {
		return errors.New("isi nama Anda untuk mengirim sebagai tamu")
	}
	return nil
}

// KeputusanDraft isian modal keputusan pemerintah
type KeputusanDraft struct {
	AnalisisID          string
	TindakanYangDiambil string
	Anggaran            string
	TanggalMulai        string
	TanggalSelesai      string
	Catatan             string
}

func ValidateKeputusan(d KeputusanDraft) error {
	if d.AnalisisID == "" {
		return errors.New("analisis belum dipilih")
	}
	if strings.TrimSpace(d.TindakanYangDiambil) == "" {
		return errors.New("tindakan yang diambil wajib diisi")
	}
	return nil
}
