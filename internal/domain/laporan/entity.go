package laporan

import "time"

// LaporanID tipe untuk Laporan
type LaporanID string

// Status enum
type Status string

const (
	StatusPending Status = "pending"
	StatusValid   Status = "valid"
	StatusDitolak Status = "ditolak"
)

// ValidStatus cek nilai status yang dikenal
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusValid, StatusDitolak:
		return true
	}
	return false
}

// MinIsiLaporan panjang minimum isi laporan
const MinIsiLaporan = 10

// Laporan kiriman warga/peneliti tentang kondisi sebuah lokasi
type Laporan struct {
	ID           LaporanID `json:"id"`
	LokasiID     string    `json:"lokasi_id"`
	NamaLokasi   string    `json:"nama_lokasi,omitempty"`
	JenisLaporan string    `json:"jenis_laporan"`
	IsiLaporan   string    `json:"isi_laporan"`
	Foto         string    `json:"foto,omitempty"` // path relatif di object storage
	Status       Status    `json:"status"`
	UserID       string    `json:"user_id,omitempty"` // kosong = anonim
	CreatedAt    time.Time `json:"created_at"`
}
