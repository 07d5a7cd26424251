package lokasi

import "time"

// LokasiID tipe untuk Lokasi
type LokasiID string

// Kondisi enum
type Kondisi string

const (
	KondisiBaik   Kondisi = "baik"
	KondisiSedang Kondisi = "sedang"
	KondisiBuruk  Kondisi = "buruk"
)

// ValidKondisi cek nilai kondisi yang dikenal
func ValidKondisi(k string) bool {
	switch Kondisi(k) {
	case KondisiBaik, KondisiSedang, KondisiBuruk:
		return true
	}
	return false
}

// Lokasi titik tanam/pantau mangrove
type Lokasi struct {
	ID           LokasiID  `json:"id"`
	Nama         string    `json:"nama"`
	Koordinat    string    `json:"koordinat"` // format "lat, lon"
	JumlahPohon  int       `json:"jumlah_pohon"`
	Kerapatan    float64   `json:"kerapatan"`
	TinggiRata   float64   `json:"tinggi_rata"`
	DiameterRata float64   `json:"diameter_rata"`
	Kondisi      Kondisi   `json:"kondisi"`
	Luas         float64   `json:"luas"`
	Deskripsi    string    `json:"deskripsi,omitempty"`
	TanggalInput time.Time `json:"tanggal_input"`
}
