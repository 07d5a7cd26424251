package jenis

import "time"

// JenisID tipe untuk Jenis
type JenisID string

// Jenis entri katalog spesies mangrove
type Jenis struct {
	ID         JenisID   `json:"id"`
	NamaIlmiah string    `json:"nama_ilmiah"`
	NamaLokal  string    `json:"nama_lokal"`
	Deskripsi  string    `json:"deskripsi,omitempty"`
	Gambar     string    `json:"gambar,omitempty"` // path relatif di object storage
	CreatedAt  time.Time `json:"created_at"`
}
