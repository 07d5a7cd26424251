package keputusan

import "time"

// KeputusanID tipe untuk Keputusan
type KeputusanID string

// Status enum
type Status string

const (
	StatusDirencanakan Status = "direncanakan"
	StatusBerjalan     Status = "berjalan"
	StatusSelesai      Status = "selesai"
)

// Keputusan catatan tindakan administratif pemerintah atas sebuah analisis
type Keputusan struct {
	ID                  KeputusanID `json:"id"`
	AnalisisID          string      `json:"analisis_id"`
	UserID              string      `json:"user_id"`
	TindakanYangDiambil string      `json:"tindakan_yang_diambil"`
	Anggaran            *float64    `json:"anggaran,omitempty"`
	TanggalMulai        *time.Time  `json:"tanggal_mulai,omitempty"`
	TanggalSelesai      *time.Time  `json:"tanggal_selesai,omitempty"`
	Catatan             string      `json:"catatan,omitempty"`
	Status              Status      `json:"status"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
