package forum

import "time"

// PesanID tipe untuk pesan forum
type PesanID string

// Pesan satu pesan di forum bersama
type Pesan struct {
	ID        PesanID   `json:"id"`
	UserID    string    `json:"user_id,omitempty"`    // kosong untuk tamu
	GuestName string    `json:"guest_name,omitempty"` // nama tampilan tamu
	Nama      string    `json:"nama"`                 // nama yang dirender (user atau tamu)
	Isi       string    `json:"isi"`
	CreatedAt time.Time `json:"created_at"`
}
