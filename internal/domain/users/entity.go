package users

import "time"

// UserID tipe untuk User
type UserID string

// Role enum
type Role string

const (
	RolePeneliti   Role = "peneliti"
	RolePemerintah Role = "pemerintah"
)

// ValidRole cek role yang boleh register
func ValidRole(r string) bool {
	return Role(r) == RolePeneliti || Role(r) == RolePemerintah
}

// User akun terdaftar (masyarakat memakai aplikasi tanpa akun)
type User struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	NamaLengkap  string    `json:"nama_lengkap"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
