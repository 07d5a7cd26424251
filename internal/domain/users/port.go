package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("user tidak ditemukan")
	ErrUsernameTaken  = errors.New("username sudah dipakai")
	ErrBadCredentials = errors.New("username atau password salah")
)

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id UserID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
