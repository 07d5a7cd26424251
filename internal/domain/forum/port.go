package forum

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("pesan tidak ditemukan")
	ErrBukanPemilik = errors.New("hanya pemilik pesan atau pemerintah yang boleh menghapus")
)

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, p *Pesan) error
	Get(ctx context.Context, id PesanID) (*Pesan, error)
	List(ctx context.Context) ([]*Pesan, error)
	Delete(ctx context.Context, id PesanID) error
}
