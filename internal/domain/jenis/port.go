package jenis

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("jenis tidak ditemukan")

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, j *Jenis) error
	Get(ctx context.Context, id JenisID) (*Jenis, error)
	List(ctx context.Context) ([]*Jenis, error)
	Delete(ctx context.Context, id JenisID) error
	Count(ctx context.Context) (int64, error)
}
