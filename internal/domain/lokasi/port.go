package lokasi

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("lokasi tidak ditemukan")

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, l *Lokasi) error
	Get(ctx context.Context, id LokasiID) (*Lokasi, error)
	List(ctx context.Context) ([]*Lokasi, error)
	Delete(ctx context.Context, id LokasiID) error
	Count(ctx context.Context) (int64, error)
}
