package keputusan

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("keputusan tidak ditemukan")
	ErrAnalisisKosong = errors.New("keputusan harus merujuk analisis yang ada")
)

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, k *Keputusan) error
	Get(ctx context.Context, id KeputusanID) (*Keputusan, error)
	List(ctx context.Context) ([]*Keputusan, error)
	Delete(ctx context.Context, id KeputusanID) error
}
