package laporan

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound   = errors.New("laporan tidak ditemukan")
	ErrIsiPendek  = errors.New("isi laporan minimal 10 karakter")
	ErrTanpaFoto  = errors.New("laporan tidak memiliki foto")
	ErrStatusAneh = errors.New("status laporan tidak dikenal")
)

// StatusCounts value object untuk statistik dashboard
type StatusCounts struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Valid   int `json:"valid"`
	Ditolak int `json:"ditolak"`
}

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, l *Laporan) error
	Get(ctx context.Context, id LaporanID) (*Laporan, error)
	List(ctx context.Context) ([]*Laporan, error)
	ListByStatus(ctx context.Context, status Status) ([]*Laporan, error)
	UpdateStatus(ctx context.Context, id LaporanID, status Status) error
	Delete(ctx context.Context, id LaporanID) error
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

// FotoStore port (interface untuk penyimpanan foto)
type FotoStore interface {
	// Put simpan objek dan kembalikan path relatif (dipakai di URL /storage/<path>)
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
}
