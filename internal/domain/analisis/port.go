package analisis

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("analisis tidak ditemukan")

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, a *Analisis) error
	Get(ctx context.Context, id AnalisisID) (*Analisis, error)
	List(ctx context.Context) ([]*Analisis, error)
	ListByLaporan(ctx context.Context, laporanID string) ([]*Analisis, error)
}

// Hasil struktur mentah yang dikembalikan klien AI
type Hasil struct {
	KlasifikasiKondisi  string  `json:"klasifikasi_kondisi"`
	PenyebabKerusakan   string  `json:"penyebab_kerusakan"`
	SkorKeyakinan       float64 `json:"skor_keyakinan"`
	TingkatUrgensi      string  `json:"tingkat_urgensi"`
	TindakanRekomendasi string  `json:"tindakan_rekomendasi"`
}

// Client port (interface ke penyedia AI)
type Client interface {
	AnalyzeLaporan(ctx context.Context, fotoURL, jenisLaporan, isiLaporan string) (Hasil, error)
	Chat(ctx context.Context, pertanyaan string) (string, error)
}
