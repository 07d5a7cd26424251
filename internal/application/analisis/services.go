package analisis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jagamangrove/jagamangrove/internal/application"
	domain "github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	"github.com/jagamangrove/jagamangrove/internal/domain/keputusan"
	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
)

// Service implements use-cases untuk Analisis dan Keputusan
type Service struct {
	Laporan      laporan.Repository
	Repo         domain.Repository
	Keputusan    keputusan.Repository
	AI           domain.Client
	ImageBaseURL string
	Clock        application.Clock
}

// Analyze jalankan analisis AI atas laporan berfoto lalu simpan hasilnya
func (s *Service) Analyze(ctx context.Context, laporanID string) (*domain.Analisis, error) {
	l, err := s.Laporan.Get(ctx, laporan.LaporanID(laporanID))
	if err != nil {
		return nil, err
	}
	if l.Foto == "" {
		return nil, laporan.ErrTanpaFoto
	}

	fotoURL := fmt.Sprintf("%s/storage/%s", strings.TrimRight(s.ImageBaseURL, "/"), l.Foto)
	hasil, err := s.AI.AnalyzeLaporan(ctx, fotoURL, l.JenisLaporan, l.IsiLaporan)
	if err != nil {
		return nil, err
	}

	a := &domain.Analisis{
		ID:                  domain.AnalisisID(uuid.New().String()),
		LaporanID:           laporanID,
		KlasifikasiKondisi:  hasil.KlasifikasiKondisi,
		PenyebabKerusakan:   hasil.PenyebabKerusakan,
		SkorKeyakinan:       clamp01(hasil.SkorKeyakinan),
		TingkatUrgensi:      normalisasiUrgensi(hasil.TingkatUrgensi),
		TindakanRekomendasi: hasil.TindakanRekomendasi,
		CreatedAt:           s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAnalisis semua analisis, terbaru dulu
func (s *Service) ListAnalisis(ctx context.Context) ([]*domain.Analisis, error) {
	return s.Repo.List(ctx)
}

// Command untuk catat keputusan dari sebuah analisis
type KeputusanCommand struct {
	AnalisisID          string
	UserID              string
	TindakanYangDiambil string
	Anggaran            *float64
	TanggalMulai        *time.Time
	TanggalSelesai      *time.Time
	Catatan             string
}

// BuatKeputusan catat keputusan; analisis rujukan harus ada
func (s *Service) BuatKeputusan(ctx context.Context, cmd KeputusanCommand) (*keputusan.Keputusan, error) {
	if strings.TrimSpace(cmd.TindakanYangDiambil) == "" {
		return nil, fmt.Errorf("tindakan_yang_diambil wajib diisi")
	}
	if _, err := s.Repo.Get(ctx, domain.AnalisisID(cmd.AnalisisID)); err != nil {
		return nil, keputusan.ErrAnalisisKosong
	}

	now := s.Clock.Now()
	k := &keputusan.Keputusan{
		ID:                  keputusan.KeputusanID(uuid.New().String()),
		AnalisisID:          cmd.AnalisisID,
		UserID:              cmd.UserID,
		TindakanYangDiambil: cmd.TindakanYangDiambil,
		Anggaran:            cmd.Anggaran,
		TanggalMulai:        cmd.TanggalMulai,
		TanggalSelesai:      cmd.TanggalSelesai,
		Catatan:             cmd.Catatan,
		Status:              keputusan.StatusDirencanakan,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.Keputusan.Save(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

// ListKeputusan semua keputusan, terbaru dulu
func (s *Service) ListKeputusan(ctx context.Context) ([]*keputusan.Keputusan, error) {
	return s.Keputusan.List(ctx)
}

// HapusKeputusan hapus satu keputusan
func (s *Service) HapusKeputusan(ctx context.Context, id keputusan.KeputusanID) error {
	if _, err := s.Keputusan.Get(ctx, id); err != nil {
		return err
	}
	return s.Keputusan.Delete(ctx, id)
}

// Chat teruskan pertanyaan pengguna ke asisten AI
func (s *Service) Chat(ctx context.Context, pertanyaan string) (string, error) {
	if strings.TrimSpace(pertanyaan) == "" {
		return "", fmt.Errorf("pertanyaan wajib diisi")
	}
	return s.AI.Chat(ctx, pertanyaan)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalisasiUrgensi petakan keluaran bebas AI ke enum urgensi
func normalisasiUrgensi(s string) domain.Urgensi {
	switch domain.Urgensi(strings.ToLower(strings.TrimSpace(s))) {
	case domain.UrgensiRendah:
		return domain.UrgensiRendah
	case domain.UrgensiTinggi:
		return domain.UrgensiTinggi
	case domain.UrgensiMendesak:
		return domain.UrgensiMendesak
	default:
		return domain.UrgensiSedang
	}
}
