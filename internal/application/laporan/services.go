package laporan

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jagamangrove/jagamangrove/internal/application"
	domain "github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

// Service implements use-cases untuk Laporan
type Service struct {
	Repo   domain.Repository
	Lokasi lokasi.Repository
	Foto   domain.FotoStore
	Clock  application.Clock
}

// Command untuk kirim laporan baru
type SubmitCommand struct {
	LokasiID     string
	JenisLaporan string
	IsiLaporan   string
	UserID       string // kosong = anonim

	// Foto opsional; diambil dari bagian multipart "foto"
	Foto        io.Reader
	FotoNama    string
	FotoSize    int64
	ContentType string
}

// Submit simpan laporan baru dengan status pending, upload foto bila ada
func (s *Service) Submit(ctx context.Context, cmd SubmitCommand) (*domain.Laporan, error) {
	if strings.TrimSpace(cmd.LokasiID) == "" || strings.TrimSpace(cmd.JenisLaporan) == "" {
		return nil, fmt.Errorf("lokasi_id dan jenis_laporan wajib diisi")
	}
	if len(strings.TrimSpace(cmd.IsiLaporan)) < domain.MinIsiLaporan {
		return nil, domain.ErrIsiPendek
	}

	loc, err := s.Lokasi.Get(ctx, lokasi.LokasiID(cmd.LokasiID))
	if err != nil {
		return nil, err
	}

	l := &domain.Laporan{
		ID:           domain.LaporanID(uuid.New().String()),
		LokasiID:     cmd.LokasiID,
		NamaLokasi:   loc.Nama,
		JenisLaporan: cmd.JenisLaporan,
		IsiLaporan:   cmd.IsiLaporan,
		Status:       domain.StatusPending,
		UserID:       cmd.UserID,
		CreatedAt:    s.Clock.Now(),
	}

	if cmd.Foto != nil {
		key := fmt.Sprintf("laporan/%s%s", l.ID, filepath.Ext(cmd.FotoNama))
		path, err := s.Foto.Put(ctx, key, cmd.ContentType, cmd.FotoSize, cmd.Foto)
		if err != nil {
			return nil, fmt.Errorf("upload foto: %w", err)
		}
		l.Foto = path
	}

	if err := s.Repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List semua laporan, terbaru dulu
func (s *Service) List(ctx context.Context) ([]*domain.Laporan, error) {
	return s.Repo.List(ctx)
}

// ListValid hanya laporan berstatus valid (endpoint /laporan-valid)
func (s *Service) ListValid(ctx context.Context) ([]*domain.Laporan, error) {
	return s.Repo.ListByStatus(ctx, domain.StatusValid)
}

// Get satu laporan
func (s *Service) Get(ctx context.Context, id domain.LaporanID) (*domain.Laporan, error) {
	return s.Repo.Get(ctx, id)
}

// UpdateStatus ganti status laporan (pending|valid|ditolak)
func (s *Service) UpdateStatus(ctx context.Context, id domain.LaporanID, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrStatusAneh
	}
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.UpdateStatus(ctx, id, domain.Status(status))
}

// Delete hapus laporan
func (s *Service) Delete(ctx context.Context, id domain.LaporanID) error {
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// Statistik hitung jumlah laporan per status
func (s *Service) Statistik(ctx context.Context) (domain.StatusCounts, error) {
	return s.Repo.CountByStatus(ctx)
}
