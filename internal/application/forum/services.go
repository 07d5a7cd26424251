package forum

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jagamangrove/jagamangrove/internal/application"
	domain "github.com/jagamangrove/jagamangrove/internal/domain/forum"
	"github.com/jagamangrove/jagamangrove/internal/domain/users"
)

// Service implements use-cases untuk forum bersama
type Service struct {
	Repo  domain.Repository
	Users users.Repository
	Clock application.Clock
}

// Command untuk kirim pesan; UserID atau GuestName salah satu harus terisi
type KirimCommand struct {
	UserID    string
	GuestName string
	Isi       string
}

// Kirim simpan pesan baru; nama tampilan diambil dari akun atau guest_name
func (s *Service) Kirim(ctx context.Context, cmd KirimCommand) (*domain.Pesan, error) {
	if strings.TrimSpace(cmd.Isi) == "" {
		return nil, fmt.Errorf("isi pesan wajib diisi")
	}

	p := &domain.Pesan{
		ID:        domain.PesanID(uuid.New().String()),
		Isi:       cmd.Isi,
		CreatedAt: s.Clock.Now(),
	}
	switch {
	case cmd.UserID != "":
		u, err := s.Users.GetByID(ctx, users.UserID(cmd.UserID))
		if err != nil {
			return nil, err
		}
		p.UserID = cmd.UserID
		p.Nama = u.NamaLengkap
	case strings.TrimSpace(cmd.GuestName) != "":
		p.GuestName = strings.TrimSpace(cmd.GuestName)
		p.Nama = p.GuestName
	default:
		return nil, fmt.Errorf("guest_name wajib diisi untuk pesan tamu")
	}

	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List semua pesan, terbaru dulu
func (s *Service) List(ctx context.Context) ([]*domain.Pesan, error) {
	return s.Repo.List(ctx)
}

// Hapus pesan; hanya pemerintah atau pemilik pesan
func (s *Service) Hapus(ctx context.Context, id domain.PesanID, actorID, actorRole string) error {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if actorRole != string(users.RolePemerintah) && (p.UserID == "" || p.UserID != actorID) {
		return domain.ErrBukanPemilik
	}
	return s.Repo.Delete(ctx, id)
}
