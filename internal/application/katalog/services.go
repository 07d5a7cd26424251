package katalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jagamangrove/jagamangrove/internal/application"
	"github.com/jagamangrove/jagamangrove/internal/domain/jenis"
	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

// Service implements use-cases untuk katalog lokasi dan jenis (milik peneliti)
type Service struct {
	Lokasi lokasi.Repository
	Jenis  jenis.Repository
	Gambar laporan.FotoStore
	Clock  application.Clock
}

// koordinatRe pola "lat, lon" angka desimal bertanda
var koordinatRe = regexp.MustCompile(`^-?\d+(\.\d+)?\s*,\s*-?\d+(\.\d+)?$`)

// ValidKoordinat cek string koordinat "lat, lon"
func ValidKoordinat(s string) bool {
	return koordinatRe.MatchString(strings.TrimSpace(s))
}

// Command untuk simpan lokasi (create bila ID kosong)
type LokasiCommand struct {
	ID           string
	Nama         string
	Koordinat    string
	JumlahPohon  int
	Kerapatan    float64
	TinggiRata   float64
	DiameterRata float64
	Kondisi      string
	Luas         float64
	Deskripsi    string
}

// SimpanLokasi buat atau perbarui lokasi
func (s *Service) SimpanLokasi(ctx context.Context, cmd LokasiCommand) (*lokasi.Lokasi, error) {
	if strings.TrimSpace(cmd.Nama) == "" {
		return nil, fmt.Errorf("nama lokasi wajib diisi")
	}
	if !ValidKoordinat(cmd.Koordinat) {
		return nil, fmt.Errorf("koordinat harus berformat \"lat, lon\"")
	}
	if !lokasi.ValidKondisi(cmd.Kondisi) {
		return nil, fmt.Errorf("kondisi tidak dikenal: %s (pilihan: baik, sedang, buruk)", cmd.Kondisi)
	}

	l := &lokasi.Lokasi{
		ID:           lokasi.LokasiID(cmd.ID),
		Nama:         cmd.Nama,
		Koordinat:    strings.TrimSpace(cmd.Koordinat),
		JumlahPohon:  cmd.JumlahPohon,
		Kerapatan:    cmd.Kerapatan,
		TinggiRata:   cmd.TinggiRata,
		DiameterRata: cmd.DiameterRata,
		Kondisi:      lokasi.Kondisi(cmd.Kondisi),
		Luas:         cmd.Luas,
		Deskripsi:    cmd.Deskripsi,
	}
	if l.ID == "" {
		l.ID = lokasi.LokasiID(uuid.New().String())
		l.TanggalInput = s.Clock.Now()
	} else {
		existing, err := s.Lokasi.Get(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		l.TanggalInput = existing.TanggalInput
	}
	if err := s.Lokasi.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListLokasi semua lokasi
func (s *Service) ListLokasi(ctx context.Context) ([]*lokasi.Lokasi, error) {
	return s.Lokasi.List(ctx)
}

// GetLokasi satu lokasi
func (s *Service) GetLokasi(ctx context.Context, id lokasi.LokasiID) (*lokasi.Lokasi, error) {
	return s.Lokasi.Get(ctx, id)
}

// HapusLokasi hapus lokasi
func (s *Service) HapusLokasi(ctx context.Context, id lokasi.LokasiID) error {
	if _, err := s.Lokasi.Get(ctx, id); err != nil {
		return err
	}
	return s.Lokasi.Delete(ctx, id)
}

// Command untuk simpan jenis (create bila ID kosong)
type JenisCommand struct {
	ID         string
	NamaIlmiah string
	NamaLokal  string
	Deskripsi  string

	// Gambar opsional; dari bagian multipart "gambar"
	Gambar      io.Reader
	GambarNama  string
	GambarSize  int64
	ContentType string
}

// SimpanJenis buat atau perbarui entri spesies, upload gambar bila ada
func (s *Service) SimpanJenis(ctx context.Context, cmd JenisCommand) (*jenis.Jenis, error) {
	if strings.TrimSpace(cmd.NamaIlmiah) == "" || strings.TrimSpace(cmd.NamaLokal) == "" {
		return nil, fmt.Errorf("nama_ilmiah dan nama_lokal wajib diisi")
	}

	j := &jenis.Jenis{
		ID:         jenis.JenisID(cmd.ID),
		NamaIlmiah: cmd.NamaIlmiah,
		NamaLokal:  cmd.NamaLokal,
		Deskripsi:  cmd.Deskripsi,
	}
	if j.ID == "" {
		j.ID = jenis.JenisID(uuid.New().String())
		j.CreatedAt = s.Clock.Now()
	} else {
		existing, err := s.Jenis.Get(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		j.CreatedAt = existing.CreatedAt
		j.Gambar = existing.Gambar
	}

	if cmd.Gambar != nil {
		key := fmt.Sprintf("jenis/%s%s", j.ID, filepath.Ext(cmd.GambarNama))
		path, err := s.Gambar.Put(ctx, key, cmd.ContentType, cmd.GambarSize, cmd.Gambar)
		if err != nil {
			return nil, fmt.Errorf("upload gambar: %w", err)
		}
		j.Gambar = path
	}

	if err := s.Jenis.Save(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// ListJenis semua jenis
func (s *Service) ListJenis(ctx context.Context) ([]*jenis.Jenis, error) {
	return s.Jenis.List(ctx)
}

// GetJenis satu jenis
func (s *Service) GetJenis(ctx context.Context, id jenis.JenisID) (*jenis.Jenis, error) {
	return s.Jenis.Get(ctx, id)
}

// HapusJenis hapus entri spesies
func (s *Service) HapusJenis(ctx context.Context, id jenis.JenisID) error {
	if _, err := s.Jenis.Get(ctx, id); err != nil {
		return err
	}
	return s.Jenis.Delete(ctx, id)
}
