package api

import (
	"context"
	"io"

	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
)

// LaporanInput payload kirim laporan; selalu multipart karena
// server menolak laporan non-multipart
type LaporanInput struct {
	LokasiID     string
	JenisLaporan string
	IsiLaporan   string

	Foto     io.Reader
	FotoNama string
}

// Statistik ringkasan dashboard dari GET /statistik
type Statistik struct {
	Laporan     laporan.StatusCounts `json:"laporan"`
	TotalLokasi int                  `json:"total_lokasi"`
	TotalJenis  int                  `json:"total_jenis"`
}

func (c *Client) ListLaporan(ctx context.Context) ([]laporan.Laporan, error) {
	var out []laporan.Laporan
	if err := c.doJSON(ctx, "GET", "/laporan", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLaporanValid coba endpoint khusus dulu; server lama belum
// punya /laporan-valid, jadi kalau gagal ambil semua lalu saring
// di sisi klien
func (c *Client) ListLaporanValid(ctx context.Context) ([]laporan.Laporan, error) {
	var out []laporan.Laporan
	if err := c.doJSON(ctx, "GET", "/laporan-valid", nil, &out); err == nil {
		return out, nil
	}
	semua, err := c.ListLaporan(ctx)
	if err != nil {
		return nil, err
	}
	valid := make([]laporan.Laporan, 0, len(semua))
	for _, l := range semua {
		if l.Status == laporan.StatusValid {
			valid = append(valid, l)
		}
	}
	return valid, nil
}

func (c *Client) GetLaporan(ctx context.Context, id string) (laporan.Laporan, error) {
	var out laporan.Laporan
	if err := c.doJSON(ctx, "GET", "/laporan/"+id, nil, &out); err != nil {
		return laporan.Laporan{}, err
	}
	return out, nil
}

func (c *Client) SubmitLaporan(ctx context.Context, in LaporanInput) (laporan.Laporan, error) {
	fields := map[string]string{
		"lokasi_id":     in.LokasiID,
		"jenis_laporan": in.JenisLaporan,
		"isi_laporan":   in.IsiLaporan,
	}
	var out laporan.Laporan
	if err := c.doMultipart(ctx, "POST", "/laporan", fields, "foto", in.FotoNama, in.Foto, &out); err != nil {
		return laporan.Laporan{}, err
	}
	return out, nil
}

func (c *Client) UpdateStatusLaporan(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.doJSON(ctx, "PUT", "/laporan/"+id+"/status", body, nil)
}

func (c *Client) DeleteLaporan(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/laporan/"+id, nil, nil)
}

func (c *Client) GetStatistik(ctx context.Context) (Statistik, error) {
	var out Statistik
	if err := c.doJSON(ctx, "GET", "/statistik", nil, &out); err != nil {
		return Statistik{}, err
	}
	return out, nil
}
