package api

import (
	"context"

	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

// LokasiInput payload simpan lokasi; koordinat format "lat, lon"
type LokasiInput struct {
	Nama         string  `json:"nama"`
	Koordinat    string  `json:"koordinat"`
	JumlahPohon  int     `json:"jumlah_pohon"`
	Kerapatan    float64 `json:"kerapatan"`
	TinggiRata   float64 `json:"tinggi_rata"`
	DiameterRata float64 `json:"diameter_rata"`
	Kondisi      string  `json:"kondisi"`
	Luas         float64 `json:"luas"`
	Deskripsi    string  `json:"deskripsi"`
}

func (c *Client) ListLokasi(ctx context.Context) ([]lokasi.Lokasi, error) {
	var out []lokasi.Lokasi
	if err := c.doJSON(ctx, "GET", "/lokasi", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLokasi(ctx context.Context, id string) (lokasi.Lokasi, error) {
	var out lokasi.Lokasi
	if err := c.doJSON(ctx, "GET", "/lokasi/"+id, nil, &out); err != nil {
		return lokasi.Lokasi{}, err
	}
	return out, nil
}

func (c *Client) CreateLokasi(ctx context.Context, in LokasiInput) (lokasi.Lokasi, error) {
	var out lokasi.Lokasi
	if err := c.doJSON(ctx, "POST", "/lokasi", in, &out); err != nil {
		return lokasi.Lokasi{}, err
	}
	return out, nil
}

func (c *Client) UpdateLokasi(ctx context.Context, id string, in LokasiInput) (lokasi.Lokasi, error) {
	var out lokasi.Lokasi
	if err := c.doJSON(ctx, "PUT", "/lokasi/"+id, in, &out); err != nil {
		return lokasi.Lokasi{}, err
	}
	return out, nil
}

func (c *Client) DeleteLokasi(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/lokasi/"+id, nil, nil)
}
