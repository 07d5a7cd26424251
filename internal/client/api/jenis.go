package api

import (
	"context"
	"io"

	"github.com/jagamangrove/jagamangrove/internal/domain/jenis"
)

// JenisInput payload simpan jenis mangrove. Gambar opsional;
// bila nil payload dikirim sebagai JSON biasa.
type JenisInput struct {
	NamaIlmiah string `json:"nama_ilmiah"`
	NamaLokal  string `json:"nama_lokal"`
	Deskripsi  string `json:"deskripsi"`

	Gambar     io.Reader `json:"-"`
	GambarNama string    `json:"-"`
}

func (c *Client) ListJenis(ctx context.Context) ([]jenis.Jenis, error) {
	var out []jenis.Jenis
	if err := c.doJSON(ctx, "GET", "/jenis", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetJenis(ctx context.Context, id string) (jenis.Jenis, error) {
	var out jenis.Jenis
	if err := c.doJSON(ctx, "GET", "/jenis/"+id, nil, &out); err != nil {
		return jenis.Jenis{}, err
	}
	return out, nil
}

func (c *Client) CreateJenis(ctx context.Context, in JenisInput) (jenis.Jenis, error) {
	return c.simpanJenis(ctx, "POST", "/jenis", in)
}

func (c *Client) UpdateJenis(ctx context.Context, id string, in JenisInput) (jenis.Jenis, error) {
	return c.simpanJenis(ctx, "PUT", "/jenis/"+id, in)
}

func (c *Client) simpanJenis(ctx context.Context, method, path string, in JenisInput) (jenis.Jenis, error) {
	var out jenis.Jenis
	if in.Gambar == nil {
		if err := c.doJSON(ctx, method, path, in, &out); err != nil {
			return jenis.Jenis{}, err
		}
		return out, nil
	}
	fields := map[string]string{
		"nama_ilmiah": in.NamaIlmiah,
		"nama_lokal":  in.NamaLokal,
		"deskripsi":   in.Deskripsi,
	}
	if err := c.doMultipart(ctx, method, path, fields, "gambar", in.GambarNama, in.Gambar, &out); err != nil {
		return jenis.Jenis{}, err
	}
	return out, nil
}

func (c *Client) DeleteJenis(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/jenis/"+id, nil, nil)
}
