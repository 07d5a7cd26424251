package api

import (
	"context"

	"github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	"github.com/jagamangrove/jagamangrove/internal/domain/keputusan"
)

// KeputusanInput payload keputusan pemerintah atas satu analisis
type KeputusanInput struct {
	AnalisisID          string   `json:"analisis_id"`
	TindakanYangDiambil string   `json:"tindakan_yang_diambil"`
	Anggaran            *float64 `json:"anggaran,omitempty"`
	TanggalMulai        string   `json:"tanggal_mulai,omitempty"`
	TanggalSelesai      string   `json:"tanggal_selesai,omitempty"`
	Catatan             string   `json:"catatan,omitempty"`
}

// AnalyzeLaporan minta analisis AI untuk laporan berfoto.
// Respons server: {"success": true, "analysis": {...}}.
func (c *Client) AnalyzeLaporan(ctx context.Context, laporanID string) (analisis.Analisis, error) {
	var out struct {
		Success  bool              `json:"success"`
		Analysis analisis.Analisis `json:"analysis"`
		Message  string            `json:"message"`
	}
	if err := c.doJSON(ctx, "POST", "/laporan/"+laporanID+"/analyze", nil, &out); err != nil {
		return analisis.Analisis{}, err
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "analisis gagal"
		}
		return analisis.Analisis{}, &DomainError{Message: msg}
	}
	return out.Analysis, nil
}

func (c *Client) ListAnalisis(ctx context.Context) ([]analisis.Analisis, error) {
	var out []analisis.Analisis
	if err := c.doJSON(ctx, "GET", "/analisis", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BuatKeputusan(ctx context.Context, in KeputusanInput) (keputusan.Keputusan, error) {
	var out keputusan.Keputusan
	if err := c.doJSON(ctx, "POST", "/keputusan", in, &out); err != nil {
		return keputusan.Keputusan{}, err
	}
	return out, nil
}

func (c *Client) ListKeputusan(ctx context.Context) ([]keputusan.Keputusan, error) {
	var out []keputusan.Keputusan
	if err := c.doJSON(ctx, "GET", "/keputusan", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteKeputusan(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/keputusan/"+id, nil, nil)
}
