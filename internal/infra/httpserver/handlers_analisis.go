package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	appanalisis "github.com/jagamangrove/jagamangrove/internal/application/analisis"
	domkeputusan "github.com/jagamangrove/jagamangrove/internal/domain/keputusan"
	"github.com/jagamangrove/jagamangrove/internal/middleware"
)

// POST /laporan/{id}/analyze → {"success": true, "analysis": {...}}
// Laporan harus punya foto; hasilnya immutable.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateID(id); err != nil {
		return badRequest(err.Error())
	}

	middleware.IncrementAnalisis()
	a, err := r.analisisSvc.Analyze(req.Context(), id)
	if err != nil {
		middleware.IncrementAnalisisGagal()
		return err
	}
	return respond(w, map[string]any{"success": true, "analysis": a})
}

// GET /analisis
func (r *Router) handleAnalisisList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.analisisSvc.ListAnalisis(req.Context())
	if err != nil {
		return err
	}
	return respond(w, list)
}

// POST /keputusan
// Body: {"analisis_id","tindakan_yang_diambil", anggaran/tanggal/catatan opsional}
func (r *Router) handleKeputusanBuat(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		AnalisisID          string   `json:"analisis_id"`
		TindakanYangDiambil string   `json:"tindakan_yang_diambil"`
		Anggaran            *float64 `json:"anggaran"`
		TanggalMulai        string   `json:"tanggal_mulai"`
		TanggalSelesai      string   `json:"tanggal_selesai"`
		Catatan             string   `json:"catatan"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("body JSON tidak valid")
	}
	if body.AnalisisID == "" || strings.TrimSpace(body.TindakanYangDiambil) == "" {
		return badRequest("analisis_id dan tindakan_yang_diambil wajib diisi")
	}

	cmd := appanalisis.KeputusanCommand{
		AnalisisID:          body.AnalisisID,
		UserID:              middleware.UserIDFromContext(req.Context()),
		TindakanYangDiambil: middleware.SanitizeString(body.TindakanYangDiambil),
		Anggaran:            body.Anggaran,
		Catatan:             middleware.SanitizeString(body.Catatan),
	}
	if t, err := parseTanggal(body.TanggalMulai); err != nil {
		return badRequest("tanggal_mulai tidak valid (format YYYY-MM-DD)")
	} else {
		cmd.TanggalMulai = t
	}
	if t, err := parseTanggal(body.TanggalSelesai); err != nil {
		return badRequest("tanggal_selesai tidak valid (format YYYY-MM-DD)")
	} else {
		cmd.TanggalSelesai = t
	}

	k, err := r.analisisSvc.BuatKeputusan(req.Context(), cmd)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, k)
	return nil
}

// GET /keputusan
func (r *Router) handleKeputusanList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.analisisSvc.ListKeputusan(req.Context())
	if err != nil {
		return err
	}
	return respond(w, list)
}

// DELETE /keputusan/{id}
func (r *Router) handleKeputusanHapus(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := r.analisisSvc.HapusKeputusan(req.Context(), domkeputusan.KeputusanID(id)); err != nil {
		return err
	}
	return respond(w, map[string]any{"message": "keputusan dihapus"})
}

// POST /chat → {"status":"success","data":{"jawaban": "..."}}
func (r *Router) handleChat(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		UserID     string `json:"user_id"`
		Pertanyaan string `json:"pertanyaan"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("body JSON tidak valid")
	}
	if strings.TrimSpace(body.Pertanyaan) == "" {
		return badRequest("pertanyaan wajib diisi")
	}

	jawaban, err := r.analisisSvc.Chat(req.Context(), body.Pertanyaan)
	if err != nil {
		// kontrak lama: gagal domain dibalas 200 dengan status error
		return respond(w, map[string]any{"status": "error", "message": err.Error()})
	}
	return respond(w, map[string]any{
		"status": "success",
		"data":   map[string]string{"jawaban": jawaban},
	})
}

func parseTanggal(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
