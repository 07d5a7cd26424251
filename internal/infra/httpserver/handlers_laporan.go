package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	applaporan "github.com/jagamangrove/jagamangrove/internal/application/laporan"
	domlaporan "github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/middleware"
)

// GET /laporan
func (r *Router) handleLaporanList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.laporanSvc.List(req.Context())
	if err != nil {
		return err
	}
	return respond(w, list)
}

// GET /laporan-valid
func (r *Router) handleLaporanValid(w http.ResponseWriter, req *http.Request) error {
	list, err := r.laporanSvc.ListValid(req.Context())
	if err != nil {
		return err
	}
	return respond(w, list)
}

// GET /laporan/{id}
func (r *Router) handleLaporanGet(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateID(id); err != nil {
		return badRequest(err.Error())
	}
	l, err := r.laporanSvc.Get(req.Context(), domlaporan.LaporanID(id))
	if err != nil {
		return err
	}
	return respond(w, l)
}

// POST /laporan
// Multipart: lokasi_id, jenis_laporan, isi_laporan, foto (opsional).
// Tanpa token laporan tercatat anonim.
func (r *Router) handleLaporanSubmit(w http.ResponseWriter, req *http.Request) error {
	if !strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
		return badRequest("laporan harus dikirim sebagai multipart/form-data")
	}
	if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
		return badRequest("multipart tidak valid")
	}

	cmd := applaporan.SubmitCommand{
		LokasiID:     req.FormValue("lokasi_id"),
		JenisLaporan: middleware.SanitizeString(req.FormValue("jenis_laporan")),
		IsiLaporan:   middleware.SanitizeString(req.FormValue("isi_laporan")),
		UserID:       middleware.UserIDFromContext(req.Context()),
	}
	if cmd.LokasiID == "" || cmd.JenisLaporan == "" {
		return badRequest("lokasi_id dan jenis_laporan wajib diisi")
	}

	if file, header, err := req.FormFile("foto"); err == nil {
		defer file.Close()
		cmd.Foto = file
		cmd.FotoNama = header.Filename
		cmd.FotoSize = header.Size
		cmd.ContentType = header.Header.Get("Content-Type")
	}

	l, err := r.laporanSvc.Submit(req.Context(), cmd)
	if err != nil {
		return err
	}
	middleware.IncrementLaporan()
	writeJSON(w, http.StatusCreated, l)
	return nil
}

// PUT /laporan/{id}/status
// Body: {"status": "pending"|"valid"|"ditolak"}
func (r *Router) handleLaporanStatus(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("body JSON tidak valid")
	}
	if err := middleware.ValidateStatusLaporan(body.Status); err != nil {
		return badRequest(err.Error())
	}
	if err := r.laporanSvc.UpdateStatus(req.Context(), domlaporan.LaporanID(id), body.Status); err != nil {
		return err
	}
	return respond(w, map[string]any{"message": "status diperbarui", "status": body.Status})
}

// DELETE /laporan/{id}
func (r *Router) handleLaporanHapus(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := r.laporanSvc.Delete(req.Context(), domlaporan.LaporanID(id)); err != nil {
		return err
	}
	return respond(w, map[string]any{"message": "laporan dihapus"})
}

// GET /statistik ringkasan dashboard
func (r *Router) handleStatistik(w http.ResponseWriter, req *http.Request) error {
	counts, err := r.laporanSvc.Statistik(req.Context())
	if err != nil {
		return err
	}
	totalLokasi, err := r.katalogSvc.Lokasi.Count(req.Context())
	if err != nil {
		return err
	}
	totalJenis, err := r.katalogSvc.Jenis.Count(req.Context())
	if err != nil {
		return err
	}
	return respond(w, map[string]any{
		"laporan":      counts,
		"total_lokasi": totalLokasi,
		"total_jenis":  totalJenis,
	})
}
