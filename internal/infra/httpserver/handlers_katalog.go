package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	appkatalog "github.com/jagamangrove/jagamangrove/internal/application/katalog"
	domjenis "github.com/jagamangrove/jagamangrove/internal/domain/jenis"
	domlokasi "github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
	"github.com/jagamangrove/jagamangrove/internal/middleware"
)

// maxUploadBytes batas ukuran multipart (foto lapangan dari HP)
const maxUploadBytes = 10 << 20

// GET /lokasi
func (r *Router) handleLokasiList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.katalogSvc.ListLokasi(req.Context())
	if err != nil {
		return err
	}
	return respond(w, list)
}

// GET /lokasi/{id}
func (r *Router) handleLokasiGet(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateID(id); err != nil {
		return badRequest(err.Error())
	}
	l, err := r.katalogSvc.GetLokasi(req.Context(), domlokasi.LokasiID(id))
	if err != nil {
		return err
	}
	return respond(w, l)
}

// POST /lokasi dan PUT /lokasi/{id}
// Body JSON sesuai field lokasi; koordinat format "lat, lon"
func (r *Router) handleLokasiSimpan(w http.ResponseWriter, req *http.Request) error {
	var body struct {
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
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("body JSON tidak valid")
	}
	if strings.TrimSpace(body.Nama) == "" {
		return badRequest("nama lokasi wajib diisi")
	}
	if !appkatalog.ValidKoordinat(body.Koordinat) {
		return badRequest("koordinat harus berformat \"lat, lon\"")
	}
	if !domlokasi.ValidKondisi(body.Kondisi) {
		return badRequest("kondisi tidak dikenal: " + body.Kondisi)
	}

	l, err := r.katalogSvc.SimpanLokasi(req.Context(), appkatalog.LokasiCommand{
		ID:           chi.URLParam(req, "id"), // kosong saat POST
		Nama:         middleware.SanitizeString(body.Nama),
		Koordinat:    body.Koordinat,
		JumlahPohon:  body.JumlahPohon,
		Kerapatan:    body.Kerapatan,
		TinggiRata:   body.TinggiRata,
		DiameterRata: body.DiameterRata,
		Kondisi:      body.Kondisi,
		Luas:         body.Luas,
		Deskripsi:    middleware.SanitizeString(body.Deskripsi),
	})
	if err != nil {
		return err
	}
	return respond(w, l)
}

// DELETE /lokasi/{id}
func (r *Router) handleLokasiHapus(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := r.katalogSvc.HapusLokasi(req.Context(), domlokasi.LokasiID(id)); err != nil {
		return err
	}
	return respond(w, map[string]any{"message": "lokasi dihapus"})
}

// GET /jenis
func (r *Router) handleJenisList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.katalogSvc.ListJenis(req.Context())
	if err != nil {
		return err
	}
	return respond(w, list)
}

// GET /jenis/{id}
func (r *Router) handleJenisGet(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateID(id); err != nil {
		return badRequest(err.Error())
	}
	j, err := r.katalogSvc.GetJenis(req.Context(), domjenis.JenisID(id))
	if err != nil {
		return err
	}
	return respond(w, j)
}

// POST /jenis dan PUT /jenis/{id}
// Multipart bila ada gambar, JSON biasa bila tidak
func (r *Router) handleJenisSimpan(w http.ResponseWriter, req *http.Request) error {
	cmd := appkatalog.JenisCommand{ID: chi.URLParam(req, "id")}

	ct := req.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
			return badRequest("multipart tidak valid")
		}
		cmd.NamaIlmiah = req.FormValue("nama_ilmiah")
		cmd.NamaLokal = req.FormValue("nama_lokal")
		cmd.Deskripsi = req.FormValue("deskripsi")

		if file, header, err := req.FormFile("gambar"); err == nil {
			defer file.Close()
			cmd.Gambar = file
			cmd.GambarNama = header.Filename
			cmd.GambarSize = header.Size
			cmd.ContentType = header.Header.Get("Content-Type")
		}
	} else {
		var body struct {
			NamaIlmiah string `json:"nama_ilmiah"`
			NamaLokal  string `json:"nama_lokal"`
			Deskripsi  string `json:"deskripsi"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			return badRequest("body JSON tidak valid")
		}
		cmd.NamaIlmiah = body.NamaIlmiah
		cmd.NamaLokal = body.NamaLokal
		cmd.Deskripsi = body.Deskripsi
	}

	if strings.TrimSpace(cmd.NamaIlmiah) == "" || strings.TrimSpace(cmd.NamaLokal) == "" {
		return badRequest("nama_ilmiah dan nama_lokal wajib diisi")
	}
	cmd.NamaIlmiah = middleware.SanitizeString(cmd.NamaIlmiah)
	cmd.NamaLokal = middleware.SanitizeString(cmd.NamaLokal)

	j, err := r.katalogSvc.SimpanJenis(req.Context(), cmd)
	if err != nil {
		return err
	}
	return respond(w, j)
}

// DELETE /jenis/{id}
func (r *Router) handleJenisHapus(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := r.katalogSvc.HapusJenis(req.Context(), domjenis.JenisID(id)); err != nil {
		return err
	}
	return respond(w, map[string]any{"message": "jenis dihapus"})
}
