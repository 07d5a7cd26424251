package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	appforum "github.com/jagamangrove/jagamangrove/internal/application/forum"
	domforum "github.com/jagamangrove/jagamangrove/internal/domain/forum"
	"github.com/jagamangrove/jagamangrove/internal/middleware"
)

// GET /forum
func (r *Router) handleForumList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.forumSvc.List(req.Context())
	if err != nil {
		return err
	}
	return respond(w, list)
}

// POST /forum
// Body: {"isi", "guest_name"}; dengan token, guest_name diabaikan
func (r *Router) handleForumKirim(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Isi       string `json:"isi"`
		GuestName string `json:"guest_name"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("body JSON tidak valid")
	}
	if strings.TrimSpace(body.Isi) == "" {
		return badRequest("isi pesan wajib diisi")
	}

	cmd := appforum.KirimCommand{
		UserID:    middleware.UserIDFromContext(req.Context()),
		GuestName: middleware.SanitizeString(body.GuestName),
		Isi:       middleware.SanitizeString(body.Isi),
	}
	if cmd.UserID == "" && cmd.GuestName == "" {
		return badRequest("guest_name wajib diisi untuk pesan tamu")
	}

	p, err := r.forumSvc.Kirim(req.Context(), cmd)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, p)
	return nil
}

// DELETE /forum/{id} hanya pemerintah atau pemilik pesan
func (r *Router) handleForumHapus(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	err := r.forumSvc.Hapus(req.Context(),
		domforum.PesanID(id),
		middleware.UserIDFromContext(req.Context()),
		middleware.RoleFromContext(req.Context()),
	)
	if err != nil {
		return err
	}
	return respond(w, map[string]any{"message": "pesan dihapus"})
}
