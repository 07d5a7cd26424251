package httpserver

import (
	"encoding/json"
	"net/http"

	appauth "github.com/jagamangrove/jagamangrove/internal/application/auth"
	domusers "github.com/jagamangrove/jagamangrove/internal/domain/users"
	"github.com/jagamangrove/jagamangrove/internal/middleware"
)

// POST /login
// Body: {"username","password"} → {"token","user":{...}}
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("body JSON tidak valid")
	}
	if body.Username == "" || body.Password == "" {
		return badRequest("username dan password wajib diisi")
	}

	token, user, err := r.authSvc.Login(req.Context(), body.Username, body.Password)
	if err != nil {
		return err
	}
	return respond(w, map[string]any{"token": token, "user": user})
}

// POST /register
// Body: {"username","password","nama_lengkap","role"}
func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		NamaLengkap string `json:"nama_lengkap"`
		Role        string `json:"role"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("body JSON tidak valid")
	}
	if err := middleware.ValidateRole(body.Role); err != nil {
		return badRequest(err.Error())
	}
	if body.Username == "" || body.Password == "" || body.NamaLengkap == "" {
		return badRequest("username, password, dan nama_lengkap wajib diisi")
	}

	user, err := r.authSvc.Register(req.Context(), appauth.RegisterCommand{
		Username:    middleware.SanitizeString(body.Username),
		Password:    body.Password,
		NamaLengkap: middleware.SanitizeString(body.NamaLengkap),
		Role:        body.Role,
	})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, user)
	return nil
}

// GET /profile → {"nama_lengkap","role",...}
func (r *Router) handleProfile(w http.ResponseWriter, req *http.Request) error {
	id := middleware.UserIDFromContext(req.Context())
	user, err := r.authSvc.Profile(req.Context(), domusers.UserID(id))
	if err != nil {
		return err
	}
	return respond(w, user)
}
