package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalisis "github.com/jagamangrove/jagamangrove/internal/application/analisis"
	appauth "github.com/jagamangrove/jagamangrove/internal/application/auth"
	appforum "github.com/jagamangrove/jagamangrove/internal/application/forum"
	appkatalog "github.com/jagamangrove/jagamangrove/internal/application/katalog"
	applaporan "github.com/jagamangrove/jagamangrove/internal/application/laporan"
	domanalisis "github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	domforum "github.com/jagamangrove/jagamangrove/internal/domain/forum"
	domjenis "github.com/jagamangrove/jagamangrove/internal/domain/jenis"
	domkeputusan "github.com/jagamangrove/jagamangrove/internal/domain/keputusan"
	domlaporan "github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	domlokasi "github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
	domusers "github.com/jagamangrove/jagamangrove/internal/domain/users"
	"github.com/jagamangrove/jagamangrove/internal/middleware"
)

const (
	rolePeneliti   = string(domusers.RolePeneliti)
	rolePemerintah = string(domusers.RolePemerintah)
)

type Router struct {
	authSvc     *appauth.Service
	katalogSvc  *appkatalog.Service
	laporanSvc  *applaporan.Service
	analisisSvc *appanalisis.Service
	forumSvc    *appforum.Service
}

func NewRouter(
	authSvc *appauth.Service,
	katalogSvc *appkatalog.Service,
	laporanSvc *applaporan.Service,
	analisisSvc *appanalisis.Service,
	forumSvc *appforum.Service,
	health http.HandlerFunc,
) http.Handler {
	r := &Router{
		authSvc:     authSvc,
		katalogSvc:  katalogSvc,
		laporanSvc:  laporanSvc,
		analisisSvc: analisisSvc,
		forumSvc:    forumSvc,
	}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(60, 10))

	if health == nil {
		health = middleware.LivenessHandler
	}
	mux.Get("/health", health)
	mux.Get("/metrics", middleware.MetricsHandler)

	// publik
	mux.Post("/login", r.wrap(r.handleLogin))
	mux.Post("/register", r.wrap(r.handleRegister))
	mux.Post("/chat", r.wrap(r.handleChat))
	mux.Get("/statistik", r.wrap(r.handleStatistik))

	mux.Get("/lokasi", r.wrap(r.handleLokasiList))
	mux.Get("/lokasi/{id}", r.wrap(r.handleLokasiGet))
	mux.Get("/jenis", r.wrap(r.handleJenisList))
	mux.Get("/jenis/{id}", r.wrap(r.handleJenisGet))

	mux.Get("/laporan", r.wrap(r.handleLaporanList))
	mux.Get("/laporan-valid", r.wrap(r.handleLaporanValid))
	mux.Get("/laporan/{id}", r.wrap(r.handleLaporanGet))

	// laporan boleh anonim; bila ada token, laporan tercatat atas nama akun
	mux.With(middleware.OptionalAuth(authSvc)).Post("/laporan", r.wrap(r.handleLaporanSubmit))

	mux.Get("/forum", r.wrap(r.handleForumList))
	mux.With(middleware.OptionalAuth(authSvc)).Post("/forum", r.wrap(r.handleForumKirim))

	// butuh token
	mux.Group(func(g chi.Router) {
		g.Use(middleware.BearerAuth(authSvc))
		g.Get("/profile", r.wrap(r.handleProfile))
		g.Delete("/forum/{id}", r.wrap(r.handleForumHapus))
		g.Post("/laporan/{id}/analyze", r.wrap(r.handleAnalyze))
		g.Get("/analisis", r.wrap(r.handleAnalisisList))
		g.Get("/keputusan", r.wrap(r.handleKeputusanList))
	})

	// katalog hanya peneliti
	mux.Group(func(g chi.Router) {
		g.Use(middleware.BearerAuth(authSvc, rolePeneliti))
		g.Post("/lokasi", r.wrap(r.handleLokasiSimpan))
		g.Put("/lokasi/{id}", r.wrap(r.handleLokasiSimpan))
		g.Delete("/lokasi/{id}", r.wrap(r.handleLokasiHapus))
		g.Post("/jenis", r.wrap(r.handleJenisSimpan))
		g.Put("/jenis/{id}", r.wrap(r.handleJenisSimpan))
		g.Delete("/jenis/{id}", r.wrap(r.handleJenisHapus))
	})

	// moderasi laporan: peneliti dan pemerintah
	mux.Group(func(g chi.Router) {
		g.Use(middleware.BearerAuth(authSvc, rolePeneliti, rolePemerintah))
		g.Put("/laporan/{id}/status", r.wrap(r.handleLaporanStatus))
		g.Delete("/laporan/{id}", r.wrap(r.handleLaporanHapus))
	})

	// keputusan hanya pemerintah
	mux.Group(func(g chi.Router) {
		g.Use(middleware.BearerAuth(authSvc, rolePemerintah))
		g.Post("/keputusan", r.wrap(r.handleKeputusanBuat))
		g.Delete("/keputusan/{id}", r.wrap(r.handleKeputusanHapus))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// errBadRequest menandai error input dari handler supaya wrap membalas 400
type errBadRequest struct{ error }

func badRequest(msg string) error {
	return errBadRequest{errors.New(msg)}
}

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		status := http.StatusInternalServerError
		var reqErr errBadRequest
		switch {
		case errors.As(err, &reqErr):
			status = http.StatusBadRequest
		case errors.Is(err, domlaporan.ErrNotFound),
			errors.Is(err, domlokasi.ErrNotFound),
			errors.Is(err, domjenis.ErrNotFound),
			errors.Is(err, domforum.ErrNotFound),
			errors.Is(err, domanalisis.ErrNotFound),
			errors.Is(err, domkeputusan.ErrNotFound),
			errors.Is(err, domusers.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domusers.ErrBadCredentials):
			status = http.StatusUnauthorized
		case errors.Is(err, domusers.ErrUsernameTaken):
			status = http.StatusConflict
		case errors.Is(err, domforum.ErrBukanPemilik):
			status = http.StatusForbidden
		case errors.Is(err, domlaporan.ErrIsiPendek),
			errors.Is(err, domlaporan.ErrTanpaFoto),
			errors.Is(err, domlaporan.ErrStatusAneh),
			errors.Is(err, domkeputusan.ErrAnalisisKosong):
			status = http.StatusBadRequest
		case errors.Is(err, domanalisis.ErrQuotaExceeded):
			status = http.StatusTooManyRequests
		}

		writeJSON(w, status, map[string]any{"message": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respond(w http.ResponseWriter, v any) error {
	writeJSON(w, http.StatusOK, v)
	return nil
}
