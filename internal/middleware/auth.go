package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jagamangrove/jagamangrove/internal/application/auth"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
	NamaKey   contextKey = "nama_lengkap"
)

// bearerToken ambil token dari header Authorization ("Bearer <token>" atau polos)
func bearerToken(r *http.Request) string {
	raw := r.Header.Get("Authorization")
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
}

func withClaims(ctx context.Context, c *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, c.Subject)
	ctx = context.WithValue(ctx, RoleKey, c.Role)
	return context.WithValue(ctx, NamaKey, c.NamaLengkap)
}

// BearerAuth wajibkan token valid; role kosong berarti semua role login boleh
func BearerAuth(svc *auth.Service, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "missing Authorization header", http.StatusUnauthorized)
				return
			}
			claims, err := svc.ParseToken(token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if len(roles) > 0 {
				allowed := false
				for _, role := range roles {
					if claims.Role == role {
						allowed = true
						break
					}
				}
				if !allowed {
					http.Error(w, "role tidak diizinkan", http.StatusForbidden)
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// OptionalAuth pasang claims bila token ada dan valid; tanpa token tetap lolos.
// Dipakai forum: pesan login tercatat atas nama akun, selain itu tamu.
func OptionalAuth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if claims, err := svc.ParseToken(token); err == nil {
					r = r.WithContext(withClaims(r.Context(), claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext ambil user id dari context, "" bila anonim
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(UserIDKey).(string); ok {
		return v
	}
	return ""
}

// RoleFromContext ambil role dari context, "" bila anonim
func RoleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RoleKey).(string); ok {
		return v
	}
	return ""
}
