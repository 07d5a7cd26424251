package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jagamangrove/jagamangrove/internal/application"
	"github.com/jagamangrove/jagamangrove/internal/domain/users"
)

// Service implements use-cases untuk akun dan token
type Service struct {
	Repo     users.Repository
	Secret   []byte
	ExpHours int
	Clock    application.Clock
}

type RegisterCommand struct {
	Username    string
	Password    string
	NamaLengkap string
	Role        string
}

// Claims isi token bearer
type Claims struct {
	NamaLengkap string `json:"nama_lengkap"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// Register buat akun peneliti/pemerintah
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*users.User, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || strings.TrimSpace(cmd.Password) == "" || strings.TrimSpace(cmd.NamaLengkap) == "" {
		return nil, fmt.Errorf("username, password, dan nama_lengkap wajib diisi")
	}
	if !users.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("role tidak dikenal: %s (pilihan: peneliti, pemerintah)", cmd.Role)
	}
	if existing, err := s.Repo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, users.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &users.User{
		ID:           users.UserID(uuid.New().String()),
		Username:     username,
		PasswordHash: string(hash),
		NamaLengkap:  strings.TrimSpace(cmd.NamaLengkap),
		Role:         users.Role(cmd.Role),
		CreatedAt:    s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifikasi password lalu terbitkan token bearer
func (s *Service) Login(ctx context.Context, username, password string) (string, *users.User, error) {
	u, err := s.Repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", nil, users.ErrBadCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, users.ErrBadCredentials
	}

	now := s.Clock.Now()
	claims := Claims{
		NamaLengkap: u.NamaLengkap,
		Role:        string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.ExpHours) * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Profile ambil profil pemilik token
func (s *Service) Profile(ctx context.Context, id users.UserID) (*users.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// ParseToken validasi token dan kembalikan claims-nya
func (s *Service) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
