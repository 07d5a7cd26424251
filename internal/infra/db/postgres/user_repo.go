package postgres

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/jagamangrove/jagamangrove/internal/domain/users"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	const q = `
INSERT INTO users (id, username, password_hash, nama_lengkap, role, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (id) DO UPDATE SET
 password_hash=EXCLUDED.password_hash,
 nama_lengkap=EXCLUDED.nama_lengkap,
 role=EXCLUDED.role;
`
	_, err := r.db.ExecContext(ctx, q,
		u.ID, u.Username, u.PasswordHash, stringOrDash(u.NamaLengkap), u.Role, u.CreatedAt,
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	const q = `
SELECT id, username, password_hash, nama_lengkap, role, created_at
FROM users WHERE id=$1 LIMIT 1;
`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
SELECT id, username, password_hash, nama_lengkap, role, created_at
FROM users WHERE username=$1 LIMIT 1;
`
	return r.scanOne(r.db.QueryRowContext(ctx, q, username))
}

func (r *UserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.NamaLengkap, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
