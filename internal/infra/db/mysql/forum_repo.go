package mysql

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/jagamangrove/jagamangrove/internal/domain/forum"
)

type ForumRepository struct {
	db *sql.DB
}

func NewForumRepository(db *sql.DB) *ForumRepository {
	return &ForumRepository{db: db}
}

// Save insert pesan baru (pesan forum tidak diedit)
func (r *ForumRepository) Save(ctx context.Context, p *domain.Pesan) error {
	const q = `
INSERT INTO forum_pesan (id, user_id, guest_name, nama, isi, created_at)
VALUES (?,?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q, p.ID, p.UserID, p.GuestName, stringOrDash(p.Nama), p.Isi, p.CreatedAt)
	return err
}

func (r *ForumRepository) Get(ctx context.Context, id domain.PesanID) (*domain.Pesan, error) {
	const q = `
SELECT id, user_id, guest_name, nama, isi, created_at
FROM forum_pesan WHERE id=? LIMIT 1;
`
	var p domain.Pesan
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.UserID, &p.GuestName, &p.Nama, &p.Isi, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ForumRepository) List(ctx context.Context) ([]*domain.Pesan, error) {
	const q = `
SELECT id, user_id, guest_name, nama, isi, created_at
FROM forum_pesan ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Pesan
	for rows.Next() {
		var p domain.Pesan
		if err := rows.Scan(&p.ID, &p.UserID, &p.GuestName, &p.Nama, &p.Isi, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *ForumRepository) Delete(ctx context.Context, id domain.PesanID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM forum_pesan WHERE id=?;`, id)
	return err
}
