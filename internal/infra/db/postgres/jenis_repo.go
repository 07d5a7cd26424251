package postgres

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/jagamangrove/jagamangrove/internal/domain/jenis"
)

type JenisRepository struct {
	db *sql.DB
}

func NewJenisRepository(db *sql.DB) *JenisRepository {
	return &JenisRepository{db: db}
}

func (r *JenisRepository) Save(ctx context.Context, j *domain.Jenis) error {
	const q = `
INSERT INTO jenis (id, nama_ilmiah, nama_lokal, deskripsi, gambar, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (id) DO UPDATE SET
 nama_ilmiah=EXCLUDED.nama_ilmiah, nama_lokal=EXCLUDED.nama_lokal,
 deskripsi=EXCLUDED.deskripsi, gambar=EXCLUDED.gambar;
`
	_, err := r.db.ExecContext(ctx, q,
		j.ID, stringOrDash(j.NamaIlmiah), stringOrDash(j.NamaLokal),
		j.Deskripsi, j.Gambar, j.CreatedAt,
	)
	return err
}

func (r *JenisRepository) Get(ctx context.Context, id domain.JenisID) (*domain.Jenis, error) {
	const q = `
SELECT id, nama_ilmiah, nama_lokal, deskripsi, gambar, created_at
FROM jenis WHERE id=$1 LIMIT 1;
`
	var j domain.Jenis
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&j.ID, &j.NamaIlmiah, &j.NamaLokal, &j.Deskripsi, &j.Gambar, &j.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *JenisRepository) List(ctx context.Context) ([]*domain.Jenis, error) {
	const q = `
SELECT id, nama_ilmiah, nama_lokal, deskripsi, gambar, created_at
FROM jenis ORDER BY nama_lokal ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Jenis
	for rows.Next() {
		var j domain.Jenis
		if err := rows.Scan(&j.ID, &j.NamaIlmiah, &j.NamaLokal, &j.Deskripsi, &j.Gambar, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &j)
	}
	return out, rows.Err()
}

func (r *JenisRepository) Delete(ctx context.Context, id domain.JenisID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM jenis WHERE id=$1;`, id)
	return err
}

func (r *JenisRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jenis;`).Scan(&n)
	return n, err
}
