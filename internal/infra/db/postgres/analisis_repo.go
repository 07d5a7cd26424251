package postgres

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/jagamangrove/jagamangrove/internal/domain/analisis"
)

// AnalisisRepository varian Postgres
type AnalisisRepository struct {
	db *sql.DB
}

func NewAnalisisRepository(db *sql.DB) *AnalisisRepository {
	return &AnalisisRepository{db: db}
}

const analisisCols = `id, laporan_id, klasifikasi_kondisi, penyebab_kerusakan,
       skor_keyakinan, tingkat_urgensi, tindakan_rekomendasi, created_at`

func (r *AnalisisRepository) Save(ctx context.Context, a *domain.Analisis) error {
	const q = `
INSERT INTO analisis
(id, laporan_id, klasifikasi_kondisi, penyebab_kerusakan,
 skor_keyakinan, tingkat_urgensi, tindakan_rekomendasi, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8);
`
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.LaporanID, stringOrDash(a.KlasifikasiKondisi), a.PenyebabKerusakan,
		a.SkorKeyakinan, a.TingkatUrgensi, a.TindakanRekomendasi, a.CreatedAt,
	)
	return err
}

func (r *AnalisisRepository) Get(ctx context.Context, id domain.AnalisisID) (*domain.Analisis, error) {
	const q = `SELECT ` + analisisCols + ` FROM analisis WHERE id=$1 LIMIT 1;`
	var a domain.Analisis
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.LaporanID, &a.KlasifikasiKondisi, &a.PenyebabKerusakan,
		&a.SkorKeyakinan, &a.TingkatUrgensi, &a.TindakanRekomendasi, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AnalisisRepository) List(ctx context.Context) ([]*domain.Analisis, error) {
	const q = `SELECT ` + analisisCols + ` FROM analisis ORDER BY created_at DESC;`
	return r.queryList(ctx, q)
}

func (r *AnalisisRepository) ListByLaporan(ctx context.Context, laporanID string) ([]*domain.Analisis, error) {
	const q = `SELECT ` + analisisCols + ` FROM analisis WHERE laporan_id=$1 ORDER BY created_at DESC;`
	return r.queryList(ctx, q, laporanID)
}

func (r *AnalisisRepository) queryList(ctx context.Context, q string, args ...any) ([]*domain.Analisis, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Analisis
	for rows.Next() {
		var a domain.Analisis
		if err := rows.Scan(
			&a.ID, &a.LaporanID, &a.KlasifikasiKondisi, &a.PenyebabKerusakan,
			&a.SkorKeyakinan, &a.TingkatUrgensi, &a.TindakanRekomendasi, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
