package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	domain "github.com/jagamangrove/jagamangrove/internal/domain/keputusan"
)

type KeputusanRepository struct {
	db *sql.DB
}

func NewKeputusanRepository(db *sql.DB) *KeputusanRepository {
	return &KeputusanRepository{db: db}
}

const keputusanCols = `id, analisis_id, user_id, tindakan_yang_diambil, anggaran,
       tanggal_mulai, tanggal_selesai, catatan, status, created_at, updated_at`

func (r *KeputusanRepository) Save(ctx context.Context, k *domain.Keputusan) error {
	const q = `
INSERT INTO keputusan
(id, analisis_id, user_id, tindakan_yang_diambil, anggaran,
 tanggal_mulai, tanggal_selesai, catatan, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
ON CONFLICT (id) DO UPDATE SET
 tindakan_yang_diambil=EXCLUDED.tindakan_yang_diambil, anggaran=EXCLUDED.anggaran,
 tanggal_mulai=EXCLUDED.tanggal_mulai, tanggal_selesai=EXCLUDED.tanggal_selesai,
 catatan=EXCLUDED.catatan, status=EXCLUDED.status, updated_at=EXCLUDED.updated_at;
`
	_, err := r.db.ExecContext(ctx, q,
		k.ID, k.AnalisisID, k.UserID, stringOrDash(k.TindakanYangDiambil),
		nullFloat(k.Anggaran), nullTime(k.TanggalMulai), nullTime(k.TanggalSelesai),
		k.Catatan, k.Status, k.CreatedAt, k.UpdatedAt,
	)
	return err
}

func (r *KeputusanRepository) Get(ctx context.Context, id domain.KeputusanID) (*domain.Keputusan, error) {
	const q = `SELECT ` + keputusanCols + ` FROM keputusan WHERE id=$1 LIMIT 1;`
	k, err := scanKeputusan(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return k, nil
}

func (r *KeputusanRepository) List(ctx context.Context) ([]*domain.Keputusan, error) {
	const q = `SELECT ` + keputusanCols + ` FROM keputusan ORDER BY created_at DESC;`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Keputusan
	for rows.Next() {
		k, err := scanKeputusan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *KeputusanRepository) Delete(ctx context.Context, id domain.KeputusanID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM keputusan WHERE id=$1;`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKeputusan(row rowScanner) (*domain.Keputusan, error) {
	var (
		k        domain.Keputusan
		anggaran sql.NullFloat64
		mulai    sql.NullTime
		selesai  sql.NullTime
	)
	if err := row.Scan(
		&k.ID, &k.AnalisisID, &k.UserID, &k.TindakanYangDiambil, &anggaran,
		&mulai, &selesai, &k.Catatan, &k.Status, &k.CreatedAt, &k.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if anggaran.Valid {
		k.Anggaran = &anggaran.Float64
	}
	if mulai.Valid {
		t := mulai.Time
		k.TanggalMulai = &t
	}
	if selesai.Valid {
		t := selesai.Time
		k.TanggalSelesai = &t
	}
	return &k, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
