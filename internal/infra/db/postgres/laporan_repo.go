package postgres

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/jagamangrove/jagamangrove/internal/domain/laporan"
)

// LaporanRepository varian Postgres; dipilih lewat database.driver=postgres
type LaporanRepository struct {
	db *sql.DB
}

func NewLaporanRepository(db *sql.DB) *LaporanRepository {
	return &LaporanRepository{db: db}
}

const laporanCols = `l.id, l.lokasi_id, COALESCE(lk.nama, ''), l.jenis_laporan,
       l.isi_laporan, l.foto, l.status, l.user_id, l.created_at`

const laporanFrom = ` FROM laporan l LEFT JOIN lokasi lk ON lk.id = l.lokasi_id`

func (r *LaporanRepository) Save(ctx context.Context, l *domain.Laporan) error {
	const q = `
INSERT INTO laporan
(id, lokasi_id, jenis_laporan, isi_laporan, foto, status, user_id, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO UPDATE SET
 jenis_laporan=EXCLUDED.jenis_laporan, isi_laporan=EXCLUDED.isi_laporan,
 foto=EXCLUDED.foto, status=EXCLUDED.status;
`
	status := l.Status
	if status == "" {
		status = domain.StatusPending
	}
	_, err := r.db.ExecContext(ctx, q,
		l.ID, l.LokasiID, stringOrDash(l.JenisLaporan), l.IsiLaporan,
		l.Foto, status, l.UserID, l.CreatedAt,
	)
	return err
}

func (r *LaporanRepository) Get(ctx context.Context, id domain.LaporanID) (*domain.Laporan, error) {
	const q = `SELECT ` + laporanCols + laporanFrom + ` WHERE l.id=$1 LIMIT 1;`
	var l domain.Laporan
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&l.ID, &l.LokasiID, &l.NamaLokasi, &l.JenisLaporan,
		&l.IsiLaporan, &l.Foto, &l.Status, &l.UserID, &l.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LaporanRepository) List(ctx context.Context) ([]*domain.Laporan, error) {
	const q = `SELECT ` + laporanCols + laporanFrom + ` ORDER BY l.created_at DESC;`
	return r.queryList(ctx, q)
}

func (r *LaporanRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Laporan, error) {
	const q = `SELECT ` + laporanCols + laporanFrom + ` WHERE l.status=$1 ORDER BY l.created_at DESC;`
	return r.queryList(ctx, q, status)
}

func (r *LaporanRepository) queryList(ctx context.Context, q string, args ...any) ([]*domain.Laporan, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Laporan
	for rows.Next() {
		var l domain.Laporan
		if err := rows.Scan(
			&l.ID, &l.LokasiID, &l.NamaLokasi, &l.JenisLaporan,
			&l.IsiLaporan, &l.Foto, &l.Status, &l.UserID, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func (r *LaporanRepository) UpdateStatus(ctx context.Context, id domain.LaporanID, status domain.Status) error {
	_, err := r.db.ExecContext(ctx, `UPDATE laporan SET status=$1 WHERE id=$2;`, status, id)
	return err
}

func (r *LaporanRepository) Delete(ctx context.Context, id domain.LaporanID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM laporan WHERE id=$1;`, id)
	return err
}

func (r *LaporanRepository) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	const q = `
SELECT COUNT(*) AS total,
       COALESCE(SUM(CASE WHEN status='pending' THEN 1 ELSE 0 END),0) AS pending,
       COALESCE(SUM(CASE WHEN status='valid' THEN 1 ELSE 0 END),0)   AS valid,
       COALESCE(SUM(CASE WHEN status='ditolak' THEN 1 ELSE 0 END),0) AS ditolak
FROM laporan;
`
	var c domain.StatusCounts
	if err := r.db.QueryRowContext(ctx, q).Scan(&c.Total, &c.Pending, &c.Valid, &c.Ditolak); err != nil {
		return domain.StatusCounts{}, err
	}
	return c, nil
}
