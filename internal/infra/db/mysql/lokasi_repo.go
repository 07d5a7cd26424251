package mysql

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

type LokasiRepository struct {
	db *sql.DB
}

func NewLokasiRepository(db *sql.DB) *LokasiRepository {
	return &LokasiRepository{db: db}
}

const lokasiCols = `id, nama, koordinat, jumlah_pohon, kerapatan, tinggi_rata,
       diameter_rata, kondisi, luas, deskripsi, tanggal_input`

// Save insert/update Lokasi
func (r *LokasiRepository) Save(ctx context.Context, l *domain.Lokasi) error {
	const q = `
INSERT INTO lokasi
(id, nama, koordinat, jumlah_pohon, kerapatan, tinggi_rata,
 diameter_rata, kondisi, luas, deskripsi, tanggal_input)
VALUES (?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 nama=VALUES(nama), koordinat=VALUES(koordinat),
 jumlah_pohon=VALUES(jumlah_pohon), kerapatan=VALUES(kerapatan),
 tinggi_rata=VALUES(tinggi_rata), diameter_rata=VALUES(diameter_rata),
 kondisi=VALUES(kondisi), luas=VALUES(luas), deskripsi=VALUES(deskripsi);
`
	_, err := r.db.ExecContext(ctx, q,
		l.ID, stringOrDash(l.Nama), l.Koordinat,
		l.JumlahPohon, l.Kerapatan, l.TinggiRata, l.DiameterRata,
		l.Kondisi, l.Luas, l.Deskripsi, l.TanggalInput,
	)
	return err
}

func (r *LokasiRepository) Get(ctx context.Context, id domain.LokasiID) (*domain.Lokasi, error) {
	const q = `SELECT ` + lokasiCols + ` FROM lokasi WHERE id=? LIMIT 1;`
	var l domain.Lokasi
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&l.ID, &l.Nama, &l.Koordinat, &l.JumlahPohon, &l.Kerapatan,
		&l.TinggiRata, &l.DiameterRata, &l.Kondisi, &l.Luas, &l.Deskripsi, &l.TanggalInput,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LokasiRepository) List(ctx context.Context) ([]*domain.Lokasi, error) {
	const q = `SELECT ` + lokasiCols + ` FROM lokasi ORDER BY tanggal_input DESC;`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Lokasi
	for rows.Next() {
		var l domain.Lokasi
		if err := rows.Scan(
			&l.ID, &l.Nama, &l.Koordinat, &l.JumlahPohon, &l.Kerapatan,
			&l.TinggiRata, &l.DiameterRata, &l.Kondisi, &l.Luas, &l.Deskripsi, &l.TanggalInput,
		); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func (r *LokasiRepository) Delete(ctx context.Context, id domain.LokasiID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lokasi WHERE id=?;`, id)
	return err
}

func (r *LokasiRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lokasi;`).Scan(&n)
	return n, err
}
