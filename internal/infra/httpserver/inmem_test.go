package httpserver

import (
	"context"
	"io"
	"sync"

	"github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	"github.com/jagamangrove/jagamangrove/internal/domain/forum"
	"github.com/jagamangrove/jagamangrove/internal/domain/jenis"
	"github.com/jagamangrove/jagamangrove/internal/domain/keputusan"
	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
	"github.com/jagamangrove/jagamangrove/internal/domain/users"
)

// Repo in-memory untuk test router tanpa database.

type memUsers struct {
	mu   sync.Mutex
	byID map[users.UserID]*users.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[users.UserID]*users.User{}}
}

func (m *memUsers) Save(ctx context.Context, u *users.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id users.UserID) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, users.ErrNotFound
}

func (m *memUsers) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, users.ErrNotFound
}

type memLokasi struct {
	mu   sync.Mutex
	rows []*lokasi.Lokasi
}

func (m *memLokasi) Save(ctx context.Context, l *lokasi.Lokasi) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == l.ID {
			cp := *l
			m.rows[i] = &cp
			return nil
		}
	}
	cp := *l
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memLokasi) Get(ctx context.Context, id lokasi.LokasiID) (*lokasi.Lokasi, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, lokasi.ErrNotFound
}

func (m *memLokasi) List(ctx context.Context) ([]*lokasi.Lokasi, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*lokasi.Lokasi(nil), m.rows...), nil
}

func (m *memLokasi) Delete(ctx context.Context, id lokasi.LokasiID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return lokasi.ErrNotFound
}

func (m *memLokasi) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

type memJenis struct {
	mu   sync.Mutex
	rows []*jenis.Jenis
}

func (m *memJenis) Save(ctx context.Context, j *jenis.Jenis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == j.ID {
			cp := *j
			m.rows[i] = &cp
			return nil
		}
	}
	cp := *j
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memJenis) Get(ctx context.Context, id jenis.JenisID) (*jenis.Jenis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, jenis.ErrNotFound
}

func (m *memJenis) List(ctx context.Context) ([]*jenis.Jenis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*jenis.Jenis(nil), m.rows...), nil
}

func (m *memJenis) Delete(ctx context.Context, id jenis.JenisID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return jenis.ErrNotFound
}

func (m *memJenis) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

type memLaporan struct {
	mu   sync.Mutex
	rows []*laporan.Laporan
}

func (m *memLaporan) Save(ctx context.Context, l *laporan.Laporan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *l
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memLaporan) Get(ctx context.Context, id laporan.LaporanID) (*laporan.Laporan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, laporan.ErrNotFound
}

func (m *memLaporan) List(ctx context.Context) ([]*laporan.Laporan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*laporan.Laporan(nil), m.rows...), nil
}

func (m *memLaporan) ListByStatus(ctx context.Context, status laporan.Status) ([]*laporan.Laporan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*laporan.Laporan
	for _, r := range m.rows {
		if r.Status == status {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memLaporan) UpdateStatus(ctx context.Context, id laporan.LaporanID, status laporan.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return laporan.ErrNotFound
}

func (m *memLaporan) Delete(ctx context.Context, id laporan.LaporanID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return laporan.ErrNotFound
}

func (m *memLaporan) CountByStatus(ctx context.Context) (laporan.StatusCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var c laporan.StatusCounts
	c.Total = len(m.rows)
	for _, r := range m.rows {
		switch r.Status {
		case laporan.StatusPending:
			c.Pending++
		case laporan.StatusValid:
			c.Valid++
		case laporan.StatusDitolak:
			c.Ditolak++
		}
	}
	return c, nil
}

type memForum struct {
	mu   sync.Mutex
	rows []*forum.Pesan
}

func (m *memForum) Save(ctx context.Context, p *forum.Pesan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memForum) Get(ctx context.Context, id forum.PesanID) (*forum.Pesan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, forum.ErrNotFound
}

func (m *memForum) List(ctx context.Context) ([]*forum.Pesan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*forum.Pesan(nil), m.rows...), nil
}

func (m *memForum) Delete(ctx context.Context, id forum.PesanID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return forum.ErrNotFound
}

type memAnalisis struct {
	mu   sync.Mutex
	rows []*analisis.Analisis
}

func (m *memAnalisis) Save(ctx context.Context, a *analisis.Analisis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memAnalisis) Get(ctx context.Context, id analisis.AnalisisID) (*analisis.Analisis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, analisis.ErrNotFound
}

func (m *memAnalisis) List(ctx context.Context) ([]*analisis.Analisis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*analisis.Analisis(nil), m.rows...), nil
}

func (m *memAnalisis) ListByLaporan(ctx context.Context, laporanID string) ([]*analisis.Analisis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*analisis.Analisis
	for _, r := range m.rows {
		if r.LaporanID == laporanID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memKeputusan struct {
	mu   sync.Mutex
	rows []*keputusan.Keputusan
}

func (m *memKeputusan) Save(ctx context.Context, k *keputusan.Keputusan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *k
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memKeputusan) Get(ctx context.Context, id keputusan.KeputusanID) (*keputusan.Keputusan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, keputusan.ErrNotFound
}

func (m *memKeputusan) List(ctx context.Context) ([]*keputusan.Keputusan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*keputusan.Keputusan(nil), m.rows...), nil
}

func (m *memKeputusan) Delete(ctx context.Context, id keputusan.KeputusanID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return keputusan.ErrNotFound
}

// memFoto simpan key yang diupload, isi dibuang
type memFoto struct {
	mu   sync.Mutex
	keys []string
}

func (m *memFoto) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error) {
	if body != nil {
		io.Copy(io.Discard, body)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return key, nil
}

// fakeAI jawaban tetap, bisa dipaksa gagal per test
type fakeAI struct {
	hasil      analisis.Hasil
	analyzeErr error
	jawaban    string
	chatErr    error

	gotFotoURL string
}

func (f *fakeAI) AnalyzeLaporan(ctx context.Context, fotoURL, jenisLaporan, isiLaporan string) (analisis.Hasil, error) {
	f.gotFotoURL = fotoURL
	if f.analyzeErr != nil {
		return analisis.Hasil{}, f.analyzeErr
	}
	return f.hasil, nil
}

func (f *fakeAI) Chat(ctx context.Context, pertanyaan string) (string, error) {
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.jawaban, nil
}
