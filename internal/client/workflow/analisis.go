// Package workflow alur analisis AI sampai keputusan pemerintah
// dalam satu layar linier: jalankan analisis, tampilkan hasil,
// buka modal keputusan, kirim. Kegagalan di tahap mana pun tidak
// mengubah state tahap sebelumnya.
package workflow

import (
	"context"
	"strconv"
	"strings"

	"github.com/jagamangrove/jagamangrove/internal/client/api"
	"github.com/jagamangrove/jagamangrove/internal/client/resource"
	"github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	"github.com/jagamangrove/jagamangrove/internal/domain/keputusan"
)

type Tahap int

const (
	TahapAwal Tahap = iota
	TahapHasil
	TahapModal
	TahapSelesai
)

// Alur state satu sesi analisis laporan
type Alur struct {
	API *api.Client

	tahap     Tahap
	analisis  analisis.Analisis
	keputusan keputusan.Keputusan
	errMsg    string
}

func (a *Alur) Tahap() Tahap                   { return a.tahap }
func (a *Alur) Analisis() analisis.Analisis    { return a.analisis }
func (a *Alur) Keputusan() keputusan.Keputusan { return a.keputusan }
func (a *Alur) Err() string                    { return a.errMsg }

// Analyze jalankan analisis AI; sukses pindah ke TahapHasil
func (a *Alur) Analyze(ctx context.Context, laporanID string) error {
	hasil, err := a.API.AnalyzeLaporan(ctx, laporanID)
	if err != nil {
		a.errMsg = err.Error()
		return err
	}
	a.analisis = hasil
	a.tahap = TahapHasil
	a.errMsg = ""
	return nil
}

// BukaModal siapkan draft keputusan, tindakan terisi dari
// rekomendasi AI supaya tinggal disunting
func (a *Alur) BukaModal() resource.KeputusanDraft {
	if a.tahap != TahapHasil {
		return resource.KeputusanDraft{}
	}
	a.tahap = TahapModal
	return resource.KeputusanDraft{
		AnalisisID:          string(a.analisis.ID),
		TindakanYangDiambil: a.analisis.TindakanRekomendasi,
	}
}

// TutupModal batal tanpa kehilangan hasil analisis
func (a *Alur) TutupModal() {
	if a.tahap == TahapModal {
		a.tahap = TahapHasil
	}
}

// KirimKeputusan validasi lalu kirim; gagal tetap di modal
func (a *Alur) KirimKeputusan(ctx context.Context, d resource.KeputusanDraft) error {
	if d.AnalisisID == "" {
		d.AnalisisID = string(a.analisis.ID)
	}
	if err := resource.ValidateKeputusan(d); err != nil {
		a.errMsg = err.Error()
		return err
	}

	in := api.KeputusanInput{
		AnalisisID:          d.AnalisisID,
		TindakanYangDiambil: d.TindakanYangDiambil,
		TanggalMulai:        strings.TrimSpace(d.TanggalMulai),
		TanggalSelesai:      strings.TrimSpace(d.TanggalSelesai),
		Catatan:             d.Catatan,
	}
	if s := strings.TrimSpace(d.Anggaran); s != "" {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			a.errMsg = "anggaran harus berupa angka"
			return err
		}
		in.Anggaran = &n
	}

	k, err := a.API.BuatKeputusan(ctx, in)
	if err != nil {
		a.errMsg = err.Error()
		return err
	}
	a.keputusan = k
	a.tahap = TahapSelesai
	a.errMsg = ""
	return nil
}

// Reset mulai sesi baru untuk laporan lain
func (a *Alur) Reset() {
	*a = Alur{API: a.API}
}
