package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jagamangrove/jagamangrove/internal/client/api"
	"github.com/jagamangrove/jagamangrove/internal/client/display"
	"github.com/jagamangrove/jagamangrove/internal/client/localstore"
	"github.com/jagamangrove/jagamangrove/internal/client/resource"
	"github.com/jagamangrove/jagamangrove/internal/client/workflow"
	"github.com/jagamangrove/jagamangrove/internal/config"
	"github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	"github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
)

// Aplikasi lapangan JagaMangrove versi terminal. Menu yang tampil
// mengikuti kapabilitas role, sama seperti versi mobile.

type app struct {
	api *api.Client
	in  *bufio.Scanner
}

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	statePath := cfg.Client.StatePath
	if statePath == "" {
		home, _ := os.UserHomeDir()
		statePath = filepath.Join(home, ".jagamangrove", "state.json")
	}
	store, err := localstore.NewFileStore(statePath)
	if err != nil {
		log.Fatalf("localstore: %v", err)
	}

	a := &app{
		api: api.NewClient(cfg.Client.BaseURL, cfg.Client.ImageBaseURL, store),
		in:  bufio.NewScanner(os.Stdin),
	}
	a.jalankan(context.Background())
}

func (a *app) jalankan(ctx context.Context) {
	fmt.Println("JagaMangrove - pemantauan mangrove partisipatif")
	for {
		role := a.api.Role()
		a.cetakMenu(role)
		pilihan := a.tanya("> ")
		switch pilihan {
		case "1":
			a.layarLokasi(ctx, role)
		case "2":
			a.layarJenis(ctx, role)
		case "3":
			a.layarLaporan(ctx, role)
		case "4":
			a.layarForum(ctx, role)
		case "5":
			a.layarChat(ctx)
		case "6":
			a.layarStatistik(ctx)
		case "7":
			if a.api.SudahLogin() {
				a.layarProfil(ctx)
			} else {
				a.layarLogin(ctx)
			}
		case "8":
			if role == "pemerintah" {
				a.layarKeputusan(ctx)
				continue
			}
			fallthrough
		case "q", "":
			return
		default:
			fmt.Println("pilihan tidak dikenal")
		}
	}
}

func (a *app) cetakMenu(role string) {
	fmt.Println()
	fmt.Println("[1] Lokasi  [2] Jenis mangrove  [3] Laporan  [4] Forum")
	fmt.Println("[5] Tanya asisten  [6] Statistik")
	if a.api.SudahLogin() {
		fmt.Println("[7] Profil / logout")
	} else {
		fmt.Println("[7] Masuk / daftar")
	}
	if role == "pemerintah" {
		fmt.Println("[8] Keputusan")
	}
	fmt.Println("[q] Keluar")
}

func (a *app) tanya(prompt string) string {
	fmt.Print(prompt)
	if !a.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) konfirmasi(prompt string) bool {
	return a.tanya(prompt+" (y/t) ") == "y"
}

// --- auth ---

func (a *app) layarLogin(ctx context.Context) {
	switch a.tanya("[1] Masuk  [2] Daftar  [lain] batal > ") {
	case "1":
		username := a.tanya("username: ")
		password := a.tanya("password: ")
		u, err := a.api.Login(ctx, username, password)
		if err != nil {
			fmt.Println("gagal:", err)
			return
		}
		fmt.Printf("selamat datang, %s (%s)\n", u.NamaLengkap, u.Role)
	case "2":
		username := a.tanya("username: ")
		password := a.tanya("password: ")
		nama := a.tanya("nama lengkap: ")
		role := a.tanya("role (peneliti/pemerintah): ")
		if _, err := a.api.Register(ctx, username, password, nama, role); err != nil {
			fmt.Println("gagal:", err)
			return
		}
		fmt.Println("akun dibuat, silakan masuk")
	}
}

func (a *app) layarProfil(ctx context.Context) {
	u, err := a.api.Profile(ctx)
	if err != nil {
		fmt.Println("gagal:", err)
		return
	}
	fmt.Printf("%s | %s | %s\n", u.NamaLengkap, u.Username, u.Role)
	if a.konfirmasi("keluar dari akun?") {
		if err := a.api.Logout(); err != nil {
			fmt.Println("gagal:", err)
		}
	}
}

// --- katalog ---

func (a *app) layarLokasi(ctx context.Context, role string) {
	list := &resource.List[lokasi.Lokasi]{Fetch: a.api.ListLokasi, Caps: resource.LokasiCaps(role)}
	list.Load(ctx)
	if list.Err() != "" {
		fmt.Println("gagal:", list.Err())
	}
	for i, l := range list.Items() {
		b := display.KondisiBadge(l.Kondisi)
		fmt.Printf("%2d. %s [%s] %s pohon\n", i+1, l.Nama, b.Label, display.FormatRibuan(l.JumlahPohon))
	}
	r := display.HitungKondisi(list.Items())
	fmt.Printf("%d titik: %d baik, %d sedang, %d buruk\n", r.Total, r.Baik, r.Sedang, r.Buruk)

	if !list.Caps.CanCreate {
		return
	}
	if !a.konfirmasi("tambah lokasi baru?") {
		return
	}
	form := &resource.Form[resource.LokasiDraft]{
		Validate: resource.ValidateLokasi,
		Create: func(ctx context.Context, d resource.LokasiDraft) error {
			_, err := a.api.CreateLokasi(ctx, lokasiInput(d))
			return err
		},
	}
	form.Set(func(d *resource.LokasiDraft) {
		d.Nama = a.tanya("nama: ")
		d.Koordinat = a.tanya("koordinat (lat, lon): ")
		d.Kondisi = a.tanya("kondisi (baik/sedang/buruk): ")
		d.JumlahPohon, _ = strconv.Atoi(a.tanya("jumlah pohon: "))
		d.Deskripsi = a.tanya("deskripsi: ")
	})
	if err := form.Submit(ctx, func() { fmt.Println("lokasi tersimpan") }); err != nil {
		fmt.Println("gagal:", err)
	}
}

func lokasiInput(d resource.LokasiDraft) api.LokasiInput {
	return api.LokasiInput{
		Nama:         d.Nama,
		Koordinat:    d.Koordinat,
		JumlahPohon:  d.JumlahPohon,
		Kerapatan:    d.Kerapatan,
		TinggiRata:   d.TinggiRata,
		DiameterRata: d.DiameterRata,
		Kondisi:      d.Kondisi,
		Luas:         d.Luas,
		Deskripsi:    d.Deskripsi,
	}
}

func (a *app) layarJenis(ctx context.Context, role string) {
	list, err := a.api.ListJenis(ctx)
	if err != nil {
		fmt.Println("gagal:", err)
		return
	}
	for i, j := range list {
		fmt.Printf("%2d. %s (%s)\n", i+1, j.NamaLokal, j.NamaIlmiah)
		if j.Deskripsi != "" {
			fmt.Println("    " + display.Truncate(j.Deskripsi, 80))
		}
	}
	caps := resource.JenisCaps(role)
	if !caps.CanCreate || !a.konfirmasi("tambah jenis baru?") {
		return
	}
	in := api.JenisInput{
		NamaIlmiah: a.tanya("nama ilmiah: "),
		NamaLokal:  a.tanya("nama lokal: "),
		Deskripsi:  a.tanya("deskripsi: "),
	}
	if path := a.tanya("path gambar (kosongkan bila tidak ada): "); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Println("gagal:", err)
			return
		}
		defer f.Close()
		in.Gambar = f
		in.GambarNama = filepath.Base(path)
	}
	if _, err := a.api.CreateJenis(ctx, in); err != nil {
		fmt.Println("gagal:", err)
		return
	}
	fmt.Println("jenis tersimpan")
}

// --- laporan ---

func (a *app) layarLaporan(ctx context.Context, role string) {
	caps := resource.LaporanCaps(role)
	list := &resource.List[laporan.Laporan]{Caps: caps}
	if caps.CanEdit {
		list.Fetch = a.api.ListLaporan
	} else {
		// warga hanya melihat laporan yang sudah divalidasi
		list.Fetch = a.api.ListLaporanValid
	}
	list.Load(ctx)
	if list.Err() != "" {
		fmt.Println("gagal:", list.Err())
	}
	for i, l := range list.Items() {
		b := display.StatusBadge(l.Status)
		fmt.Printf("%2d. [%s] %s - %s (%s)\n", i+1, b.Label, l.NamaLokasi, l.JenisLaporan,
			display.FormatTanggal(l.CreatedAt))
		fmt.Println("    " + display.Truncate(l.IsiLaporan, 80))
	}

	switch {
	case caps.CanEdit && a.konfirmasi("ubah status laporan?"):
		id := a.tanya("id laporan: ")
		status := a.tanya("status baru (pending/valid/ditolak): ")
		err := list.Mutate(ctx, func(ctx context.Context) error {
			return a.api.UpdateStatusLaporan(ctx, id, status)
		})
		if err != nil {
			fmt.Println("gagal:", err)
		}
		if role == "pemerintah" && a.konfirmasi("jalankan analisis AI untuk laporan ini?") {
			a.layarAnalisis(ctx, id)
		}
	case a.konfirmasi("kirim laporan baru?"):
		a.formLaporan(ctx)
	}
}

func (a *app) formLaporan(ctx context.Context) {
	form := &resource.Form[resource.LaporanDraft]{
		Validate: resource.ValidateLaporan,
		Create: func(ctx context.Context, d resource.LaporanDraft) error {
			in := api.LaporanInput{
				LokasiID:     d.LokasiID,
				JenisLaporan: d.JenisLaporan,
				IsiLaporan:   d.IsiLaporan,
			}
			if d.FotoPath != "" {
				f, err := os.Open(d.FotoPath)
				if err != nil {
					return err
				}
				defer f.Close()
				in.Foto = f
				in.FotoNama = filepath.Base(d.FotoPath)
			}
			_, err := a.api.SubmitLaporan(ctx, in)
			return err
		},
	}
	form.Set(func(d *resource.LaporanDraft) {
		d.LokasiID = a.tanya("id lokasi: ")
		d.JenisLaporan = a.tanya("jenis laporan (kerusakan/penanaman/dll): ")
		d.IsiLaporan = a.tanya("isi laporan: ")
		d.FotoPath = a.tanya("path foto (kosongkan bila tidak ada): ")
	})
	if err := form.Submit(ctx, func() { fmt.Println("laporan terkirim, menunggu validasi") }); err != nil {
		fmt.Println("gagal:", err)
	}
}

// --- analisis & keputusan ---

func (a *app) layarAnalisis(ctx context.Context, laporanID string) {
	alur := &workflow.Alur{API: a.api}
	if err := alur.Analyze(ctx, laporanID); err != nil {
		fmt.Println("gagal:", alur.Err())
		return
	}
	h := alur.Analisis()
	b := display.UrgensiBadge(h.TingkatUrgensi)
	fmt.Printf("kondisi   : %s\n", h.KlasifikasiKondisi)
	fmt.Printf("penyebab  : %s\n", h.PenyebabKerusakan)
	fmt.Printf("keyakinan : %d%%\n", display.SkorPersen(h.SkorKeyakinan))
	fmt.Printf("urgensi   : %s\n", b.Label)
	fmt.Printf("saran     : %s\n", h.TindakanRekomendasi)

	if a.api.Role() != "pemerintah" || !a.konfirmasi("buat keputusan dari analisis ini?") {
		return
	}
	d := alur.BukaModal()
	fmt.Println("tindakan (enter = pakai saran AI):", display.Truncate(d.TindakanYangDiambil, 60))
	if t := a.tanya("tindakan: "); t != "" {
		d.TindakanYangDiambil = t
	}
	d.Anggaran = a.tanya("anggaran (kosongkan bila belum ada): ")
	d.TanggalMulai = a.tanya("tanggal mulai (YYYY-MM-DD, opsional): ")
	d.Catatan = a.tanya("catatan: ")
	if err := alur.KirimKeputusan(ctx, d); err != nil {
		fmt.Println("gagal:", alur.Err())
		return
	}
	fmt.Println("keputusan tercatat:", alur.Keputusan().ID)
}

func (a *app) layarKeputusan(ctx context.Context) {
	list, err := a.api.ListKeputusan(ctx)
	if err != nil {
		fmt.Println("gagal:", err)
		return
	}
	for i, k := range list {
		fmt.Printf("%2d. %s | %s | %s\n", i+1,
			display.Truncate(k.TindakanYangDiambil, 50),
			display.FormatAnggaran(k.Anggaran), k.Status)
	}
}

// --- forum & chat ---

func (a *app) layarForum(ctx context.Context, role string) {
	pesan, err := a.api.ListForum(ctx)
	if err != nil {
		fmt.Println("gagal:", err)
		return
	}
	for _, p := range pesan {
		fmt.Printf("[%s] %s: %s\n", display.TimeAgo(p.CreatedAt, time.Now()), p.Nama, p.Isi)
	}

	caps := resource.ForumCaps(role)
	if caps.CanDelete && a.konfirmasi("hapus pesan?") {
		if err := a.api.HapusForum(ctx, a.tanya("id pesan: ")); err != nil {
			fmt.Println("gagal:", err)
		}
		return
	}
	if !a.konfirmasi("kirim pesan?") {
		return
	}
	if !a.api.SudahLogin() {
		if nama := a.tanya("nama Anda: "); nama != "" {
			if err := a.api.SetGuestName(nama); err != nil {
				fmt.Println("gagal:", err)
				return
			}
		}
	}
	if _, err := a.api.KirimForum(ctx, a.tanya("pesan: ")); err != nil {
		fmt.Println("gagal:", err)
	}
}

func (a *app) layarChat(ctx context.Context) {
	pertanyaan := a.tanya("tanya asisten mangrove: ")
	if pertanyaan == "" {
		return
	}
	jawaban, err := a.api.Chat(ctx, pertanyaan)
	if err != nil {
		fmt.Println("gagal:", err)
		return
	}
	fmt.Println(jawaban)
}

// --- statistik ---

func (a *app) layarStatistik(ctx context.Context) {
	role := a.api.Role()
	var daftar []laporan.Laporan
	var err error
	if resource.LaporanCaps(role).CanEdit {
		daftar, err = a.api.ListLaporan(ctx)
	} else {
		daftar, err = a.api.ListLaporanValid(ctx)
	}
	if err != nil {
		fmt.Println("gagal:", err)
		return
	}

	// angka laporan dihitung dari daftar yang baru diambil, bukan
	// dari endpoint statistik, supaya cocok dengan layar laporan
	s := display.HitungStatus(daftar)
	fmt.Printf("laporan : %d total, %d menunggu, %d valid, %d ditolak\n",
		s.Total, s.Pending, s.Valid, s.Ditolak)
	for _, baris := range display.TopJenisLaporan(daftar, 3) {
		fmt.Printf("  %-20s %d laporan\n", baris.Jenis, baris.Jumlah)
	}

	srv, err := a.api.GetStatistik(ctx)
	if err != nil {
		fmt.Println("gagal:", err)
		return
	}
	fmt.Printf("lokasi  : %s titik pantau\n", display.FormatRibuan(srv.TotalLokasi))
	fmt.Printf("jenis   : %s spesies tercatat\n", display.FormatRibuan(srv.TotalJenis))
}
