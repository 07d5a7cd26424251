package analisis

import "time"

// AnalisisID tipe untuk Analisis
type AnalisisID string

// Urgensi enum
type Urgensi string

const (
	UrgensiRendah   Urgensi = "rendah"
	UrgensiSedang   Urgensi = "sedang"
	UrgensiTinggi   Urgensi = "tinggi"
	UrgensiMendesak Urgensi = "mendesak"
)

// Analisis hasil klasifikasi AI atas sebuah laporan berfoto.
// Immutable setelah dibuat; tidak ada operasi edit.
type Analisis struct {
	ID                  AnalisisID `json:"id"`
	LaporanID           string     `json:"laporan_id"`
	KlasifikasiKondisi  string     `json:"klasifikasi_kondisi"`
	PenyebabKerusakan   string     `json:"penyebab_kerusakan"`
	SkorKeyakinan       float64    `json:"skor_keyakinan"` // rentang [0,1]
	TingkatUrgensi      Urgensi    `json:"tingkat_urgensi"`
	TindakanRekomendasi string     `json:"tindakan_rekomendasi"`
	CreatedAt           time.Time  `json:"created_at"`
}
