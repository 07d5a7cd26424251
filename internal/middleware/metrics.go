package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics stores application metrics
type Metrics struct {
	RequestsTotal      uint64
	RequestsInProgress uint64
	RequestsSuccess    uint64
	RequestsFailed     uint64
	LaporanMasuk       uint64
	AnalisisJalan      uint64
	AnalisisGagal      uint64
	StartTime          time.Time
}

var globalMetrics = &Metrics{
	StartTime: time.Now(),
}

// IncrementLaporan catat laporan masuk
func IncrementLaporan() {
	atomic.AddUint64(&globalMetrics.LaporanMasuk, 1)
}

// IncrementAnalisis catat pemanggilan analisis AI
func IncrementAnalisis() {
	atomic.AddUint64(&globalMetrics.AnalisisJalan, 1)
}

// IncrementAnalisisGagal catat analisis yang gagal
func IncrementAnalisisGagal() {
	atomic.AddUint64(&globalMetrics.AnalisisGagal, 1)
}

// MetricsMiddleware hitung request masuk/sukses/gagal
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint64(&globalMetrics.RequestsTotal, 1)
		atomic.AddUint64(&globalMetrics.RequestsInProgress, 1)
		defer atomic.AddUint64(&globalMetrics.RequestsInProgress, ^uint64(0))

		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		if wrapped.status < 500 {
			atomic.AddUint64(&globalMetrics.RequestsSuccess, 1)
		} else {
			atomic.AddUint64(&globalMetrics.RequestsFailed, 1)
		}
	})
}

// MetricsHandler expose snapshot metrik sebagai JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	snapshot := map[string]any{
		"uptime_seconds":       time.Since(globalMetrics.StartTime).Seconds(),
		"requests_total":       atomic.LoadUint64(&globalMetrics.RequestsTotal),
		"requests_in_progress": atomic.LoadUint64(&globalMetrics.RequestsInProgress),
		"requests_success":     atomic.LoadUint64(&globalMetrics.RequestsSuccess),
		"requests_failed":      atomic.LoadUint64(&globalMetrics.RequestsFailed),
		"laporan_masuk":        atomic.LoadUint64(&globalMetrics.LaporanMasuk),
		"analisis_jalan":       atomic.LoadUint64(&globalMetrics.AnalisisJalan),
		"analisis_gagal":       atomic.LoadUint64(&globalMetrics.AnalisisGagal),
		"goroutines":           runtime.NumGoroutine(),
		"heap_alloc_bytes":     mem.HeapAlloc,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
