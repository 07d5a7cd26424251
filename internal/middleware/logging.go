package middleware

import (
	"log"
	"net/http"
	"time"
)

// statusWriter rekam status dan jumlah byte yang keluar
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// LoggingMiddleware satu baris log per request
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		log.Printf("method=%s path=%s status=%d duration=%s bytes=%d ip=%s",
			r.Method, r.URL.Path, sw.status, time.Since(start), sw.written, r.RemoteAddr)
	})
}
