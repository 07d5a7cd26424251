package analisis

import "errors"

// ErrQuotaExceeded penyedia AI membalas error kuota/limit (HTTP 429 dan sejenisnya)
var ErrQuotaExceeded = errors.New("kuota AI habis")
