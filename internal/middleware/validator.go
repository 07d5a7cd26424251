package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

var idRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateID cek format id entitas (uuid atau slug pendek)
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("id tidak boleh kosong")
	}
	if !idRe.MatchString(id) {
		return fmt.Errorf("format id tidak valid")
	}
	return nil
}

// ValidateStatusLaporan cek nilai status laporan
func ValidateStatusLaporan(status string) error {
	switch status {
	case "pending", "valid", "ditolak":
		return nil
	}
	return fmt.Errorf("status tidak dikenal: %s (pilihan: pending, valid, ditolak)", status)
}

// ValidateRole cek role yang boleh register
func ValidateRole(role string) error {
	switch role {
	case "peneliti", "pemerintah":
		return nil
	}
	return fmt.Errorf("role tidak dikenal: %s (pilihan: peneliti, pemerintah)", role)
}

// SanitizeString buang byte null dan karakter kontrol dari input pengguna
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

