package prompt

import "fmt"

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are an expert in mangrove ecosystem health assessment. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- klasifikasi_kondisi is a short Indonesian phrase describing the observed condition (e.g. "baik", "rusak ringan", "rusak berat").
- penyebab_kerusakan names the most likely damage cause in Indonesian; use "tidak diketahui" when unclear.
- skor_keyakinan is a number between 0 and 1.
- tingkat_urgensi must be one of: rendah, sedang, tinggi, mendesak.
- tindakan_rekomendasi is one or two concrete Indonesian sentences a field officer can act on.

Schema (example with empty values):
{
  "klasifikasi_kondisi": "<string>",
  "penyebab_kerusakan": "<string>",
  "skor_keyakinan": 0.0,
  "tingkat_urgensi": "<rendah|sedang|tinggi|mendesak>",
  "tindakan_rekomendasi": "<string>"
}`
}

// GetUserPrompt builds a compact user message around the report photo and text.
func GetUserPrompt(fotoURL, jenisLaporan, isiLaporan string) string {
	return fmt.Sprintf(
		"Analyze this mangrove field report and respond with the JSON per schema.\nPhoto URL: %s\nReport type: %s\nReport text: %s",
		fotoURL, jenisLaporan, isiLaporan,
	)
}

// GetChatSystemPrompt directions for the public assistant.
func GetChatSystemPrompt() string {
	return `You are "Asisten Mangrove", a friendly assistant for an Indonesian mangrove conservation program. Answer in Bahasa Indonesia, briefly and practically. Topics: mangrove ecology, planting and care, species identification, and how to use the reporting app. If asked something unrelated, politely steer back to mangrove topics.`
}
