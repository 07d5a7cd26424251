package display

import (
	"strings"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"pendek", 10, "pendek"},
		{"pas sepuluh", 11, "pas sepuluh"},
		{"laporan kerusakan mangrove", 7, "laporan..."},
		{"", 5, ""},
	}
	for _, c := range cases {
		got := Truncate(c.in, c.max)
		if got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
		if len([]rune(got)) > c.max+3 {
			t.Errorf("Truncate(%q, %d) panjang %d melebihi max+3", c.in, c.max, len([]rune(got)))
		}
	}
}

func TestTruncateElipsisHanyaSaatTerpotong(t *testing.T) {
	if got := Truncate("abc", 3); strings.HasSuffix(got, "...") {
		t.Errorf("teks pas tidak boleh diberi elipsis, got %q", got)
	}
}

func TestTruncateAmanUntukUnicode(t *testing.T) {
	got := Truncate("pohon bakau di pesisir", 5)
	if got != "pohon..." {
		t.Errorf("got %q", got)
	}
	// rune, bukan byte
	if got := Truncate("éééééé", 3); got != "ééé..." {
		t.Errorf("got %q", got)
	}
}

func TestFormatTanggal(t *testing.T) {
	d := time.Date(2026, time.August, 3, 10, 0, 0, 0, time.UTC)
	if got := FormatTanggal(d); got != "3 Agu 2026" {
		t.Errorf("got %q", got)
	}
	if got := FormatTanggal(time.Time{}); got != "-" {
		t.Errorf("zero time harus \"-\", got %q", got)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		lalu time.Duration
		want string
	}{
		{30 * time.Second, "baru saja"},
		{5 * time.Minute, "5 menit lalu"},
		{3 * time.Hour, "3 jam lalu"},
		{48 * time.Hour, "2 hari lalu"},
	}
	for _, c := range cases {
		if got := TimeAgo(now.Add(-c.lalu), now); got != c.want {
			t.Errorf("TimeAgo(-%v) = %q, want %q", c.lalu, got, c.want)
		}
	}

	// lebih dari sebulan jatuh ke tanggal absolut
	lama := now.AddDate(0, -2, 0)
	if got := TimeAgo(lama, now); got != FormatTanggal(lama) {
		t.Errorf("got %q", got)
	}
}

func TestFormatRibuan(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1.000",
		12500:    "12.500",
		1234567:  "1.234.567",
		-1234567: "-1.234.567",
	}
	for in, want := range cases {
		if got := FormatRibuan(in); got != want {
			t.Errorf("FormatRibuan(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatAnggaran(t *testing.T) {
	if got := FormatAnggaran(nil); got != "-" {
		t.Errorf("nil harus \"-\", got %q", got)
	}
	n := 2500000.0
	if got := FormatAnggaran(&n); got != "Rp 2.500.000" {
		t.Errorf("got %q", got)
	}
}
