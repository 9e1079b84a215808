package nlp

import (
	"strings"
	"testing"
	"time"
)

func TestIsoFromDayFirst(t *testing.T) {
	tests := []struct {
		name  string
		day   int
		month int
		year  int
		want  string
	}{
		{name: "full year", day: 12, month: 5, year: 2022, want: "2022-05-12T05:00:00Z"},
		{name: "two digit year", day: 1, month: 1, year: 24, want: "2024-01-01T05:00:00Z"},
		{name: "independence day", day: 17, month: 8, year: 2024, want: "2024-08-17T05:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsoFromDayFirst(tt.day, tt.month, tt.year)
			if got != tt.want {
				t.Errorf("IsoFromDayFirst(%d, %d, %d) = %q, want %q", tt.day, tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestIsoFromDayFirstDefaultsYear(t *testing.T) {
	got := IsoFromDayFirst(5, 3, 0)
	wantPrefix := JakartaNow().Format("2006")
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("IsoFromDayFirst with zero year = %q, want year %s", got, wantPrefix)
	}
}

func TestDetectDateIdiom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{name: "numeric slash date", input: "makan siang 12/05/2022 20 ribu", want: "2022-05-12T05:00:00Z", found: true},
		{name: "numeric dash date", input: "bayar kos 01-09-2025", want: "2025-09-01T05:00:00Z", found: true},
		{name: "month name date", input: "beli kado 17 agustus 2024", want: "2024-08-17T05:00:00Z", found: true},
		{name: "month abbreviation", input: "servis motor 3 okt 2023", want: "2023-10-03T05:00:00Z", found: true},
		{name: "no idiom", input: "beli kopi 20 ribu", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := DetectDateIdiom(tt.input)
			if found != tt.found {
				t.Fatalf("DetectDateIdiom(%q) found = %v, want %v", tt.input, found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("DetectDateIdiom(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectDateIdiomRelative(t *testing.T) {
	iso, found := DetectDateIdiom("kemarin beli kopi 20 ribu")
	if !found {
		t.Fatal("expected kemarin to be detected")
	}
	if iso != IsoJakartaDaysAgo(1) {
		t.Errorf("kemarin = %q, want %q", iso, IsoJakartaDaysAgo(1))
	}

	iso, found = DetectDateIdiom("3 hari yang lalu bayar parkir")
	if !found {
		t.Fatal("expected relative days to be detected")
	}
	if iso != IsoJakartaDaysAgo(3) {
		t.Errorf("3 hari yang lalu = %q, want %q", iso, IsoJakartaDaysAgo(3))
	}
}

// The relative phrase is more explicit than an ambiguous numeric date, so it
// wins when both appear.
func TestDetectDateIdiomPrecedence(t *testing.T) {
	iso, found := DetectDateIdiom("kemarin transfer 12/05/2022")
	if !found {
		t.Fatal("expected an idiom")
	}
	if iso != IsoJakartaDaysAgo(1) {
		t.Errorf("got %q, want the kemarin date %q", iso, IsoJakartaDaysAgo(1))
	}
}

func TestIsoTimestampsAnchorAtNoonJakarta(t *testing.T) {
	parsed, err := time.Parse(time.RFC3339, IsoJakartaDaysAgo(1))
	if err != nil {
		t.Fatalf("unparseable timestamp: %v", err)
	}
	if parsed.Hour() != 5 {
		t.Errorf("UTC hour = %d, want 5 (noon WIB)", parsed.Hour())
	}
}

func TestStripDateExpressions(t *testing.T) {
	got := StripDateExpressions("makan siang 12/05/2022 20 ribu")
	if strings.Contains(got, "2022") {
		t.Errorf("year survived stripping: %q", got)
	}
	if !strings.Contains(got, "20 ribu") {
		t.Errorf("amount did not survive stripping: %q", got)
	}
}
