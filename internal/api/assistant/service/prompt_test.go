package assistantService

import (
	"CatatUang/internal/entity"
	"strings"
	"testing"
	"time"
)

func TestTrimMessage(t *testing.T) {
	if got := trimMessage("  beli kopi 20 ribu  "); got != "beli kopi 20 ribu" {
		t.Errorf("trimMessage = %q", got)
	}

	long := strings.Repeat("a", 800)
	if got := trimMessage(long); len(got) != maxMessageLen {
		t.Errorf("len = %d, want %d", len(got), maxMessageLen)
	}

	if got := trimMessage("   "); got != "" {
		t.Errorf("trimMessage(blank) = %q, want empty", got)
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	now := time.Date(2025, time.August, 13, 14, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	prompt := buildExtractionPrompt(now)

	if !strings.Contains(prompt, now.Format(time.RFC3339)) {
		t.Error("prompt is missing the current timestamp")
	}
	for _, category := range []string{
		string(entity.CategoryFoodDrink),
		string(entity.CategoryTransport),
		string(entity.CategoryOther),
	} {
		if !strings.Contains(prompt, category) {
			t.Errorf("prompt is missing category %q", category)
		}
	}
	if !strings.Contains(prompt, "JSON array") {
		t.Error("prompt is missing the output contract")
	}
}

func TestBuildReportPromptIncludesRows(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	now := time.Date(2025, time.August, 13, 14, 30, 0, 0, wib)
	rows := []entity.Transaction{
		{
			Description: "kopi susu",
			Amount:      20000,
			Type:        "expense",
			Category:    string(entity.CategoryFoodDrink),
			CreatedAt:   time.Date(2025, time.August, 12, 12, 0, 0, 0, wib),
		},
	}

	prompt := buildReportPrompt("berapa pengeluaran saya", "bulan ini", rows, now)

	for _, want := range []string{"2025-08-12", "kopi susu", "20000", "bulan ini", "berapa pengeluaran saya"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt is missing %q", want)
		}
	}
}
