package nlp

import "testing"

func TestExtractFallback(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantOK       bool
		wantAmount   float64
		wantType     string
		wantCategory string
	}{
		{
			name:         "kemarin expense",
			input:        "kemarin beli kopi 20 ribu",
			wantOK:       true,
			wantAmount:   20000,
			wantType:     "expense",
			wantCategory: "Makanan & Minuman",
		},
		{
			name:         "kemarin income",
			input:        "kemarin terima gaji 5 juta",
			wantOK:       true,
			wantAmount:   5000000,
			wantType:     "income",
			wantCategory: "Lainnya",
		},
		{
			name:         "kemarin transport",
			input:        "kemarin isi bensin 50rb",
			wantOK:       true,
			wantAmount:   50000,
			wantType:     "expense",
			wantCategory: "Transportasi",
		},
		{
			name:   "no kemarin",
			input:  "beli kopi 20 ribu",
			wantOK: false,
		},
		{
			name:   "kemarin without amount",
			input:  "kemarin jalan jalan",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractFallback(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractFallback(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Amount != tt.wantAmount {
				t.Errorf("amount = %v, want %v", got.Amount, tt.wantAmount)
			}
			if got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.CreatedAt != IsoJakartaDaysAgo(1) {
				t.Errorf("created_at = %q, want %q", got.CreatedAt, IsoJakartaDaysAgo(1))
			}
			if got.Description == "" {
				t.Error("description is empty")
			}
		})
	}
}
