package nlp

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Beli Kopi",
			want:  "beli kopi",
		},
		{
			name:  "strips diacritics",
			input: "Médan café",
			want:  "medan cafe",
		},
		{
			name:  "punctuation becomes a separator",
			input: "kopi, nasi/goreng. teh",
			want:  "kopi nasi goreng teh",
		},
		{
			name:  "collapses whitespace",
			input: "  beli   kopi  ",
			want:  "beli kopi",
		},
		{
			name:  "keeps digits",
			input: "bayar 20.000 kemarin",
			want:  "bayar 20 000 kemarin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
