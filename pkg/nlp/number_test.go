package nlp

import "testing"

func TestParseIndoNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "bare integer", input: "20000", want: 20000, ok: true},
		{name: "thousands separator", input: "50.000", want: 50000, ok: true},
		{name: "million with separators", input: "1.250.000", want: 1250000, ok: true},
		{name: "ribu scale word", input: "20 ribu", want: 20000, ok: true},
		{name: "rb shorthand", input: "10rb", want: 10000, ok: true},
		{name: "rebu slang", input: "5 rebu", want: 5000, ok: true},
		{name: "k suffix", input: "15k", want: 15000, ok: true},
		{name: "juta", input: "2 juta", want: 2000000, ok: true},
		{name: "jt shorthand with decimal comma", input: "1,5jt", want: 1500000, ok: true},
		{name: "decimal ribu", input: "2,5 ribu", want: 2500, ok: true},
		{name: "uppercase scale", input: "20 RIBU", want: 20000, ok: true},
		{name: "empty", input: "", want: 0, ok: false},
		{name: "words only", input: "beli kopi", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIndoNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseIndoNumber(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseIndoNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanAmountTokens(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValues []float64
	}{
		{name: "single scaled", input: "beli kopi 20 ribu", wantValues: []float64{20000}},
		{name: "quantity then amount", input: "2 kopi 10000", wantValues: []float64{2, 10000}},
		{name: "separator amount", input: "bayar listrik 150.000", wantValues: []float64{150000}},
		{name: "two amounts", input: "kopi 20rb nasi 15rb", wantValues: []float64{20000, 15000}},
		{name: "no numbers", input: "beli kopi", wantValues: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := ScanAmountTokens(tt.input)
			if len(tokens) != len(tt.wantValues) {
				t.Fatalf("ScanAmountTokens(%q) returned %d tokens, want %d", tt.input, len(tokens), len(tt.wantValues))
			}
			for i, want := range tt.wantValues {
				if tokens[i].Value != want {
					t.Errorf("token %d = %v, want %v", i, tokens[i].Value, want)
				}
			}
		})
	}
}

func TestScanAmountTokensFlags(t *testing.T) {
	tokens := ScanAmountTokens("bayar 150.000 dan jajan 20 ribu")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if !tokens[0].HasSeparator || tokens[0].Scaled {
		t.Errorf("first token flags = {scaled: %v, separator: %v}, want separator only", tokens[0].Scaled, tokens[0].HasSeparator)
	}
	if !tokens[1].Scaled || tokens[1].HasSeparator {
		t.Errorf("second token flags = {scaled: %v, separator: %v}, want scaled only", tokens[1].Scaled, tokens[1].HasSeparator)
	}
}
