package assistantService

import (
	"testing"
)

func TestRecoverJSON(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantStrategy string
		wantLen      int
		wantErr      bool
	}{
		{
			name:         "clean array",
			raw:          `[{"description": "kopi", "amount": 20000}]`,
			wantStrategy: "direct",
			wantLen:      1,
		},
		{
			name:         "fenced block",
			raw:          "```json\n[{\"description\": \"kopi\", \"amount\": 20000}]\n```",
			wantStrategy: "fenced_block",
			wantLen:      1,
		},
		{
			name:         "fenced block without language tag",
			raw:          "```\n[{\"description\": \"kopi\", \"amount\": 20000}]\n```",
			wantStrategy: "fenced_block",
			wantLen:      1,
		},
		{
			name:         "array buried in prose",
			raw:          `Berikut hasilnya: [{"description": "kopi", "amount": 20000}] Semoga membantu!`,
			wantStrategy: "bracket_match",
			wantLen:      1,
		},
		{
			name:         "lone object coerced to array",
			raw:          `Transaksinya: {"description": "kopi", "amount": 20000}`,
			wantStrategy: "aggressive_strip",
			wantLen:      1,
		},
		{
			name:         "empty array",
			raw:          `[]`,
			wantStrategy: "direct",
			wantLen:      0,
		},
		{
			name:    "no json at all",
			raw:     "maaf, tidak ada transaksi dalam pesan itu",
			wantErr: true,
		},
		{
			name:    "empty output",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, strategy, err := recoverJSON(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("recoverJSON(%q) succeeded via %q, want error", tt.raw, strategy)
				}
				return
			}
			if err != nil {
				t.Fatalf("recoverJSON(%q) failed: %v", tt.raw, err)
			}
			if strategy != tt.wantStrategy {
				t.Errorf("strategy = %q, want %q", strategy, tt.wantStrategy)
			}
			list, ok := value.([]interface{})
			if !ok {
				t.Fatalf("recovered value is %T, want array", value)
			}
			if len(list) != tt.wantLen {
				t.Errorf("recovered %d elements, want %d", len(list), tt.wantLen)
			}
		})
	}
}

// A fenced block takes precedence over a later bare array because the chain
// is ordered strict to permissive.
func TestRecoverJSONStrategyOrder(t *testing.T) {
	raw := "```json\n[{\"description\": \"dalam fence\", \"amount\": 1000}]\n``` dan juga [1, 2]"
	value, strategy, err := recoverJSON(raw)
	if err != nil {
		t.Fatalf("recoverJSON failed: %v", err)
	}
	if strategy != "fenced_block" {
		t.Fatalf("strategy = %q, want fenced_block", strategy)
	}
	list := value.([]interface{})
	obj, ok := list[0].(map[string]interface{})
	if !ok {
		t.Fatalf("element is %T, want object", list[0])
	}
	if obj["description"] != "dalam fence" {
		t.Errorf("description = %v, want the fenced content", obj["description"])
	}
}
