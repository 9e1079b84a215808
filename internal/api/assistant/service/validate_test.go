package assistantService

import (
	"CatatUang/internal/api/assistant"
	"CatatUang/pkg/response"
	"errors"
	"strings"
	"testing"
)

func decodeForTest(t *testing.T, raw string) interface{} {
	t.Helper()
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return value
}

func TestBuildParsedTransactions(t *testing.T) {
	value := decodeForTest(t, `[
		{"description": "kopi susu", "amount": 20000, "quantity": 2, "category": "Makanan & Minuman", "type": "expense", "created_at": "2025-08-30T05:00:00Z"},
		{"description": "gaji", "amount": 5000000, "type": "income"}
	]`)

	items, err := buildParsedTransactions(value)
	if err != nil {
		t.Fatalf("buildParsedTransactions failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Description != "kopi susu" || items[0].Amount != 20000 || items[0].Quantity != 2 {
		t.Errorf("first item = %+v", items[0])
	}
	if items[1].Type != "income" || items[1].CreatedAt != "" {
		t.Errorf("second item = %+v", items[1])
	}
}

func TestBuildParsedTransactionsViolations(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantDetail string
	}{
		{
			name:       "not an array",
			raw:        `{"description": "kopi", "amount": 20000}`,
			wantDetail: "not a JSON array",
		},
		{
			name:       "element not an object",
			raw:        `["kopi"]`,
			wantDetail: "item 0",
		},
		{
			name:       "missing description",
			raw:        `[{"amount": 20000}]`,
			wantDetail: "item 0",
		},
		{
			name:       "blank description",
			raw:        `[{"description": "   ", "amount": 20000}]`,
			wantDetail: "item 0",
		},
		{
			name:       "string amount",
			raw:        `[{"description": "kopi", "amount": "20000"}]`,
			wantDetail: "item 0: amount must be a number",
		},
		{
			name:       "second element bad",
			raw:        `[{"description": "kopi", "amount": 20000}, {"description": "nasi", "amount": null}]`,
			wantDetail: "item 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildParsedTransactions(decodeForTest(t, tt.raw))
			if err == nil {
				t.Fatal("expected a violation")
			}
			if !errors.Is(err, assistant.ErrSchemaViolation) {
				t.Fatalf("error = %v, want schema violation", err)
			}

			var respErr *response.Error
			if !errors.As(err, &respErr) {
				t.Fatalf("error %v carries no details", err)
			}
			if !strings.Contains(respErr.Details, tt.wantDetail) {
				t.Errorf("details = %q, want substring %q", respErr.Details, tt.wantDetail)
			}
		})
	}
}
