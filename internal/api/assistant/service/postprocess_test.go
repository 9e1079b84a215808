package assistantService

import (
	"CatatUang/internal/entity"
	"CatatUang/pkg/nlp"
	"reflect"
	"testing"
)

func TestPostProcessDateOverride(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "kopi susu", Amount: 20000, CreatedAt: "2025-01-01T05:00:00Z"},
	}

	got := postProcess("kemarin beli kopi susu 20 ribu", items, false)
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	if want := nlp.IsoJakartaDaysAgo(1); got[0].CreatedAt != want {
		t.Errorf("CreatedAt = %q, want %q", got[0].CreatedAt, want)
	}
}

func TestPostProcessSkipDateOverride(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "kopi susu", Amount: 20000, CreatedAt: "2025-01-01T05:00:00Z"},
	}

	got := postProcess("kemarin beli kopi susu 20 ribu", items, true)
	if got[0].CreatedAt != "2025-01-01T05:00:00Z" {
		t.Errorf("CreatedAt = %q, want the original timestamp kept", got[0].CreatedAt)
	}
}

func TestPostProcessMultiItemUntouched(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "kopi", Amount: 20000, Category: "Makanan & Minuman", Type: "expense"},
		{Description: "nasi goreng", Amount: 15000, Category: "Makanan & Minuman", Type: "expense"},
	}

	got := postProcess("beli kopi 20 ribu dan nasi goreng 15 ribu", items, false)
	if got[0].Amount != 20000 || got[1].Amount != 15000 {
		t.Errorf("amounts = %v, %v, want 20000, 15000", got[0].Amount, got[1].Amount)
	}
	for i, item := range got {
		if item.Quantity != 1 {
			t.Errorf("item %d quantity = %v, want default 1", i, item.Quantity)
		}
	}
}

func TestPostProcessYearMistakenForAmount(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "makan siang", Amount: 2022},
	}

	got := postProcess("makan siang 12/05/2022 20 ribu", items, false)
	if got[0].Amount != 20000 {
		t.Errorf("Amount = %v, want 20000 recovered from the scale word", got[0].Amount)
	}
	if got[0].CreatedAt != "2022-05-12T05:00:00Z" {
		t.Errorf("CreatedAt = %q, want the written date", got[0].CreatedAt)
	}
}

func TestPostProcessRepairsZeroAmount(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "kopi", Amount: 0},
	}

	got := postProcess("beli kopi 20.000", items, false)
	if got[0].Amount != 20000 {
		t.Errorf("Amount = %v, want 20000 from the separator token", got[0].Amount)
	}
}

func TestPostProcessRepairsPerSegment(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "kopi", Amount: 0},
		{Description: "bensin motor", Amount: 0},
	}

	got := postProcess("beli kopi 20 ribu, isi bensin motor 50.000", items, false)
	if got[0].Amount != 20000 {
		t.Errorf("first amount = %v, want 20000", got[0].Amount)
	}
	if got[1].Amount != 50000 {
		t.Errorf("second amount = %v, want 50000", got[1].Amount)
	}
}

func TestPostProcessBareYearNotAnAmount(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "buku", Amount: 0},
	}

	got := postProcess("beli buku tahun 2022", items, false)
	if got[0].Amount != 0 {
		t.Errorf("Amount = %v, want 0: a bare year is not a price", got[0].Amount)
	}
}

func TestPostProcessCurrencyMarkerRescuesYearLikeAmount(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "pulpen", Amount: 0},
	}

	got := postProcess("beli pulpen rp2000", items, false)
	if got[0].Amount != 2000 {
		t.Errorf("Amount = %v, want 2000: rp marks it as money", got[0].Amount)
	}
}

func TestPostProcessAmbiguousBareTokensNotRepaired(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "buku", Amount: 0},
	}

	// Two plain candidates, neither marked as money; repairing would be a
	// coin flip, so the amount stays invalid and validation rejects it later.
	got := postProcess("beli 3 buku 5000", items, false)
	if got[0].Amount != 0 {
		t.Errorf("Amount = %v, want 0 when the segment is ambiguous", got[0].Amount)
	}
}

func TestPostProcessNormalization(t *testing.T) {
	items := []entity.ParsedTransaction{
		{Description: "sesuatu", Amount: 10000, Category: "Cemilan", Type: "spending"},
	}

	got := postProcess("sesuatu 10 ribu", items, false)
	if got[0].Category != string(entity.CategoryOther) {
		t.Errorf("Category = %q, want %q", got[0].Category, entity.CategoryOther)
	}
	if got[0].Type != string(entity.TransactionTypeExpense) {
		t.Errorf("Type = %q, want %q", got[0].Type, entity.TransactionTypeExpense)
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	message := "kemarin beli kopi 20 ribu dan nasi goreng 15 ribu"
	items := []entity.ParsedTransaction{
		{Description: "kopi", Amount: 0, Category: "Jajan"},
		{Description: "nasi goreng", Amount: 15000, Type: "expense"},
	}

	once := postProcess(message, items, false)
	twice := postProcess(message, once, false)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed items:\n first = %+v\nsecond = %+v", once, twice)
	}
}
