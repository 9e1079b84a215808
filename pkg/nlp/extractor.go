package nlp

import (
	"regexp"
	"strings"
)

// FallbackTransaction is a locally parsed transaction used when the remote
// extraction pipeline is unavailable. Only a narrow class of "kemarin ..."
// inputs is supported; everything else must go through the model.
type FallbackTransaction struct {
	Description string
	Amount      float64
	CreatedAt   string
	Category    string
	Type        string
}

var (
	fallbackAmountPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d{3})*)\s*(ribu|rebu|rb|juta|jt|k)\b`)
	unitWordPattern       = regexp.MustCompile(`(?i)\d+\s*(gelas|biji|porsi|buah|pcs)\b`)
)

var incomeKeywords = []string{
	"gaji", "bonus", "refund", "pemasukan", "terima", "dapat", "pendapatan",
	"transfer masuk", "jual",
}

// Ordered so a text matching several categories always resolves the same way.
var expenseCategoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Makanan & Minuman", []string{"makan", "minum", "kopi", "jajan", "snack", "resto", "warung", "bakso", "nasi", "es teh"}},
	{"Transportasi", []string{"ojek", "grab", "gojek", "bensin", "parkir", "tol", "krl", "busway", "kereta"}},
	{"Tagihan", []string{"listrik", "pln", "pulsa", "wifi", "bpjs", "pdam", "tagihan"}},
	{"Hiburan", []string{"nonton", "film", "game", "konser", "netflix", "spotify"}},
	{"Belanja", []string{"belanja", "shopee", "tokopedia", "indomaret", "alfamart", "baju"}},
	{"Kesehatan", []string{"obat", "dokter", "apotek", "rumah sakit", "vitamin"}},
	{"Pendidikan", []string{"buku", "kursus", "sekolah", "kuliah", "les"}},
}

// ExtractFallback performs a fully local parse for "kemarin"-style inputs.
// Returns false when the input is outside the supported class or no usable
// amount is present.
func ExtractFallback(input string) (*FallbackTransaction, bool) {
	lower := strings.ToLower(input)
	if !strings.Contains(lower, "kemarin") {
		return nil, false
	}

	m := fallbackAmountPattern.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}
	amount, ok := ParseIndoNumber(m[0])
	if !ok || amount <= 0 {
		return nil, false
	}

	description := input
	description = regexp.MustCompile(`(?i)kemarin\s*`).ReplaceAllString(description, "")
	description = fallbackAmountPattern.ReplaceAllString(description, "")
	description = unitWordPattern.ReplaceAllString(description, "")
	description = strings.Join(strings.Fields(description), " ")
	if description == "" {
		return nil, false
	}

	return &FallbackTransaction{
		Description: description,
		Amount:      amount,
		CreatedAt:   IsoJakartaDaysAgo(1),
		Category:    identifyCategory(lower),
		Type:        identifyType(lower),
	}, true
}

func identifyType(text string) string {
	for _, keyword := range incomeKeywords {
		if strings.Contains(text, keyword) {
			return "income"
		}
	}
	return "expense"
}

func identifyCategory(text string) string {
	for _, group := range expenseCategoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.category
			}
		}
	}
	return "Lainnya"
}
