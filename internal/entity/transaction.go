package entity

import (
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type Category string

const (
	CategoryFoodDrink     Category = "Makanan & Minuman"
	CategoryTransport     Category = "Transportasi"
	CategoryBills         Category = "Tagihan"
	CategoryEntertainment Category = "Hiburan"
	CategoryShopping      Category = "Belanja"
	CategoryHealth        Category = "Kesehatan"
	CategoryEducation     Category = "Pendidikan"
	CategoryOther         Category = "Lainnya"
)

func IsValidCategory(category string) bool {
	switch Category(category) {
	case CategoryFoodDrink, CategoryTransport, CategoryBills, CategoryEntertainment,
		CategoryShopping, CategoryHealth, CategoryEducation, CategoryOther:
		return true
	default:
		return false
	}
}

// NormalizeCategory maps anything outside the closed enum to Lainnya.
func NormalizeCategory(category string) string {
	if IsValidCategory(category) {
		return category
	}
	return string(CategoryOther)
}

// NormalizeType maps anything that is not income to expense.
func NormalizeType(transactionType string) string {
	if strings.EqualFold(transactionType, string(TransactionTypeIncome)) {
		return string(TransactionTypeIncome)
	}
	return string(TransactionTypeExpense)
}

// ParsedTransaction is the transient output of the extraction pipeline. It
// only exists in memory between model extraction and persistence; amount is
// always the total price, never a unit price.
type ParsedTransaction struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Quantity    float64 `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	CreatedAt   string  `json:"created_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Category    string  `json:"category,omitempty" validate:"omitempty,max=64"`
	Type        string  `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
}

// Transaction is the persisted row.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Quantity    float64   `json:"quantity,omitempty"`
	UnitPrice   float64   `json:"unit_price,omitempty"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
