package transaction

type CreateTransactionRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Quantity    float64 `json:"quantity" validate:"omitempty,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required"`
	CreatedAt   string  `json:"created_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type UpdateTransactionRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Quantity    float64 `json:"quantity" validate:"omitempty,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required"`
	CreatedAt   string  `json:"created_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type ListTransactionsQuery struct {
	Type     string `query:"type" validate:"omitempty,oneof=income expense"`
	Category string `query:"category"`
	From     string `query:"from" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To       string `query:"to" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Limit    int    `query:"limit" validate:"omitempty,gt=0,lte=200"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    float64 `json:"quantity,omitempty"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}
