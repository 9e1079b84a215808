package transaction

import "CatatUang/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidDescription     = response.NewError(400, "description is required")
	ErrInvalidCategory        = response.NewError(400, "invalid category")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
	ErrTransactionNotOwned    = response.NewError(403, "transaction does not belong to user")
)
