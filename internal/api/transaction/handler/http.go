package transactionHandler

import (
	"CatatUang/internal/api/transaction"
	transactionService "CatatUang/internal/api/transaction/service"
	"CatatUang/internal/entity"
	"CatatUang/internal/middleware"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions")

	transactions.Post("/", h.middleware.NewTokenMiddleware, h.CreateTransaction)
	transactions.Get("/", h.middleware.NewTokenMiddleware, h.ListTransactions)
	transactions.Get("/:id", h.middleware.NewTokenMiddleware, h.GetTransactionByID)
	transactions.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	transactions.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)
}

func makeResponse(row entity.Transaction) transaction.TransactionResponse {
	return transaction.TransactionResponse{
		ID:          row.ID,
		UserID:      row.UserID,
		Description: row.Description,
		Amount:      row.Amount,
		Quantity:    row.Quantity,
		UnitPrice:   row.UnitPrice,
		Type:        row.Type,
		Category:    row.Category,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   row.UpdatedAt.Format(time.RFC3339),
	}
}
