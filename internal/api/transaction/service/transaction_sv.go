package transactionService

import (
	"CatatUang/internal/api/transaction"
	transactionRepository "CatatUang/internal/api/transaction/repository"
	"CatatUang/internal/entity"
	contextPkg "CatatUang/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req transaction.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	if !entity.IsValidCategory(req.Category) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
		}).Warn("Invalid transaction category")
		return entity.Transaction{}, transaction.ErrInvalidCategory
	}

	row, err := s.buildTransaction(userID, req.Description, req.Amount, req.Quantity, req.Type, req.Category, req.CreatedAt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build transaction")
		return entity.Transaction{}, err
	}

	if err := repo.Transaction.CreateTransaction(ctx, row); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	return row, nil
}

// SaveParsedTransactions stores every extracted item inside one transaction.
// Either all of them land or none do, so a retry cannot duplicate half a batch.
func (s *transactionService) SaveParsedTransactions(ctx context.Context, userID string, items []entity.ParsedTransaction) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}

	for _, item := range items {
		row, err := s.buildTransaction(userID, item.Description, item.Amount, item.Quantity, item.Type, item.Category, item.CreatedAt)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to build transaction from parsed item")
			_ = repo.Rollback()
			return 0, err
		}

		if err := repo.Transaction.CreateTransaction(ctx, row); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to save parsed transaction")
			_ = repo.Rollback()
			return 0, transaction.ErrCreateTransaction
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit parsed transactions")
		return 0, transaction.ErrCreateTransaction
	}

	return len(items), nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	row, err := repo.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	if row.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Transaction does not belong to user")
		return entity.Transaction{}, transaction.ErrTransactionNotOwned
	}

	return row, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, query transaction.ListTransactionsQuery) (transaction.TransactionListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.TransactionListResponse{}, err
	}

	filter := transactionRepository.ListFilter{
		Type:     query.Type,
		Category: query.Category,
		Limit:    query.Limit,
	}
	if query.From != "" {
		filter.From, _ = time.Parse(time.RFC3339, query.From)
	}
	if query.To != "" {
		filter.To, _ = time.Parse(time.RFC3339, query.To)
	}

	rows, err := repo.Transaction.GetTransactionsByUserID(ctx, userID, filter)
	if err != nil {
		return transaction.TransactionListResponse{}, err
	}

	resp := transaction.TransactionListResponse{
		Transactions: make([]transaction.TransactionResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Transactions = append(resp.Transactions, makeTransactionResponse(row))
		if row.Type == string(entity.TransactionTypeIncome) {
			resp.TotalIncome += row.Amount
		} else {
			resp.TotalExpense += row.Amount
		}
	}
	resp.Balance = resp.TotalIncome - resp.TotalExpense

	return resp, nil
}

func (s *transactionService) GetTransactionsByWindow(ctx context.Context, userID string, from, to time.Time) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Transaction.GetTransactionsByWindow(ctx, userID, from, to, 200)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, id string, req transaction.UpdateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	existing, err := s.GetTransactionByID(ctx, userID, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	if !entity.IsValidCategory(req.Category) {
		return entity.Transaction{}, transaction.ErrInvalidCategory
	}

	row, err := s.buildTransaction(userID, req.Description, req.Amount, req.Quantity, req.Type, req.Category, req.CreatedAt)
	if err != nil {
		return entity.Transaction{}, err
	}
	row.ID = existing.ID
	if req.CreatedAt == "" {
		row.CreatedAt = existing.CreatedAt
	}

	if err := repo.Transaction.UpdateTransaction(ctx, row); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	return row, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetTransactionByID(ctx, userID, id); err != nil {
		return err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Transaction.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	return nil
}

func (s *transactionService) buildTransaction(userID, description string, amount, quantity float64, transactionType, category, createdAt string) (entity.Transaction, error) {
	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Transaction{}, err
	}

	when := time.Now()
	if createdAt != "" {
		parsed, err := time.Parse(time.RFC3339, createdAt)
		if err == nil {
			when = parsed
		}
	}

	var unitPrice float64
	if quantity > 0 {
		unitPrice = amount / quantity
	}

	return entity.Transaction{
		ID:          ULID,
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Type:        entity.NormalizeType(transactionType),
		Category:    entity.NormalizeCategory(category),
		CreatedAt:   when,
		UpdatedAt:   time.Now(),
	}, nil
}

func makeTransactionResponse(row entity.Transaction) transaction.TransactionResponse {
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
