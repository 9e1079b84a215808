package transactionRepository

import (
	"CatatUang/internal/api/transaction"
	"CatatUang/internal/entity"
	contextPkg "CatatUang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const maxListLimit = 200

type TransactionDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Description sql.NullString  `db:"description"`
	Amount      sql.NullFloat64 `db:"amount"`
	Quantity    sql.NullFloat64 `db:"quantity"`
	UnitPrice   sql.NullFloat64 `db:"unit_price"`
	Type        sql.NullString  `db:"type"`
	Category    sql.NullString  `db:"category"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, transaction entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          transaction.ID,
		"user_id":     transaction.UserID,
		"description": transaction.Description,
		"amount":      transaction.Amount,
		"quantity":    transaction.Quantity,
		"unit_price":  transaction.UnitPrice,
		"type":        transaction.Type,
		"category":    transaction.Category,
		"created_at":  transaction.CreatedAt,
		"updated_at":  transaction.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactionsByUserID(c context.Context, userID string, filter ListFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query := queryGetTransactionsByUserID
	if filter.Type != "" {
		query += " AND type = :type"
		argsKV["type"] = filter.Type
	}
	if filter.Category != "" {
		query += " AND category = :category"
		argsKV["category"] = filter.Category
	}
	if !filter.From.IsZero() {
		query += " AND created_at >= :from"
		argsKV["from"] = filter.From
	}
	if !filter.To.IsZero() {
		query += " AND created_at < :to"
		argsKV["to"] = filter.To
	}

	limit := filter.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	query += " ORDER BY created_at DESC LIMIT :limit"
	argsKV["limit"] = limit

	namedQuery, args, err := sqlx.Named(query, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID named query preparation err")
		return nil, err
	}

	namedQuery = r.q.Rebind(namedQuery)

	if err := r.q.SelectContext(c, &rows, namedQuery, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) GetTransactionsByWindow(c context.Context, userID string, from, to time.Time, limit int) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	argsKV := map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetTransactionsByWindow, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByWindow named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByWindow execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, transaction entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          transaction.ID,
		"description": transaction.Description,
		"amount":      transaction.Amount,
		"quantity":    transaction.Quantity,
		"unit_price":  transaction.UnitPrice,
		"type":        transaction.Type,
		"category":    transaction.Category,
		"created_at":  transaction.CreatedAt,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:          row.ID.String,
		UserID:      row.UserID.String,
		Description: row.Description.String,
		Amount:      row.Amount.Float64,
		Quantity:    row.Quantity.Float64,
		UnitPrice:   row.UnitPrice.Float64,
		Type:        row.Type.String,
		Category:    row.Category.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
