package transactionService

import (
	"CatatUang/internal/api/transaction"
	transactionRepository "CatatUang/internal/api/transaction/repository"
	"CatatUang/internal/entity"
	"CatatUang/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, userID string, req transaction.CreateTransactionRequest) (entity.Transaction, error)
	SaveParsedTransactions(ctx context.Context, userID string, items []entity.ParsedTransaction) (int, error)
	GetTransactionByID(ctx context.Context, userID string, id string) (entity.Transaction, error)
	ListTransactions(ctx context.Context, userID string, query transaction.ListTransactionsQuery) (transaction.TransactionListResponse, error)
	GetTransactionsByWindow(ctx context.Context, userID string, from, to time.Time) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, userID string, id string, req transaction.UpdateTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, id string) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository, utils utils.IUtils) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		utils:                 utils,
	}
}
