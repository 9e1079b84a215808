package assistantService

import (
	"CatatUang/internal/api/assistant"
	transactionService "CatatUang/internal/api/transaction/service"
	"CatatUang/pkg/gemini"
	"CatatUang/pkg/openrouter"
	"CatatUang/pkg/s3"
	"CatatUang/pkg/utils"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAssistantService interface {
	Parse(ctx context.Context, userID string, message string) (assistant.ParseResponse, error)
	ParseAndSave(ctx context.Context, userID string, message string, skipDateOverride bool) (assistant.RecordResponse, error)
	ScanReceipt(ctx context.Context, userID string, file *multipart.FileHeader) (assistant.ScanResponse, error)
	Report(ctx context.Context, userID string, query string) (assistant.ReportResponse, error)
}

type assistantService struct {
	log                *logrus.Logger
	chat               openrouter.IChat
	gemini             gemini.IGemini
	s3                 s3.ItfS3
	utils              utils.IUtils
	transactionService transactionService.ITransactionService
	validator          *validator.Validate
}

// NewAssistantService accepts nil model clients. Without the chat client the
// parser degrades to the keyword fallback, without Gemini reports fall back
// to computed totals.
func NewAssistantService(
	log *logrus.Logger,
	chat openrouter.IChat,
	gemini gemini.IGemini,
	s3 s3.ItfS3,
	utils utils.IUtils,
	ts transactionService.ITransactionService,
	validate *validator.Validate,
) IAssistantService {
	return &assistantService{
		log:                log,
		chat:               chat,
		gemini:             gemini,
		s3:                 s3,
		utils:              utils,
		transactionService: ts,
		validator:          validate,
	}
}
