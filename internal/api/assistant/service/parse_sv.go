package assistantService

import (
	"CatatUang/internal/api/assistant"
	"CatatUang/internal/entity"
	contextPkg "CatatUang/pkg/context"
	"CatatUang/pkg/nlp"
	"CatatUang/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const maxRawOutputDetail = 500

func (s *assistantService) Parse(ctx context.Context, userID string, message string) (assistant.ParseResponse, error) {
	return s.parse(ctx, message, false)
}

func (s *assistantService) parse(ctx context.Context, message string, skipDateOverride bool) (assistant.ParseResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	message = trimMessage(message)
	if message == "" {
		return assistant.ParseResponse{}, assistant.ErrEmptyMessage
	}

	if s.chat == nil {
		return s.parseFallback(requestID, message, assistant.ErrModelNotConfigured)
	}

	raw, err := s.chat.Complete(ctx, buildExtractionPrompt(nlp.JakartaNow()), message)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Extraction model call failed")
		return s.parseFallback(requestID, message, assistant.ErrUpstreamUnavailable)
	}

	value, strategy, err := recoverJSON(raw)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"raw_output": truncate(raw, maxRawOutputDetail),
		}).Error("Model output could not be recovered as JSON")
		return assistant.ParseResponse{}, response.WithDetails(assistant.ErrMalformedModelOutput, truncate(raw, maxRawOutputDetail))
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"strategy":   strategy,
	}).Debug("Recovered model output")

	items, err := buildParsedTransactions(value)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Model output failed structural validation")
		return assistant.ParseResponse{}, err
	}

	items = postProcess(message, items, skipDateOverride)

	if err := s.validateParsedTransactions(items); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Parsed transactions failed validation")
		return assistant.ParseResponse{}, err
	}

	return assistant.ParseResponse{Transactions: items}, nil
}

// parseFallback is the degraded path when the extraction model cannot be
// reached: a keyword pass that only understands "kemarin" expenses. When even
// that finds nothing, the original failure is returned.
func (s *assistantService) parseFallback(requestID string, message string, cause error) (assistant.ParseResponse, error) {
	fallback, ok := nlp.ExtractFallback(message)
	if !ok {
		return assistant.ParseResponse{}, cause
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Warn("Extraction model unavailable, using keyword fallback")

	item := entity.ParsedTransaction{
		Description: fallback.Description,
		Amount:      fallback.Amount,
		Quantity:    1,
		CreatedAt:   fallback.CreatedAt,
		Category:    fallback.Category,
		Type:        fallback.Type,
	}

	if err := s.validator.Struct(item); err != nil {
		return assistant.ParseResponse{}, cause
	}

	return assistant.ParseResponse{
		Transactions: []entity.ParsedTransaction{item},
		Fallback:     true,
	}, nil
}

func (s *assistantService) ParseAndSave(ctx context.Context, userID string, message string, skipDateOverride bool) (assistant.RecordResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	parsed, err := s.parse(ctx, message, skipDateOverride)
	if err != nil {
		return assistant.RecordResponse{}, err
	}

	saved, err := s.transactionService.SaveParsedTransactions(ctx, userID, parsed.Transactions)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist parsed transactions")

		// The extraction succeeded, so hand the items back for an
		// insert-only retry instead of forcing a second model call.
		return assistant.RecordResponse{
			Transactions: parsed.Transactions,
			Fallback:     parsed.Fallback,
		}, assistant.ErrPersistenceFailure
	}

	return assistant.RecordResponse{
		Transactions: parsed.Transactions,
		Saved:        saved,
		Fallback:     parsed.Fallback,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
