package assistantService

import (
	"CatatUang/internal/api/assistant"
	contextPkg "CatatUang/pkg/context"
	"CatatUang/pkg/nlp"
	"CatatUang/pkg/response"
	"mime/multipart"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ScanReceipt reads a receipt photo through the vision model and stores the
// extracted transactions. The image itself is archived to S3 so the entry can
// be audited later; an archive failure is logged but does not block the scan.
func (s *assistantService) ScanReceipt(ctx context.Context, userID string, file *multipart.FileHeader) (assistant.ScanResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Rejected receipt upload")
		if strings.Contains(err.Error(), "size") {
			return assistant.ScanResponse{}, assistant.ErrImageTooLarge
		}
		return assistant.ScanResponse{}, assistant.ErrInvalidImageFile
	}

	if s.gemini == nil {
		return assistant.ScanResponse{}, assistant.ErrModelNotConfigured
	}

	src, err := file.Open()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to open uploaded receipt")
		return assistant.ScanResponse{}, assistant.ErrInvalidImageFile
	}
	defer src.Close()

	imageData, err := s.utils.ReadFileBytes(src)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read uploaded receipt")
		return assistant.ScanResponse{}, assistant.ErrInvalidImageFile
	}

	var receiptURL, archiveLocation string
	if s.s3 != nil {
		archiveLocation, err = s.s3.UploadReceipt(userID, file)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to archive receipt image, continuing without it")
			archiveLocation = ""
		} else if presigned, err := s.s3.PresignUrl(archiveLocation); err != nil {
			// The bucket is private, so the raw location is useless to the
			// client, but keep it so the archive stays traceable.
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to presign receipt URL")
			receiptURL = archiveLocation
		} else {
			receiptURL = presigned
		}
	}

	raw, err := s.gemini.AnalyzeImage(ctx, file.Header.Get("Content-Type"), imageData, buildReceiptPrompt(nlp.JakartaNow()))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Receipt analysis failed")
		return assistant.ScanResponse{}, assistant.ErrUpstreamUnavailable
	}

	value, strategy, err := recoverJSON(raw)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"raw_output": truncate(raw, maxRawOutputDetail),
		}).Error("Receipt output could not be recovered as JSON")
		s.discardReceipt(requestID, archiveLocation)
		return assistant.ScanResponse{}, response.WithDetails(assistant.ErrMalformedModelOutput, truncate(raw, maxRawOutputDetail))
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"strategy":   strategy,
	}).Debug("Recovered receipt output")

	items, err := buildParsedTransactions(value)
	if err != nil {
		return assistant.ScanResponse{}, err
	}

	if len(items) == 0 {
		// Nothing will ever reference this archive entry, so drop it.
		s.discardReceipt(requestID, archiveLocation)
		return assistant.ScanResponse{}, assistant.ErrUnreadableReceipt
	}

	// No user text to mine for date idioms here; the receipt date the model
	// read stays authoritative.
	items = postProcess("", items, true)

	if err := s.validateParsedTransactions(items); err != nil {
		return assistant.ScanResponse{}, err
	}

	saved, err := s.transactionService.SaveParsedTransactions(ctx, userID, items)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist scanned transactions")
		return assistant.ScanResponse{
			Transactions: items,
			ReceiptURL:   receiptURL,
		}, assistant.ErrPersistenceFailure
	}

	return assistant.ScanResponse{
		Transactions: items,
		Saved:        saved,
		ReceiptURL:   receiptURL,
	}, nil
}

func (s *assistantService) discardReceipt(requestID string, location string) {
	if s.s3 == nil || location == "" {
		return
	}
	if err := s.s3.DeleteFile(location); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to remove orphaned receipt image")
	}
}
