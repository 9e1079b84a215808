package assistant

import "CatatUang/pkg/response"

var (
	ErrEmptyMessage         = response.NewError(400, "message is required")
	ErrEmptyReportQuery     = response.NewError(400, "query is required")
	ErrRateLimited          = response.NewError(429, "too many requests, try again in a minute")
	ErrModelNotConfigured   = response.NewError(503, "extraction model is not configured")
	ErrUpstreamUnavailable  = response.NewError(502, "extraction model is unavailable")
	ErrMalformedModelOutput = response.NewError(502, "model output could not be parsed")
	ErrSchemaViolation      = response.NewError(422, "extracted transactions failed validation")
	ErrPersistenceFailure   = response.NewError(500, "failed to save transactions")
	ErrInvalidImageFile     = response.NewError(400, "invalid image file type")
	ErrImageTooLarge        = response.NewError(400, "image exceeds the size limit")
	ErrUnreadableReceipt    = response.NewError(422, "no transactions could be read from the receipt")
)
