package assistant

import "CatatUang/internal/entity"

type ParseRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type RecordRequest struct {
	Message string `json:"message" validate:"required,max=500"`
	// Keeps the model's timestamps even when the message contains a date
	// phrase, for clients that already resolved dates themselves.
	SkipDateOverride bool `json:"skip_date_override"`
}

type ParseResponse struct {
	Transactions []entity.ParsedTransaction `json:"transactions"`
	Fallback     bool                       `json:"fallback,omitempty"`
}

type RecordResponse struct {
	Transactions []entity.ParsedTransaction `json:"transactions"`
	Saved        int                        `json:"saved"`
	Fallback     bool                       `json:"fallback,omitempty"`
}

type ScanResponse struct {
	Transactions []entity.ParsedTransaction `json:"transactions"`
	Saved        int                        `json:"saved"`
	ReceiptURL   string                     `json:"receipt_url,omitempty"`
}

type ReportRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}

type ReportResponse struct {
	Reply string `json:"reply"`
}
