package assistantService

import (
	"CatatUang/internal/api/assistant"
	"CatatUang/internal/entity"
	contextPkg "CatatUang/pkg/context"
	"CatatUang/pkg/nlp"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var bulletPrefixPattern = regexp.MustCompile(`^(?:[-*•]\s+|#+\s+|\d+[.)]\s+)`)

func (s *assistantService) Report(ctx context.Context, userID string, query string) (assistant.ReportResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query = trimMessage(query)
	if query == "" {
		return assistant.ReportResponse{}, assistant.ErrEmptyReportQuery
	}

	now := nlp.JakartaNow()
	from, to, label := resolveReportWindow(query, now)

	rows, err := s.transactionService.GetTransactionsByWindow(ctx, userID, from, to)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load transactions for report")
		return assistant.ReportResponse{}, err
	}

	if len(rows) == 0 {
		return assistant.ReportResponse{
			Reply: fmt.Sprintf("TIDAK ADA TRANSAKSI %s.", label),
		}, nil
	}

	if s.gemini == nil {
		return assistant.ReportResponse{Reply: computedSummary(rows, label)}, nil
	}

	reply, err := s.gemini.GenerateText(ctx, buildReportPrompt(query, label, rows, now))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Report model call failed, falling back to computed summary")
		return assistant.ReportResponse{Reply: computedSummary(rows, label)}, nil
	}

	return assistant.ReportResponse{Reply: sanitizeReportReply(reply)}, nil
}

// resolveReportWindow maps Indonesian temporal phrases to a [from, to)
// interval in Jakarta time. Unrecognized queries default to the current
// month.
func resolveReportWindow(query string, now time.Time) (time.Time, time.Time, string) {
	normalized := nlp.NormalizeText(query)
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch {
	case strings.Contains(normalized, "bulan lalu"):
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return monthStart.AddDate(0, -1, 0), monthStart, "bulan lalu"

	case strings.Contains(normalized, "bulan ini"):
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return monthStart, monthStart.AddDate(0, 1, 0), "bulan ini"

	case strings.Contains(normalized, "minggu ini"):
		offset := (int(now.Weekday()) + 6) % 7 // Monday start
		weekStart := today.AddDate(0, 0, -offset)
		return weekStart, weekStart.AddDate(0, 0, 7), "minggu ini"

	case strings.Contains(normalized, "hari ini"):
		return today, today.AddDate(0, 0, 1), "hari ini"
	}

	if iso, ok := nlp.DetectDateIdiom(query); ok {
		if parsed, err := time.Parse(time.RFC3339, iso); err == nil {
			local := parsed.In(loc)
			dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
			return dayStart, dayStart.AddDate(0, 0, 1), "pada " + dayStart.Format("2006-01-02")
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	return monthStart, monthStart.AddDate(0, 1, 0), "bulan ini"
}

// computedSummary is the no-model report: totals calculated locally.
func computedSummary(rows []entity.Transaction, label string) string {
	var income, expense float64
	for _, row := range rows {
		if row.Type == string(entity.TransactionTypeIncome) {
			income += row.Amount
		} else {
			expense += row.Amount
		}
	}

	return fmt.Sprintf(
		"Ringkasan %s: %d transaksi, pemasukan Rp%.0f, pengeluaran Rp%.0f, selisih Rp%.0f.",
		label, len(rows), income, expense, income-expense,
	)
}

// sanitizeReportReply flattens markdown the model sneaks in despite the
// plain-text instruction: bullets, numbered lists, bold, and headings.
func sanitizeReportReply(reply string) string {
	var lines []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = bulletPrefixPattern.ReplaceAllString(line, "")
		line = strings.ReplaceAll(line, "**", "")
		line = strings.ReplaceAll(line, "__", "")
		line = strings.ReplaceAll(line, "`", "")

		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
