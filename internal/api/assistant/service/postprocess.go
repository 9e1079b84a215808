package assistantService

import (
	"CatatUang/internal/entity"
	"CatatUang/pkg/nlp"
	"regexp"
	"strings"
	"time"
)

const maxPlausibleAmount = 10_000_000

// postProcess fixes up validated items deterministically. It is pure and
// idempotent: running it twice over its own output changes nothing, so a
// stored item can be re-processed safely.
func postProcess(message string, items []entity.ParsedTransaction, skipDateOverride bool) []entity.ParsedTransaction {
	idiomISO, hasIdiom := nlp.DetectDateIdiom(message)
	segments := splitSegments(message)

	result := make([]entity.ParsedTransaction, 0, len(items))
	for _, item := range items {
		segment := matchSegment(item.Description, segments, message)

		// Date words in the user's own text beat whatever the model guessed.
		if hasIdiom && !skipDateOverride {
			item.CreatedAt = idiomISO
		}

		if !plausibleAmount(item.Amount, segment) {
			if repaired, ok := repairAmount(segment); ok {
				item.Amount = repaired
			}
		}

		if item.Quantity <= 0 {
			item.Quantity = 1
		}

		item.Category = entity.NormalizeCategory(item.Category)
		item.Type = entity.NormalizeType(item.Type)

		result = append(result, item)
	}

	return result
}

// splitSegments breaks a message into per-transaction chunks on ", " and the
// conjunction "dan", mirroring how the model is told to split items. Chunks
// keep their raw separators and slashes so amount and date scanning still
// see "50.000" and "12/05/2022" intact; the split is on comma-space so a
// decimal like "1,5jt" survives.
func splitSegments(message string) []string {
	var segments []string
	for _, part := range strings.Split(strings.ToLower(message), ", ") {
		for _, sub := range strings.Split(part, " dan ") {
			sub = strings.TrimSpace(sub)
			if sub != "" {
				segments = append(segments, sub)
			}
		}
	}
	return segments
}

// matchSegment picks the chunk with the most words in common with the item
// description, falling back to the whole message.
func matchSegment(description string, segments []string, message string) string {
	if len(segments) <= 1 {
		return strings.ToLower(message)
	}

	words := strings.Fields(nlp.NormalizeText(description))

	best := ""
	bestScore := 0
	for _, segment := range segments {
		normalized := nlp.NormalizeText(segment)
		score := 0
		for _, word := range words {
			if strings.Contains(normalized, word) {
				score++
			}
		}
		if score > bestScore {
			best = segment
			bestScore = score
		}
	}

	if best == "" {
		return strings.ToLower(message)
	}
	return best
}

// plausibleAmount rejects non-positive amounts and integers that are really
// the year of a date mentioned in the same chunk, like the 2022 in
// "makan siang 12/05/2022 20 ribu".
func plausibleAmount(amount float64, segment string) bool {
	if amount <= 0 {
		return false
	}
	if amount > maxPlausibleAmount {
		return false
	}
	if isSegmentYear(amount, segment) {
		return false
	}
	return true
}

func isSegmentYear(amount float64, segment string) bool {
	if !looksLikeYear(amount) {
		return false
	}

	iso, ok := nlp.DetectDateIdiom(segment)
	if !ok {
		return false
	}

	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return false
	}

	return parsed.Year() == int(amount)
}

// repairAmount rescans the chunk for money tokens. Scale words ("10 ribu")
// are the strongest signal, then thousands separators ("10.000"). A bare
// number is accepted only when it is the single surviving candidate, and a
// year-like integer ("beli buku tahun 2022") never survives without an "rp"
// marker vouching that it really is money.
func repairAmount(segment string) (float64, bool) {
	tokens := nlp.ScanAmountTokens(nlp.StripDateExpressions(segment))

	for _, token := range tokens {
		if token.Scaled {
			return token.Value, true
		}
	}

	for _, token := range tokens {
		if token.HasSeparator && plausibleAmount(token.Value, segment) {
			return token.Value, true
		}
	}

	var candidate float64
	candidates := 0
	for _, token := range tokens {
		if !plausibleAmount(token.Value, segment) {
			continue
		}
		if looksLikeYear(token.Value) && !hasCurrencyMarker(segment) {
			continue
		}
		candidate = token.Value
		candidates++
	}

	return candidate, candidates == 1
}

func looksLikeYear(value float64) bool {
	return value == float64(int(value)) && value >= 1900 && value <= 2100
}

var currencyMarkerPattern = regexp.MustCompile(`\brp\.?\s*\d`)

func hasCurrencyMarker(segment string) bool {
	return currencyMarkerPattern.MatchString(segment)
}
