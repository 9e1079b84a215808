package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// AmountToken is one numeric token found inside a text segment.
type AmountToken struct {
	Raw          string
	Value        float64
	Scaled       bool // carried a scale word (ribu/rb/k/juta/jt)
	HasSeparator bool // used a thousands separator (50.000)
}

var (
	scaledNumberPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(ribu|rebu|rb|juta|jt|k)\b`)
	bareNumberPattern   = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})*(?:,\d+)?$|^\d+(?:,\d+)?$`)
	tokenPattern        = regexp.MustCompile(`(\d+(?:\.\d{3})*(?:,\d+)?)(?:\s*(ribu|rebu|rb|juta|jt|k)\b)?`)
	separatorPattern    = regexp.MustCompile(`\d{1,3}(?:\.\d{3})+`)
)

func scaleFactor(unit string) float64 {
	switch unit {
	case "ribu", "rebu", "rb", "k":
		return 1000
	case "juta", "jt":
		return 1000000
	}
	return 1
}

// ParseIndoNumber converts an informal Indonesian amount expression into its
// numeric value. It accepts a bare number with "." as thousands separator and
// "," as decimal separator ("50.000", "2,5") or a number followed by a scale
// word ("20 ribu", "2jt", "15k"). Returns false when nothing matches.
func ParseIndoNumber(text string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, false
	}

	if m := scaledNumberPattern.FindStringSubmatch(s); m != nil {
		base, err := strconv.ParseFloat(normalizeDecimal(m[1]), 64)
		if err != nil {
			return 0, false
		}
		return base * scaleFactor(m[2]), true
	}

	if bareNumberPattern.MatchString(s) {
		value, err := strconv.ParseFloat(normalizeDecimal(s), 64)
		if err != nil {
			return 0, false
		}
		return value, true
	}

	return 0, false
}

// ScanAmountTokens returns every numeric token in the segment, in order of
// appearance. The post-processing layer uses the token count to decide
// whether a segment names exactly one amount.
func ScanAmountTokens(segment string) []AmountToken {
	s := strings.ToLower(segment)

	var tokens []AmountToken
	for _, m := range tokenPattern.FindAllStringSubmatch(s, -1) {
		raw := strings.TrimSpace(m[0])
		value, err := strconv.ParseFloat(normalizeDecimal(m[1]), 64)
		if err != nil {
			continue
		}

		scaled := m[2] != ""
		if scaled {
			value *= scaleFactor(m[2])
		}

		tokens = append(tokens, AmountToken{
			Raw:          raw,
			Value:        value,
			Scaled:       scaled,
			HasSeparator: separatorPattern.MatchString(m[1]),
		})
	}

	return tokens
}

// normalizeDecimal rewrites Indonesian separators ("1.250.000,50") into the
// form strconv understands ("1250000.50").
func normalizeDecimal(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.Replace(s, ",", ".", 1)
}
