package assistantService

import (
	"errors"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNoCandidate = errors.New("no JSON candidate found")

// extractStrategy proposes a JSON candidate from raw model output. The
// strategies run in order from strict to permissive and the first candidate
// that decodes wins.
type extractStrategy struct {
	name  string
	apply func(raw string) (string, bool)
}

var extractStrategies = []extractStrategy{
	{name: "direct", apply: directCandidate},
	{name: "fenced_block", apply: fencedCandidate},
	{name: "bracket_match", apply: bracketCandidate},
	{name: "aggressive_strip", apply: aggressiveCandidate},
}

var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

func directCandidate(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

func fencedCandidate(raw string) (string, bool) {
	match := fencedBlockPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

func bracketCandidate(raw string) (string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// aggressiveCandidate throws away everything around the first JSON-looking
// value and coerces a lone object into a single element array.
func aggressiveCandidate(raw string) (string, bool) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.ReplaceAll(cleaned, "`", "")
	cleaned = strings.TrimSpace(cleaned)

	arrStart := strings.Index(cleaned, "[")
	objStart := strings.Index(cleaned, "{")

	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		end := strings.LastIndex(cleaned, "]")
		if end <= arrStart {
			return "", false
		}
		return cleaned[arrStart : end+1], true
	}

	if objStart != -1 {
		end := strings.LastIndex(cleaned, "}")
		if end <= objStart {
			return "", false
		}
		return "[" + cleaned[objStart:end+1] + "]", true
	}

	return "", false
}

// recoverJSON runs the strategy chain over raw model output and returns the
// first decodable value along with the strategy that produced it.
func recoverJSON(raw string) (interface{}, string, error) {
	for _, strategy := range extractStrategies {
		candidate, ok := strategy.apply(raw)
		if !ok {
			continue
		}

		var value interface{}
		if err := json.Unmarshal([]byte(candidate), &value); err != nil {
			continue
		}

		return value, strategy.name, nil
	}

	return nil, "", errNoCandidate
}
