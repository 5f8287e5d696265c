package intent

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"cryptochat/internal/model"
	"cryptochat/pkg/llm"
)

// ErrMalformedReply means the model answered with neither the JSON object nor
// the labelled lines, or named an intent outside the vocabulary.
var ErrMalformedReply = errors.New("intent: malformed model reply")

type reply struct {
	Intent string          `json:"intent"`
	Asset  string          `json:"asset"`
	Date   string          `json:"date"`
	Number json.RawMessage `json:"number"`
}

// Parse reads the model reply. The JSON object is preferred; labelled lines
// ("Intent:", "Asset:", "Date:", "Number:") are accepted as a fallback, where
// the first line carrying a label wins.
func Parse(text string) (model.ParsedQuery, error) {
	q, ok := parseJSON(text)
	if !ok {
		q, ok = parseLabels(text)
	}

	if !ok || q.Intent == model.IntentUnknown {
		return model.UnknownQuery(), ErrMalformedReply
	}

	return q, nil
}

func parseJSON(text string) (model.ParsedQuery, bool) {
	var r reply
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(text)), &r); err != nil {
		return model.ParsedQuery{}, false
	}

	q := model.UnknownQuery()
	q.Intent = model.ParseIntent(r.Intent)
	q.Asset = normalize(r.Asset)
	q.Date = normalize(r.Date)
	if n, ok := parseNumber(strings.Trim(string(r.Number), `"`)); ok {
		q = q.WithCount(n)
	}
	return q, true
}

func parseLabels(text string) (model.ParsedQuery, bool) {
	q := model.UnknownQuery()
	seen := map[string]bool{}

	for _, line := range strings.Split(text, "\n") {
		label, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		label = strings.ToLower(strings.Trim(strings.TrimSpace(label), "*-# "))
		if label == "crypto" {
			label = "asset"
		}
		if seen[label] {
			continue
		}

		switch label {
		case "intent":
			q.Intent = model.ParseIntent(normalize(value))
		case "asset":
			q.Asset = normalize(value)
		case "date":
			q.Date = normalize(value)
		case "number":
			if n, ok := parseNumber(normalize(value)); ok {
				q = q.WithCount(n)
			}
		default:
			continue
		}
		seen[label] = true
	}

	return q, seen["intent"]
}

func normalize(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.Trim(v, "\"'`*[] ")
	if v == "" || v == "none" || v == "null" || v == "n/a" {
		return model.Unknown
	}
	return v
}

// parseNumber reads an integer, saturating at the int range. Integral floats
// such as "5.0" or "1e20" are accepted; fractions are truncated.
func parseNumber(v string) (int, bool) {
	v = strings.TrimSpace(v)
	n, err := strconv.Atoi(v)
	if err == nil {
		return n, true
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(v, "-") {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}

	f, err := strconv.ParseFloat(v, 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(f) {
		return 0, false
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt, true
	case f <= math.MinInt64:
		return math.MinInt, true
	}
	return int(f), true
}
