package conditions

import (
	"strconv"
	"strings"
	"time"
)

// Value parsing is deliberately lenient about presence and strict about
// shape: a blank or malformed operand returns ok == false and the affected
// rule abstains. One bad input degrades detection coverage for that rule but
// never produces a false positive or a panic.

// ParseNumber parses a raw condition value as a float. Thousands separators
// are not supported; a leading currency symbol is not stripped.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// dateLayouts are the accepted date spellings, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateMillis parses a raw condition value as an epoch-millisecond
// timestamp. Bare dates resolve to midnight UTC.
func ParseDateMillis(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return float64(t.UnixMilli()), true
		}
	}
	return 0, false
}

// ParseList splits a raw in/not_in operand into trimmed, non-empty items.
func ParseList(raw string) ([]string, bool) {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// ParseBool parses a raw boolean operand. The UI posts "0"/"1" but hand-
// edited payloads may carry the word forms.
func ParseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	default:
		return false, false
	}
}
