package coerce

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// isoDate matches a calendar date with an optional time-of-day and zone.
	isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:?\d{2})?)?$`)

	// decimalNumber matches plain decimal literals (no hex, no Inf/NaN).
	decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

	// leadingZero matches integers padded with zeros, such as zip codes.
	leadingZero = regexp.MustCompile(`^[+-]?0\d`)
)

// dateLayouts are tried in order by parseDate. Values without a zone are
// read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	time.DateOnly,
}

// Guess infers the type of a raw value without a schema:
//   - "true"/"false" in any case become bool
//   - decimal literals become int64 (or float64 when fractional or out of
//     int64 range), unless padded with a leading zero
//   - ISO-8601 dates become time.Time
//   - values bracketed by [] or {} are decoded as JSON
//
// Anything else, including malformed JSON, is returned unchanged.
func Guess(raw string) any {
	trimmed := strings.TrimSpace(raw)

	if strings.EqualFold(trimmed, "true") {
		return true
	}
	if strings.EqualFold(trimmed, "false") {
		return false
	}

	if !leadingZero.MatchString(trimmed) {
		if n, ok := parseNumber(trimmed); ok {
			return n
		}
	}

	if isoDate.MatchString(trimmed) {
		if t, ok := parseDate(trimmed); ok {
			return t
		}
	}

	if isBracketed(trimmed) {
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v
		}
	}

	return raw
}

// Scalar is the numeric-or-date coercion used by range comparisons and by
// =in=/=out= members. A date-shaped value becomes time.Time even when it
// could also be read as a number; otherwise numbers are parsed without the
// leading-zero guard Guess applies. Values that are neither stay strings.
func Scalar(raw string) any {
	trimmed := strings.TrimSpace(raw)

	if isoDate.MatchString(trimmed) {
		if t, ok := parseDate(trimmed); ok {
			return t
		}
	}
	if n, ok := parseNumber(trimmed); ok {
		return n
	}
	return raw
}

// parseNumber parses a decimal literal into int64 or float64.
func parseNumber(s string) (any, bool) {
	if !decimalNumber.MatchString(s) {
		return nil, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

// parseDate parses the ISO-8601 shapes accepted by isoDate.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func isBracketed(s string) bool {
	return (strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) ||
		(strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"))
}
