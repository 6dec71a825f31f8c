package coerce

import (
	"strings"

	"github.com/roach88/rsqlwhere/internal/ir"
)

// Wildcard is the RSQL pattern marker.
const Wildcard = "*"

// IsLike reports whether v is a "contains" pattern (*v*).
func IsLike(v string) bool {
	return strings.HasPrefix(v, Wildcard) && strings.HasSuffix(v, Wildcard)
}

// IsStartsWith reports whether v is a "starts with" pattern (*v).
func IsStartsWith(v string) bool {
	return strings.HasPrefix(v, Wildcard) && !strings.HasSuffix(v, Wildcard)
}

// IsEndsWith reports whether v is an "ends with" pattern (v*).
func IsEndsWith(v string) bool {
	return !strings.HasPrefix(v, Wildcard) && strings.HasSuffix(v, Wildcard)
}

// PatternKey returns the predicate key for a wildcard value.
// ok is false when v carries no marker at either end.
func PatternKey(v string) (key string, ok bool) {
	switch {
	case IsStartsWith(v):
		return ir.KeyStartsWith, true
	case IsEndsWith(v):
		return ir.KeyEndsWith, true
	case IsLike(v):
		return ir.KeyContains, true
	default:
		return "", false
	}
}

// ConvertWildcards strips the marker from whichever ends carry it.
// Markers inside the value are kept.
func ConvertWildcards(v string) string {
	v = strings.TrimPrefix(v, Wildcard)
	return strings.TrimSuffix(v, Wildcard)
}
