package ir

// Filter is a Prisma-style where input.
//
// Keys are field names (holding a predicate object or, for relations, a
// nested Filter) or one of the combinator keys AND, OR and NOT. Combinator
// values are either a Filter or a []Filter.
type Filter map[string]any

// Predicate keys emitted by the default operators.
const (
	KeyEquals     = "equals"
	KeyNot        = "not"
	KeyGt         = "gt"
	KeyGte        = "gte"
	KeyLt         = "lt"
	KeyLte        = "lte"
	KeyIn         = "in"
	KeyNotIn      = "notIn"
	KeyStartsWith = "startsWith"
	KeyEndsWith   = "endsWith"
	KeyContains   = "contains"
	KeyMode       = "mode"
)

// ModeInsensitive is the value of the mode key for case-insensitive
// pattern predicates.
const ModeInsensitive = "insensitive"

// AsFilter returns v as a Filter when it is an object value.
// Both Filter and map[string]any qualify.
func AsFilter(v any) (Filter, bool) {
	switch m := v.(type) {
	case Filter:
		return m, true
	case map[string]any:
		return Filter(m), true
	default:
		return nil, false
	}
}

// AsFilterList returns the members of a combinator value.
// A single object is returned as a one-element list.
func AsFilterList(v any) ([]Filter, bool) {
	switch list := v.(type) {
	case []Filter:
		return list, true
	case []any:
		out := make([]Filter, 0, len(list))
		for _, elem := range list {
			f, ok := AsFilter(elem)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	default:
		if f, ok := AsFilter(v); ok {
			return []Filter{f}, true
		}
		return nil, false
	}
}
