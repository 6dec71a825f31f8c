package schema

import (
	"strings"

	"github.com/roach88/rsqlwhere/internal/ir"
)

// Relation quantifier segments. They select how a to-many relation is
// matched and name no field, so lookups skip them.
const (
	QuantifierSome  = "some"
	QuantifierNone  = "none"
	QuantifierEvery = "every"
)

// IsQuantifier reports whether segment is a relation quantifier.
func IsQuantifier(segment string) bool {
	switch segment {
	case QuantifierSome, QuantifierNone, QuantifierEvery:
		return true
	default:
		return false
	}
}

// ResolveField walks selector from the root model to its terminal field.
//
// Every segment but the last must be an object field; its Type names the
// model the walk continues in. Returns:
//   - MODEL_NOT_FOUND if the root or a related model is missing
//   - INVALID_FIELD_KIND if a relation hop goes through a non-object field
//   - nil, nil if any field along the path is unknown, or the terminal
//     field is unsupported (callers fall back to guessing)
//
// A nil Context resolves nothing.
func (c *Context) ResolveField(selector string) (*Field, error) {
	if c == nil {
		return nil, nil
	}

	model, ok := c.FindModel(c.Model)
	if !ok {
		return nil, ir.NewModelNotFoundError(c.Model)
	}

	segments := make([]string, 0, strings.Count(selector, ".")+1)
	for _, seg := range strings.Split(selector, ".") {
		if !IsQuantifier(seg) {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return nil, nil
	}

	last := len(segments) - 1
	for _, seg := range segments[:last] {
		field, ok := model.FindField(seg)
		if !ok {
			return nil, nil
		}
		if field.Kind != KindObject {
			return nil, ir.NewInvalidFieldKindError(selector, field.Name, string(field.Kind))
		}
		model, ok = c.FindModel(field.Type)
		if !ok {
			return nil, ir.NewModelNotFoundError(field.Type)
		}
	}

	field, ok := model.FindField(segments[last])
	if !ok || field.Kind == KindUnsupported {
		return nil, nil
	}
	return field, nil
}
