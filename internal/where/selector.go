package where

import (
	"strings"

	"github.com/roach88/rsqlwhere/internal/ir"
	"github.com/roach88/rsqlwhere/internal/schema"
)

// Selector is a dotted selector split at its relation quantifier.
type Selector struct {
	// Relations are the relation segments before the quantifier, or every
	// segment but the last when there is no quantifier.
	Relations []string

	// Quantifier is "some", "none", "every" or empty.
	Quantifier string

	// Field is the leaf field path. After a quantifier it may stay dotted.
	Field string
}

// ParseSelector splits selector on dots.
//
//	"name"                    Field: "name"
//	"address.city"            Relations: [address], Field: "city"
//	"posts.some.author.name"  Relations: [posts], Quantifier: "some", Field: "author.name"
func ParseSelector(selector string) Selector {
	segments := strings.Split(selector, ".")

	for i, seg := range segments {
		if schema.IsQuantifier(seg) {
			return Selector{
				Relations:  segments[:i],
				Quantifier: seg,
				Field:      strings.Join(segments[i+1:], "."),
			}
		}
	}

	last := len(segments) - 1
	return Selector{
		Relations: segments[:last],
		Field:     segments[last],
	}
}

// Path returns the selector's segments in nesting order, quantifier
// included. Empty segments are kept, so "a." has the path [a, ""].
func (s Selector) Path() []string {
	path := make([]string, 0, len(s.Relations)+2)
	path = append(path, s.Relations...)
	if s.Quantifier != "" {
		path = append(path, s.Quantifier)
	}
	if s.Field != "" || s.Quantifier == "" {
		path = append(path, strings.Split(s.Field, ".")...)
	}
	return path
}

// ResolveRelationPath rebuilds predicate, keyed by the full selector,
// as right-nested single-key objects along the selector's path:
//
//	ResolveRelationPath("a.b", {"a.b": {"equals": 1}})  ->  {"a": {"b": {"equals": 1}}}
//
// A predicate of the form {"NOT": {selector: ...}} keeps its NOT around the
// nested chain. Single-segment selectors, and predicates not keyed by the
// selector, are returned unchanged.
func ResolveRelationPath(selector string, predicate ir.Filter) ir.Filter {
	path := ParseSelector(selector).Path()
	if len(path) <= 1 {
		return predicate
	}

	if len(predicate) == 1 {
		if inner, ok := ir.AsFilter(predicate[string(ir.Not)]); ok {
			if nested, ok := nest(path, selector, inner); ok {
				return ir.Filter{string(ir.Not): nested}
			}
			return predicate
		}
	}

	if nested, ok := nest(path, selector, predicate); ok {
		return nested
	}
	return predicate
}

// nest moves flat[selector] to the innermost level of path.
func nest(path []string, selector string, flat ir.Filter) (ir.Filter, bool) {
	value, ok := flat[selector]
	if !ok {
		return nil, false
	}

	var acc any = value
	for i := len(path) - 1; i >= 0; i-- {
		acc = ir.Filter{path[i]: acc}
	}
	return acc.(ir.Filter), true
}
