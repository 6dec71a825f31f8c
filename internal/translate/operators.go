package translate

import (
	"maps"
	"strings"

	"github.com/roach88/rsqlwhere/internal/coerce"
	"github.com/roach88/rsqlwhere/internal/ir"
)

// OperatorFunc translates one comparison into a flat predicate keyed by the
// comparison's full selector (or {"NOT": {selector: ...}}). The translator
// nests the result along the selector's relation path afterwards.
//
// opts is never nil.
type OperatorFunc func(node ir.Comparison, opts *Options) (ir.Filter, error)

// OperatorMap maps comparison operator tokens to their handlers.
type OperatorMap map[string]OperatorFunc

// DefaultOperators returns a fresh copy of the built-in registry.
func DefaultOperators() OperatorMap {
	return OperatorMap{
		ir.OpEqual:          equal,
		ir.OpNotEqual:       notEqual,
		ir.OpGreater:        rangeOp(ir.KeyGt),
		ir.OpGreaterVerbose: rangeOp(ir.KeyGt),
		ir.OpGreaterEq:      rangeOp(ir.KeyGte),
		ir.OpGreaterEqVerb:  rangeOp(ir.KeyGte),
		ir.OpLess:           rangeOp(ir.KeyLt),
		ir.OpLessVerbose:    rangeOp(ir.KeyLt),
		ir.OpLessEq:         rangeOp(ir.KeyLte),
		ir.OpLessEqVerbose:  rangeOp(ir.KeyLte),
		ir.OpIn:             listOp(ir.KeyIn),
		ir.OpOut:            listOp(ir.KeyNotIn),
	}
}

// With returns a copy of m with extra added on top. Entries in extra win.
func (m OperatorMap) With(extra OperatorMap) OperatorMap {
	out := make(OperatorMap, len(m)+len(extra))
	maps.Copy(out, m)
	maps.Copy(out, extra)
	return out
}

// Lookup returns the handler registered for op.
func (m OperatorMap) Lookup(op string) (OperatorFunc, bool) {
	fn, ok := m[op]
	return fn, ok && fn != nil
}

func equal(node ir.Comparison, opts *Options) (ir.Filter, error) {
	raw := rawValue(node)
	if pattern, ok := patternPredicate(raw, opts); ok {
		return ir.Filter{node.Selector: pattern}, nil
	}

	v, err := coerceEquality(node.Selector, raw, opts)
	if err != nil {
		return nil, err
	}
	return ir.Filter{node.Selector: ir.Filter{ir.KeyEquals: v}}, nil
}

func notEqual(node ir.Comparison, opts *Options) (ir.Filter, error) {
	raw := rawValue(node)
	if pattern, ok := patternPredicate(raw, opts); ok {
		return ir.Filter{string(ir.Not): ir.Filter{node.Selector: pattern}}, nil
	}

	v, err := coerceEquality(node.Selector, raw, opts)
	if err != nil {
		return nil, err
	}
	return ir.Filter{node.Selector: ir.Filter{ir.KeyNot: v}}, nil
}

// rangeOp builds the handler for >, >=, < and <= and their verbose forms.
func rangeOp(key string) OperatorFunc {
	return func(node ir.Comparison, opts *Options) (ir.Filter, error) {
		raw := rawValue(node)

		field, err := opts.schema().ResolveField(node.Selector)
		if err != nil {
			return nil, err
		}

		var v any
		if field != nil && !field.IsList {
			if v, err = coerce.Field(field, raw); err != nil {
				return nil, err
			}
		} else {
			v = coerce.Scalar(raw)
		}
		return ir.Filter{node.Selector: ir.Filter{key: v}}, nil
	}
}

// listOp builds the handler for =in= and =out=.
func listOp(key string) OperatorFunc {
	return func(node ir.Comparison, opts *Options) (ir.Filter, error) {
		items := node.Values
		if !node.IsGroup() {
			items = strings.Split(node.Value, ",")
		}

		field, err := opts.schema().ResolveField(node.Selector)
		if err != nil {
			return nil, err
		}

		values, err := coerce.List(field, items)
		if err != nil {
			return nil, err
		}
		return ir.Filter{node.Selector: ir.Filter{key: values}}, nil
	}
}

// rawValue returns the comparison argument as a single string. Value groups
// are rejoined with commas.
func rawValue(node ir.Comparison) string {
	if node.IsGroup() {
		return strings.Join(node.Values, ",")
	}
	return node.Value
}

// patternPredicate builds a startsWith/endsWith/contains predicate when raw
// carries a wildcard marker.
func patternPredicate(raw string, opts *Options) (ir.Filter, bool) {
	key, ok := coerce.PatternKey(raw)
	if !ok {
		return nil, false
	}

	pred := ir.Filter{key: coerce.ConvertWildcards(raw)}
	if opts.caseInsensitive() {
		pred[ir.KeyMode] = ir.ModeInsensitive
	}
	return pred, true
}

func coerceEquality(selector, raw string, opts *Options) (any, error) {
	field, err := opts.schema().ResolveField(selector)
	if err != nil {
		return nil, err
	}
	return coerce.Value(field, raw)
}
