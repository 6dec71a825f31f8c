package translate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/roach88/rsqlwhere/internal/ir"
	"github.com/roach88/rsqlwhere/internal/rsql"
	"github.com/roach88/rsqlwhere/internal/where"
)

// Translate converts node into a where filter.
//
// Errors are *ir.Error for translation failures:
//   - UNKNOWN_NODE_TYPE for nil or unsupported nodes
//   - UNKNOWN_OPERATOR for operators missing from the registry
//   - coercion errors from the schema-driven path
//
// Translation stops at the first error; no partial filter is returned.
func Translate(node ir.Node, opts *Options) (ir.Filter, error) {
	if opts == nil {
		opts = &Options{}
	}
	return translateNode(node, opts)
}

// TranslateString parses query as RSQL and translates it. Syntax errors are
// returned as *rsql.SyntaxError.
func TranslateString(query string, opts *Options) (ir.Filter, error) {
	if opts == nil {
		opts = &Options{}
	}

	node, err := rsql.Parse(query)
	if err != nil {
		return nil, err
	}

	filter, err := translateNode(node, opts)
	if err != nil {
		return nil, err
	}

	logger := opts.logger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return filter, nil
	}
	if target, err := where.MarshalCanonical(filter); err == nil {
		logger.Debug("translated rsql query", "source", query, "target", string(target))
	} else {
		logger.Debug("translated rsql query", "source", query, "error", err)
	}
	return filter, nil
}

func translateNode(node ir.Node, opts *Options) (ir.Filter, error) {
	switch n := node.(type) {
	case ir.Comparison:
		return translateComparison(n, opts)
	case *ir.Comparison:
		if n == nil {
			return nil, ir.NewUnknownNodeTypeError(node)
		}
		return translateComparison(*n, opts)
	case ir.Logic:
		return translateLogic(n, opts)
	case *ir.Logic:
		if n == nil {
			return nil, ir.NewUnknownNodeTypeError(node)
		}
		return translateLogic(*n, opts)
	default:
		return nil, ir.NewUnknownNodeTypeError(node)
	}
}

func translateComparison(node ir.Comparison, opts *Options) (ir.Filter, error) {
	fn, ok := opts.operators().Lookup(node.Operator)
	if !ok {
		return nil, ir.NewUnknownOperatorError(node.Selector, node.Operator)
	}

	flat, err := fn(node, opts)
	if err != nil {
		return nil, withSelector(err, node.Selector)
	}
	return where.ResolveRelationPath(node.Selector, flat), nil
}

func translateLogic(node ir.Logic, opts *Options) (ir.Filter, error) {
	switch node.Operator {
	case ir.And, ir.Or:
	default:
		return nil, ir.NewUnknownNodeTypeError(node)
	}

	left, err := translateNode(node.Left, opts)
	if err != nil {
		return nil, err
	}
	right, err := translateNode(node.Right, opts)
	if err != nil {
		return nil, err
	}

	return ir.Filter{string(node.Operator): where.Merge(left, right)}, nil
}

// withSelector records selector on translation errors raised below the
// operator layer, where the selector is not known.
func withSelector(err error, selector string) error {
	var irErr *ir.Error
	if errors.As(err, &irErr) && irErr.Selector == "" {
		cp := *irErr
		cp.Selector = selector
		return &cp
	}
	return err
}
