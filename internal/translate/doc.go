// Package translate converts RSQL expression trees into nested where
// filters.
//
// Comparison nodes are dispatched through an OperatorMap to produce a flat
// predicate keyed by the full selector, which is then nested along the
// selector's relation path. Logic nodes translate both operands and combine
// them with where.Merge under the node's combinator:
//
//	name==John;age>18  ->  {"AND": [{"name": {"equals": "John"}, "age": {"gt": 18}}]}
//
// Translation is pure: the input tree is never modified and nothing is kept
// between calls, so a single Options value may be shared across goroutines.
package translate
