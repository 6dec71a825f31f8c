// Package where builds and combines Prisma-style filter trees.
//
// It holds the pieces of translation that only reshape ir.Filter values:
//   - ParseSelector / ResolveRelationPath turn a flat predicate keyed by a
//     dotted selector into nested relation objects
//   - Merge / MergeDeep combine the filters of the two operands of a logic
//     node
//   - MarshalCanonical serializes a filter deterministically
//
// # Merge Rules
//
// Merge looks for an AND key, then an OR key, on either operand; the first
// key found decides the shape:
//
//	both operands carry it     [left, right]
//	only the left carries it   one entry per left member, each merged with right
//	only the right carries it  [MergeDeep(left, right)]
//	neither carries it         [MergeDeep(left, right)]
//
// MergeDeep merges nested objects recursively; on any other conflict the
// right operand wins. An operand carrying both AND and OR at top level is
// not a supported input.
package where
