// Package coerce turns raw RSQL argument strings into typed filter values.
//
// Three coercions are offered:
//   - Guess: infers booleans, numbers, ISO-8601 dates and JSON literals
//     when no schema is available
//   - Scalar: the narrower numeric-or-date coercion used by range
//     comparisons and list members
//   - Field: schema-driven coercion to a field's declared type
//
// It also classifies wildcard patterns (see IsLike, IsStartsWith,
// IsEndsWith). All functions are pure.
package coerce
