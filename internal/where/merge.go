package where

import "github.com/roach88/rsqlwhere/internal/ir"

// combinators are checked in this order by Merge.
var combinators = []string{string(ir.And), string(ir.Or)}

// Merge combines the filters translated from the two operands of a logic
// node into the member list of that node's combinator. See the package
// documentation for the rules.
func Merge(left, right ir.Filter) []ir.Filter {
	for _, key := range combinators {
		leftGroup, inLeft := left[key]
		_, inRight := right[key]

		switch {
		case inLeft && inRight:
			return []ir.Filter{left, right}

		case inLeft:
			members, ok := ir.AsFilterList(leftGroup)
			if !ok {
				// Members that are not objects (only custom operators emit
				// these) are kept as a value of left, and left merges as one.
				return []ir.Filter{MergeDeep(left, right)}
			}
			merged := make([]ir.Filter, 0, len(members))
			for _, member := range members {
				merged = append(merged, MergeDeep(member, right))
			}
			return merged

		case inRight:
			return []ir.Filter{MergeDeep(left, right)}
		}
	}

	return []ir.Filter{MergeDeep(left, right)}
}

// MergeDeep returns base with over merged into it.
//
// When both sides hold an object under the same key the objects are merged
// recursively; any other conflict is won by over. Neither input is
// modified; untouched nested values are shared with the inputs.
func MergeDeep(base, over ir.Filter) ir.Filter {
	out := make(ir.Filter, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}

	for k, overVal := range over {
		baseVal, exists := out[k]
		if !exists {
			out[k] = overVal
			continue
		}
		baseObj, baseIsObj := ir.AsFilter(baseVal)
		overObj, overIsObj := ir.AsFilter(overVal)
		if baseIsObj && overIsObj {
			out[k] = MergeDeep(baseObj, overObj)
			continue
		}
		out[k] = overVal
	}

	return out
}
