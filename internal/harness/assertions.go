package harness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/rsqlwhere/internal/ir"
	"github.com/roach88/rsqlwhere/internal/where"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Path     string // Path the assertion looked at
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Output   string // Full output for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s %s\n", e.Type, e.Path)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "\nOutput: %s\n", e.Output)
	return buf.String()
}

// EvaluateAssertions runs every assertion against the result's filter and
// returns the failure messages. Assertions on a failed translation always
// fail.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var failures []string
	for _, a := range assertions {
		if err := evaluateAssertion(result, a); err != nil {
			failures = append(failures, err.Error())
		}
	}
	return failures
}

func evaluateAssertion(result *Result, a Assertion) error {
	fail := func(expected, actual string) error {
		return &AssertionError{Type: a.Type, Path: a.Path, Expected: expected, Actual: actual, Output: result.Output}
	}

	if result.ErrorCode != "" {
		return fail("a translated filter", "error "+result.ErrorCode)
	}

	value, found := LookupPath(result.filter, a.Path)

	switch a.Type {
	case AssertPathExists:
		if !found {
			return fail("a value", "nothing")
		}
	case AssertPathAbsent:
		if found {
			return fail("nothing", canonical(value))
		}
	case AssertPathEquals:
		if !found {
			return fail(canonical(a.Value), "nothing")
		}
		if want, got := canonical(a.Value), canonical(value); want != got {
			return fail(want, got)
		}
	case AssertMemberCount:
		members, ok := value.([]ir.Filter)
		if !found || !ok {
			return fail(fmt.Sprintf("%d members", a.Count), "no member list")
		}
		if len(members) != a.Count {
			return fail(fmt.Sprintf("%d members", a.Count), fmt.Sprintf("%d members", len(members)))
		}
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
	return nil
}

// LookupPath walks a dotted path through nested filters. Numeric segments
// index member lists.
func LookupPath(root any, path string) (any, bool) {
	current := root
	for _, seg := range strings.Split(path, ".") {
		if obj, ok := ir.AsFilter(current); ok {
			next, exists := obj[seg]
			if !exists {
				return nil, false
			}
			current = next
			continue
		}

		list, ok := current.([]ir.Filter)
		if !ok {
			return nil, false
		}
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(list) {
			return nil, false
		}
		current = list[idx]
	}
	return current, true
}

func canonical(v any) string {
	out, err := where.MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
