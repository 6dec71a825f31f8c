// Package harness runs conformance scenarios against the translator.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	query: "name==John;age>18"
//	schema: schemas/blog.yaml   # optional, relative to the scenario file
//	model: User                 # optional, overrides the schema's root model
//	case_insensitive: false
//	expect:                     # expected filter, compared as canonical JSON
//	  AND:
//	    - name: { equals: John }
//	      age: { gt: 18 }
//	assertions:
//	  - type: path_equals
//	    path: AND.0.age.gt
//	    value: 18
//
// A scenario sets exactly one of expect or expect_error. expect_error
// holds a translation error code such as UNKNOWN_OPERATOR, or
// SYNTAX_ERROR for queries the parser rejects.
//
// # Determinism
//
// Each run records the translation in a fresh in-memory history store with
// a deterministic clock and sequential IDs, so the same scenario always
// produces byte-identical results. RunWithGolden compares the canonical
// JSON snapshot of a run against testdata/golden/{name}.golden:
//
//	go test ./internal/harness -update
package harness
