package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: one query, the options it
// is translated with, and the expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Query is the RSQL text to translate.
	Query string `yaml:"query"`

	// Schema is an optional schema file path. Relative paths are resolved
	// against the scenario file's directory by LoadScenario.
	Schema string `yaml:"schema,omitempty"`

	// Model overrides the schema's root model.
	Model string `yaml:"model,omitempty"`

	// CaseInsensitive enables the insensitive match mode.
	CaseInsensitive bool `yaml:"case_insensitive,omitempty"`

	// Expect is the expected filter. Compared after canonical JSON encoding,
	// so YAML integers match int64 output and YAML timestamps match
	// time.Time output.
	Expect map[string]any `yaml:"expect,omitempty"`

	// ExpectError is the expected error code.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions are extra checks against the translated filter.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates one location in the translated filter.
type Assertion struct {
	// Type specifies the assertion type:
	// - "path_exists": Path resolves to a value
	// - "path_absent": Path resolves to nothing
	// - "path_equals": Path resolves to Value
	// - "member_count": Path resolves to a list of Count members
	Type string `yaml:"type"`

	// Path is a dotted path into the filter. Numeric segments index lists.
	Path string `yaml:"path"`

	// Value is the expected value (used by path_equals).
	Value any `yaml:"value,omitempty"`

	// Count is the expected list length (used by member_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertPathExists  = "path_exists"
	AssertPathAbsent  = "path_absent"
	AssertPathEquals  = "path_equals"
	AssertMemberCount = "member_count"
)

// ErrCodeSyntax is the expect_error code for parser failures.
const ErrCodeSyntax = "SYNTAX_ERROR"

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
//
// A relative schema path is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving the schema path relative to the provided base path.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Schema != "" && !filepath.IsAbs(scenario.Schema) && basePath != "" {
		scenario.Schema = filepath.Join(basePath, scenario.Schema)
	}
	return scenario, nil
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Query == "" {
		return fmt.Errorf("query is required")
	}

	switch {
	case s.Expect != nil && s.ExpectError != "":
		return fmt.Errorf("expect and expect_error are mutually exclusive")
	case s.Expect == nil && s.ExpectError == "":
		return fmt.Errorf("one of expect or expect_error is required")
	}

	if s.Model != "" && s.Schema == "" {
		return fmt.Errorf("model requires schema")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}
	if a.Path == "" {
		return fmt.Errorf("assertions[%d]: path is required", index)
	}

	switch a.Type {
	case AssertPathExists, AssertPathAbsent:
	case AssertPathEquals:
		if a.Value == nil {
			return fmt.Errorf("assertions[%d]: value is required for path_equals", index)
		}
	case AssertMemberCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for member_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
