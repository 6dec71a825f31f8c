package harness

import "github.com/roach88/rsqlwhere/internal/store"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	Pass bool `json:"pass"`

	// Output is the canonical JSON of the translated filter. Empty when
	// translation failed.
	Output string `json:"output,omitempty"`

	// ErrorCode is the translation error code, if translation failed.
	ErrorCode string `json:"error_code,omitempty"`

	// Record is the history entry written for this run.
	Record store.Translation `json:"record"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// filter is the decoded output, used by assertions.
	filter any
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
