package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/rsqlwhere/internal/ir"
	"github.com/roach88/rsqlwhere/internal/rsql"
	"github.com/roach88/rsqlwhere/internal/schema"
	"github.com/roach88/rsqlwhere/internal/store"
	"github.com/roach88/rsqlwhere/internal/testutil"
	"github.com/roach88/rsqlwhere/internal/translate"
	"github.com/roach88/rsqlwhere/internal/where"
)

// Harness is the scenario execution engine.
// It translates one scenario against a fresh history store.
type Harness struct {
	store  *store.Store
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Create fresh in-memory history store with deterministic clock and IDs
// 2. Load the scenario's schema, if any
// 3. Translate the query and record the outcome
// 4. Compare against expect / expect_error and evaluate assertions
//
// A translation failure is an outcome, not an error: Run returns an error
// only when the scenario cannot be executed at all.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:",
		store.WithClock(testutil.NewDeterministicClock().Now),
		store.WithIDGenerator(testutil.NewSequentialIDGenerator(scenario.Name).Generate),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	return h.run(context.Background(), scenario)
}

func (h *Harness) run(ctx context.Context, scenario *Scenario) (*Result, error) {
	opts, err := h.options(scenario)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	rec := store.Translation{Source: scenario.Query}
	if opts.Schema != nil {
		rec.Model = opts.Schema.Model
	}

	filter, terr := translate.TranslateString(scenario.Query, opts)
	if terr != nil {
		code := ErrorCode(terr)
		if code == "" {
			return nil, fmt.Errorf("failed to translate: %w", terr)
		}
		result.ErrorCode = code
		rec.ErrorCode = code
	} else {
		out, err := where.MarshalCanonical(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		result.Output = string(out)
		result.filter = filter
		rec.Target = result.Output
	}

	result.Record, err = h.store.RecordTranslation(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to record translation: %w", err)
	}

	if err := checkExpectation(scenario, result); err != nil {
		return nil, err
	}
	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// options builds translate options from the scenario.
func (h *Harness) options(scenario *Scenario) (*translate.Options, error) {
	opts := &translate.Options{
		CaseInsensitive: scenario.CaseInsensitive,
		Logger:          h.logger,
	}

	if scenario.Schema == "" {
		return opts, nil
	}
	sc, err := schema.Load(scenario.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	if scenario.Model != "" {
		sc = sc.WithModel(scenario.Model)
	}
	opts.Schema = sc
	return opts, nil
}

// checkExpectation compares the outcome with expect or expect_error.
func checkExpectation(scenario *Scenario, result *Result) error {
	if scenario.ExpectError != "" {
		switch {
		case result.ErrorCode == "":
			result.AddError(fmt.Sprintf("expected error %s, got output %s", scenario.ExpectError, result.Output))
		case result.ErrorCode != scenario.ExpectError:
			result.AddError(fmt.Sprintf("expected error %s, got %s", scenario.ExpectError, result.ErrorCode))
		}
		return nil
	}

	if result.ErrorCode != "" {
		result.AddError(fmt.Sprintf("expected output, got error %s", result.ErrorCode))
		return nil
	}

	want, err := where.MarshalCanonical(scenario.Expect)
	if err != nil {
		return fmt.Errorf("failed to encode expect: %w", err)
	}
	if string(want) != result.Output {
		result.AddError(fmt.Sprintf("output mismatch\n  Expected: %s\n  Actual:   %s", want, result.Output))
	}
	return nil
}

// ErrorCode returns the scenario error code for a translation error, or ""
// for errors that are neither translation nor syntax errors.
func ErrorCode(err error) string {
	if code, ok := ir.CodeOf(err); ok {
		return string(code)
	}
	var syntaxErr *rsql.SyntaxError
	if errors.As(err, &syntaxErr) {
		return ErrCodeSyntax
	}
	return ""
}
