package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/rsqlwhere/internal/harness"
	"github.com/roach88/rsqlwhere/internal/store"
	"github.com/roach88/rsqlwhere/internal/translate"
	"github.com/roach88/rsqlwhere/internal/where"
)

// TranslateOptions holds flags for the translate command.
type TranslateOptions struct {
	*RootOptions
	Schema          string // schema file (.json, .yaml, .yml, .cue)
	Model           string // root model override
	CaseInsensitive bool
	History         string // history database path; empty disables recording
}

// TranslateResult is the JSON payload of a successful translation.
type TranslateResult struct {
	Query  string          `json:"query"`
	Filter json.RawMessage `json:"filter"`
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TranslateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "translate <query>",
		Short: "Translate an RSQL query into a where filter",
		Long: `Translate an RSQL query into a nested where filter and print it as
canonical JSON.

Without --schema values are type-guessed. With --schema, selectors are
resolved against the schema's root model (or --model) and values are
coerced to the declared field types.

Exit codes:
  0 - Translated
  1 - Query could not be translated
  2 - Command error (unreadable schema, history failure, etc.)

Examples:
  rsqlwhere translate 'name==John;age>18'
  rsqlwhere translate 'posts.some.title==*go*' --schema schema.yaml
  rsqlwhere translate 'role==ADMIN' --schema dmmf.json --model User --format json
  rsqlwhere translate 'name==*jo*' --case-insensitive --history history.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Schema, "schema", "", "schema file for typed coercion")
	cmd.Flags().StringVar(&opts.Model, "model", "", "root model (overrides the schema's)")
	cmd.Flags().BoolVar(&opts.CaseInsensitive, "case-insensitive", false, "case-insensitive pattern matching")
	cmd.Flags().StringVar(&opts.History, "history", "", "record the translation in this history database")

	return cmd
}

func runTranslate(ctx context.Context, opts *TranslateOptions, query string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   uuid.NewString(),
	}
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr()).With("trace_id", formatter.TraceID)

	if opts.Model != "" && opts.Schema == "" {
		formatter.Error(ErrCodeGeneric, "--model requires --schema", nil)
		return NewExitError(ExitCommandError, "--model requires --schema")
	}

	topts := &translate.Options{
		CaseInsensitive: opts.CaseInsensitive,
		Logger:          logger,
	}
	if opts.Schema != "" {
		sc, err := LoadSchema(opts.Schema, opts.Model)
		if err != nil {
			return outputLoadError(formatter, err)
		}
		formatter.VerboseLog("Loaded schema %s (root model %s)", opts.Schema, sc.Model)
		topts.Schema = sc
	}

	filter, terr := translate.TranslateString(query, topts)

	rec := store.Translation{Source: query}
	if topts.Schema != nil {
		rec.Model = topts.Schema.Model
	}

	var target []byte
	if terr == nil {
		var err error
		target, err = where.MarshalCanonical(filter)
		if err != nil {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitFailure, "failed to encode filter", err)
		}
		rec.Target = string(target)
	} else {
		rec.ErrorCode = harness.ErrorCode(terr)
	}

	if opts.History != "" {
		if err := recordHistory(ctx, opts.History, rec); err != nil {
			formatter.Error(ErrCodeHistory, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to record history", err)
		}
		formatter.VerboseLog("Recorded translation in %s", opts.History)
	}

	if terr != nil {
		formatter.Error(MapTranslationError(terr), terr.Error(), errorDetails(terr))
		return WrapExitError(ExitFailure, "translation failed", terr)
	}

	if opts.Format == "json" {
		return formatter.Success(TranslateResult{Query: query, Filter: target})
	}
	return formatter.Success(string(target))
}

func recordHistory(ctx context.Context, path string, rec store.Translation) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	_, err = st.RecordTranslation(ctx, rec)
	return err
}

// outputLoadError reports a schema load failure.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		formatter.Error(loadErr.Code, loadErr.Error(), nil)
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to load schema %s", loadErr.Path), err)
	}
	formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, "failed to load schema", err)
}
