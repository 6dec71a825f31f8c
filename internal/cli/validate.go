package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult summarises a valid schema.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Model  string   `json:"model"`
	Models []string `json:"models"`
	Fields int      `json:"fields"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "validate <schema-file>",
		Short: "Validate a schema file",
		Long: `Validate a schema file without translating anything.

Checks that the file parses, that model and field declarations are
well-formed, and that the root model (or --model) exists.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], model, cmd)
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "root model (overrides the schema's)")

	return cmd
}

func runValidate(opts *RootOptions, path, model string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	sc, err := LoadSchema(path, model)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			formatter.Error(loadErr.Code, loadErr.Message, nil)
		} else {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
		}
		return WrapExitError(ExitFailure, "schema is invalid", err)
	}

	result := ValidationResult{Valid: true, Model: sc.Model}
	for _, m := range sc.Models {
		formatter.VerboseLog("Model %s: %d field(s)", m.Name, len(m.Fields))
		result.Models = append(result.Models, m.Name)
		result.Fields += len(m.Fields)
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("✓ Schema valid: %d model(s), %d field(s), root model %s",
		len(result.Models), result.Fields, result.Model))
}
