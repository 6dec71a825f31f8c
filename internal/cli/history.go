package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/width"

	"github.com/roach88/rsqlwhere/internal/store"
)

// maxQueryWidth bounds the QUERY column of the history table, in terminal
// cells.
const maxQueryWidth = 60

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB    string
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded translations",
		Long: `List translations recorded with translate --history, newest first.

Examples:
  rsqlwhere history --db history.db
  rsqlwhere history --db history.db --limit 5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to history database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of records (0 for all)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	// Don't create a database just to list it
	if _, err := os.Stat(opts.DB); os.IsNotExist(err) {
		formatter.Error(ErrCodeNotFound, fmt.Sprintf("history database not found: %s", opts.DB), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("history database not found: %s", opts.DB))
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		formatter.Error(ErrCodeHistory, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open history", err)
	}
	defer st.Close()

	records, err := st.ListTranslations(cmd.Context(), opts.Limit)
	if err != nil {
		formatter.Error(ErrCodeHistory, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to list history", err)
	}
	formatter.VerboseLog("Read %d record(s) from %s", len(records), opts.DB)

	if opts.Format == "json" {
		return formatter.Success(records)
	}
	return formatter.Success(formatHistory(records))
}

// formatHistory renders records as an aligned table.
func formatHistory(records []store.Translation) string {
	if len(records) == 0 {
		return "No translations recorded."
	}

	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tCREATED\tSTATUS\tQUERY")
	for _, r := range records {
		status := "ok"
		if r.Failed() {
			status = r.ErrorCode
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Seq, r.CreatedAt.Format(time.RFC3339), status, truncateQuery(r.Source, maxQueryWidth))
	}
	w.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}

// truncateQuery shortens q to at most maxCells terminal cells, ending it
// with an ellipsis when anything was cut.
func truncateQuery(q string, maxCells int) string {
	if displayWidth(q) <= maxCells {
		return q
	}

	cells := 0
	for i, r := range q {
		w := runeWidth(r)
		if cells+w > maxCells-1 {
			return q[:i] + "…"
		}
		cells += w
	}
	return q
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

// runeWidth counts East Asian wide and fullwidth runes as two cells.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
