package translate

import (
	"io"
	"log/slog"

	"github.com/roach88/rsqlwhere/internal/schema"
)

// Options configures a translation. A nil *Options behaves like the zero
// value.
type Options struct {
	// CaseInsensitive adds mode "insensitive" to startsWith, endsWith and
	// contains predicates.
	CaseInsensitive bool

	// Operators replaces the operator registry. Nil means DefaultOperators.
	// Use DefaultOperators().With(extra) to extend the defaults instead.
	Operators OperatorMap

	// Logger receives a debug record for every TranslateString call.
	// Nil discards.
	Logger *slog.Logger

	// Schema enables typed coercion. Nil means values are guessed.
	Schema *schema.Context
}

var (
	defaultOperators = DefaultOperators()
	discardLogger    = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func (o *Options) operators() OperatorMap {
	if o == nil || o.Operators == nil {
		return defaultOperators
	}
	return o.Operators
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}

func (o *Options) schema() *schema.Context {
	if o == nil {
		return nil
	}
	return o.Schema
}

func (o *Options) caseInsensitive() bool {
	return o != nil && o.CaseInsensitive
}
