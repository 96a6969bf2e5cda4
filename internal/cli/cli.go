// Package cli implements the choicekit command-line interface.
//
// Each command loads a TOML instance file and runs one rule from the
// library packages:
//   - match: deferred acceptance or the welfare-optimal stable matching
//   - vote: positional scoring rules, STV, Copeland
//   - allocate: serial dictatorship and probabilistic serial
//   - distort: distortion of a rule, and the instance-optimal bound
//
// All commands support --verbose (-v) for debug-level logging to
// stderr; results go to stdout.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w, filtered at level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
