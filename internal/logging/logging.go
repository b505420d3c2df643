// Package logging builds the application's slog loggers on top of the tint
// console handler, with a per-component style table.
package logging

import (
	"io"
	"log/slog"
	"math"

	"github.com/lmittmann/tint"
)

// New returns a logger writing colored, human-readable lines to w.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

// Discard returns a logger that drops everything. Used by tests and the TUI,
// which renders state itself.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
}

// Component derives a child logger whose lines carry the styled component
// name.
func Component(log *slog.Logger, name string) *slog.Logger {
	return log.With("comp", Render(name))
}
