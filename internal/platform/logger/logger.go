package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a structured logger writing to stdout: JSON in production,
// text elsewhere.
func New(level slog.Level, production bool) *slog.Logger {
	return NewWithWriter(os.Stdout, level, production)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level, production bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if production {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
