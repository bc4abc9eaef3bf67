// Package logger builds slog.Loggers from config strings so every entry
// point (server, CLI, tools) logs the same way.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a *slog.Logger writing to stderr.
// Level accepts "debug", "info", "warn", "error" (default "info").
// Format accepts "json" or "text" (default "text").
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with an explicit output writer, for tests and
// tools that capture or redirect log output.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a config string to a slog.Level. Unrecognized values
// fall back to Info rather than erroring; a typo in the config should
// not take logging down with it.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
