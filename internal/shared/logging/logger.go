// Package logging builds the slog logger the server writes through. The
// handler is picked once at startup from LOG_FORMAT and LOG_LEVEL and then
// shared via slog.SetDefault.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds the logging knobs surfaced through the environment.
type Config struct {
	// Level is the textual threshold: debug, info, warn or error.
	Level string
	// Format selects json output; anything else renders text.
	Format string
	// AddSource attaches file and line to every record.
	AddSource bool
}

// ParseLevel maps a textual level onto slog's scale. Unknown values fall
// back to info instead of failing startup.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "dbg":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	case "trace":
		// slog has no trace level; sit just below debug.
		return slog.LevelDebug - 2
	default:
		return slog.LevelInfo
	}
}

// New wires a logger for w, defaulting to stdout when no writer is given.
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level), AddSource: cfg.AddSource}
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
