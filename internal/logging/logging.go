// FILE: lixenwraith/sitecore/internal/logging/logging.go

// Package logging builds the slog logger used by the sitecore CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Options holds configuration for the logger, usually read from the
// log.level and log.format config keys.
type Options struct {
	Level  string
	Format string // "text" or "json"
}

// New creates a slog.Logger writing to w. Unknown levels fall back to INFO
// and unknown formats to text.
func New(opts Options, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
