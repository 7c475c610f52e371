// Package logger builds the *slog.Logger shared by gloss commands. Records
// are rendered by a charmbracelet/log handler on the given writer.
package logger

import (
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/leeovery/gloss/internal/config"
)

// New creates a logger for cfg writing to w (normally stderr).
//
// Format "json" produces one JSON object per record; anything else produces
// human-readable text. Level is one of debug, info, warn, error
// (case-insensitive) and defaults to info. verbose forces debug.
func New(cfg config.LogConfig, w io.Writer, verbose bool) *slog.Logger {
	level := parseLevel(cfg.Level)
	if verbose {
		level = charmlog.DebugLevel
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Prefix:          "gloss",
		ReportTimestamp: strings.EqualFold(cfg.Format, "json"),
	})
	if strings.EqualFold(cfg.Format, "json") {
		handler.SetFormatter(charmlog.JSONFormatter)
	} else {
		handler.SetFormatter(charmlog.TextFormatter)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func parseLevel(s string) charmlog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
