package app

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a slog logger writing to w. JSON output is selected by
// LogFormat "json"; anything else yields the text handler.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg != nil {
		if lvl, err := cfg.Level(); err == nil {
			opts.Level = lvl
		}
		if strings.EqualFold(cfg.LogFormat, "json") {
			return slog.New(slog.NewJSONHandler(w, opts))
		}
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
