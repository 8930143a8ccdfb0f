// Package logging builds the slog logger used by enumgen and hands it to the
// enum registry.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"enumcore/internal/config"
	"enumcore/pkg/enum"
)

// New returns a logger writing to w with the configured handler.
func New(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		return nil, fmt.Errorf("logging: unknown level %q", cfg.Level)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", config.FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case config.FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
}

// Install builds a logger like New and makes it the registry logger.
func Install(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	l, err := New(w, cfg)
	if err != nil {
		return nil, err
	}
	enum.SetLogger(l)
	return l, nil
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
