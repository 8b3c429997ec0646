package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Enabled reports whether logging is switched on.
func (l LogConfig) Enabled() bool {
	return l.Level != ""
}

// SlogLevel maps Level to a slog level. Unknown values map to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger builds the process logger. Output goes to File when set, else
// to fallback; a nil fallback or disabled logging discards everything.
// The returned close func releases the log file, if any.
func NewLogger(l LogConfig, fallback io.Writer) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if !l.Enabled() {
		return slog.New(slog.DiscardHandler), noop, nil
	}

	w := fallback
	closeFn := noop
	if l.File != "" {
		if err := os.MkdirAll(filepath.Dir(l.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		return slog.New(slog.DiscardHandler), noop, nil
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.SlogLevel()})
	return slog.New(handler), closeFn, nil
}
