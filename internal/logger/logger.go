// Package logger builds the structured logger shared by the CLI, the TUI and
// the news proxy.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Environments recognised by New.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// New returns a logger for env writing to w. Local uses a text handler, dev
// and prod emit JSON. level overrides the environment default when it names
// a valid slog level.
func New(env, level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFor(env, level)}

	var h slog.Handler
	switch env {
	case EnvDev, EnvProd:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// OpenFile opens (or creates) the log file at path for appending. The TUI owns
// the terminal, so interactive sessions log here instead of stderr.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func levelFor(env, level string) slog.Level {
	if level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err == nil {
			return l
		}
	}
	if env == EnvProd {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
