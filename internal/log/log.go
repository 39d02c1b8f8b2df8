// Package log configures the process-wide slog logger.
//
// The terminal viewer owns stdout and stderr while it runs, so it logs to a
// rotating file (or nowhere). One-shot CLI commands log to stderr.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
//   - LIGHTBOX_LOG_LEVEL=debug|info|warn|error
//   - LIGHTBOX_LOG_FILE=<path> (rotated)
type Options struct {
	Level string
	File  string
	// Stderr sends records to stderr when no file is set
	Stderr bool
}

// FromEnv builds Options from environment variables.
func FromEnv() Options {
	return Options{
		Level: os.Getenv("LIGHTBOX_LOG_LEVEL"),
		File:  os.Getenv("LIGHTBOX_LOG_FILE"),
	}
}

// Init installs the default slog logger and returns a closer for the
// underlying writer.
func Init(opts Options) (*slog.Logger, io.Closer) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)

	switch {
	case strings.TrimSpace(opts.File) != "":
		rot := &lj.Logger{Filename: opts.File, MaxSize: 5, MaxBackups: 3, MaxAge: 14}
		w, closer = rot, rot
	case opts.Stderr:
		w = os.Stderr
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(opts.Level)}))
	slog.SetDefault(logger)
	return logger, closer
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
