// Package logger configures the process-wide structured logger. The TUI owns
// the terminal, so logs go to a file (or nowhere) rather than stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds a logger at the given level. An empty file discards output;
// "-" writes to stderr, which is only useful for non-TUI commands.
func Setup(level, file string) (*slog.Logger, error) {
	var w io.Writer
	switch file {
	case "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
