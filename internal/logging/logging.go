// Package logging configures the zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger at level writing to path. The terminal belongs to the
// game, so nothing is written to stdout or stderr. The returned closer must
// be called on exit.
func New(level, path string) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if lvl == zerolog.Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if path == "" {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := zerolog.New(file).Level(lvl).With().Timestamp().Logger()
	return logger, file, nil
}

// ParseLevel parses a level name. An empty name means disabled.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" || level == "off" {
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Disabled, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
