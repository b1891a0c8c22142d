// Package logging builds the zerolog logger used by the server and CLI.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/config"
)

// New returns a logger writing to w at the configured level. Pretty
// output uses zerolog's console writer.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	if cfg.Level == "" {
		return zerolog.Nop(), fmt.Errorf("log level is required")
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
