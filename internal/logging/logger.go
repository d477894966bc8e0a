// Package logging builds the zerolog logger used for diagnostics. All
// diagnostics go to stderr; standard output carries only the matrix.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Format is "console" or "json".
	Format string
	// Quiet drops progress and informational messages.
	Quiet bool
	// Level overrides the minimum level ("debug", "info", "warn", "error").
	Level string
}

// New returns a logger writing to w.
func New(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level: %s", cfg.Level)
		}
		level = l
	}
	if cfg.Quiet && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}

	var out io.Writer
	switch strings.ToLower(cfg.Format) {
	case "", "console", "text":
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	case "json":
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	logger := zerolog.New(out).Level(level)
	if strings.ToLower(cfg.Format) == "json" {
		logger = logger.With().Timestamp().Logger()
	}
	return logger, nil
}

// Discard returns a logger that drops everything (useful for tests).
func Discard() zerolog.Logger { return zerolog.Nop() }
