// Package logging builds the application logger from the logging configuration.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-flight/engine/config"
	"github.com/rs/zerolog"
)

// Level maps a configured level name to a zerolog level. Unknown names fall back
// to info.
//
// Parameters:
//   - name: the level name, case-insensitive
//
// Returns:
//   - zerolog.Level: the level
func Level(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger writing to stdout.
//
// Parameters:
//   - cfg: the logging section
//
// Returns:
//   - zerolog.Logger: the logger
func New(cfg config.LoggingConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter builds a logger writing to out: JSON lines when the format is
// "json", colored console output otherwise.
//
// Parameters:
//   - cfg: the logging section
//   - out: the destination
//
// Returns:
//   - zerolog.Logger: the logger
func NewWithWriter(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	w := out
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(Level(cfg.Level)).With().Timestamp().Logger()
}
