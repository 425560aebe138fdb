// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every log line as the "service" field.
const ServiceName = "ap-savings-service"

// Init configures the global logger to write to stderr.
// Unknown or empty levels fall back to info.
func Init(level string, pretty bool) {
	InitWithWriter(os.Stderr, level, pretty)
}

// InitWithWriter configures the global logger to write to w.
func InitWithWriter(w io.Writer, level string, pretty bool) {
	zerolog.SetGlobalLevel(parseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &log.Logger
}
