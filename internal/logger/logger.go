// Package logger configures the global zerolog logger used by the CLI.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "15:04:05.000"

// Init sets the global level and a console writer on w, and returns the logger.
// Unknown levels fall back to info.
func Init(level string, w io.Writer, noColor bool) zerolog.Logger {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    noColor,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	log.Debug().Str("level", lvl.String()).Msg("logger initialized")
	return log.Logger
}

// Get returns the global logger instance.
func Get() zerolog.Logger {
	return log.Logger
}
