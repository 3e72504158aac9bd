package shared

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the diagnostics logger. Debug lines are only emitted when debug is set.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
