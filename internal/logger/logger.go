// Package logger configures the service-wide structured logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger writing JSON lines to stdout. Unknown
// level strings fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "premium-prediction-service").
		Logger()
}
