// Package logging owns the debug logger. Stdout belongs to the UI, so
// logs only go to a file, and only when one is configured.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// Init routes debug logs to the given file. An empty path keeps the
// logger disabled.
func Init(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logger = zerolog.New(f).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()
	return nil
}

// L returns the package logger.
func L() *zerolog.Logger {
	return &logger
}
