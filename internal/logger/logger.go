// Package logger provides the module logger. By default it writes
// human-readable output to stdout; hosts embedding the library can redirect
// or disable it.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

// Logger returns the module logger.
func Logger() zerolog.Logger {
	return logger
}

// SetOutput changes the destination of the log output.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Disable turns logging off.
func Disable() {
	logger = zerolog.Nop()
}
