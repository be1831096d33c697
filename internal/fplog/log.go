// Package fplog builds the zerolog.Logger the engine and settings
// packages use for the handful of diagnostic points the spec calls
// out (pan-skip on overflow, malformed restore input). Callers that
// never opt in via SetLogger get a disabled logger and pay nothing.
package fplog

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger tagged with component, the
// shape a CLI harness or future GUI collaborator would wire up.
func New(component string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
