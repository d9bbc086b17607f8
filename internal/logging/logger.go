// Package logging holds the logger shared by every relq package.  It is
// silent until a caller installs a real logger with relq.SetLogger.
package logging

import (
	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger.With().Str("pkg", "relq").Logger()
}

func Trace() *zerolog.Event { return Logger.Trace() }

func Debug() *zerolog.Event { return Logger.Debug() }

func Warn() *zerolog.Event { return Logger.Warn() }
