package relq

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/jonlawlor/relq/internal/logging"
)

// Queryable is any container that can produce references to its records.
// Types only need the method; there is nothing to register.
type Queryable[R any] interface {
	Refs() iter.Seq[*R]
}

// Of creates an eager query over a Queryable.
func Of[R any](c Queryable[R]) *Query[R] {
	return NewFrom(c.Refs())
}

// LazyOf creates a lazy query over a Queryable.
func LazyOf[R any](c Queryable[R]) LazyQuery[*R] {
	return LazyFrom(c.Refs())
}

// SetLogger installs the logger used for debug output from the engines.
// The default logger discards everything.
func SetLogger(logger zerolog.Logger) {
	logging.SetGlobalLogger(logger)
}
