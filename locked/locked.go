// Package locked queries records that live behind their own locks.  Each
// record is locked only while one predicate or copy runs on it, so a query
// over many cells never holds more than one lock and sees each record as it
// was at that moment; there is no consistency across records.
//
// A cell whose update panicked is poisoned.  Poisoned cells are treated as
// absent: they match nothing and are left out of every result.
package locked

import (
	"iter"
	"sync"
	"sync/atomic"

	"github.com/jonlawlor/relq/internal/logging"
)

// Reader is a record guarded by a lock.  Read runs fn with the lock held and
// reports whether it could; it cannot when the cell is poisoned.  fn must
// not keep the reference after it returns.
type Reader[T any] interface {
	Read(fn func(v *T)) bool
}

// RWCell guards a record with a reader/writer lock, so many readers can look
// at it at once.
type RWCell[T any] struct {
	mu       sync.RWMutex
	val      T
	poisoned atomic.Bool
}

// NewRW creates a reader/writer guarded cell holding v.
func NewRW[T any](v T) *RWCell[T] {
	return &RWCell[T]{val: v}
}

// Read runs fn under the read lock.
func (c *RWCell[T]) Read(fn func(v *T)) bool {
	if c.poisoned.Load() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	// an update may have panicked while we waited for the lock
	if c.poisoned.Load() {
		return false
	}
	fn(&c.val)
	return true
}

// Update runs fn under the write lock.  If fn panics the cell is poisoned
// and the panic continues.
func (c *RWCell[T]) Update(fn func(v *T)) bool {
	if c.poisoned.Load() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned.Load() {
		return false
	}
	defer poisonOnPanic(&c.poisoned)
	fn(&c.val)
	return true
}

// Poisoned reports whether an update of the cell has panicked.
func (c *RWCell[T]) Poisoned() bool {
	return c.poisoned.Load()
}

// Cell guards a record with a plain mutex; readers exclude each other.
type Cell[T any] struct {
	mu       sync.Mutex
	val      T
	poisoned atomic.Bool
}

// New creates a mutex guarded cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{val: v}
}

// Read runs fn under the lock.
func (c *Cell[T]) Read(fn func(v *T)) bool {
	if c.poisoned.Load() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned.Load() {
		return false
	}
	fn(&c.val)
	return true
}

// Update runs fn under the lock.  If fn panics the cell is poisoned and the
// panic continues.
func (c *Cell[T]) Update(fn func(v *T)) bool {
	if c.poisoned.Load() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned.Load() {
		return false
	}
	defer poisonOnPanic(&c.poisoned)
	fn(&c.val)
	return true
}

// Poisoned reports whether an update of the cell has panicked.
func (c *Cell[T]) Poisoned() bool {
	return c.poisoned.Load()
}

func poisonOnPanic(poisoned *atomic.Bool) {
	if r := recover(); r != nil {
		poisoned.Store(true)
		logging.Warn().Interface("panic", r).Msg("cell poisoned by panicking update")
		panic(r)
	}
}

// With runs fn on the guarded record and returns its result, or false if
// the cell could not be read.
func With[T, U any](c Reader[T], fn func(v *T) U) (U, bool) {
	var u U
	ok := c.Read(func(v *T) { u = fn(v) })
	return u, ok
}

// Where copies out the records which satisfy pred.  The lock of each cell is
// held while pred runs on it and while the record is copied.
func Where[T any, C Reader[T]](cells []C, pred func(v *T) bool) []T {
	res := []T{}
	for _, c := range cells {
		var v T
		matched := false
		ok := c.Read(func(t *T) {
			if pred(t) {
				v, matched = *t, true
			}
		})
		if !ok {
			logging.Trace().Msg("skipped poisoned cell")
			continue
		}
		if matched {
			res = append(res, v)
		}
	}
	return res
}

// Refs yields a reference to a snapshot of each readable cell, copied under
// that cell's lock.  The snapshot is what the relq engines see, so writes
// through the reference do not reach the cell.
func Refs[T any, C Reader[T]](cells []C) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, c := range cells {
			var v T
			if !c.Read(func(t *T) { v = *t }) {
				continue
			}
			if !yield(&v) {
				return
			}
		}
	}
}

// Count returns the number of readable cells which satisfy pred.
func Count[T any, C Reader[T]](cells []C, pred func(v *T) bool) int {
	n := 0
	for _, c := range cells {
		var hit bool
		if c.Read(func(t *T) { hit = pred(t) }) && hit {
			n++
		}
	}
	return n
}
