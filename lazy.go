// lazy implements query pipelines which do no work until a terminal
// operation pulls values through them.

package relq

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/jonlawlor/relq/kp"
)

// LazyQuery is a single pass pipeline over values of type T; pipelines of
// records have T = *R.  Each combinator wraps the pipeline in a new stage
// and returns it.  Terminal operations run the stages one value at a time
// and stop pulling from upstream as soon as they have their answer, so a
// predicate above a Take, First or Any is only called as often as needed.
type LazyQuery[T any] struct {
	seq iter.Seq[T]
}

// Lazy creates a pipeline over references to the elements of a slice.
func Lazy[R any](data []R) LazyQuery[*R] {
	return LazyQuery[*R]{FromSlice(data)}
}

// LazyFrom creates a pipeline over any sequence.
func LazyFrom[T any](seq iter.Seq[T]) LazyQuery[T] {
	return LazyQuery[T]{seq}
}

// Seq returns the pipeline as an iterator.
func (q LazyQuery[T]) Seq() iter.Seq[T] {
	return q.seq
}

// Where keeps the values that satisfy pred.  For record pipelines any
// kp.Predicate can be used.
func (q LazyQuery[T]) Where(pred func(v T) bool) LazyQuery[T] {
	return LazyQuery[T]{func(yield func(T) bool) {
		for v := range q.seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}}
}

// Skip drops the first n values.
func (q LazyQuery[T]) Skip(n int) LazyQuery[T] {
	return LazyQuery[T]{func(yield func(T) bool) {
		i := 0
		for v := range q.seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}}
}

// Take passes on at most n values.  It stops pulling from upstream as soon
// as the n-th value has been passed on, and Take(0) pulls nothing.
func (q LazyQuery[T]) Take(n int) LazyQuery[T] {
	return LazyQuery[T]{func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range q.seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}}
}

// TakeWhile passes on values until the first one that fails pred.
func (q LazyQuery[T]) TakeWhile(pred func(v T) bool) LazyQuery[T] {
	return LazyQuery[T]{func(yield func(T) bool) {
		for v := range q.seq {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}}
}

// SkipWhile drops values until the first one that fails pred, and passes on
// everything from there.
func (q LazyQuery[T]) SkipWhile(pred func(v T) bool) LazyQuery[T] {
	return LazyQuery[T]{func(yield func(T) bool) {
		skipping := true
		for v := range q.seq {
			if skipping && pred(v) {
				continue
			}
			skipping = false
			if !yield(v) {
				return
			}
		}
	}}
}

// Map transforms each value with fn.
func Map[T, U any](q LazyQuery[T], fn func(v T) U) LazyQuery[U] {
	return LazyQuery[U]{func(yield func(U) bool) {
		for v := range q.seq {
			if !yield(fn(v)) {
				return
			}
		}
	}}
}

// SelectLazy transforms a record pipeline into the values of the field p.
// Records without the field are dropped.
func SelectLazy[R, F any](q LazyQuery[*R], p kp.Path[R, F]) LazyQuery[F] {
	return LazyQuery[F]{project(q.seq, p)}
}

// terminal operations

// Collect runs the pipeline and returns every value.
func (q LazyQuery[T]) Collect() []T {
	res := []T{}
	for v := range q.seq {
		res = append(res, v)
	}
	return res
}

// First returns the first value, if there is one.
func (q LazyQuery[T]) First() (T, bool) {
	for v := range q.seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Find returns the first value that satisfies pred, if there is one.
func (q LazyQuery[T]) Find(pred func(v T) bool) (T, bool) {
	return q.Where(pred).First()
}

// Count runs the whole pipeline and returns the number of values.
func (q LazyQuery[T]) Count() int {
	n := 0
	for range q.seq {
		n++
	}
	return n
}

// Any reports whether the pipeline produces at least one value.
func (q LazyQuery[T]) Any() bool {
	_, ok := q.First()
	return ok
}

// AnyMatch reports whether some value satisfies pred.  It stops at the first
// one that does.
func (q LazyQuery[T]) AnyMatch(pred func(v T) bool) bool {
	_, ok := q.Find(pred)
	return ok
}

// AllMatch reports whether every value satisfies pred.  It stops at the
// first one that does not.  An empty pipeline matches.
func (q LazyQuery[T]) AllMatch(pred func(v T) bool) bool {
	for v := range q.seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// ForEach calls fn with every value, in order.
func (q LazyQuery[T]) ForEach(fn func(v T)) {
	for v := range q.seq {
		fn(v)
	}
}

// Pull turns the pipeline into a pull iterator.  stop must be called if the
// caller gives up before next reports false.
func (q LazyQuery[T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(q.seq)
}

// Fold combines the values from left to right, starting with init.
func Fold[T, A any](q LazyQuery[T], init A, fn func(acc A, v T) A) A {
	acc := init
	for v := range q.seq {
		acc = fn(acc, v)
	}
	return acc
}

// lazy aggregates, with the same meaning as their eager counterparts

// SumLazy adds up the field p over the records of the pipeline.
func SumLazy[R any, F Number](q LazyQuery[*R], p kp.Path[R, F]) F {
	return sumOf(project(q.seq, p))
}

// AvgLazy is the mean of the float field p, or false if no record has it.
func AvgLazy[R any, F constraints.Float](q LazyQuery[*R], p kp.Path[R, F]) (float64, bool) {
	return avgOf(project(q.seq, p))
}

// MinLazy is the smallest value of the field p, or false if no record has it.
func MinLazy[R any, F cmp.Ordered](q LazyQuery[*R], p kp.Path[R, F]) (F, bool) {
	return minOf(project(q.seq, p))
}

// MaxLazy is the largest value of the field p, or false if no record has it.
func MaxLazy[R any, F cmp.Ordered](q LazyQuery[*R], p kp.Path[R, F]) (F, bool) {
	return maxOf(project(q.seq, p))
}

// MinFloatLazy is MinLazy with NaN comparing equal to every value.
func MinFloatLazy[R any, F constraints.Float](q LazyQuery[*R], p kp.Path[R, F]) (F, bool) {
	return minFloatOf(project(q.seq, p))
}

// MaxFloatLazy is MaxLazy with NaN comparing equal to every value.
func MaxFloatLazy[R any, F constraints.Float](q LazyQuery[*R], p kp.Path[R, F]) (F, bool) {
	return maxFloatOf(project(q.seq, p))
}

// GroupByLazy copies the records of the pipeline into groups keyed by the
// field p.
func GroupByLazy[R any, K comparable](q LazyQuery[*R], p kp.Path[R, K]) map[K][]R {
	return groupOf(q.seq, p)
}

// CountByLazy counts the records of the pipeline for each value of the
// field p.
func CountByLazy[R any, K comparable](q LazyQuery[*R], p kp.Path[R, K]) map[K]int {
	return countOf(q.seq, p)
}
