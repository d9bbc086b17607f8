// slice implements the most common source of records, a slice.

package relq

import (
	"iter"
)

// Slice is a slice of records that can be queried with Of and LazyOf.
type Slice[R any] []R

// Refs yields references to the elements of the slice.
func (s Slice[R]) Refs() iter.Seq[*R] {
	return FromSlice(s)
}

// FromSlice yields references to the elements of a slice, in order.  The
// references point into the slice itself.
func FromSlice[R any](data []R) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for i := range data {
			if !yield(&data[i]) {
				return
			}
		}
	}
}

// FromPtrSlice yields the non-nil elements of a slice of record pointers.
func FromPtrSlice[R any](data []*R) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for _, r := range data {
			if r != nil && !yield(r) {
				return
			}
		}
	}
}
