// map implements sources over the values of a map.  The keys are not
// visible to queries; callers who need them should keep them in the records.

package relq

import (
	"cmp"
	"iter"
	"slices"

	"golang.org/x/exp/maps"
)

// MapSource is a map of records that can be queried with Of and LazyOf.
// Values are produced in no particular order.
type MapSource[K comparable, R any] map[K]R

// Refs yields references to copies of the values of the map.
func (m MapSource[K, R]) Refs() iter.Seq[*R] {
	return FromMap(m)
}

// SortedMap is a map of records whose values are produced in ascending key
// order, like a map keyed by id.
type SortedMap[K cmp.Ordered, R any] map[K]R

// Refs yields references to copies of the values of the map, by key.
func (m SortedMap[K, R]) Refs() iter.Seq[*R] {
	return FromSortedMap(m)
}

// FromMap yields the values of a map in no particular order.  Map values
// cannot be referenced, so each record is copied just before it is yielded;
// writes through the reference do not reach the map.
func FromMap[K comparable, R any](m map[K]R) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for _, v := range m {
			if !yield(&v) {
				return
			}
		}
	}
}

// FromPtrMap yields the non-nil values of a map of record pointers, in no
// particular order.
func FromPtrMap[K comparable, R any](m map[K]*R) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for _, r := range m {
			if r != nil && !yield(r) {
				return
			}
		}
	}
}

// FromSortedMap yields the values of a map in ascending key order.  The keys
// are sorted each time the sequence is iterated.
func FromSortedMap[K cmp.Ordered, R any](m map[K]R) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		keys := maps.Keys(m)
		slices.Sort(keys)
		for _, k := range keys {
			v := m[k]
			if !yield(&v) {
				return
			}
		}
	}
}

// FromSet yields the members of a set kept as a map to empty structs.
func FromSet[R comparable](set map[R]struct{}) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for v := range set {
			if !yield(&v) {
				return
			}
		}
	}
}
