package relq

import (
	"container/list"
	"iter"
)

// FromOption yields the record r if it is not nil, and nothing otherwise.
func FromOption[R any](r *R) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		if r != nil {
			yield(r)
		}
	}
}

// FromResult yields the record if err is nil, and nothing otherwise.  The
// error itself is dropped; a failed result is simply an empty source.
func FromResult[R any](r R, err error) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		if err == nil {
			v := r
			yield(&v)
		}
	}
}

// FromList yields the records of a container/list list from front to back.
// Elements may hold either R or *R; anything else is skipped.
func FromList[R any](l *list.List) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			if r, ok := asRef[R](e.Value); ok && !yield(r) {
				return
			}
		}
	}
}

// asRef turns a container element into a record reference.  Pointers are
// passed through; values are copied.
func asRef[R any](v interface{}) (*R, bool) {
	switch r := v.(type) {
	case *R:
		return r, r != nil
	case R:
		return &r, true
	default:
		return nil, false
	}
}
