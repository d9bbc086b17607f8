// gods adapts the containers of github.com/emirpasic/gods.  They store
// interface{} values, so each element is checked: elements holding an R or a
// non-nil *R are yielded and anything else is skipped.

package relq

import (
	"iter"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"
)

// FromTreeMap yields the values of a tree map in key order.
func FromTreeMap[R any](m *treemap.Map) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		it := m.Iterator()
		for it.Next() {
			if r, ok := asRef[R](it.Value()); ok && !yield(r) {
				return
			}
		}
	}
}

// FromLinkedList yields the records of a doubly linked list from front to
// back.
func FromLinkedList[R any](l *doublylinkedlist.List) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		it := l.Iterator()
		for it.Next() {
			if r, ok := asRef[R](it.Value()); ok && !yield(r) {
				return
			}
		}
	}
}

// FromLinkedListReverse yields the records of a doubly linked list from back
// to front.
func FromLinkedListReverse[R any](l *doublylinkedlist.List) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		it := l.Iterator()
		it.End()
		for it.Prev() {
			if r, ok := asRef[R](it.Value()); ok && !yield(r) {
				return
			}
		}
	}
}

// FromSinglyLinkedList yields the records of a singly linked list in order.
func FromSinglyLinkedList[R any](l *singlylinkedlist.List) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		it := l.Iterator()
		for it.Next() {
			if r, ok := asRef[R](it.Value()); ok && !yield(r) {
				return
			}
		}
	}
}

// FromQueue yields the records of a queue from head to tail without
// dequeuing them.
func FromQueue[R any](q *linkedlistqueue.Queue) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		it := q.Iterator()
		for it.Next() {
			if r, ok := asRef[R](it.Value()); ok && !yield(r) {
				return
			}
		}
	}
}

// FromHashSet yields the members of a hash set in no particular order.
func FromHashSet[R any](s *hashset.Set) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for _, v := range s.Values() {
			if r, ok := asRef[R](v); ok && !yield(r) {
				return
			}
		}
	}
}
