// query implements the eager query, a restriction of a source by a chain of
// predicates which is evaluated again on every terminal call.

package relq

import (
	"iter"

	"github.com/jonlawlor/relq/kp"
)

// Query is an eager query over a source of records.  It holds the source and
// the predicates added by Where; all predicates must hold for a record to
// match.  A Query is never modified after construction, so it can be
// branched: q.Where(a) and q.Where(b) are independent queries.
type Query[R any] struct {
	// the borrowed source of records
	source iter.Seq[*R]

	// the restriction predicates, in the order they were added
	preds []func(r *R) bool
}

// New creates a query over a slice.  The query refers to the slice's
// elements; it does not copy them.
func New[R any](data []R) *Query[R] {
	return &Query[R]{source: FromSlice(data)}
}

// NewFrom creates a query over any source of record references.  The source
// is iterated once per terminal call.
func NewFrom[R any](source iter.Seq[*R]) *Query[R] {
	return &Query[R]{source: source}
}

// Where returns a new query with pred added to the predicates of q.
func (q *Query[R]) Where(pred func(r *R) bool) *Query[R] {
	preds := make([]func(r *R) bool, len(q.preds), len(q.preds)+1)
	copy(preds, q.preds)
	return &Query[R]{
		source: q.source,
		preds:  append(preds, pred),
	}
}

// WherePath returns a new query which also requires the field p to be
// present and to satisfy cond.  It is q.Where(p.Is(cond)).
func WherePath[R, F any](q *Query[R], p kp.Path[R, F], cond func(v F) bool) *Query[R] {
	return q.Where(p.Is(cond))
}

// matches evaluates the predicates in order, stopping at the first failure
func (q *Query[R]) matches(r *R) bool {
	for _, pred := range q.preds {
		if !pred(r) {
			return false
		}
	}
	return true
}

// Seq yields references to the matching records in source order.
func (q *Query[R]) Seq() iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for r := range q.source {
			if q.matches(r) && !yield(r) {
				return
			}
		}
	}
}

// Lazy turns the query into a lazy pipeline with the same predicates.
func (q *Query[R]) Lazy() LazyQuery[*R] {
	return LazyFrom(q.Seq())
}

// All returns references to every matching record.
func (q *Query[R]) All() []*R {
	res := []*R{}
	for r := range q.Seq() {
		res = append(res, r)
	}
	return res
}

// First returns the first matching record, or nil if nothing matches.
func (q *Query[R]) First() *R {
	for r := range q.Seq() {
		return r
	}
	return nil
}

// Count returns the number of matching records.
func (q *Query[R]) Count() int {
	n := 0
	for range q.Seq() {
		n++
	}
	return n
}

// Exists reports whether any record matches.
func (q *Query[R]) Exists() bool {
	for range q.Seq() {
		return true
	}
	return false
}

// Limit returns references to at most n matching records.
func (q *Query[R]) Limit(n int) []*R {
	return q.Skip(0).Limit(n)
}

// Skip starts a page which leaves out the first offset matching records.
func (q *Query[R]) Skip(offset int) Page[R] {
	return Page[R]{q, max(offset, 0)}
}

// Page is a query with an offset, waiting for a limit.
type Page[R any] struct {
	q      *Query[R]
	offset int
}

// Limit returns references to at most n matching records after the offset.
// The offset counts matching records only.
func (p Page[R]) Limit(n int) []*R {
	res := []*R{}
	if n <= 0 {
		return res
	}
	skipped := 0
	for r := range p.q.Seq() {
		if skipped < p.offset {
			skipped++
			continue
		}
		res = append(res, r)
		if len(res) == n {
			break
		}
	}
	return res
}
