// order materializes the matching records of a query as a sorted copy.
// Ordering is not part of relational algebra, so unlike the rest of the
// eager query it always allocates.

package relq

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/jonlawlor/relq/internal/logging"
	"github.com/jonlawlor/relq/kp"
)

// keyed is a copied record with its sort key taken out ahead of time
type keyed[R, F any] struct {
	rec R
	key F
	ok  bool
}

// sortedBy copies the matching records of q, sorts the copies stably with
// compare and returns them.
func sortedBy[R, F any](q *Query[R], p kp.Path[R, F], missing func() (F, bool), compare func(a, b keyed[R, F]) int) []R {
	ks := []keyed[R, F]{}
	for r := range q.Seq() {
		k := keyed[R, F]{rec: *r}
		if f := p.Get(r); f != nil {
			k.key, k.ok = *f, true
		} else {
			k.key, k.ok = missing()
		}
		ks = append(ks, k)
	}
	slices.SortStableFunc(ks, compare)

	logging.Trace().Int("records", len(ks)).Msg("sorted query results")

	res := make([]R, len(ks))
	for i := range ks {
		res[i] = ks[i].rec
	}
	return res
}

// compareOrdered puts records without the key before every record with it
func compareOrdered[R any, F cmp.Ordered](a, b keyed[R, F]) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		return -1
	case !b.ok:
		return 1
	}
	return cmp.Compare(a.key, b.key)
}

func absent[F any]() (f F, ok bool) { return f, false }

func zeroKey[F any]() (f F, ok bool) { return f, true }

// OrderBy returns copies of the matching records sorted by the field p in
// ascending order.  The sort is stable.  Records without the field come
// first.
func OrderBy[R any, F cmp.Ordered](q *Query[R], p kp.Path[R, F]) []R {
	return sortedBy(q, p, absent[F], compareOrdered[R, F])
}

// OrderByDesc returns copies of the matching records sorted by the field p in
// descending order.  The sort is stable, so equal keys keep their source
// order.  Records without the field come last.
func OrderByDesc[R any, F cmp.Ordered](q *Query[R], p kp.Path[R, F]) []R {
	return sortedBy(q, p, absent[F], func(a, b keyed[R, F]) int {
		return compareOrdered(b, a)
	})
}

// OrderByFloat returns copies of the matching records sorted by the float
// field p in ascending order.  NaN compares equal to every value and a
// missing field sorts as 0.  The sort is stable.
func OrderByFloat[R any, F constraints.Float](q *Query[R], p kp.Path[R, F]) []R {
	return sortedBy(q, p, zeroKey[F], func(a, b keyed[R, F]) int {
		return compareFloat(a.key, b.key)
	})
}

// OrderByFloatDesc is OrderByFloat in descending order.
func OrderByFloatDesc[R any, F constraints.Float](q *Query[R], p kp.Path[R, F]) []R {
	return sortedBy(q, p, zeroKey[F], func(a, b keyed[R, F]) int {
		return compareFloat(b.key, a.key)
	})
}
