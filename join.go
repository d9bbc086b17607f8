// join implements equi-joins and the cross join between two collections.

package relq

import (
	"iter"

	"github.com/jonlawlor/relq/internal/logging"
	"github.com/jonlawlor/relq/internal/mapz"
	"github.com/jonlawlor/relq/kp"
)

// This implementation of join uses a hash join: one side is read once into
// an index from key to records, and the other side probes the index.  The
// index holds references, so records are never copied; only keys are.

// JoinQuery joins a left and a right collection.  The join functions are
// free functions because they are generic over the key and result types.
//
// Results are produced in a fixed order: the probing side in source order,
// and for each of its records the matches in the source order of the indexed
// side.  Inner, left, semi and anti joins probe with the left side; the
// right join probes with the right side.
type JoinQuery[L, R any] struct {
	left  iter.Seq[*L]
	right iter.Seq[*R]
}

// NewJoin creates a join between two slices.  Neither is copied.
func NewJoin[L, R any](left []L, right []R) JoinQuery[L, R] {
	return JoinQuery[L, R]{FromSlice(left), FromSlice(right)}
}

// JoinFrom creates a join between two sources of record references, such as
// the Seq of two queries.
func JoinFrom[L, R any](left iter.Seq[*L], right iter.Seq[*R]) JoinQuery[L, R] {
	return JoinQuery[L, R]{left, right}
}

// buildIndex reads every record with a key into an index.  Records whose key
// cannot be reached are left out.
func buildIndex[T any, K comparable](seq iter.Seq[*T], key kp.Path[T, K], side string) *mapz.MultiMap[K, *T] {
	idx := mapz.NewMultiMap[K, *T]()
	for rec := range seq {
		if k := key.Get(rec); k != nil {
			idx.Add(*k, rec)
		}
	}
	logging.Debug().
		Str("side", side).
		Int("keys", idx.Len()).
		Int("records", idx.Count()).
		Msg("built join index")
	return idx
}

// matched reports whether a record's key is in the index
func matched[T, U any, K comparable](idx *mapz.MultiMap[K, *U], key kp.Path[T, K], rec *T) bool {
	k := key.Get(rec)
	return k != nil && idx.Has(*k)
}

// probe looks a record's key up in the index
func probe[T, U any, K comparable](idx *mapz.MultiMap[K, *U], key kp.Path[T, K], rec *T) []*U {
	k := key.Get(rec)
	if k == nil {
		return nil
	}
	matches, _ := idx.Get(*k)
	return matches
}

// InnerJoin maps every pair of left and right records whose keys are equal.
// A left record with several matches produces one result per match.
func InnerJoin[L, R any, K comparable, O any](j JoinQuery[L, R], lk kp.Path[L, K], rk kp.Path[R, K], mapper func(l *L, r *R) O) []O {
	return innerJoin(j, lk, rk, nil, mapper)
}

// InnerJoinWhere is InnerJoin with a further condition on each pair of
// records with equal keys.  Only pairs that satisfy pred are mapped.
func InnerJoinWhere[L, R any, K comparable, O any](j JoinQuery[L, R], lk kp.Path[L, K], rk kp.Path[R, K], pred func(l *L, r *R) bool, mapper func(l *L, r *R) O) []O {
	return innerJoin(j, lk, rk, pred, mapper)
}

func innerJoin[L, R any, K comparable, O any](j JoinQuery[L, R], lk kp.Path[L, K], rk kp.Path[R, K], pred func(l *L, r *R) bool, mapper func(l *L, r *R) O) []O {
	idx := buildIndex(j.right, rk, "right")
	res := []O{}
	for l := range j.left {
		for _, r := range probe(idx, lk, l) {
			if pred == nil || pred(l, r) {
				res = append(res, mapper(l, r))
			}
		}
	}
	return res
}

// LeftJoin is InnerJoin, except that a left record without a key or without
// a match is mapped once, with a nil right record.
func LeftJoin[L, R any, K comparable, O any](j JoinQuery[L, R], lk kp.Path[L, K], rk kp.Path[R, K], mapper func(l *L, r *R) O) []O {
	idx := buildIndex(j.right, rk, "right")
	res := []O{}
	for l := range j.left {
		matches := probe(idx, lk, l)
		if len(matches) == 0 {
			res = append(res, mapper(l, nil))
			continue
		}
		for _, r := range matches {
			res = append(res, mapper(l, r))
		}
	}
	return res
}

// RightJoin is the mirror image of LeftJoin: the left side is indexed, and
// a right record without a key or without a match is mapped once, with a
// nil left record.
func RightJoin[L, R any, K comparable, O any](j JoinQuery[L, R], lk kp.Path[L, K], rk kp.Path[R, K], mapper func(l *L, r *R) O) []O {
	idx := buildIndex(j.left, lk, "left")
	res := []O{}
	for r := range j.right {
		matches := probe(idx, rk, r)
		if len(matches) == 0 {
			res = append(res, mapper(nil, r))
			continue
		}
		for _, l := range matches {
			res = append(res, mapper(l, r))
		}
	}
	return res
}

// CrossJoin maps every combination of a left and a right record.  There are
// len(left) * len(right) results, so callers should keep the inputs small.
func CrossJoin[L, R, O any](j JoinQuery[L, R], mapper func(l *L, r *R) O) []O {
	rights := []*R{}
	for r := range j.right {
		rights = append(rights, r)
	}
	res := []O{}
	for l := range j.left {
		for _, r := range rights {
			res = append(res, mapper(l, r))
		}
	}
	return res
}

// SemiJoin returns the left records that have at least one match on the
// right, each once.
func SemiJoin[L, R any, K comparable](j JoinQuery[L, R], lk kp.Path[L, K], rk kp.Path[R, K]) []*L {
	idx := buildIndex(j.right, rk, "right")
	res := []*L{}
	for l := range j.left {
		if matched(idx, lk, l) {
			res = append(res, l)
		}
	}
	return res
}

// AntiJoin returns the left records that have no match on the right,
// including those without a key.
func AntiJoin[L, R any, K comparable](j JoinQuery[L, R], lk kp.Path[L, K], rk kp.Path[R, K]) []*L {
	idx := buildIndex(j.right, rk, "right")
	res := []*L{}
	for l := range j.left {
		if !matched(idx, lk, l) {
			res = append(res, l)
		}
	}
	return res
}
