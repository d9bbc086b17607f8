// aggregate implements the numeric aggregates shared by the eager and lazy
// queries.  Each works on the values of one field, taken from the records
// that have it.

package relq

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/jonlawlor/relq/kp"
)

// Number is a type that can be summed.  Its zero value is the additive
// identity.
type Number interface {
	constraints.Integer | constraints.Float
}

func sumOf[F Number](seq iter.Seq[F]) F {
	var sum F
	for v := range seq {
		sum += v
	}
	return sum
}

func avgOf[F constraints.Float](seq iter.Seq[F]) (float64, bool) {
	var sum float64
	n := 0
	for v := range seq {
		sum += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func minOf[F cmp.Ordered](seq iter.Seq[F]) (m F, ok bool) {
	for v := range seq {
		if !ok || v < m {
			m, ok = v, true
		}
	}
	return
}

func maxOf[F cmp.Ordered](seq iter.Seq[F]) (m F, ok bool) {
	for v := range seq {
		if !ok || v > m {
			m, ok = v, true
		}
	}
	return
}

// minFloatOf keeps the earlier value whenever two values compare equal,
// which includes every comparison with NaN.
func minFloatOf[F constraints.Float](seq iter.Seq[F]) (m F, ok bool) {
	for v := range seq {
		if !ok || compareFloat(m, v) > 0 {
			m, ok = v, true
		}
	}
	return
}

// maxFloatOf takes the later value whenever two values compare equal, which
// includes every comparison with NaN.
func maxFloatOf[F constraints.Float](seq iter.Seq[F]) (m F, ok bool) {
	for v := range seq {
		if !ok || compareFloat(m, v) <= 0 {
			m, ok = v, true
		}
	}
	return
}

// Sum adds up the field p over the matching records.  It is the zero value
// when nothing matches.
func Sum[R any, F Number](q *Query[R], p kp.Path[R, F]) F {
	return sumOf(project(q.Seq(), p))
}

// Avg is the mean of the float field p over the matching records that have
// it.  It returns false when there are none.
func Avg[R any, F constraints.Float](q *Query[R], p kp.Path[R, F]) (float64, bool) {
	return avgOf(project(q.Seq(), p))
}

// Min is the smallest value of the field p over the matching records.  It
// returns false when there are none.
func Min[R any, F cmp.Ordered](q *Query[R], p kp.Path[R, F]) (F, bool) {
	return minOf(project(q.Seq(), p))
}

// Max is the largest value of the field p over the matching records.  It
// returns false when there are none.
func Max[R any, F cmp.Ordered](q *Query[R], p kp.Path[R, F]) (F, bool) {
	return maxOf(project(q.Seq(), p))
}

// MinFloat is Min for float fields.  NaN compares equal to every value
// rather than poisoning the result.
func MinFloat[R any, F constraints.Float](q *Query[R], p kp.Path[R, F]) (F, bool) {
	return minFloatOf(project(q.Seq(), p))
}

// MaxFloat is Max for float fields.  NaN compares equal to every value
// rather than poisoning the result.
func MaxFloat[R any, F constraints.Float](q *Query[R], p kp.Path[R, F]) (F, bool) {
	return maxFloatOf(project(q.Seq(), p))
}
