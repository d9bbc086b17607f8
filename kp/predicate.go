package kp

// Predicate reports whether a record should be kept.  Predicates should not
// modify the record or depend on anything but the record.
type Predicate[R any] func(r *R) bool

// Not is the logical negation of a predicate.
func Not[R any](p func(r *R) bool) Predicate[R] {
	return func(r *R) bool { return !p(r) }
}

// And holds when both p1 and p2 hold.  p2 is not evaluated if p1 fails.
func (p1 Predicate[R]) And(p2 func(r *R) bool) Predicate[R] {
	return func(r *R) bool { return p1(r) && p2(r) }
}

// Or holds when either p1 or p2 holds.  p2 is not evaluated if p1 holds.
func (p1 Predicate[R]) Or(p2 func(r *R) bool) Predicate[R] {
	return func(r *R) bool { return p1(r) || p2(r) }
}

// Xor holds when exactly one of p1 and p2 holds.
func (p1 Predicate[R]) Xor(p2 func(r *R) bool) Predicate[R] {
	return func(r *R) bool { return p1(r) != p2(r) }
}

// All holds when every predicate holds, evaluated in order.  All of nothing
// is true.
func All[R any](ps ...func(r *R) bool) Predicate[R] {
	return func(r *R) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}
