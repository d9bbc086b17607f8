package kp

import (
	"cmp"
	"strings"
)

// comparison predicates.  Each is false for a record without the field.

// Eq holds when the field equals v.
func Eq[R any, F comparable](p Path[R, F], v F) Predicate[R] {
	return p.Is(func(f F) bool { return f == v })
}

// Ne holds when the field is present and differs from v.
func Ne[R any, F comparable](p Path[R, F], v F) Predicate[R] {
	return p.Is(func(f F) bool { return f != v })
}

// Lt holds when the field is less than v.
func Lt[R any, F cmp.Ordered](p Path[R, F], v F) Predicate[R] {
	return p.Is(func(f F) bool { return f < v })
}

// Le holds when the field is less than or equal to v.
func Le[R any, F cmp.Ordered](p Path[R, F], v F) Predicate[R] {
	return p.Is(func(f F) bool { return f <= v })
}

// Gt holds when the field is greater than v.
func Gt[R any, F cmp.Ordered](p Path[R, F], v F) Predicate[R] {
	return p.Is(func(f F) bool { return f > v })
}

// Ge holds when the field is greater than or equal to v.
func Ge[R any, F cmp.Ordered](p Path[R, F], v F) Predicate[R] {
	return p.Is(func(f F) bool { return f >= v })
}

// Between holds when lo <= field <= hi.
func Between[R any, F cmp.Ordered](p Path[R, F], lo, hi F) Predicate[R] {
	return p.Is(func(f F) bool { return lo <= f && f <= hi })
}

// In holds when the field equals one of vs.
func In[R any, F comparable](p Path[R, F], vs ...F) Predicate[R] {
	set := make(map[F]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return p.Is(func(f F) bool {
		_, ok := set[f]
		return ok
	})
}

// Contains holds when the field contains sub.
func Contains[R any, S ~string](p Path[R, S], sub string) Predicate[R] {
	return p.Is(func(f S) bool { return strings.Contains(string(f), sub) })
}

// HasPrefix holds when the field starts with prefix.
func HasPrefix[R any, S ~string](p Path[R, S], prefix string) Predicate[R] {
	return p.Is(func(f S) bool { return strings.HasPrefix(string(f), prefix) })
}

// Present holds when the record has the field.
func Present[R, F any](p Path[R, F]) Predicate[R] {
	return func(r *R) bool { return p.Get(r) != nil }
}

// Absent holds when the record does not have the field.  It is the only
// predicate in this package that holds for a missing field.
func Absent[R, F any](p Path[R, F]) Predicate[R] {
	return func(r *R) bool { return p.Get(r) == nil }
}
