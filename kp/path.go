// Package kp provides key paths: typed accessors from a record to one of its
// fields.  A key path is the only way the relq engines look inside a record,
// so a path that cannot reach its field (a nil pointer on the way, an unset
// optional) makes the record drop out of whatever is being computed.
//
// Paths are built from ordinary getters:
//
//	price := kp.New(func(p *Product) *float64 { return &p.Price })
//	cheap := price.Is(func(v float64) bool { return v < 10 })
//
// or, for quick scripts and tests, looked up by field name with Field.
package kp

// Path reaches from a record of type R to a field of type F.  It returns nil
// when the record does not have the field.
type Path[R, F any] func(r *R) *F

// New makes a Path from a getter that returns a reference to a field.
func New[R, F any](get func(r *R) *F) Path[R, F] {
	return Path[R, F](get)
}

// Opt makes a Path from a getter that reports whether the field is present.
// The value is copied, so writes through the returned reference do not reach
// the record.
func Opt[R, F any](get func(r *R) (F, bool)) Path[R, F] {
	return func(r *R) *F {
		v, ok := get(r)
		if !ok {
			return nil
		}
		return &v
	}
}

// Deref follows a pointer valued field.  A nil pointer is an absent field.
func Deref[R, F any](p Path[R, *F]) Path[R, F] {
	return func(r *R) *F {
		pp := p.Get(r)
		if pp == nil {
			return nil
		}
		return *pp
	}
}

// Compose chains two paths, so that Compose(order.customer, customer.name)
// reaches from an order to its customer's name.
func Compose[R, A, F any](p1 Path[R, A], p2 Path[A, F]) Path[R, F] {
	return func(r *R) *F {
		a := p1.Get(r)
		if a == nil {
			return nil
		}
		return p2.Get(a)
	}
}

// Get returns a reference to the field, or nil if it is absent.
func (p Path[R, F]) Get(r *R) *F {
	if r == nil {
		return nil
	}
	return p(r)
}

// Value returns a copy of the field and whether it was present.
func (p Path[R, F]) Value(r *R) (v F, ok bool) {
	f := p.Get(r)
	if f == nil {
		return v, false
	}
	return *f, true
}

// Is returns a predicate that holds when the field is present and satisfies
// cond.  An absent field never satisfies the predicate.
func (p Path[R, F]) Is(cond func(v F) bool) Predicate[R] {
	return func(r *R) bool {
		f := p.Get(r)
		return f != nil && cond(*f)
	}
}

// IsRef is like Is but hands cond a reference to the field instead of a copy.
func (p Path[R, F]) IsRef(cond func(v *F) bool) Predicate[R] {
	return func(r *R) bool {
		f := p.Get(r)
		return f != nil && cond(f)
	}
}
