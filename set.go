// set implements the set operations of relational algebra over the matching
// records of two queries.  Records are compared as whole values, so these
// need a comparable record type, and each one holds the records it has seen
// in memory.

package relq

// Union returns the distinct records that match either query: those of q1
// in source order, then the new ones from q2.
func Union[R comparable](q1, q2 *Query[R]) []R {
	res := []R{}
	mem := map[R]struct{}{}
	for _, q := range []*Query[R]{q1, q2} {
		for r := range q.Seq() {
			if _, dup := mem[*r]; !dup {
				mem[*r] = struct{}{}
				res = append(res, *r)
			}
		}
	}
	return res
}

// Except returns the distinct records that match q1 but not q2, in the
// source order of q1.  q2 is read in full before anything is returned.
func Except[R comparable](q1, q2 *Query[R]) []R {
	mem := map[R]struct{}{}
	for r := range q2.Seq() {
		mem[*r] = struct{}{}
	}
	res := []R{}
	for r := range q1.Seq() {
		if _, rem := mem[*r]; !rem {
			mem[*r] = struct{}{}
			res = append(res, *r)
		}
	}
	return res
}

// Intersect returns the distinct records that match both queries, in the
// source order of q1.
func Intersect[R comparable](q1, q2 *Query[R]) []R {
	mem := map[R]bool{}
	for r := range q2.Seq() {
		mem[*r] = true
	}
	res := []R{}
	for r := range q1.Seq() {
		if mem[*r] {
			mem[*r] = false
			res = append(res, *r)
		}
	}
	return res
}
