// project implements projection of a query onto one of its fields.

package relq

import (
	"github.com/jonlawlor/relq/kp"
)

// Select returns the field p of every matching record, in source order.
// Records without the field are left out.
func Select[R, F any](q *Query[R], p kp.Path[R, F]) []F {
	res := []F{}
	for f := range project(q.Seq(), p) {
		res = append(res, f)
	}
	return res
}

// Distinct returns the distinct values of the field p among the matching
// records, in order of first appearance.
func Distinct[R any, F comparable](q *Query[R], p kp.Path[R, F]) []F {
	res := []F{}
	seen := map[F]struct{}{}
	for f := range project(q.Seq(), p) {
		if _, dup := seen[f]; !dup {
			seen[f] = struct{}{}
			res = append(res, f)
		}
	}
	return res
}
