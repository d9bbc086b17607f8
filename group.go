// group partitions records by the value of a field.

package relq

import (
	"iter"

	"github.com/jonlawlor/relq/kp"
)

// groupOf copies each record into the group of its key.  Groups are created
// on first sight of a key and keep their records in source order.
func groupOf[R any, K comparable](seq iter.Seq[*R], p kp.Path[R, K]) map[K][]R {
	groups := map[K][]R{}
	for r := range seq {
		if k := p.Get(r); k != nil {
			groups[*k] = append(groups[*k], *r)
		}
	}
	return groups
}

func countOf[R any, K comparable](seq iter.Seq[*R], p kp.Path[R, K]) map[K]int {
	counts := map[K]int{}
	for k := range project(seq, p) {
		counts[k]++
	}
	return counts
}

// GroupBy copies the matching records into groups keyed by the field p.
// Records without the field are in no group.  Within a group records keep
// their source order; the map itself has no order.
func GroupBy[R any, K comparable](q *Query[R], p kp.Path[R, K]) map[K][]R {
	return groupOf(q.Seq(), p)
}

// CountBy counts the matching records for each value of the field p.
func CountBy[R any, K comparable](q *Query[R], p kp.Path[R, K]) map[K]int {
	return countOf(q.Seq(), p)
}
