package relq

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/jonlawlor/relq/kp"
)

// project yields the field reached by p for every record that has it
func project[R, F any](seq iter.Seq[*R], p kp.Path[R, F]) iter.Seq[F] {
	return func(yield func(F) bool) {
		for r := range seq {
			if f := p.Get(r); f != nil && !yield(*f) {
				return
			}
		}
	}
}

// compareFloat orders floats, treating NaN as equal to everything instead
// of failing.
func compareFloat[F constraints.Float](a, b F) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
