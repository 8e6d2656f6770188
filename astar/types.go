package astar

import "golang.org/x/exp/constraints"

// Cost is the set of numeric types usable as edge and path costs.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Zero is the null heuristic. With it, A* degenerates into uniform-cost search.
func Zero[P any, C Cost](P) C {
	var zero C
	return zero
}

// entry is one priority-queue record. g is the accumulated cost at push time,
// f = g + h(state), and seq breaks ties in insertion order.
type entry[P comparable, C Cost] struct {
	state P
	g     C
	f     C
	seq   uint64
}

func less[P comparable, C Cost](a, b entry[P, C]) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}
