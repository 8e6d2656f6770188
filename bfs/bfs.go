package bfs

import (
	"iter"

	"github.com/katalvlaran/trek/internal/frontier"
	"github.com/katalvlaran/trek/internal/walk"
	"github.com/katalvlaran/trek/search"
)

// Search explores the states reachable from starts in first-in-first-out order.
//
// neighbors(state, depth) yields the successors of state. visit(state, depth) is
// invoked once per expanded state, depth being the state's shortest hop count from
// the nearest start; it returns (value, true) to stop the search.
// Returns (zero, false) if no state is accepted.
func Search[P comparable, T any](
	neighbors func(state P, depth int) iter.Seq[P],
	visit func(state P, depth int) (T, bool),
	starts []P,
	opts ...search.Option,
) (T, bool) {
	w := newWalker(neighbors, visit, opts)
	_, res, ok := w.Run(starts)

	return res, ok
}

// SearchPath behaves like Search and also returns a shortest (fewest-hop) path
// from the accepted state back to its start, terminal first.
func SearchPath[P comparable, T any](
	neighbors func(state P, depth int) iter.Seq[P],
	visit func(state P, depth int) (T, bool),
	starts []P,
	opts ...search.Option,
) (search.Path[P], T, bool) {
	w := newWalker(neighbors, visit, opts)
	end, res, ok := w.Run(starts)
	if !ok {
		return nil, res, false
	}

	return w.Tree().Walk(end), res, true
}

func newWalker[P comparable, T any](
	neighbors func(P, int) iter.Seq[P],
	visit func(P, int) (T, bool),
	opts []search.Option,
) *walk.Unweighted[P, T] {
	return walk.NewUnweighted[P, T](frontier.NewQueue[walk.Item[P]](), neighbors, visit, search.Build(opts...))
}
