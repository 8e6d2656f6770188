package dfs

import (
	"iter"

	"github.com/katalvlaran/trek/internal/frontier"
	"github.com/katalvlaran/trek/internal/walk"
	"github.com/katalvlaran/trek/search"
)

// Search explores the states reachable from starts in last-in-first-out order.
//
// neighbors(state, depth) yields the successors of state; visit(state, depth) is
// called once per expanded state and returns (value, true) to stop the search.
// Returns the accepted value, or (zero, false) if the reachable states are exhausted.
func Search[P comparable, T any](
	neighbors func(state P, depth int) iter.Seq[P],
	visit func(state P, depth int) (T, bool),
	starts []P,
	opts ...search.Option,
) (T, bool) {
	w := walk.NewUnweighted[P, T](frontier.NewStack[walk.Item[P]](), neighbors, visit, search.Build(opts...))
	_, res, ok := w.Run(starts)

	return res, ok
}

// SearchPath behaves like Search and also returns the path from the accepted
// state back to its start, terminal first.
func SearchPath[P comparable, T any](
	neighbors func(state P, depth int) iter.Seq[P],
	visit func(state P, depth int) (T, bool),
	starts []P,
	opts ...search.Option,
) (search.Path[P], T, bool) {
	w := walk.NewUnweighted[P, T](frontier.NewStack[walk.Item[P]](), neighbors, visit, search.Build(opts...))
	end, res, ok := w.Run(starts)
	if !ok {
		return nil, res, false
	}

	return w.Tree().Walk(end), res, true
}
