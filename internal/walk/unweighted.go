// Package walk implements the unweighted search loop shared by dfs and bfs.
// The two strategies differ only in the frontier they hand to Unweighted.
package walk

import (
	"iter"

	"github.com/katalvlaran/trek/search"
)

// Frontier is the container discipline of an unweighted search.
type Frontier[T any] interface {
	Push(v T)
	Pop() (T, bool)
	Len() int
}

// Item pairs a state with the depth at which it was discovered.
type Item[P comparable] struct {
	State P
	Depth int
}

// Unweighted holds the mutable state of a single dfs or bfs run.
type Unweighted[P comparable, T any] struct {
	frontier  Frontier[Item[P]]
	neighbors func(P, int) iter.Seq[P]
	visit     func(P, int) (T, bool)
	opts      search.Options
	tree      *search.Tree[P, int]
	stats     search.Stats
}

// NewUnweighted prepares a run over the given frontier.
func NewUnweighted[P comparable, T any](
	f Frontier[Item[P]],
	neighbors func(P, int) iter.Seq[P],
	visit func(P, int) (T, bool),
	opts search.Options,
) *Unweighted[P, T] {
	return &Unweighted[P, T]{
		frontier:  f,
		neighbors: neighbors,
		visit:     visit,
		opts:      opts,
		tree:      search.NewTree[P, int](opts.Capacity),
	}
}

// Tree exposes the visited record built by Run.
func (w *Unweighted[P, T]) Tree() *search.Tree[P, int] { return w.tree }

// Run seeds the frontier with starts and expands states until the visitor
// accepts one or the frontier empties. It returns the accepted state and the
// visitor's value.
func (w *Unweighted[P, T]) Run(starts []P) (P, T, bool) {
	defer func() { w.opts.Publish(w.stats) }()

	// 1) Seed every start before expanding anything; duplicates collapse.
	for _, s := range starts {
		if w.tree.Has(s) {
			continue
		}
		w.tree.Root(s, 0)
		w.push(Item[P]{State: s, Depth: 0})
	}

	// 2) Expand until acceptance or exhaustion.
	for {
		item, ok := w.frontier.Pop()
		if !ok {
			break
		}

		w.stats.Expanded++
		if res, done := w.visit(item.State, item.Depth); done {
			return item.State, res, true
		}

		next := item.Depth + 1
		if !w.opts.Allows(next) {
			continue
		}
		seq := w.neighbors(item.State, item.Depth)
		if seq == nil {
			continue
		}
		for n := range seq {
			// mark on discovery: a state enters the frontier at most once
			if w.tree.Has(n) {
				continue
			}
			w.tree.Link(n, item.State, next)
			w.push(Item[P]{State: n, Depth: next})
		}
	}

	var (
		zeroP P
		zeroT T
	)

	return zeroP, zeroT, false
}

func (w *Unweighted[P, T]) push(it Item[P]) {
	w.frontier.Push(it)
	w.stats.Discovered++
	w.stats.Frontier(w.frontier.Len())
}
