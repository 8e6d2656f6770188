package astar

import (
	"iter"

	"github.com/katalvlaran/trek/internal/frontier"
	"github.com/katalvlaran/trek/search"
)

// Search runs A* from starts and returns the value produced by the first
// accepted state, or (zero, false) if the reachable states are exhausted.
// A nil heuristic behaves like Zero.
func Search[P comparable, C Cost, T any](
	neighbors func(state P) iter.Seq2[P, C],
	visit func(state P, cost C) (T, bool),
	heuristic func(state P) C,
	starts []P,
	opts ...search.Option,
) (T, bool) {
	r := newRunner(neighbors, visit, heuristic, search.Build(opts...))
	_, res, ok := r.run(starts)

	return res, ok
}

// SearchPath behaves like Search and also returns the path from the accepted
// state back to its start, terminal first. With an admissible heuristic the path
// is a cheapest one; its cost is the g passed to the accepting visit call.
func SearchPath[P comparable, C Cost, T any](
	neighbors func(state P) iter.Seq2[P, C],
	visit func(state P, cost C) (T, bool),
	heuristic func(state P) C,
	starts []P,
	opts ...search.Option,
) (search.Path[P], T, bool) {
	r := newRunner(neighbors, visit, heuristic, search.Build(opts...))
	end, res, ok := r.run(starts)
	if !ok {
		return nil, res, false
	}

	return r.tree.Walk(end), res, true
}

// runner holds the mutable state of a single A* execution.
type runner[P comparable, C Cost, T any] struct {
	neighbors func(P) iter.Seq2[P, C]
	visit     func(P, C) (T, bool)
	heuristic func(P) C
	opts      search.Options

	pq    *frontier.Heap[entry[P, C]] // open set, lazily decreased
	tree  *search.Tree[P, C]          // best cost discovered so far + predecessor
	seq   uint64
	stats search.Stats
}

func newRunner[P comparable, C Cost, T any](
	neighbors func(P) iter.Seq2[P, C],
	visit func(P, C) (T, bool),
	heuristic func(P) C,
	opts search.Options,
) *runner[P, C, T] {
	if heuristic == nil {
		heuristic = Zero[P, C]
	}

	return &runner[P, C, T]{
		neighbors: neighbors,
		visit:     visit,
		heuristic: heuristic,
		opts:      opts,
		pq:        frontier.NewHeap(less[P, C]),
		tree:      search.NewTree[P, C](opts.Capacity),
	}
}

// run seeds the queue and processes it until acceptance or exhaustion.
func (r *runner[P, C, T]) run(starts []P) (P, T, bool) {
	defer func() { r.opts.Publish(r.stats) }()

	// 1) Every start enters with g = 0; duplicates collapse.
	var zero C
	for _, s := range starts {
		if r.tree.Has(s) {
			continue
		}
		r.tree.Root(s, zero)
		r.push(s, zero)
	}

	// 2) Pop the lowest f until the visitor accepts.
	for {
		item, ok := r.pq.Pop()
		if !ok {
			break
		}

		// 2a) A cheaper record was written after this entry was pushed.
		if best, _ := r.tree.Cost(item.state); item.g > best {
			r.stats.Stale++
			continue
		}

		r.stats.Expanded++
		if res, done := r.visit(item.state, item.g); done {
			return item.state, res, true
		}

		// 2b) Relax outgoing edges.
		r.relax(item.state, item.g)
	}

	var (
		zeroP P
		zeroT T
	)

	return zeroP, zeroT, false
}

// relax compares g(u) + w against the recorded cost of every neighbor v and
// re-pushes v whenever the candidate is strictly cheaper.
func (r *runner[P, C, T]) relax(u P, g C) {
	seq := r.neighbors(u)
	if seq == nil {
		return
	}
	for v, w := range seq {
		cand := g + w
		if old, seen := r.tree.Cost(v); seen && cand >= old {
			continue
		}
		r.tree.Link(v, u, cand)
		r.push(v, cand)
	}
}

func (r *runner[P, C, T]) push(s P, g C) {
	r.seq++
	r.pq.Push(entry[P, C]{state: s, g: g, f: g + r.heuristic(s), seq: r.seq})
	r.stats.Discovered++
	r.stats.Frontier(r.pq.Len())
}
