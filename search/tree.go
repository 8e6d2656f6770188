package search

// Path is a sequence of states connected by single neighbor-function steps.
// Paths returned by the search strategies are ordered terminal → start.
type Path[P comparable] []P

// Terminal returns the accepted state (first element).
func (p Path[P]) Terminal() (P, bool) {
	if len(p) == 0 {
		var zero P
		return zero, false
	}

	return p[0], true
}

// Origin returns the start state the path grew from (last element).
func (p Path[P]) Origin() (P, bool) {
	if len(p) == 0 {
		var zero P
		return zero, false
	}

	return p[len(p)-1], true
}

// Hops returns the number of edges along the path.
func (p Path[P]) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Reversed returns a start → terminal copy of p. The receiver is not modified.
func (p Path[P]) Reversed() Path[P] {
	out := make(Path[P], len(p))
	for i, s := range p {
		out[len(p)-1-i] = s
	}

	return out
}

// link is one record of the predecessor tree.
type link[P comparable, C any] struct {
	prev P    // predecessor; meaningless when root is set
	cost C    // depth (dfs, bfs) or accumulated cost (astar)
	root bool // true for start states
}

// Tree is the visited / best-cost record of a search run.
// It maps each discovered state to its predecessor and cost.
// Tree is not safe for concurrent use; every search owns its own Tree.
type Tree[P comparable, C any] struct {
	links map[P]link[P, C]
}

// NewTree returns an empty Tree sized for roughly capacity states.
func NewTree[P comparable, C any](capacity int) *Tree[P, C] {
	return &Tree[P, C]{links: make(map[P]link[P, C], capacity)}
}

// Root records p as a start state with the given cost.
func (t *Tree[P, C]) Root(p P, cost C) {
	t.links[p] = link[P, C]{cost: cost, root: true}
}

// Link records prev as the predecessor of p, reached at the given cost.
// Any previous record for p is replaced.
func (t *Tree[P, C]) Link(p, prev P, cost C) {
	t.links[p] = link[P, C]{prev: prev, cost: cost}
}

// Has reports whether p has been discovered.
func (t *Tree[P, C]) Has(p P) bool {
	_, ok := t.links[p]
	return ok
}

// Cost returns the recorded cost of p.
func (t *Tree[P, C]) Cost(p P) (C, bool) {
	l, ok := t.links[p]
	return l.cost, ok
}

// Prev returns the predecessor of p. It reports false for roots and for
// states that were never discovered.
func (t *Tree[P, C]) Prev(p P) (P, bool) {
	l, ok := t.links[p]
	if !ok || l.root {
		var zero P
		return zero, false
	}

	return l.prev, true
}

// IsRoot reports whether p was recorded as a start state.
func (t *Tree[P, C]) IsRoot(p P) bool {
	l, ok := t.links[p]
	return ok && l.root
}

// Len returns the number of discovered states.
func (t *Tree[P, C]) Len() int { return len(t.links) }

// Walk follows predecessor links from p until it reaches a root and returns
// the states visited on the way, terminal first. It returns nil if p was never
// discovered. The walk is bounded by Len() so a corrupted record cannot loop.
func (t *Tree[P, C]) Walk(p P) Path[P] {
	if !t.Has(p) {
		return nil
	}

	path := make(Path[P], 0, 16)
	for cur, steps := p, 0; steps <= len(t.links); steps++ {
		path = append(path, cur)
		l := t.links[cur]
		if l.root {
			return path
		}
		if _, ok := t.links[l.prev]; !ok {
			// dangling link: return what we have
			return path
		}
		cur = l.prev
	}

	return path
}
