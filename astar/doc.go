// Package astar implements A* search over an implicit, weighted state graph.
//
// The caller supplies:
//
//   - neighbors(state): the successors of state with their edge costs, as an iter.Seq2;
//   - visit(state, g): called once per expanded state with its accumulated cost g;
//     returns (value, true) to stop the search;
//   - heuristic(state): an estimate h of the remaining cost to any acceptable state;
//   - starts: one or more origin states, all entered with g = 0.
//
// States are expanded in increasing f = g + h. When h is admissible (never
// overestimates) and edge costs are non-negative, the first accepted state is a
// cheapest acceptable state. A consistent h additionally means no state is expanded
// twice. Zero is always admissible and turns the search into Dijkstra's
// uniform-cost search.
//
// Decrease-key by re-push
//
//	When a strictly cheaper path to a state is found, its record (predecessor and g)
//	is overwritten and the state is pushed again with the new priority. The older
//	queue entry is left in place. Correctness rests on the comparison made at push
//	time; when an outdated entry is eventually popped it is recognized (its g exceeds
//	the recorded cost), skipped without calling the visitor, and counted in
//	search.Stats.Stale.
//
// Ties
//
//	Entries with equal f pop in insertion order. This is an implementation detail;
//	callers should not depend on it.
//
// Numeric caveats
//
//	Cost is any Go integer or floating-point type. Additions are not checked for
//	overflow; choose a cost type wide enough for the domain.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with a consistent heuristic.
//   - Space: O(V + E): the record holds V entries, the queue up to E stale copies.
package astar
