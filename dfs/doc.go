// Package dfs implements depth-first search over an implicit state graph.
//
// The graph is never materialized: the caller supplies a neighbor function that
// yields the successors of a state on demand, and a visitor that is called once
// for every expanded state. The search stops as soon as the visitor accepts.
//
// Key features:
//   - Search(neighbors, visit, starts, opts...) returns the visitor's value.
//   - SearchPath(...) additionally returns the path from the accepted state back to
//     the start it was reached from (terminal → start).
//   - Multiple start states are seeded before expansion; they are expanded in
//     reverse insertion order (stack order).
//   - Every state is discovered, and therefore expanded, at most once.
//
// Guarantees and caveats:
//
//   - Visitation order is last-in-first-out and carries no shortest-path guarantee.
//     A state reached again through a different parent is not re-queued, so the
//     returned path is some valid path, not necessarily the shortest.
//   - A neighbor function that keeps producing new states never terminates;
//     bound the search through the visitor or search.WithMaxDepth.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable part of the graph, plus callback cost.
//   - Memory: O(V) for the visited record and the stack.
//
// Options (package search):
//
//   - WithMaxDepth(d)   do not discover states deeper than d.
//   - WithStats(&s)     receive expansion and frontier counters.
//   - WithCapacity(n)   pre-size the visited record.
package dfs
