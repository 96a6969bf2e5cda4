// Package flow implements a maximum-flow / minimum-cut primitive on a
// small, self-contained directed network with integer node IDs and
// float64 capacities. It is the combinatorial engine behind the
// rotation-poset optimization in package matching and the
// Birkhoff–von Neumann decomposition in package allocation, and is
// usable standalone.
//
// The solver is FordFulkerson: repeated augmenting paths found by
// breadth-first search (the Edmonds–Karp discipline), so termination is
// guaranteed by the O(V·E) bound on augmentations — it does not rely on
// integral capacities, although every capacity this module feeds it is
// either integral-valued or Infinite.
//
//   - Time:   O(V · E²) worst case; in practice bounded by the number
//     of augmenting paths, which here is at most the number of
//     finite-capacity source edges.
//   - Memory: O(V + E) for the residual capacity map and BFS queue.
//
// # Capacities
//
// Capacities are non-negative float64 values; Infinite marks an edge
// that must never be cut (poset precedence edges use it). Capacities
// ≤ Options.Epsilon are treated as absent.
//
// # Results
//
// FordFulkerson returns the flow value, the per-edge flow assignment on
// the original edges, and one minimum cut, reported as the set of nodes
// reachable from the source in the residual network after saturation.
//
// # Bipartite conversion
//
// Bipartite builds the standard unit-capacity network for a bipartite
// graph (source → left side → right side → sink), and
// MaximumBipartiteMatching extracts a maximum-cardinality matching from
// its max flow.
//
// # Errors
//
//	ErrSourceNotFound - the source node is missing from the network.
//	ErrSinkNotFound   - the sink node is missing from the network.
//	ErrNodeCollision  - bipartite sides overlap each other or a pseudonode.
//	EdgeError         - a negative capacity was supplied.
//
// All of these are programming-contract violations: the caller built
// the network wrong, and no partial result is returned.
package flow
