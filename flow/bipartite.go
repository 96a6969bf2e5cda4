package flow

import "sort"

// Pseudonode IDs used by Bipartite. Real nodes must be non-negative.
const (
	// Source is the pseudonode feeding every left-side node.
	Source = -1

	// Sink is the pseudonode drained by every right-side node.
	Sink = -2
)

// Bipartite converts a bipartite graph into a unit-capacity flow
// network: Source → every left node, left → right along adj, and every
// right node → Sink. adj may be undirected (right-side rows are
// ignored); only left→right entries contribute edges.
//
// Left and right must be disjoint, non-negative node sets.
func Bipartite(left, right []int, adj map[int][]int) (*Network, error) {
	inLeft := make(map[int]bool, len(left))
	inRight := make(map[int]bool, len(right))
	for _, l := range left {
		if l < 0 || inLeft[l] {
			return nil, ErrNodeCollision
		}
		inLeft[l] = true
	}
	for _, r := range right {
		if r < 0 || inLeft[r] || inRight[r] {
			return nil, ErrNodeCollision
		}
		inRight[r] = true
	}

	n := NewNetwork()
	for _, l := range left {
		if err := n.AddEdge(Source, l, 1); err != nil {
			return nil, err
		}
	}
	for _, r := range right {
		if err := n.AddEdge(r, Sink, 1); err != nil {
			return nil, err
		}
	}
	for u, vs := range adj {
		if !inLeft[u] {
			continue
		}
		for _, v := range vs {
			if !inRight[v] {
				continue
			}
			if err := n.AddEdge(u, v, 1); err != nil {
				return nil, err
			}
		}
	}

	return n, nil
}

// MaximumBipartiteMatching computes a maximum-cardinality matching of
// the bipartite graph via max flow on the Bipartite network. Each
// returned pair is (left, right); pairs come back sorted by the left
// node.
//
// Complexity: O(E · √V) augmentations would need Dinic; this BFS-based
// solver is O(V · E) here, which the small instances this module feeds
// it never notice.
func MaximumBipartiteMatching(left, right []int, adj map[int][]int, opts Options) ([][2]int, error) {
	n, err := Bipartite(left, right, adj)
	if err != nil {
		return nil, err
	}

	res, err := FordFulkerson(n, Source, Sink, opts)
	if err != nil {
		return nil, err
	}

	inLeft := make(map[int]bool, len(left))
	for _, l := range left {
		inLeft[l] = true
	}

	pairs := make([][2]int, 0, len(left))
	for e, f := range res.Flow {
		if f > 0.5 && inLeft[e.From] && e.To != Sink {
			pairs = append(pairs, [2]int{e.From, e.To})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a][0] < pairs[b][0] })

	return pairs, nil
}
