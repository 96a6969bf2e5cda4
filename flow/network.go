package flow

import "sort"

// Network is a directed graph with integer node IDs and non-negative
// float64 edge capacities. Parallel edges aggregate their capacities;
// self-loops are rejected as negative capacities are. The zero value is
// not usable; call NewNetwork.
type Network struct {
	nodes map[int]struct{}
	caps  map[int]map[int]float64 // caps[u][v] = aggregated capacity u→v
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{
		nodes: make(map[int]struct{}),
		caps:  make(map[int]map[int]float64),
	}
}

// AddNode ensures node id exists. Adding an existing node is a no-op.
func (n *Network) AddNode(id int) {
	n.nodes[id] = struct{}{}
}

// AddEdge adds capacity from→to, creating both endpoints as needed and
// aggregating with any existing capacity. A negative capacity returns
// EdgeError; a self-loop is ignored (it can never carry s-t flow).
func (n *Network) AddEdge(from, to int, capacity float64) error {
	if capacity < 0 {
		return EdgeError{From: from, To: to, Cap: capacity}
	}
	n.AddNode(from)
	n.AddNode(to)
	if from == to {
		return nil
	}
	inner, ok := n.caps[from]
	if !ok {
		inner = make(map[int]float64)
		n.caps[from] = inner
	}
	inner[to] += capacity

	return nil
}

// HasNode reports whether node id exists.
func (n *Network) HasNode(id int) bool {
	_, ok := n.nodes[id]

	return ok
}

// Nodes returns all node IDs in ascending order.
func (n *Network) Nodes() []int {
	out := make([]int, 0, len(n.nodes))
	for id := range n.nodes {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// Capacity returns the aggregated capacity of edge from→to (0 if absent).
func (n *Network) Capacity(from, to int) float64 {
	return n.caps[from][to]
}

// residual builds the mutable residual-capacity map for one max-flow
// run, dropping capacities ≤ eps.
func (n *Network) residual(eps float64) map[int]map[int]float64 {
	res := make(map[int]map[int]float64, len(n.nodes))
	for id := range n.nodes {
		res[id] = make(map[int]float64)
	}
	for u, inner := range n.caps {
		for v, c := range inner {
			if c > eps {
				res[u][v] += c
			}
		}
	}

	return res
}
