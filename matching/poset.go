package matching

import (
	"sort"

	"github.com/katalvlaran/choicekit/flow"
)

// buildPoset derives the rotation precedence DAG from the reduced
// side-1 lists as they stood before elimination (lists1 is the snapshot
// taken between shortlist construction and enumeration) and the
// elimination map.
//
// For each consecutive pair of entries w, w′ in a man's list with
// (m, w) belonging to rotation π:
//   - Rule 1: if (m, w′) belongs to rotation ρ, then π precedes ρ —
//     eliminating π is what exposes (m, w′) as a current pair.
//   - Rule 2: otherwise, if (m, w′) was eliminated by rotation ρ, then
//     ρ precedes π — the pair must already be gone before π can move m
//     past w′.
//
// Rule 1 is consulted first, so a pair that is both a rotation member
// and an elimination victim (every rotation eliminates its own pairs)
// never produces a Rule 2 edge. Self-edges are dropped; duplicates are
// collapsed. The result adj[π] lists π's immediate successors in
// ascending order.
//
// Complexity: O(n² + E).
func buildPoset(rotations []Rotation, lists1 [][]int, elim map[Pair]int) [][]int {
	pairRot := make(map[Pair]int)
	for idx, rot := range rotations {
		for _, p := range rot {
			pairRot[p] = idx
		}
	}

	edges := make(map[[2]int]struct{})
	for m, list := range lists1 {
		for k := 0; k+1 < len(list); k++ {
			pi, ok := pairRot[Pair{M: m, W: list[k]}]
			if !ok {
				continue
			}
			next := Pair{M: m, W: list[k+1]}
			if rho, ok := pairRot[next]; ok {
				if rho != pi {
					edges[[2]int{pi, rho}] = struct{}{}
				}

				continue
			}
			if rho, ok := elim[next]; ok && rho != pi {
				edges[[2]int{rho, pi}] = struct{}{}
			}
		}
	}

	adj := make([][]int, len(rotations))
	for e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}
	for _, succ := range adj {
		sort.Ints(succ)
	}

	return adj
}

// topologicalOrder returns a Kahn ordering of the DAG and true, or nil
// and false if adj contains a cycle.
func topologicalOrder(adj [][]int) ([]int, bool) {
	n := len(adj)
	indeg := make([]int, n)
	for _, succ := range adj {
		for _, v := range succ {
			indeg[v]++
		}
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	if len(order) != n {
		return nil, false
	}

	return order, true
}

// maxWeightClosedSubset picks the predecessor-closed set of rotations
// with maximum total weight via the classical min-cut reduction:
// source→ρ with capacity |weight| for negative-weight rotations, ρ→sink
// with capacity weight for positive-weight ones, and every poset edge
// π→ρ with Infinite capacity. In any finite cut an Infinite edge never
// crosses from the source side to the sink side, so the sink side is
// predecessor-closed, and its cut value is (total positive weight) −
// (weight of the sink side) — minimizing the cut maximizes the chosen
// set's weight. The chosen set is therefore every rotation NOT on the
// source side of the returned min cut.
//
// A fixed-point pass then re-closes the set under predecessors; with an
// exact min cut it never adds anything and exists as a numerical
// safety net for near-zero weights.
func maxWeightClosedSubset(weights []float64, adj [][]int) ([]bool, error) {
	n := flow.NewNetwork()
	n.AddNode(flow.Source)
	n.AddNode(flow.Sink)
	for rho, w := range weights {
		n.AddNode(rho)
		var err error
		if w < 0 {
			err = n.AddEdge(flow.Source, rho, -w)
		} else if w > 0 {
			err = n.AddEdge(rho, flow.Sink, w)
		}
		if err != nil {
			return nil, err
		}
	}
	for pi, succ := range adj {
		for _, rho := range succ {
			if err := n.AddEdge(pi, rho, flow.Infinite); err != nil {
				return nil, err
			}
		}
	}

	res, err := flow.FordFulkerson(n, flow.Source, flow.Sink, flow.DefaultOptions())
	if err != nil {
		return nil, err
	}

	chosen := make([]bool, len(weights))
	for rho := range weights {
		chosen[rho] = !res.OnSourceSide(rho)
	}

	for changed := true; changed; {
		changed = false
		for pi, succ := range adj {
			if chosen[pi] {
				continue
			}
			for _, rho := range succ {
				if chosen[rho] {
					chosen[pi] = true
					changed = true

					break
				}
			}
		}
	}

	return chosen, nil
}
