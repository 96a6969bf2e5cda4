package flow

import (
	"fmt"
	"math"
	"sort"
)

// FordFulkerson computes the maximum flow from source to sink in n
// using BFS-selected augmenting paths (Edmonds–Karp discipline).
//
// It returns a Result holding:
//   - Value  : the total flow value
//   - Flow   : per-original-edge flow assignment
//   - MinCut : the source side of one minimum cut (nodes reachable from
//     source in the residual network after saturation)
//
// Steps:
//  1. Normalize options and validate source/sink (O(1)).
//  2. Build the residual capacity map (O(V + E)).
//  3. Repeat until no augmenting path: BFS for the fewest-edge path
//     with residual capacity > Epsilon, push its bottleneck, update
//     forward and reverse residuals (O(E) per augmentation).
//  4. Recover per-edge flow as cap(u,v) − residual(u,v), clamped at 0.
//  5. Collect the residual source-reachable set as the min cut.
//
// Complexity:
//
//	Time:   O(V · E²) worst case.
//	Memory: O(V + E).
func FordFulkerson(n *Network, source, sink int, opts Options) (Result, error) {
	// 1) Normalize options
	opts.normalize()
	eps := opts.Epsilon

	if !n.HasNode(source) {
		return Result{}, ErrSourceNotFound
	}
	if !n.HasNode(sink) {
		return Result{}, ErrSinkNotFound
	}

	// 2) Residual capacities, mutated in place by each augmentation
	res := n.residual(eps)

	var (
		value  float64
		parent = make(map[int]int, len(res))
	)

	// 3) Augment until the sink is unreachable
	for {
		path, bottle := bfsAugmentingPath(res, source, sink, eps, parent)
		if len(path) == 0 {
			break
		}
		if opts.Verbose {
			fmt.Printf("augmenting path %v with flow %g\n", path, bottle)
		}
		value += bottle

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			res[u][v] -= bottle
			res[v][u] += bottle
		}
	}

	// 4) Per-edge flow on the original edges
	flowMap := make(map[Edge]float64, len(n.caps))
	for u, inner := range n.caps {
		for v, c := range inner {
			f := c - res[u][v]
			if math.IsInf(c, 1) {
				// the reverse residual records exactly what was pushed
				f = res[v][u] - n.Capacity(v, u)
			}
			if f < 0 || f <= eps {
				f = 0
			}
			flowMap[Edge{From: u, To: v}] = f
		}
	}

	// 5) Min cut: residual reachability from source
	cut := reachable(res, source, eps)

	return Result{Value: value, Flow: flowMap, MinCut: cut}, nil
}

// bfsAugmentingPath finds the fewest-edge source→sink path with
// residual capacity > eps and returns it with its bottleneck capacity.
// parent is scratch space reused across calls. Returns a nil path when
// the sink is unreachable.
func bfsAugmentingPath(
	res map[int]map[int]float64,
	source, sink int,
	eps float64,
	parent map[int]int,
) ([]int, float64) {
	for k := range parent {
		delete(parent, k)
	}
	parent[source] = source

	queue := []int{source}
	found := false
	for len(queue) > 0 && !found {
		u := queue[0]
		queue = queue[1:]
		for v, c := range res[u] {
			if c <= eps {
				continue
			}
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			if v == sink {
				found = true

				break
			}
			queue = append(queue, v)
		}
	}
	if !found {
		return nil, 0
	}

	// walk parents back to the source, tracking the bottleneck
	path := []int{sink}
	bottle := Infinite
	for cur := sink; cur != source; cur = parent[cur] {
		prev := parent[cur]
		if c := res[prev][cur]; c < bottle {
			bottle = c
		}
		path = append(path, prev)
	}
	// reverse into source→sink order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, bottle
}

// reachable returns, in ascending order, every node reachable from
// start over residual edges with capacity > eps.
func reachable(res map[int]map[int]float64, start int, eps float64) []int {
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v, c := range res[u] {
			if c > eps && !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}

	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
