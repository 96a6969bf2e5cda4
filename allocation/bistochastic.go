package allocation

import (
	"math/rand"

	"github.com/katalvlaran/choicekit/flow"
)

// PositivityGraph builds the bipartite support graph of a square
// matrix: node i is row i, node n+j is column j, and an undirected edge
// joins them whenever the entry is strictly positive (entries within
// eps of zero, or negative, carry no edge). Both directions are listed,
// columns ascending.
func PositivityGraph(matrix [][]float64, eps float64) map[int][]int {
	n := len(matrix)
	graph := make(map[int][]int, 2*n)
	for i := 0; i < 2*n; i++ {
		graph[i] = nil
	}
	for i, row := range matrix {
		for j, v := range row {
			if v > eps {
				graph[i] = append(graph[i], n+j)
				graph[n+j] = append(graph[n+j], i)
			}
		}
	}

	return graph
}

// BirkhoffVonNeumann decomposes a bistochastic matrix into a convex
// combination of assignments. Each step finds a perfect matching on
// the positivity graph (Birkhoff's theorem guarantees one exists),
// peels off the matching scaled by its minimum entry, and recurses on
// the remainder; the minimum entry hits zero, so each step removes at
// least one positive cell and the loop runs at most n² times.
//
// The coefficients sum to 1 and every Component.Assignment is a
// permutation of the items. A matrix failing the row/column sums, or a
// remainder whose support has no perfect matching, reports
// ErrNotBistochastic.
//
// Complexity: O(n²) matchings of O(V·E) each, O(n²) memory.
func BirkhoffVonNeumann(matrix [][]float64, opts Options) ([]Component, error) {
	opts.normalize()
	n := len(matrix)
	if n == 0 {
		return nil, ErrNotSquare
	}

	work := make([][]float64, n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, ErrNotSquare
		}
		work[i] = append([]float64(nil), row...)
	}
	if err := checkBistochastic(work, opts.Epsilon); err != nil {
		return nil, err
	}

	left := make([]int, n)
	right := make([]int, n)
	for i := 0; i < n; i++ {
		left[i] = i
		right[i] = n + i
	}

	var out []Component
	var total float64
	for total < 1-opts.Epsilon {
		adj := PositivityGraph(work, opts.Epsilon)
		pairs, err := flow.MaximumBipartiteMatching(left, right, adj, flow.Options{Epsilon: opts.Epsilon})
		if err != nil {
			return nil, err
		}
		if len(pairs) != n {
			return nil, ErrNotBistochastic
		}

		assignment := make([]int, n)
		z := 2.0
		for _, p := range pairs {
			i, j := p[0], p[1]-n
			assignment[i] = j
			if work[i][j] < z {
				z = work[i][j]
			}
		}
		for i, j := range assignment {
			work[i][j] -= z
		}
		if opts.OneIndexed {
			for i := range assignment {
				assignment[i]++
			}
		}

		out = append(out, Component{Coefficient: z, Assignment: assignment})
		total += z
	}

	return out, nil
}

// SampleAssignment draws one assignment from a decomposition, each
// component with probability proportional to its coefficient.
func SampleAssignment(components []Component, rng *rand.Rand) ([]int, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if len(components) == 0 {
		return nil, ErrNotBistochastic
	}

	var total float64
	for _, c := range components {
		total += c.Coefficient
	}

	u := rng.Float64() * total
	var acc float64
	for _, c := range components {
		acc += c.Coefficient
		if u < acc {
			return append([]int(nil), c.Assignment...), nil
		}
	}

	// rounding pushed u past the last boundary
	last := components[len(components)-1]

	return append([]int(nil), last.Assignment...), nil
}

// checkBistochastic verifies non-negative entries and unit row and
// column sums within eps.
func checkBistochastic(matrix [][]float64, eps float64) error {
	n := len(matrix)
	colSums := make([]float64, n)
	for _, row := range matrix {
		var rowSum float64
		for j, v := range row {
			if v < -eps {
				return ErrNotBistochastic
			}
			rowSum += v
			colSums[j] += v
		}
		if rowSum < 1-eps || rowSum > 1+eps {
			return ErrNotBistochastic
		}
	}
	for _, s := range colSums {
		if s < 1-eps || s > 1+eps {
			return ErrNotBistochastic
		}
	}

	return nil
}
