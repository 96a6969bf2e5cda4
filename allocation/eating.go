package allocation

import "github.com/katalvlaran/choicekit/profile"

// ProbabilisticSerial runs the simultaneous-eating procedure over a
// strict complete square profile: all agents eat their favourite
// remaining item at unit speed, moving on when it is exhausted, until
// every item is consumed. The returned N×N matrix holds each agent's
// share of each item and is bistochastic, ready for BirkhoffVonNeumann.
//
// Steps:
//  1. Validate: strict, complete, square (O(n²)).
//  2. Repeat: point each agent at its best-ranked item with supply
//     left, advance time by the smallest supply/eaters ratio, charge
//     every agent its share. Each phase exhausts at least one item,
//     so there are at most n phases.
//
// Complexity:
//
//	Time:   O(n³) worst case (n phases, O(n²) scan each).
//	Memory: O(n²).
func ProbabilisticSerial(p profile.Ordinal, opts Options) ([][]float64, error) {
	opts.normalize()
	if err := profile.CheckOrdinal(p, profile.Strict|profile.Complete); err != nil {
		return nil, err
	}

	n := p.Agents()
	if p.Alternatives() != n {
		return nil, ErrNotSquare
	}

	supply := make([]float64, n)
	for j := range supply {
		supply[j] = 1
	}
	shares := make([][]float64, n)
	for i := range shares {
		shares[i] = make([]float64, n)
	}

	remaining := n
	for remaining > 0 {
		// each agent's current target
		target := make([]int, n)
		eaters := make([]int, n)
		for i := 0; i < n; i++ {
			target[i] = -1
			bestRank := n + 1
			for j, r := range p[i] {
				if supply[j] > opts.Epsilon && r.Position() < bestRank {
					target[i], bestRank = j, r.Position()
				}
			}
			if target[i] != -1 {
				eaters[target[i]]++
			}
		}

		// smallest time until some targeted item runs out
		dt := 0.0
		for j := 0; j < n; j++ {
			if eaters[j] == 0 {
				continue
			}
			t := supply[j] / float64(eaters[j])
			if dt == 0 || t < dt {
				dt = t
			}
		}
		if dt == 0 {
			break // nothing left to eat
		}

		for i := 0; i < n; i++ {
			j := target[i]
			if j == -1 {
				continue
			}
			shares[i][j] += dt
			supply[j] -= dt
		}
		for j := 0; j < n; j++ {
			if eaters[j] > 0 && supply[j] <= opts.Epsilon {
				supply[j] = 0
				remaining--
			}
		}
	}

	return shares, nil
}
