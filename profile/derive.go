package profile

import (
	"math/rand"
	"sort"
)

// OrdinalFromValuation derives a strict ordinal profile from a
// valuation profile: within each row, known utilities are ranked in
// descending order and assigned positions 1..k; Unacceptable cells stay
// Unranked. Exact utility ties are resolved by the supplied policy —
// TieBreakFirst favours the lower alternative index, TieBreakRandom
// permutes tied alternatives using rng (required for that policy).
//
// Derivation is not stability-preserving when ties exist: two
// valuation-identical agents may end up with different strict rankings
// under TieBreakRandom. This is the caller's trade-off to make.
//
// Complexity: O(N·M log M).
func OrdinalFromValuation(v Valuation, policy TieBreak, rng *rand.Rand) (Ordinal, error) {
	if err := CheckValuation(v, false); err != nil {
		return nil, err
	}
	if policy == TieBreakRandom && rng == nil {
		return nil, ErrNilRand
	}

	n, m := v.Agents(), v.Alternatives()
	p := make(Ordinal, n)
	order := make([]int, 0, m)
	for i := 0; i < n; i++ {
		p[i] = make([]Rank, m)

		order = order[:0]
		for j := 0; j < m; j++ {
			if v[i][j].Known() {
				order = append(order, j)
			}
		}
		if policy == TieBreakRandom {
			// pre-shuffle, then stable sort: tied groups keep the shuffled order
			rng.Shuffle(len(order), func(a, b int) {
				order[a], order[b] = order[b], order[a]
			})
		}
		row := v[i]
		sort.SliceStable(order, func(a, b int) bool {
			return row[order[a]].Float() > row[order[b]].Float()
		})

		for pos, j := range order {
			p[i][j] = RankOf(pos + 1)
		}
	}

	return p, nil
}
