package voting

import (
	"math/rand"

	"github.com/katalvlaran/choicekit/profile"
)

// STV runs single-transferable-vote elimination: each round counts, for
// every remaining alternative, the voters whose best remaining choice
// it is, then drops the lowest scorer; the last alternative standing
// wins. Ties among the lowest scorers are resolved by policy —
// TieBreakFirst drops the lowest index, TieBreakRandom draws among
// them.
//
// The profile must be strict and complete.
// Complexity: O(N·M²) over at most M−1 rounds.
func STV(p profile.Ordinal, policy profile.TieBreak, rng *rand.Rand, opts Options) (int, error) {
	if err := profile.CheckOrdinal(p, profile.Strict|profile.Complete); err != nil {
		return 0, err
	}
	if policy == profile.TieBreakRandom && rng == nil {
		return 0, ErrNilRand
	}

	m := p.Alternatives()
	active := make([]bool, m)
	for j := range active {
		active[j] = true
	}

	for remaining := m; remaining > 1; remaining-- {
		scores := make([]float64, m)
		for i := range p {
			top, bestRank := -1, m+1
			for j, r := range p[i] {
				if active[j] && r.Position() < bestRank {
					top, bestRank = j, r.Position()
				}
			}
			scores[top]++
		}

		var lowest []int
		worst := float64(len(p) + 1)
		for j := 0; j < m; j++ {
			if !active[j] {
				continue
			}
			if scores[j] < worst {
				worst = scores[j]
				lowest = lowest[:0]
			}
			if scores[j] == worst {
				lowest = append(lowest, j)
			}
		}

		drop, err := pickOne(lowest, policy, rng)
		if err != nil {
			return 0, err
		}
		active[drop] = false
	}

	winner := 0
	for j, ok := range active {
		if ok {
			winner = j

			break
		}
	}
	if opts.OneIndexed {
		winner++
	}

	return winner, nil
}
