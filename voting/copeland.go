package voting

import (
	"math/rand"

	"github.com/katalvlaran/choicekit/profile"
)

// CopelandScore computes each alternative's net pairwise record: +1 for
// every opponent a strict majority of voters ranks below it, −1 for
// every opponent that beats it, 0 for exact pairwise ties. Margins are
// disregarded.
//
// The profile must be strict and complete.
// Complexity: O(N·M²).
func CopelandScore(p profile.Ordinal, opts Options) ([]float64, error) {
	if err := profile.CheckOrdinal(p, profile.Strict|profile.Complete); err != nil {
		return nil, err
	}

	m := p.Alternatives()
	scores := make([]float64, m)
	for x := 0; x < m; x++ {
		for y := x + 1; y < m; y++ {
			var margin int
			for i := range p {
				if p[i][x].Better(p[i][y]) {
					margin++
				} else {
					margin--
				}
			}
			switch {
			case margin > 0:
				scores[x]++
				scores[y]--
			case margin < 0:
				scores[x]--
				scores[y]++
			}
		}
	}

	return scores, nil
}

// CopelandRanking orders the alternatives by descending Copeland score,
// ties broken toward the lower index.
func CopelandRanking(p profile.Ordinal, opts Options) ([]int, []float64, error) {
	scores, err := CopelandScore(p, opts)
	if err != nil {
		return nil, nil, err
	}

	order, sorted := rankByScore(scores, opts.OneIndexed)

	return order, sorted, nil
}

// CopelandWinners returns every alternative with the maximum Copeland
// score, ascending.
func CopelandWinners(p profile.Ordinal, opts Options) ([]int, error) {
	scores, err := CopelandScore(p, opts)
	if err != nil {
		return nil, err
	}

	return argmax(scores, opts.OneIndexed), nil
}

// CopelandWinner resolves the winning set down to one alternative
// under the tie-break policy.
func CopelandWinner(p profile.Ordinal, policy profile.TieBreak, rng *rand.Rand, opts Options) (int, error) {
	winners, err := CopelandWinners(p, opts)
	if err != nil {
		return 0, err
	}

	return pickOne(winners, policy, rng)
}
