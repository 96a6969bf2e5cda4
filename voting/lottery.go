package voting

import (
	"math/rand"

	"github.com/katalvlaran/choicekit/profile"
)

// Lottery returns the randomized variant of a scoring rule as an
// explicit distribution: each alternative wins with probability
// proportional to its score. Fails with ErrZeroScores when no
// alternative scores (a veto lottery over a single alternative, say).
// Complexity: O(N·M).
func Lottery(rule Rule, p profile.Ordinal, opts Options) ([]float64, error) {
	scores, err := Score(rule, p, opts)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		return nil, ErrZeroScores
	}

	dist := make([]float64, len(scores))
	for j, s := range scores {
		dist[j] = s / total
	}

	return dist, nil
}

// Sample draws one winner from the rule's lottery.
func Sample(rule Rule, p profile.Ordinal, rng *rand.Rand, opts Options) (int, error) {
	if rng == nil {
		return 0, ErrNilRand
	}
	dist, err := Lottery(rule, p, opts)
	if err != nil {
		return 0, err
	}

	shift := 0
	if opts.OneIndexed {
		shift = 1
	}
	u := rng.Float64()
	var acc float64
	for j, q := range dist {
		acc += q
		if u < acc {
			return j + shift, nil
		}
	}

	// guard against accumulated rounding: the draw lands on the last
	// positive-probability alternative
	for j := len(dist) - 1; j >= 0; j-- {
		if dist[j] > 0 {
			return j + shift, nil
		}
	}

	return 0, ErrZeroScores
}
