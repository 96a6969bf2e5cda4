package voting

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/choicekit/profile"
)

// positionScore is the contribution one voter makes to the alternative
// at 1-based rank r, out of m alternatives.
func positionScore(rule Rule, r, m, k int) float64 {
	switch rule {
	case Plurality:
		if r == 1 {
			return 1
		}
	case Borda:
		return float64(m - r)
	case Veto:
		if r < m {
			return 1
		}
	case KApproval:
		if r <= k {
			return 1
		}
	case Harmonic:
		return 1 / float64(r)
	}

	return 0
}

// Score sums each voter's positional contribution per alternative.
// The profile must be strict and complete.
// Complexity: O(N·M).
func Score(rule Rule, p profile.Ordinal, opts Options) ([]float64, error) {
	if err := opts.normalize(rule); err != nil {
		return nil, err
	}
	if err := profile.CheckOrdinal(p, profile.Strict|profile.Complete); err != nil {
		return nil, err
	}

	m := p.Alternatives()
	scores := make([]float64, m)
	for i := range p {
		for j, r := range p[i] {
			scores[j] += positionScore(rule, r.Position(), m, opts.K)
		}
	}

	return scores, nil
}

// Ranking orders the alternatives by descending score, ties broken
// toward the lower index, and returns the order alongside the matching
// scores (the social welfare function).
// Complexity: O(N·M + M log M).
func Ranking(rule Rule, p profile.Ordinal, opts Options) ([]int, []float64, error) {
	scores, err := Score(rule, p, opts)
	if err != nil {
		return nil, nil, err
	}

	order, sorted := rankByScore(scores, opts.OneIndexed)

	return order, sorted, nil
}

// Winners returns every alternative with the maximum score, ascending.
// Complexity: O(N·M).
func Winners(rule Rule, p profile.Ordinal, opts Options) ([]int, error) {
	scores, err := Score(rule, p, opts)
	if err != nil {
		return nil, err
	}

	return argmax(scores, opts.OneIndexed), nil
}

// Winner resolves the winning set down to one alternative (the social
// choice function). TieBreakFirst picks the lowest index,
// TieBreakRandom draws uniformly among the winners using rng.
func Winner(rule Rule, p profile.Ordinal, policy profile.TieBreak, rng *rand.Rand, opts Options) (int, error) {
	winners, err := Winners(rule, p, opts)
	if err != nil {
		return 0, err
	}

	return pickOne(winners, policy, rng)
}

// rankByScore returns the alternatives sorted by descending score and
// the scores in that order.
func rankByScore(scores []float64, oneIndexed bool) ([]int, []float64) {
	order := make([]int, len(scores))
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	sorted := make([]float64, len(order))
	for i, j := range order {
		sorted[i] = scores[j]
		if oneIndexed {
			order[i]++
		}
	}

	return order, sorted
}

// argmax returns all indices attaining the maximum, ascending.
func argmax(scores []float64, oneIndexed bool) []int {
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}

	shift := 0
	if oneIndexed {
		shift = 1
	}
	var out []int
	for j, s := range scores {
		if s == best {
			out = append(out, j+shift)
		}
	}

	return out
}

// pickOne selects a single element from a non-empty candidate set
// under the tie-break policy.
func pickOne(candidates []int, policy profile.TieBreak, rng *rand.Rand) (int, error) {
	if policy == profile.TieBreakRandom {
		if rng == nil {
			return 0, ErrNilRand
		}

		return candidates[rng.Intn(len(candidates))], nil
	}

	return candidates[0], nil
}
