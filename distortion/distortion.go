package distortion

import (
	"math"

	"github.com/katalvlaran/choicekit/profile"
)

// SocialWelfare totals each alternative's utility across agents.
// Unacceptable cells contribute zero.
func SocialWelfare(v profile.Valuation) ([]float64, error) {
	if err := profile.CheckValuation(v, false); err != nil {
		return nil, err
	}

	scores := make([]float64, v.Alternatives())
	for i := 0; i < v.Agents(); i++ {
		for j := range scores {
			if cell := v[i][j]; cell.Known() {
				scores[j] += cell.Float()
			}
		}
	}

	return scores, nil
}

// Distortion is the ratio of the best achievable social welfare to the
// welfare of the chosen alternatives. A choice set is scored by its
// worst member, so the ratio bounds every tie-breaking of the set. A
// zero-welfare choice against positive optimum yields +Inf.
func Distortion(choice []int, v profile.Valuation, opts Options) (float64, error) {
	if len(choice) == 0 {
		return 0, ErrNoChoice
	}

	scores, err := SocialWelfare(v)
	if err != nil {
		return 0, err
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}

	worst := math.Inf(1)
	for _, a := range choice {
		if opts.OneIndexed {
			a--
		}
		if a < 0 || a >= len(scores) {
			return 0, ErrChoiceOutOfRange
		}
		if scores[a] < worst {
			worst = scores[a]
		}
	}

	if worst == 0 {
		if best == 0 {
			return 1, nil
		}

		return math.Inf(1), nil
	}

	return best / worst, nil
}
