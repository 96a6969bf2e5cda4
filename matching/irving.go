package matching

import (
	"fmt"

	"github.com/katalvlaran/choicekit/profile"
)

// Optimal computes the stable matching maximizing total cardinal
// welfare for the one-to-one stable marriage problem, per Irving,
// Leather & Gusfield (1987).
//
// val1 and val2 are complete N×N valuation profiles (side 1 over
// side 2 and vice versa). Strict complete ordinal profiles are taken
// from opts when supplied (and checked for consistency against the
// valuations) or derived from the valuations under opts.TieBreak.
//
// Steps:
//  1. Validate profiles: complete valuations, square and equal-sized;
//     supplied ordinals strict, complete and valuation-consistent.
//  2. Deferred acceptance, side 1 proposing, all capacities 1 — the
//     side-1-optimal matching. Anything short of a bijection means the
//     profile pair is inconsistent: ErrImperfectMatching.
//  3. Reduce shortlists around that matching (Irving's lemma) and
//     snapshot the side-1 lists for poset construction.
//  4. Enumerate all rotations with eliminations, round by round.
//  5. Build the precedence poset, weigh each rotation by the welfare
//     change its elimination causes, and pick the maximum-weight
//     predecessor-closed subset by min-cut.
//  6. Apply the chosen eliminations in discovery order (a linear
//     extension of the poset): each eliminated rotation moves every
//     listed man to the next pair's woman.
//
// Complexity:
//
//	Time:   O(n²) for steps 2–4 and 6; the min-cut dominates with
//	        O(V·E²) over the rotation DAG.
//	Memory: O(n²).
func Optimal(val1, val2 profile.Valuation, opts OptimalOptions) ([]Pair, error) {
	if err := profile.CheckValuation(val1, true); err != nil {
		return nil, err
	}
	if err := profile.CheckValuation(val2, true); err != nil {
		return nil, err
	}

	n := val1.Agents()
	if val1.Alternatives() != n || val2.Agents() != n || val2.Alternatives() != n {
		return nil, fmt.Errorf("%w: side1 %dx%d, side2 %dx%d",
			ErrNotSquare, n, val1.Alternatives(), val2.Agents(), val2.Alternatives())
	}

	ord1, err := ordinalFor(val1, opts.Ordinal1, opts)
	if err != nil {
		return nil, err
	}
	ord2, err := ordinalFor(val2, opts.Ordinal2, opts)
	if err != nil {
		return nil, err
	}

	ones := make([]int, n)
	for i := range ones {
		ones[i] = 1
	}
	pairs, err := GaleShapley(ord1, ord2, ones, GSOptions{Orientation: ProposeSide1})
	if err != nil {
		return nil, err
	}
	if len(pairs) != n {
		return nil, fmt.Errorf("%w: %d of %d matched", ErrImperfectMatching, len(pairs), n)
	}

	match := make([]int, n) // match[m] = w, side-1-optimal
	for _, p := range pairs {
		match[p.M] = p.W
	}

	s := buildShortlists(ord1, ord2, match)
	initial := s.cloneLists1()

	rotations, elim := enumerateRotations(s)
	if len(rotations) > 0 {
		adj := buildPoset(rotations, initial, elim)
		weights := make([]float64, len(rotations))
		for i, rot := range rotations {
			weights[i] = RotationWeight(rot, val1, val2)
		}

		chosen, err := maxWeightClosedSubset(weights, adj)
		if err != nil {
			return nil, err
		}

		// discovery order is a linear extension of the poset
		for idx, rot := range rotations {
			if !chosen[idx] {
				continue
			}
			r := len(rot)
			for i := 0; i < r; i++ {
				match[rot[i].M] = rot[(i+1)%r].W
			}
		}
	}

	out := make([]Pair, n)
	shift := 0
	if opts.OneIndexed {
		shift = 1
	}
	for m, w := range match {
		out[m] = Pair{M: m + shift, W: w + shift}
	}

	return out, nil
}

// ordinalFor returns the supplied ordinal profile after validation, or
// derives one from the valuation profile.
func ordinalFor(val profile.Valuation, ord profile.Ordinal, opts OptimalOptions) (profile.Ordinal, error) {
	if ord == nil {
		return profile.OrdinalFromValuation(val, opts.TieBreak, opts.Rand)
	}
	if err := profile.CheckOrdinal(ord, profile.Strict|profile.Complete); err != nil {
		return nil, err
	}
	if err := profile.CheckConsistent(ord, val); err != nil {
		return nil, err
	}

	return ord, nil
}
