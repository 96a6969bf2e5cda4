package allocation

import (
	"math/rand"

	"github.com/katalvlaran/choicekit/profile"
)

// SerialDictatorship allocates items by priority: agents are visited in
// the given order and each takes the best-ranked item still available,
// skipping unranked (unacceptable) items. An agent whose acceptable
// items are all taken gets Unassigned. The profile must be strict;
// order must be a permutation of the agents.
//
// Complexity: O(N·M).
func SerialDictatorship(p profile.Ordinal, order []int, opts Options) ([]int, error) {
	opts.normalize()
	if err := profile.CheckOrdinal(p, profile.Strict); err != nil {
		return nil, err
	}

	n, m := p.Agents(), p.Alternatives()
	if len(order) != n {
		return nil, ErrBadOrder
	}
	seen := make([]bool, n)
	for _, a := range order {
		if a < 0 || a >= n || seen[a] {
			return nil, ErrBadOrder
		}
		seen[a] = true
	}

	taken := make([]bool, m)
	out := make([]int, n)
	for i := range out {
		out[i] = Unassigned
	}
	for _, agent := range order {
		best, bestRank := Unassigned, m+1
		for j, r := range p[agent] {
			if r.Known() && !taken[j] && r.Position() < bestRank {
				best, bestRank = j, r.Position()
			}
		}
		if best == Unassigned {
			continue
		}
		taken[best] = true
		out[agent] = best
		if opts.OneIndexed {
			out[agent]++
		}
	}

	return out, nil
}

// RandomSerialDictatorship draws the priority order uniformly at
// random and delegates to SerialDictatorship.
func RandomSerialDictatorship(p profile.Ordinal, rng *rand.Rand, opts Options) ([]int, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	order := rng.Perm(p.Agents())

	return SerialDictatorship(p, order, opts)
}
