package matching

import "github.com/katalvlaran/choicekit/profile"

// RotationWeight returns the net change in total cardinal welfare
// caused by eliminating rho: each listed man moves from his pair's
// woman to the next pair's woman (a loss, he slides down his list),
// each listed woman moves from her pair's man to the previous pair's
// man (a gain, she climbs up hers). A positive weight means the
// elimination improves total welfare.
//
// val1[m][w] is man m's utility for woman w, val2[w][m] the converse.
func RotationWeight(rho Rotation, val1, val2 profile.Valuation) float64 {
	r := len(rho)
	var w float64
	for i := 0; i < r; i++ {
		cur, next, prev := rho[i], rho[(i+1)%r], rho[(i-1+r)%r]
		w += val1[cur.M][next.W].Float() - val1[cur.M][cur.W].Float()
		w += val2[cur.W][prev.M].Float() - val2[cur.W][cur.M].Float()
	}

	return w
}

// Value returns the total cardinal welfare of a matching: the sum of
// both partners' utilities over every pair. Pairs must be 0-indexed.
func Value(pairs []Pair, val1, val2 profile.Valuation) float64 {
	var total float64
	for _, p := range pairs {
		total += val1[p.M][p.W].Float() + val2[p.W][p.M].Float()
	}

	return total
}
