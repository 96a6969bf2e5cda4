package distortion

import (
	"github.com/willauld/lpsimplex"

	"github.com/katalvlaran/choicekit/profile"
)

// Optimal computes the best distortion any randomized voting rule can
// guarantee on the given ordinal profile, via the linear program of
// Ebadian, Kahng, Peters & Shah (2024). The profile must be strict and
// complete.
//
// The program searches over scaled lotteries p̂ = D·p and per-voter
// bound variables; its objective Σ p̂ equals the instance-optimal
// distortion D. For fewer than three alternatives the bound family
// collapses and the program reports 0.
func Optimal(p profile.Ordinal) (float64, error) {
	d, _, err := OptimalLP(p)

	return d, err
}

// OptimalLP is Optimal plus the witness vector p̂ of length m. The
// instance-optimal lottery over alternatives is p̂ divided by the
// returned distortion (when it is positive).
func OptimalLP(p profile.Ordinal) (float64, []float64, error) {
	if err := profile.CheckOrdinal(p, profile.Strict|profile.Complete); err != nil {
		return 0, nil, err
	}

	n, m := p.Agents(), p.Alternatives()
	ranked := make([][]int, n)
	for i := 0; i < n; i++ {
		ranked[i] = p.Ranked(i)
	}

	// Variable layout: p̂ occupies [0, m); delta, alpha and beta are
	// free n×m blocks, each split into a positive and a negative part
	// so the solver's default [0, ∞) bounds apply.
	nm := n * m
	offP := 0
	offDelta := m
	offAlpha := m + 2*nm
	offBeta := m + 4*nm
	numVars := m + 6*nm

	var aub [][]float64
	var bub []float64
	push := func(r []float64, rhs float64) {
		aub = append(aub, r)
		bub = append(bub, rhs)
	}
	freeVar := func(r []float64, off, idx int, coef float64) {
		r[off+idx] += coef
		r[off+nm+idx] -= coef
	}

	for i := 0; i < n; i++ {
		// delta dominates the alpha bound one rank up
		for r := 1; r < m-1; r++ {
			row := make([]float64, numVars)
			freeVar(row, offDelta, i*m+r, -1)
			freeVar(row, offAlpha, i*m+r-1, 1)
			push(row, 0)
		}
		// delta dominates the beta bound at every rank
		for r := 0; r < m; r++ {
			row := make([]float64, numVars)
			freeVar(row, offDelta, i*m+r, -1)
			freeVar(row, offBeta, i*m+r, 1)
			push(row, 0)
		}
	}

	// adversary budget: summed delta is non-positive per alternative
	for a := 0; a < m; a++ {
		row := make([]float64, numVars)
		for i := 0; i < n; i++ {
			freeVar(row, offDelta, i*m+a, 1)
		}
		push(row, 0)
	}

	for i := 0; i < n; i++ {
		for r := 1; r < m; r++ {
			// alpha is non-increasing in rank
			row := make([]float64, numVars)
			freeVar(row, offAlpha, i*m+r, -1)
			freeVar(row, offAlpha, i*m+r-1, 1)
			push(row, 0)

			// r·alpha[i][r] ≥ −(p̂ mass on voter i's top r)
			row = make([]float64, numVars)
			freeVar(row, offAlpha, i*m+r, -float64(r))
			for l := 0; l < r; l++ {
				row[offP+ranked[i][l]] -= 1
			}
			push(row, 0)
		}
		for r := 0; r < m-1; r++ {
			// beta is non-decreasing in rank
			row := make([]float64, numVars)
			freeVar(row, offBeta, i*m+r, -1)
			freeVar(row, offBeta, i*m+r+1, 1)
			push(row, 0)

			// r·beta[i][r] ≥ r − (p̂ mass on voter i's top r)
			if r >= 1 {
				row = make([]float64, numVars)
				freeVar(row, offBeta, i*m+r, -float64(r))
				for l := 0; l < r; l++ {
					row[offP+ranked[i][l]] -= 1
				}
				push(row, -float64(r))
			}
		}
	}

	c := make([]float64, numVars)
	for a := 0; a < m; a++ {
		c[offP+a] = 1
	}

	res := lpsimplex.LPSimplex(c, aub, bub, nil, nil, nil,
		lpsimplex.Callbackfunc(nil), false, 4000, 1.0e-12, false)
	if !res.Success {
		return 0, nil, ErrInfeasible
	}

	pHat := append([]float64(nil), res.X[offP:offP+m]...)
	var d float64
	for _, x := range pHat {
		d += x
	}

	return d, pHat, nil
}
