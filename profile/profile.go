package profile

import (
	"fmt"
	"math"
)

// Ordinal is an N×M ordinal preference profile. Row i is agent i's
// ranking over the M alternatives; see the package documentation for
// the cell semantics.
type Ordinal [][]Rank

// Valuation is an N×M cardinal preference profile. Row i holds agent
// i's utility for each alternative.
type Valuation [][]Value

// Agents returns N, the number of rows.
func (p Ordinal) Agents() int { return len(p) }

// Alternatives returns M, the number of columns (0 for an empty profile).
func (p Ordinal) Alternatives() int {
	if len(p) == 0 {
		return 0
	}

	return len(p[0])
}

// Ranked returns agent i's known alternatives in preference order, most
// preferred first. Unranked alternatives are omitted. Ties keep
// ascending alternative order.
// Complexity: O(M log M).
func (p Ordinal) Ranked(i int) []int {
	row := p[i]
	out := make([]int, 0, len(row))
	for j, r := range row {
		if r.Known() {
			out = append(out, j)
		}
	}
	// insertion sort by rank; rows are short-lived and M is small
	for a := 1; a < len(out); a++ {
		for b := a; b > 0 && row[out[b]].Position() < row[out[b-1]].Position(); b-- {
			out[b], out[b-1] = out[b-1], out[b]
		}
	}

	return out
}

// Agents returns N, the number of rows.
func (v Valuation) Agents() int { return len(v) }

// Alternatives returns M, the number of columns (0 for an empty profile).
func (v Valuation) Alternatives() int {
	if len(v) == 0 {
		return 0
	}

	return len(v[0])
}

// rectangular reports a non-empty matrix with equal-length rows.
func rectangular(rows, cols int, width func(i int) int) error {
	if rows == 0 || cols == 0 {
		return ErrNotRectangular
	}
	for i := 0; i < rows; i++ {
		if width(i) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotRectangular, i, width(i), cols)
		}
	}

	return nil
}

// CheckOrdinal validates an ordinal profile against the requested
// variant flags (Strict, Complete). Known ranks must lie in [1, M];
// Strict additionally forbids duplicate ranks within a row; Complete
// forbids Unranked cells.
// Complexity: O(N·M).
func CheckOrdinal(p Ordinal, flags int) error {
	n, m := p.Agents(), p.Alternatives()
	if err := rectangular(n, m, func(i int) int { return len(p[i]) }); err != nil {
		return err
	}

	seen := make([]int, m+1) // seen[r] = last row that used rank r
	for i := range seen {
		seen[i] = -1
	}
	for i := 0; i < n; i++ {
		for j, r := range p[i] {
			if !r.Known() {
				if flags&Complete != 0 {
					return fmt.Errorf("%w: agent %d leaves alternative %d unranked", ErrIncompleteProfile, i, j)
				}

				continue
			}
			if r.Position() < 1 || r.Position() > m {
				return fmt.Errorf("%w: agent %d ranks alternative %d at %d (M=%d)", ErrRankOutOfRange, i, j, r.Position(), m)
			}
			if flags&Strict != 0 {
				if seen[r.Position()] == i {
					return fmt.Errorf("%w: agent %d uses rank %d twice", ErrTiedRanks, i, r.Position())
				}
				seen[r.Position()] = i
			}
		}
	}

	return nil
}

// CheckValuation validates a valuation profile. With complete set, every
// cell must be a known, finite utility.
// Complexity: O(N·M).
func CheckValuation(v Valuation, complete bool) error {
	n, m := v.Agents(), v.Alternatives()
	if err := rectangular(n, m, func(i int) int { return len(v[i]) }); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j, c := range v[i] {
			if !c.Known() {
				if complete {
					return fmt.Errorf("%w: agent %d has no value for item %d", ErrIncompleteProfile, i, j)
				}

				continue
			}
			if math.IsNaN(c.Float()) || math.IsInf(c.Float(), 0) {
				return fmt.Errorf("%w: agent %d values item %d as %v", ErrRankOutOfRange, i, j, c.Float())
			}
		}
	}

	return nil
}

// CheckConsistent verifies that a valuation profile agrees with an
// ordinal profile of the same shape: within a row, a strictly better
// rank must carry a weakly higher utility, and a cell is known in one
// profile exactly when it is known in the other.
// Complexity: O(N·M log M).
func CheckConsistent(p Ordinal, v Valuation) error {
	if p.Agents() != v.Agents() || p.Alternatives() != v.Alternatives() {
		return fmt.Errorf("%w: ordinal %dx%d vs valuation %dx%d",
			ErrShapeMismatch, p.Agents(), p.Alternatives(), v.Agents(), v.Alternatives())
	}
	for i := 0; i < p.Agents(); i++ {
		for j := range p[i] {
			if p[i][j].Known() != v[i][j].Known() {
				return fmt.Errorf("%w: agent %d, alternative %d known in one profile only", ErrInconsistent, i, j)
			}
		}
		order := p.Ranked(i)
		for k := 1; k < len(order); k++ {
			prev, cur := order[k-1], order[k]
			if p[i][prev].Position() == p[i][cur].Position() {
				continue // tied ranks carry no order constraint
			}
			if v[i][prev].Float() < v[i][cur].Float() {
				return fmt.Errorf("%w: agent %d ranks %d above %d but values it lower", ErrInconsistent, i, prev, cur)
			}
		}
	}

	return nil
}

// OrdinalFromRankMatrix builds an Ordinal from a plain integer matrix
// in the original wire format: 1-based ranks, 0 marking an unranked
// cell. Boundary convenience; no validation beyond rectangularity.
func OrdinalFromRankMatrix(m [][]int) (Ordinal, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrNotRectangular
	}
	cols := len(m[0])
	p := make(Ordinal, len(m))
	for i, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d", ErrNotRectangular, i)
		}
		p[i] = make([]Rank, cols)
		for j, r := range row {
			if r != 0 {
				p[i][j] = RankOf(r)
			}
		}
	}

	return p, nil
}

// ValuationFromMatrix builds a Valuation from a plain float matrix,
// treating NaN cells as Unacceptable. Boundary convenience.
func ValuationFromMatrix(m [][]float64) (Valuation, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrNotRectangular
	}
	cols := len(m[0])
	v := make(Valuation, len(m))
	for i, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d", ErrNotRectangular, i)
		}
		v[i] = make([]Value, cols)
		for j, f := range row {
			if !math.IsNaN(f) {
				v[i][j] = ValueOf(f)
			}
		}
	}

	return v, nil
}
