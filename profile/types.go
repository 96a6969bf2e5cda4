package profile

import "errors"

// Sentinel errors for profile validation.
var (
	// ErrNotRectangular indicates a profile with no rows, no columns, or
	// rows of differing length.
	ErrNotRectangular = errors.New("profile: matrix is not rectangular")

	// ErrRankOutOfRange indicates a known rank outside [1, M].
	ErrRankOutOfRange = errors.New("profile: rank out of range")

	// ErrTiedRanks indicates a duplicated rank in a row of a strict profile.
	ErrTiedRanks = errors.New("profile: tied ranks in strict profile")

	// ErrIncompleteProfile indicates an unranked or unacceptable cell in a
	// profile required to be complete.
	ErrIncompleteProfile = errors.New("profile: incomplete profile")

	// ErrInconsistent indicates a valuation profile whose order contradicts
	// the ordinal profile it is paired with.
	ErrInconsistent = errors.New("profile: valuation contradicts ordinal profile")

	// ErrShapeMismatch indicates two profiles that must share dimensions
	// but do not.
	ErrShapeMismatch = errors.New("profile: shape mismatch")

	// ErrNilRand indicates TieBreakRandom was requested without a rand source.
	ErrNilRand = errors.New("profile: TieBreakRandom requires a rand source")
)

// Rank is one cell of an ordinal profile: a 1-based position (1 = most
// preferred) or Unranked. The zero value is Unranked.
type Rank struct {
	pos   int
	known bool
}

// Unranked marks an alternative the agent does not rank (unknown or
// unacceptable).
var Unranked = Rank{}

// RankOf returns a known Rank at the given 1-based position.
func RankOf(pos int) Rank { return Rank{pos: pos, known: true} }

// Known reports whether the cell holds an actual rank.
func (r Rank) Known() bool { return r.known }

// Position returns the 1-based rank position. It is 0 for Unranked;
// callers must consult Known first.
func (r Rank) Position() int { return r.pos }

// Better reports whether r is a strictly better (lower) known rank than s.
// An Unranked cell is never better than anything.
func (r Rank) Better(s Rank) bool {
	return r.known && s.known && r.pos < s.pos
}

// Value is one cell of a valuation profile: a known utility or
// Unacceptable. The zero value is Unacceptable.
type Value struct {
	v     float64
	known bool
}

// Unacceptable marks an item the agent has no known utility for.
var Unacceptable = Value{}

// ValueOf returns a known Value carrying utility v.
func ValueOf(v float64) Value { return Value{v: v, known: true} }

// Known reports whether the cell holds an actual utility.
func (v Value) Known() bool { return v.known }

// Float returns the utility, 0 for Unacceptable; callers must consult
// Known first when 0 is a meaningful utility.
func (v Value) Float() float64 { return v.v }

// Check flags for CheckOrdinal.
const (
	// Strict forbids ties: no two known cells in a row may share a rank.
	Strict = 1 << iota

	// Complete forbids Unranked/Unacceptable cells.
	Complete
)

// TieBreak enumerates the policies for resolving exact utility ties
// when deriving an ordinal profile from a valuation profile.
//
//   - TieBreakFirst  — the lower alternative index wins (deterministic).
//   - TieBreakRandom — a uniform draw from the injected rand source.
//
// There is no implicit default: derivation with ties present is not
// stability-preserving in general, so the caller must pick.
type TieBreak int

const (
	// TieBreakFirst resolves ties toward the lower alternative index.
	TieBreakFirst TieBreak = iota

	// TieBreakRandom resolves ties uniformly at random.
	TieBreakRandom
)
