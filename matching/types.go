package matching

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/choicekit/profile"
)

// Sentinel errors for matching inputs and invariants.
var (
	// ErrShapeMismatch indicates disagreeing profile or capacity dimensions.
	ErrShapeMismatch = errors.New("matching: profile dimensions do not match")

	// ErrNotSquare indicates non-square or unequal-sized profiles passed
	// to Optimal.
	ErrNotSquare = errors.New("matching: profiles must be square and equal-sized")

	// ErrImperfectMatching indicates deferred acceptance over complete
	// profiles did not produce a bijection; the input profiles are
	// mutually inconsistent.
	ErrImperfectMatching = errors.New("matching: deferred acceptance produced no perfect matching")
)

// Pair is one assignment: M is the side-1 index (resident / man), W the
// side-2 index (hospital / woman).
type Pair struct {
	M, W int
}

// Rotation is a cyclic sequence of matched pairs (length ≥ 2) exposed
// in a stable matching. Eliminating it moves every listed man to the
// next pair's woman, exposing another stable matching. Immutable once
// discovered; identified by its position in the discovery list.
type Rotation []Pair

// Orientation selects the proposing side of deferred acceptance.
//
//   - ProposeSide1 — side 1 proposes (resident-oriented, side-1-optimal).
//   - ProposeSide2 — side 2 proposes (hospital-oriented, side-2-optimal).
type Orientation int

const (
	// ProposeSide1 makes side 1 the proposing side.
	ProposeSide1 Orientation = iota

	// ProposeSide2 makes side 2 the proposing side.
	ProposeSide2
)

// GSOptions configures GaleShapley.
type GSOptions struct {
	// Orientation selects the proposing side (default ProposeSide1).
	Orientation Orientation

	// OneIndexed shifts returned indices by +1.
	OneIndexed bool
}

// OptimalOptions configures Optimal.
type OptimalOptions struct {
	// Ordinal1, Ordinal2 optionally supply strict complete ordinal
	// profiles matching the valuation profiles. When nil they are
	// derived from the valuations under TieBreak.
	Ordinal1, Ordinal2 profile.Ordinal

	// TieBreak resolves exact utility ties during ordinal derivation.
	// TieBreakRandom requires Rand. Irrelevant when both ordinals are
	// supplied.
	TieBreak profile.TieBreak

	// Rand is the source for TieBreakRandom.
	Rand *rand.Rand

	// OneIndexed shifts returned indices by +1.
	OneIndexed bool
}
