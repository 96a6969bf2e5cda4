// Package profile defines the preference-matrix types shared by every
// rule in choicekit: ordinal profiles (rankings) and valuation profiles
// (cardinal utilities).
//
// A profile is an N×M matrix; row i belongs to agent i, column j to
// alternative (or item) j. Ordinal cells hold a Rank — a 1-based
// position where 1 is most preferred — and valuation cells hold a
// Value — a float64 utility. A cell may instead be Unranked /
// Unacceptable: the agent does not rank the alternative at all. These
// are tagged optionals, not NaN sentinels, so "unknown" can never leak
// into arithmetic unnoticed.
//
// # Variants
//
// The same matrix type covers all PrefLib-style variants; the variant
// is asserted, not encoded in the type:
//
//	CheckOrdinal(p, Strict|Complete)   — SoC (strict, complete)
//	CheckOrdinal(p, Strict)            — SoI (strict, incomplete allowed)
//	CheckOrdinal(p, Complete)          — ToC (ties, complete)
//	CheckOrdinal(p, 0)                 — ToI (ties, incomplete allowed)
//
// CheckConsistent verifies that a valuation profile agrees with an
// ordinal profile: a better rank never carries a strictly lower
// utility in the same row.
//
// # Deriving rankings from utilities
//
// OrdinalFromValuation produces a strict ordinal profile from a
// valuation profile. Exact utility ties have no canonical resolution —
// the caller must choose a TieBreak policy (TieBreakFirst or
// TieBreakRandom); there is deliberately no implicit default.
//
// # Errors
//
//	ErrNotRectangular     - rows of differing length (or zero rows/columns).
//	ErrRankOutOfRange     - a known rank outside [1, M].
//	ErrTiedRanks          - duplicate rank in a row of a strict profile.
//	ErrIncompleteProfile  - an Unranked/Unacceptable cell in a complete profile.
//	ErrInconsistent       - valuation order contradicts the ordinal profile.
//	ErrShapeMismatch      - two profiles that must share a shape do not.
//	ErrNilRand            - TieBreakRandom without a rand source.
package profile
