package voting

import "errors"

// Sentinel errors for rule configuration.
var (
	// ErrUnknownRule indicates a Rule value outside the enumerated set.
	ErrUnknownRule = errors.New("voting: unknown rule")

	// ErrInvalidK indicates a non-positive K for KApproval.
	ErrInvalidK = errors.New("voting: k must be positive")

	// ErrNilRand indicates a randomized operation without a rand source.
	ErrNilRand = errors.New("voting: randomized selection requires a rand source")

	// ErrZeroScores indicates a lottery over scores that sum to zero.
	ErrZeroScores = errors.New("voting: scores sum to zero, no lottery exists")
)

// Rule enumerates the positional scoring rules.
//
//   - Plurality — 1 point for the top choice.
//   - Borda     — M−r points for rank r.
//   - Veto      — 1 point for all but the last choice.
//   - KApproval — 1 point for the top K choices.
//   - Harmonic  — 1/r points for rank r.
type Rule int

const (
	Plurality Rule = iota
	Borda
	Veto
	KApproval
	Harmonic
)

// String returns the rule name for logs and errors.
func (r Rule) String() string {
	switch r {
	case Plurality:
		return "plurality"
	case Borda:
		return "borda"
	case Veto:
		return "veto"
	case KApproval:
		return "k-approval"
	case Harmonic:
		return "harmonic"
	default:
		return "unknown"
	}
}

// Options configures the scoring functions.
type Options struct {
	// K is the approval cutoff for KApproval; ignored by other rules.
	K int

	// OneIndexed shifts returned alternative indices by +1.
	OneIndexed bool
}

// normalize validates rule-dependent fields.
func (o Options) normalize(rule Rule) error {
	if rule < Plurality || rule > Harmonic {
		return ErrUnknownRule
	}
	if rule == KApproval && o.K < 1 {
		return ErrInvalidK
	}

	return nil
}
