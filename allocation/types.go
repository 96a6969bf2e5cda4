package allocation

import "errors"

// Unassigned marks an agent that received no item.
const Unassigned = -1

// Sentinel errors for allocation inputs.
var (
	// ErrBadOrder indicates a priority order that is not a permutation
	// of the agents.
	ErrBadOrder = errors.New("allocation: order is not a permutation of agents")

	// ErrNotSquare indicates a profile or matrix that must be square.
	ErrNotSquare = errors.New("allocation: input must be square")

	// ErrNotBistochastic indicates a matrix with negative entries or
	// row/column sums differing from 1.
	ErrNotBistochastic = errors.New("allocation: matrix is not bistochastic")

	// ErrNilRand indicates a randomized operation without a rand source.
	ErrNilRand = errors.New("allocation: randomized selection requires a rand source")
)

// Options configures the allocation rules.
type Options struct {
	// Epsilon is the tolerance for treating probabilities as zero and
	// for the bistochastic row/column checks (default 1e-9).
	Epsilon float64

	// OneIndexed shifts assigned item indices by +1. Unassigned is
	// returned as-is.
	OneIndexed bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9}
}

// normalize fills unset fields with defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}

// Component is one term of a Birkhoff–von Neumann decomposition: a
// deterministic assignment taken with the given probability.
type Component struct {
	// Coefficient is the probability mass of this assignment.
	Coefficient float64

	// Assignment maps each agent to its item.
	Assignment []int
}
