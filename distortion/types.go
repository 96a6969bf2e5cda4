package distortion

import "errors"

// Sentinel errors for the distortion package.
var (
	// ErrNoChoice indicates an empty choice set.
	ErrNoChoice = errors.New("distortion: empty choice set")

	// ErrChoiceOutOfRange indicates a chosen alternative outside the
	// profile's columns.
	ErrChoiceOutOfRange = errors.New("distortion: choice out of range")

	// ErrInfeasible indicates the simplex solver failed to produce an
	// optimum for the instance-optimal program.
	ErrInfeasible = errors.New("distortion: linear program has no optimum")
)

// Options configures the distortion routines.
type Options struct {
	// OneIndexed shifts choice sets passed to Distortion from 1-based
	// to the package's 0-based convention.
	OneIndexed bool
}
