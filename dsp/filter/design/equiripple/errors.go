package equiripple

import "errors"

// Design errors.
var (
	// ErrInvalidSpec indicates a malformed filter specification: zero
	// length, missing bands, band edges outside [0, 0.5], overlapping or
	// non-ascending bands, or a non-positive weight.
	ErrInvalidSpec = errors.New("equiripple: invalid filter specification")

	// ErrNotConverged indicates the Remez exchange did not reach a
	// zero-change fixed point within the iteration budget. No coefficients
	// are returned in this case.
	ErrNotConverged = errors.New("equiripple: no convergence within iteration budget")

	// ErrDegenerate indicates the extremal set collapsed: two candidate
	// extrema share (or nearly share) a Chebyshev abscissa, making the
	// barycentric interpolation weights unbounded.
	ErrDegenerate = errors.New("equiripple: degenerate extremal set")
)
