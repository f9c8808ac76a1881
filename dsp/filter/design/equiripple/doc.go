// Package equiripple designs optimal equiripple linear-phase FIR filters
// using the Parks-McClellan (Remez exchange) algorithm.
//
// Given a set of disjoint frequency bands, each with a desired gain and a
// relative error weight, [Design] computes the coefficient vector that
// minimizes the maximum weighted deviation from the desired response (the
// minimax, or Chebyshev, criterion). For a given filter length this is
// strictly better in the worst-case sense than windowed-sinc or
// least-squares designs.
//
// The algorithm works on a dense frequency grid: it fits a barycentric
// Lagrange interpolant through a candidate set of extremal frequencies,
// evaluates the weighted error everywhere on the grid, and exchanges the
// candidate set for the actual error extrema until the equal-ripple
// alternation property holds. [Designer] exposes this iteration
// step-by-step; [Design] runs it to convergence in one call.
//
// All four linear-phase classes are supported. The length parity and the
// [BandType] symmetry select the trigonometric basis (Type I-IV); the
// desired response and weight are transformed onto the common cosine
// basis before the exchange, so the converged ripple level always bounds
// the realized weighted deviation. Note the structural nulls each class
// imposes: antisymmetric filters are zero at DC, even-length symmetric
// and odd-length antisymmetric filters are zero at Nyquist. Bands whose
// desired gain contradicts a null yield poor designs.
//
// Frequencies throughout the package are normalized to the sample rate,
// so the valid range is [0, 0.5] with 0.5 being Nyquist.
//
// [Analyze] measures the realized per-band ripple of a finished design and
// [Response] evaluates the response at a single frequency, both useful for
// verifying a design against its specification.
//
// References: Parks & McClellan, "Chebyshev Approximation for Nonrecursive
// Digital Filters with Linear Phase" (1972); McClellan, Parks & Rabiner,
// "A Computer Program for Designing Optimum FIR Linear Phase Digital
// Filters" (1973).
package equiripple
