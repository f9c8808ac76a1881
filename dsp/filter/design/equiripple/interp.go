package equiripple

import (
	"fmt"
	"math"
)

// interpolant holds the barycentric Lagrange interpolant fitted through
// the current extremal set, together with the minimax error level it
// implies.
type interpolant struct {
	x     []float64 // Chebyshev abscissas cos(2*pi*F) at the extremal points
	alpha []float64 // barycentric interpolation weights
	c     []float64 // interpolant values at the extremal points
	rho   float64   // signed minimax error level
}

// degenerateEps is the smallest abscissa separation two extremal points
// may have before the barycentric weights are considered unbounded.
// Distinct grid points map to abscissas at least ~1e-8 apart for any
// permissible grid, so this only trips on genuinely collapsed sets.
const degenerateEps = 1e-14

// computeInterp fits the barycentric interpolant through the extremal
// set iext. It is a pure function of the grid and the set.
//
// The minimax level rho is the unique value making the weighted error
// equal in magnitude and alternating in sign at all len(iext) extremal
// points simultaneously; c then holds the response the interpolant must
// take at each extremum, net of the alternating ripple term.
func computeInterp(g *denseGrid, iext []int) (*interpolant, error) {
	m := len(iext)
	ip := &interpolant{
		x:     make([]float64, m),
		alpha: make([]float64, m),
		c:     make([]float64, m),
	}

	for i, k := range iext {
		ip.x[i] = math.Cos(2 * math.Pi * g.f[k])
	}

	// Classical barycentric weights: alpha[i] = 1 / prod_{j!=i} (x[i]-x[j]).
	for i := range m {
		prod := 1.0
		for j := range m {
			if j == i {
				continue
			}
			dx := ip.x[i] - ip.x[j]
			if math.Abs(dx) < degenerateEps {
				return nil, fmt.Errorf("%w: abscissas %d and %d coincide at x=%g",
					ErrDegenerate, i, j, ip.x[i])
			}
			prod *= dx
		}
		ip.alpha[i] = 1 / prod
		if math.IsInf(ip.alpha[i], 0) || math.IsNaN(ip.alpha[i]) {
			return nil, fmt.Errorf("%w: barycentric weight %d overflowed", ErrDegenerate, i)
		}
	}

	// The denominator is judged against the magnitude sum of its terms so
	// that catastrophic cancellation is caught at any weight scale, not
	// just an exact zero.
	var num, den, scale float64
	sign := 1.0
	for i, k := range iext {
		num += ip.alpha[i] * g.d[k]
		t := ip.alpha[i] / g.w[k]
		den += sign * t
		scale += math.Abs(t)
		sign = -sign
	}
	if math.Abs(den) <= degenerateEps*scale {
		return nil, fmt.Errorf("%w: vanishing alternation denominator", ErrDegenerate)
	}
	ip.rho = num / den

	sign = 1.0
	for i, k := range iext {
		ip.c[i] = g.d[k] - sign*ip.rho/g.w[k]
		sign = -sign
	}
	return ip, nil
}

// eval evaluates the interpolant at the Chebyshev abscissa xf using the
// barycentric form. Abscissas that hit a node exactly return the node
// value directly (the quotient form is 0/0 there).
func (ip *interpolant) eval(xf float64) float64 {
	var num, den float64
	for i, xi := range ip.x {
		dx := xf - xi
		if dx == 0 {
			return ip.c[i]
		}
		t := ip.alpha[i] / dx
		num += t * ip.c[i]
		den += t
	}
	return num / den
}
