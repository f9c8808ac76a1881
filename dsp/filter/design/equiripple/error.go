package equiripple

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// evalError fills e with the signed weighted error
//
//	e[k] = W[k] * (D[k] - H(F[k]))
//
// where H is the current barycentric interpolant. This is the dominant
// per-iteration cost, O(gridSize * r). len(e) must equal g.size().
func evalError(g *denseGrid, ip *interpolant, e []float64) {
	for k, f := range g.f {
		e[k] = g.d[k] - ip.eval(math.Cos(2*math.Pi*f))
	}
	vecmath.MulBlockInPlace(e, g.w)
}
