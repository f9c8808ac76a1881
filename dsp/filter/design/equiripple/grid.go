package equiripple

import "math"

// denseGrid is the frequency sampling of the band specification on which
// the weighted error is evaluated each iteration. All three slices have
// the same, data-dependent length. Desired and weight are stored in the
// cosine-approximation domain: divided and multiplied respectively by
// the basis gain of the filter class.
type denseGrid struct {
	f []float64 // frequencies, ascending within the band union
	d []float64 // desired response per grid point
	w []float64 // error weight per grid point
}

func (g *denseGrid) size() int { return len(g.f) }

// basisGain returns the factor relating the designed cosine polynomial
// to the realizable amplitude response of the filter class:
//
//	A(f) = basisGain(f) * P(cos 2*pi*f)
//
// It is identically 1 for odd-length symmetric filters and vanishes
// where the class forces a spectral null: f=0 for antisymmetric
// responses, f=0.5 for even-length symmetric and odd-length
// antisymmetric ones.
func basisGain(parity int, antisym bool, f float64) float64 {
	switch {
	case antisym && parity == 1:
		return math.Sin(2 * math.Pi * f)
	case antisym:
		return math.Sin(math.Pi * f)
	case parity == 0:
		return math.Cos(math.Pi * f)
	default:
		return 1
	}
}

// buildGrid samples every band of the specification at a step of
// 0.5/(density*r), at least one point per band. The last sample of each
// band is forced onto the exact upper edge so that the alternation
// condition can be tested at the boundary regardless of rounding.
//
// Band edges sitting on a spectral null of the filter class are pulled
// one grid step inward first; the transformed desired response 1/gain
// would be unbounded there. Minimizing the transformed error
// W*gain * (D/gain - P) is identical to minimizing the true weighted
// deviation W * (D - A).
func buildGrid(spec Spec, r, density int) *denseGrid {
	df := 0.5 / (float64(density) * float64(r))
	parity := spec.Length % 2
	antisym := spec.Type.antisymmetric()
	nyquistNull := (parity == 0) != antisym

	g := &denseGrid{}
	for bi, b := range spec.Bands {
		if antisym && bi == 0 && b.Lo < df {
			b.Lo = math.Min(df, 0.5*b.Hi)
		}
		if nyquistNull && bi == len(spec.Bands)-1 && b.Hi > 0.5-df {
			b.Hi = math.Max(0.5-df, 0.5*(b.Lo+0.5))
		}

		points := int((b.Hi-b.Lo)/df + 0.5)
		if points < 1 {
			points = 1
		}
		for j := range points {
			g.f = append(g.f, b.Lo+float64(j)*df)
			g.d = append(g.d, b.Desired)
			g.w = append(g.w, b.Weight)
		}
		g.f[len(g.f)-1] = b.Hi
	}

	for k, f := range g.f {
		if q := basisGain(parity, antisym, f); q != 1 {
			g.d[k] /= q
			g.w[k] *= q
		}
	}
	return g
}
