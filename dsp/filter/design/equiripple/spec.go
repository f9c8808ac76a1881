package equiripple

import "fmt"

// BandType selects the symmetry class of the designed filter.
type BandType int

const (
	// TypeBandpass designs a general multiband filter with even impulse
	// response symmetry (linear-phase Type I/II).
	TypeBandpass BandType = iota

	// TypeDifferentiator designs a filter with odd impulse response
	// symmetry suitable for differentiation (linear-phase Type III/IV).
	TypeDifferentiator

	// TypeHilbert designs an odd-symmetric Hilbert transformer
	// (linear-phase Type III/IV).
	TypeHilbert
)

// antisymmetric reports whether the type requires odd impulse response
// symmetry.
func (t BandType) antisymmetric() bool {
	return t == TypeDifferentiator || t == TypeHilbert
}

// Band describes one sub-interval of the desired frequency response.
// Frequencies are normalized to the sample rate; the valid range is
// [0, 0.5] with 0.5 corresponding to Nyquist.
type Band struct {
	// Lo and Hi are the band edges, 0 <= Lo < Hi <= 0.5.
	Lo, Hi float64
	// Desired is the target gain across the band.
	Desired float64
	// Weight is the relative error weight for the band, > 0. A larger
	// weight shrinks the ripple in this band at the expense of the others.
	Weight float64
}

// Spec is a complete filter design specification. Bands must be strictly
// ascending and non-overlapping; the gaps between them are transition
// regions in which the response is unconstrained.
type Spec struct {
	// Length is the number of filter taps, > 0.
	Length int
	// Bands lists the constrained frequency intervals.
	Bands []Band
	// Type selects the impulse response symmetry class.
	Type BandType
}

// maxLength bounds the filter length so that derived buffer sizes stay
// sane; a grid for a longer filter would run to millions of points.
const maxLength = 1 << 14

// Validate reports whether the specification describes a designable
// filter. All failures wrap [ErrInvalidSpec].
func (s Spec) Validate() error {
	if s.Length <= 0 {
		return fmt.Errorf("%w: filter length must be > 0, got %d", ErrInvalidSpec, s.Length)
	}
	if s.Length > maxLength {
		return fmt.Errorf("%w: filter length %d exceeds maximum %d", ErrInvalidSpec, s.Length, maxLength)
	}
	if len(s.Bands) == 0 {
		return fmt.Errorf("%w: at least one band is required", ErrInvalidSpec)
	}
	switch s.Type {
	case TypeBandpass, TypeDifferentiator, TypeHilbert:
	default:
		return fmt.Errorf("%w: unknown band type %d", ErrInvalidSpec, s.Type)
	}
	if s.Type.antisymmetric() && s.Length < 2 {
		return fmt.Errorf("%w: a single tap cannot carry an antisymmetric response", ErrInvalidSpec)
	}
	prevHi := 0.0
	for i, b := range s.Bands {
		if b.Lo < 0 || b.Hi > 0.5 {
			return fmt.Errorf("%w: band %d [%g, %g] outside [0, 0.5]", ErrInvalidSpec, i, b.Lo, b.Hi)
		}
		if b.Lo >= b.Hi {
			return fmt.Errorf("%w: band %d edges not ascending: [%g, %g]", ErrInvalidSpec, i, b.Lo, b.Hi)
		}
		if i > 0 && b.Lo < prevHi {
			return fmt.Errorf("%w: band %d [%g, %g] overlaps previous band ending at %g",
				ErrInvalidSpec, i, b.Lo, b.Hi, prevHi)
		}
		if b.Weight <= 0 {
			return fmt.Errorf("%w: band %d weight must be > 0, got %g", ErrInvalidSpec, i, b.Weight)
		}
		prevHi = b.Hi
	}
	return nil
}

// order returns the derived design quantities: the length parity, the
// semi-length n and r, the number of approximating cosine functions
// (one less than the number of extremal frequencies). Antisymmetric
// responses of odd length lose one function to the forced zero center
// tap.
func (s Spec) order() (parity, semi, r int) {
	parity = s.Length % 2
	semi = (s.Length - parity) / 2
	r = semi + parity
	if s.Type.antisymmetric() {
		r = semi
	}
	return parity, semi, r
}

// LowpassSpec builds a unit-weight lowpass specification with passband
// [0, passEdge] at gain 1 and stopband [stopEdge, 0.5] at gain 0.
func LowpassSpec(length int, passEdge, stopEdge float64) Spec {
	return Spec{
		Length: length,
		Bands: []Band{
			{Lo: 0, Hi: passEdge, Desired: 1, Weight: 1},
			{Lo: stopEdge, Hi: 0.5, Desired: 0, Weight: 1},
		},
		Type: TypeBandpass,
	}
}

// HighpassSpec builds a unit-weight highpass specification with stopband
// [0, stopEdge] at gain 0 and passband [passEdge, 0.5] at gain 1.
func HighpassSpec(length int, stopEdge, passEdge float64) Spec {
	return Spec{
		Length: length,
		Bands: []Band{
			{Lo: 0, Hi: stopEdge, Desired: 0, Weight: 1},
			{Lo: passEdge, Hi: 0.5, Desired: 1, Weight: 1},
		},
		Type: TypeBandpass,
	}
}

// BandpassSpec builds a unit-weight bandpass specification. The four
// edges must be ascending: stopbands [0, f0] and [f3, 0.5], passband
// [f1, f2].
func BandpassSpec(length int, f0, f1, f2, f3 float64) Spec {
	return Spec{
		Length: length,
		Bands: []Band{
			{Lo: 0, Hi: f0, Desired: 0, Weight: 1},
			{Lo: f1, Hi: f2, Desired: 1, Weight: 1},
			{Lo: f3, Hi: 0.5, Desired: 0, Weight: 1},
		},
		Type: TypeBandpass,
	}
}

// BandstopSpec builds a unit-weight bandstop specification. The four
// edges must be ascending: passbands [0, f0] and [f3, 0.5], stopband
// [f1, f2].
func BandstopSpec(length int, f0, f1, f2, f3 float64) Spec {
	return Spec{
		Length: length,
		Bands: []Band{
			{Lo: 0, Hi: f0, Desired: 1, Weight: 1},
			{Lo: f1, Hi: f2, Desired: 0, Weight: 1},
			{Lo: f3, Hi: 0.5, Desired: 1, Weight: 1},
		},
		Type: TypeBandpass,
	}
}
