package equiripple

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minAnalyzeFFT is the smallest FFT size Analyze will use; small filters
// are still measured on a reasonably dense frequency grid.
const minAnalyzeFFT = 1024

// BandRipple summarizes the realized deviation from the desired response
// within one specified band.
type BandRipple struct {
	// Band is the specification entry being measured.
	Band Band
	// PeakDeviation is the maximum |H(f)| - |Desired| magnitude error
	// observed across the band.
	PeakDeviation float64
	// PeakDeviationDB is PeakDeviation expressed relative to unit gain,
	// 20*log10(PeakDeviation). It is -Inf for a band with zero deviation.
	PeakDeviationDB float64
}

// Analysis reports how a finished coefficient vector performs against
// the specification it was designed for.
type Analysis struct {
	// Bands holds one ripple measurement per specified band.
	Bands []BandRipple
	// MaxWeightedDeviation is the largest weight-scaled peak deviation
	// over all bands: the realized minimax objective.
	MaxWeightedDeviation float64
}

// Analyze evaluates the magnitude response of h on a dense zero-padded
// FFT grid and measures the per-band deviation from the specification's
// desired gains. The specification is validated first, so Analyze can be
// used as a post-design acceptance check.
func Analyze(h []float64, spec Spec) (Analysis, error) {
	if err := spec.Validate(); err != nil {
		return Analysis{}, err
	}
	if len(h) == 0 {
		return Analysis{}, fmt.Errorf("%w: empty coefficient vector", ErrInvalidSpec)
	}

	fftSize := minAnalyzeFFT
	for fftSize < 8*len(h) {
		fftSize *= 2
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Analysis{}, fmt.Errorf("equiripple: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range h {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Analysis{}, err
	}

	an := Analysis{Bands: make([]BandRipple, len(spec.Bands))}
	for i, b := range spec.Bands {
		an.Bands[i].Band = b
	}

	for k := 0; k <= fftSize/2; k++ {
		f := float64(k) / float64(fftSize)
		bi := bandIndex(spec.Bands, f)
		if bi < 0 {
			continue
		}
		dev := math.Abs(cmplx.Abs(out[k]) - math.Abs(spec.Bands[bi].Desired))
		if dev > an.Bands[bi].PeakDeviation {
			an.Bands[bi].PeakDeviation = dev
		}
	}

	for i := range an.Bands {
		br := &an.Bands[i]
		br.PeakDeviationDB = 20 * math.Log10(br.PeakDeviation)
		if w := br.Band.Weight * br.PeakDeviation; w > an.MaxWeightedDeviation {
			an.MaxWeightedDeviation = w
		}
	}
	return an, nil
}

// bandIndex returns the index of the band containing f, or -1 when f
// falls in a transition region.
func bandIndex(bands []Band, f float64) int {
	for i, b := range bands {
		if f >= b.Lo && f <= b.Hi {
			return i
		}
	}
	return -1
}

// Response evaluates the complex frequency response of the taps h at the
// normalized frequency f in [0, 0.5].
func Response(h []float64, f float64) complex128 {
	w := 2 * math.Pi * f
	var resp complex128
	for k, c := range h {
		resp += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return resp
}

// MagnitudeDB returns the magnitude response of h in dB at the
// normalized frequency f.
func MagnitudeDB(h []float64, f float64) float64 {
	return 20 * math.Log10(cmplx.Abs(Response(h, f)))
}
