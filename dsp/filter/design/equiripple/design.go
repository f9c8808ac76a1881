package equiripple

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	defaultGridDensity   = 16
	defaultMaxIterations = 40
)

type config struct {
	density       int
	maxIterations int
	tracer        Tracer
	level         TraceLevel
}

func defaultConfig() config {
	return config{
		density:       defaultGridDensity,
		maxIterations: defaultMaxIterations,
		level:         TraceOff,
	}
}

// Option configures a design run.
type Option func(*config)

// WithGridDensity sets the number of grid points per approximating
// function per unit bandwidth. Higher densities locate the error extrema
// more precisely at proportional cost. The default is 16.
func WithGridDensity(density int) Option {
	return func(cfg *config) {
		if density > 0 {
			cfg.density = density
		}
	}
}

// WithMaxIterations sets the Remez iteration budget. The default is 40,
// which is ample for well-posed specifications.
func WithMaxIterations(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIterations = n
		}
	}
}

// WithTracer installs a diagnostic observer for the run.
func WithTracer(tr Tracer, level TraceLevel) Option {
	return func(cfg *config) {
		cfg.tracer = tr
		cfg.level = level
	}
}

// Designer holds the state of one design run: the dense grid, the
// current extremal set and the error curve. All state is owned by the
// run; a Designer must not be shared between goroutines, but independent
// Designers are fully isolated from each other.
type Designer struct {
	spec Spec
	cfg  config

	parity int // length mod 2
	semi   int // filter semi-length
	r      int // number of approximating functions

	grid *denseGrid
	iext []int
	ip   *interpolant
	e    []float64

	iterations int
	converged  bool
}

// NewDesigner validates the specification, builds the dense grid and
// seeds the extremal set with r+1 evenly spaced grid indices.
func NewDesigner(spec Spec, opts ...Option) (*Designer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d := &Designer{spec: spec, cfg: cfg}
	d.parity, d.semi, d.r = spec.order()

	d.grid = buildGrid(spec, d.r, cfg.density)
	gridSize := d.grid.size()
	if gridSize < d.r+1 {
		return nil, fmt.Errorf("%w: grid of %d points cannot carry %d extremal frequencies",
			ErrInvalidSpec, gridSize, d.r+1)
	}
	if cfg.tracer != nil && cfg.level >= TraceFull {
		cfg.tracer.GridBuilt(d.grid.f, d.grid.d, d.grid.w)
	}

	d.iext = make([]int, d.r+1)
	for i := range d.iext {
		d.iext[i] = i * (gridSize - 1) / d.r
	}
	d.e = make([]float64, gridSize)
	return d, nil
}

// Step runs one Remez exchange iteration: fit the interpolant through
// the current extremal set, evaluate the weighted error over the grid,
// and relocate the set to the error extrema. It returns the number of
// extremal positions that moved; zero means the iteration has converged.
func (d *Designer) Step() (int, error) {
	ip, err := computeInterp(d.grid, d.iext)
	if err != nil {
		return 0, err
	}
	d.ip = ip

	evalError(d.grid, ip, d.e)

	changed, err := exchange(d.e, d.iext)
	if err != nil {
		return 0, err
	}

	d.iterations++
	if changed == 0 {
		d.converged = true
	}
	if d.cfg.tracer != nil && d.cfg.level >= TraceIterations {
		d.cfg.tracer.Iteration(d.iterations, ip.rho, changed)
		if d.cfg.level >= TraceFull {
			d.cfg.tracer.ErrorCurve(d.iterations, d.e)
		}
	}
	return changed, nil
}

// Run iterates Step until convergence or until the iteration budget is
// exhausted, in which case it returns [ErrNotConverged].
func (d *Designer) Run() error {
	for range d.cfg.maxIterations {
		changed, err := d.Step()
		if err != nil {
			return err
		}
		if changed == 0 {
			return nil
		}
	}
	return fmt.Errorf("%w after %d iterations", ErrNotConverged, d.cfg.maxIterations)
}

// Converged reports whether the exchange step has reached its fixed point.
func (d *Designer) Converged() bool { return d.converged }

// Iterations returns the number of Remez iterations run so far.
func (d *Designer) Iterations() int { return d.iterations }

// Ripple returns the converged minimax error level magnitude. It is only
// meaningful after convergence.
func (d *Designer) Ripple() float64 {
	if d.ip == nil {
		return 0
	}
	return math.Abs(d.ip.rho)
}

// Coefficients synthesizes the final tap vector from the converged
// interpolant. It fails with [ErrNotConverged] if called before the
// exchange step has reached its fixed point.
func (d *Designer) Coefficients() ([]float64, error) {
	if !d.converged {
		return nil, ErrNotConverged
	}
	// Refit on the final extremal set so the interpolant and the set
	// agree even if the caller never ran a zero-change Step.
	ip, err := computeInterp(d.grid, d.iext)
	if err != nil {
		return nil, err
	}
	d.ip = ip
	return synthesize(ip, d.spec.Type, d.parity, d.semi), nil
}

// Design computes equiripple FIR coefficients for the given
// specification, running the full Remez exchange to convergence.
// It is shorthand for NewDesigner + Run + Coefficients.
func Design(spec Spec, opts ...Option) ([]float64, error) {
	d, err := NewDesigner(spec, opts...)
	if err != nil {
		return nil, err
	}
	if err := d.Run(); err != nil {
		return nil, err
	}
	return d.Coefficients()
}

// synthesize converts the converged cosine polynomial into time-domain
// taps. The amplitude response A(f) = basisGain(f) * P(cos 2*pi*f) is
// sampled on an evenly spaced frequency grid and projected onto the
// trigonometric basis of the filter class: integer-frequency cosines or
// sines for odd lengths, half-sample-offset ones for even lengths. The
// projections are exact because A lies in the span of the class basis,
// so the realized amplitude equals the optimized polynomial and the
// converged ripple bounds the realized weighted deviation.
func synthesize(ip *interpolant, btype BandType, parity, semi int) []float64 {
	length := 2*semi + parity
	antisym := btype.antisymmetric()
	if length == 1 {
		return []float64{ip.eval(1)}
	}

	nfft := 2 * semi
	if parity == 1 {
		nfft = 2*semi + 1
	}

	// Amplitude samples. The second half mirrors the first with the sign
	// the class symmetry dictates, keeping paired bins bit-consistent.
	a := make([]float64, nfft)
	mirrorSign := 1.0
	if (parity == 1) == antisym {
		mirrorSign = -1
	}
	for j := 0; j <= nfft/2; j++ {
		f := float64(j) / float64(nfft)
		v := basisGain(parity, antisym, f) * ip.eval(math.Cos(2*math.Pi*f))
		a[j] = v
		if j > 0 && j < nfft-j {
			a[nfft-j] = mirrorSign * v
		}
	}

	// Basis coefficients via the forward transform, up to the 1/nfft
	// normalization gonum leaves to the caller. Odd lengths project onto
	// cos/sin(2*pi*f*k) directly; even lengths need the half-bin-offset
	// basis cos/sin(2*pi*f*(k-1/2)), obtained by pre-twisting the samples
	// by e^{i*pi*j/nfft} and transforming the complex sequence.
	half := make([]float64, semi+1)
	if parity == 1 {
		spectrum := fourier.NewFFT(nfft).Coefficients(nil, a)
		for k := range half {
			if antisym {
				half[k] = -imag(spectrum[k])
			} else {
				half[k] = real(spectrum[k])
			}
		}
	} else {
		in := make([]complex128, nfft)
		for j, v := range a {
			phi := math.Pi * float64(j) / float64(nfft)
			in[j] = complex(v*math.Cos(phi), v*math.Sin(phi))
		}
		coeff := fourier.NewCmplxFFT(nfft).Coefficients(nil, in)
		for k := 1; k <= semi; k++ {
			if antisym {
				half[k] = -imag(coeff[k])
			} else {
				half[k] = real(coeff[k])
			}
		}
	}
	vecmath.ScaleBlock(half, half, 1/float64(nfft))

	h := make([]float64, length)
	if parity == 1 {
		// Odd length: center tap at semi, mirrored halves around it.
		if antisym {
			h[semi] = 0
			for k := 1; k <= semi; k++ {
				h[semi-k] = half[k]
				h[semi+k] = -half[k]
			}
		} else {
			h[semi] = half[0]
			for k := 1; k <= semi; k++ {
				h[semi-k] = half[k]
				h[semi+k] = half[k]
			}
		}
		return h
	}
	// Even length: no center tap, halves meet between semi-1 and semi.
	for k := 1; k <= semi; k++ {
		h[semi-k] = half[k]
		if antisym {
			h[semi+k-1] = -half[k]
		} else {
			h[semi+k-1] = half[k]
		}
	}
	return h
}
