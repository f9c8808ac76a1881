// Command firinfo designs an equiripple FIR filter and prints its taps
// and realized band ripple.
//
// Usage:
//
//	firinfo [flags]
//
// The filter is specified either by shape (-shape with -edges) or by a
// full band list (-bands, -gains, -weights).
//
// Examples:
//
//	firinfo -len 21 -shape lowpass -edges 0.2,0.3
//	firinfo -len 41 -shape bandpass -edges 0.1,0.15,0.3,0.35
//	firinfo -len 31 -bands 0,0.25,0.3,0.5 -gains 1,0 -weights 1,10
//	firinfo -len 63 -shape lowpass -edges 0.2,0.25 -wav impulse.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-firdes/dsp/filter/design/equiripple"
)

func main() {
	length := flag.Int("len", 21, "filter length in taps")
	shape := flag.String("shape", "", "filter shape: lowpass, highpass, bandpass, bandstop")
	edges := flag.String("edges", "", "comma-separated band edges for -shape (normalized, 0..0.5)")
	bands := flag.String("bands", "", "comma-separated band edge pairs (overrides -shape)")
	gains := flag.String("gains", "", "comma-separated desired gain per band")
	weights := flag.String("weights", "", "comma-separated error weight per band (default all 1)")
	btype := flag.String("type", "bandpass", "band type: bandpass, differentiator, hilbert")
	density := flag.Int("density", 0, "grid density (default 16)")
	maxIter := flag.Int("maxiter", 0, "Remez iteration budget (default 40)")
	taps := flag.Bool("taps", false, "print the coefficient vector")
	wavOut := flag.String("wav", "", "write the impulse response to a WAV file")
	sampleRate := flag.Int("rate", 48000, "sample rate for the WAV header")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs an equiripple (Parks-McClellan) FIR filter and reports its ripple.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firinfo -len 21 -shape lowpass -edges 0.2,0.3\n")
		fmt.Fprintf(os.Stderr, "  firinfo -len 31 -bands 0,0.25,0.3,0.5 -gains 1,0 -weights 1,10\n")
	}
	flag.Parse()

	spec, err := buildSpec(*length, *shape, *edges, *bands, *gains, *weights, *btype)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var opts []equiripple.Option
	if *density > 0 {
		opts = append(opts, equiripple.WithGridDensity(*density))
	}
	if *maxIter > 0 {
		opts = append(opts, equiripple.WithMaxIterations(*maxIter))
	}

	h, err := equiripple.Design(spec, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printReport(spec, h)

	if *taps {
		fmt.Println()
		for i, v := range h {
			fmt.Printf("h[%3d] = %18.12e\n", i, v)
		}
	}

	if *wavOut != "" {
		if err := writeImpulseWAV(*wavOut, h, *sampleRate); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nimpulse response written to %s\n", *wavOut)
	}
}

func buildSpec(length int, shape, edges, bands, gains, weights, btype string) (equiripple.Spec, error) {
	if bands != "" {
		return parseBandSpec(length, bands, gains, weights, btype)
	}
	if shape == "" {
		return equiripple.Spec{}, fmt.Errorf("either -shape or -bands is required")
	}

	e, err := parseFloats(edges)
	if err != nil {
		return equiripple.Spec{}, fmt.Errorf("bad -edges: %w", err)
	}
	switch strings.ToLower(shape) {
	case "lowpass":
		if len(e) != 2 {
			return equiripple.Spec{}, fmt.Errorf("lowpass needs 2 edges, got %d", len(e))
		}
		return equiripple.LowpassSpec(length, e[0], e[1]), nil
	case "highpass":
		if len(e) != 2 {
			return equiripple.Spec{}, fmt.Errorf("highpass needs 2 edges, got %d", len(e))
		}
		return equiripple.HighpassSpec(length, e[0], e[1]), nil
	case "bandpass":
		if len(e) != 4 {
			return equiripple.Spec{}, fmt.Errorf("bandpass needs 4 edges, got %d", len(e))
		}
		return equiripple.BandpassSpec(length, e[0], e[1], e[2], e[3]), nil
	case "bandstop":
		if len(e) != 4 {
			return equiripple.Spec{}, fmt.Errorf("bandstop needs 4 edges, got %d", len(e))
		}
		return equiripple.BandstopSpec(length, e[0], e[1], e[2], e[3]), nil
	default:
		return equiripple.Spec{}, fmt.Errorf("unknown shape %q", shape)
	}
}

func parseBandSpec(length int, bands, gains, weights, btype string) (equiripple.Spec, error) {
	be, err := parseFloats(bands)
	if err != nil {
		return equiripple.Spec{}, fmt.Errorf("bad -bands: %w", err)
	}
	if len(be)%2 != 0 || len(be) == 0 {
		return equiripple.Spec{}, fmt.Errorf("-bands needs an even number of edges, got %d", len(be))
	}
	numBands := len(be) / 2

	g, err := parseFloats(gains)
	if err != nil {
		return equiripple.Spec{}, fmt.Errorf("bad -gains: %w", err)
	}
	if len(g) != numBands {
		return equiripple.Spec{}, fmt.Errorf("need %d gains, got %d", numBands, len(g))
	}

	w := make([]float64, numBands)
	for i := range w {
		w[i] = 1
	}
	if weights != "" {
		if w, err = parseFloats(weights); err != nil {
			return equiripple.Spec{}, fmt.Errorf("bad -weights: %w", err)
		}
		if len(w) != numBands {
			return equiripple.Spec{}, fmt.Errorf("need %d weights, got %d", numBands, len(w))
		}
	}

	spec := equiripple.Spec{Length: length, Bands: make([]equiripple.Band, numBands)}
	for i := range numBands {
		spec.Bands[i] = equiripple.Band{Lo: be[2*i], Hi: be[2*i+1], Desired: g[i], Weight: w[i]}
	}

	switch strings.ToLower(btype) {
	case "", "bandpass":
		spec.Type = equiripple.TypeBandpass
	case "differentiator":
		spec.Type = equiripple.TypeDifferentiator
	case "hilbert":
		spec.Type = equiripple.TypeHilbert
	default:
		return equiripple.Spec{}, fmt.Errorf("unknown band type %q", btype)
	}
	return spec, nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty list")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", p)
		}
		out[i] = v
	}
	return out, nil
}

func printReport(spec equiripple.Spec, h []float64) {
	fmt.Printf("equiripple FIR, %d taps, %d band(s)\n\n", len(h), len(spec.Bands))

	an, err := equiripple.Analyze(h, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: analysis failed: %v\n", err)
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tEdges\tGain\tWeight\tPeak Dev\tPeak Dev [dB]\n")
	fmt.Fprintf(tw, "----\t-----\t----\t------\t--------\t-------------\n")
	for i, br := range an.Bands {
		fmt.Fprintf(tw, "%d\t[%.4f, %.4f]\t%.3f\t%.1f\t%.6f\t%.2f\n",
			i,
			br.Band.Lo, br.Band.Hi,
			br.Band.Desired,
			br.Band.Weight,
			br.PeakDeviation,
			br.PeakDeviationDB,
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
