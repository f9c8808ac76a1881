package equiripple

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-firdes/internal/testutil"
)

// ---------------------------------------------------------------------------
// Grid builder tests
// ---------------------------------------------------------------------------

func TestBuildGrid_EdgeSnapping(t *testing.T) {
	spec := Spec{
		Length: 21,
		Bands: []Band{
			{Lo: 0, Hi: 0.25, Desired: 1, Weight: 1},
			{Lo: 0.3, Hi: 0.5, Desired: 0, Weight: 1},
		},
		Type: TypeBandpass,
	}
	_, _, r := spec.order()
	g := buildGrid(spec, r, defaultGridDensity)

	// The last sample of each band must equal the declared upper edge
	// exactly, not just approximately.
	seen := 0
	for bi, b := range spec.Bands {
		count := 0
		for i := seen; i < g.size() && g.d[i] == b.Desired && g.f[i] <= b.Hi; i++ {
			count++
		}
		last := seen + count - 1
		if g.f[last] != b.Hi {
			t.Fatalf("band %d: last grid frequency %v, want exactly %v", bi, g.f[last], b.Hi)
		}
		seen += count
	}
	if seen != g.size() {
		t.Fatalf("accounted for %d grid points, grid has %d", seen, g.size())
	}
}

func TestBuildGrid_MonotonicWithinBands(t *testing.T) {
	spec := Spec{
		Length: 31,
		Bands: []Band{
			{Lo: 0.05, Hi: 0.15, Desired: 1, Weight: 1},
			{Lo: 0.2, Hi: 0.3, Desired: 0.5, Weight: 2},
			{Lo: 0.35, Hi: 0.45, Desired: 0, Weight: 1},
		},
		Type: TypeBandpass,
	}
	_, _, r := spec.order()
	g := buildGrid(spec, r, defaultGridDensity)

	for i := 1; i < g.size(); i++ {
		if g.f[i] < g.f[i-1] {
			t.Fatalf("grid not monotonic at %d: %v after %v", i, g.f[i], g.f[i-1])
		}
	}
	for i := range g.size() {
		bi := bandIndex(spec.Bands, g.f[i])
		if bi < 0 {
			t.Fatalf("grid point %d at f=%v lies outside every band", i, g.f[i])
		}
		if g.d[i] != spec.Bands[bi].Desired || g.w[i] != spec.Bands[bi].Weight {
			t.Fatalf("grid point %d: desired/weight %v/%v, want %v/%v",
				i, g.d[i], g.w[i], spec.Bands[bi].Desired, spec.Bands[bi].Weight)
		}
	}
}

func TestBuildGrid_TinyBandGetsOnePoint(t *testing.T) {
	spec := Spec{
		Length: 21,
		Bands: []Band{
			{Lo: 0, Hi: 0.2, Desired: 1, Weight: 1},
			{Lo: 0.3, Hi: 0.3001, Desired: 0, Weight: 1},
		},
		Type: TypeBandpass,
	}
	_, _, r := spec.order()
	g := buildGrid(spec, r, defaultGridDensity)

	// The narrow band is below one grid step wide; it still gets exactly
	// one point, snapped to its upper edge.
	last := g.size() - 1
	if g.f[last] != 0.3001 {
		t.Fatalf("narrow band point at %v, want 0.3001", g.f[last])
	}
	if g.f[last-1] > 0.2 {
		t.Fatalf("narrow band received more than one point")
	}
}

func TestBuildGrid_BasisTransform(t *testing.T) {
	spec := Spec{
		Length: 31,
		Bands:  []Band{{Lo: 0, Hi: 0.45, Desired: 1, Weight: 2}},
		Type:   TypeHilbert,
	}
	_, _, r := spec.order()
	g := buildGrid(spec, r, defaultGridDensity)

	// The band edge is pulled off the DC null of the odd symmetry; every
	// remaining point carries the sine-basis transform of desired and
	// weight.
	if g.f[0] <= 0 {
		t.Fatalf("first grid point %v sits on the f=0 null", g.f[0])
	}
	for i := range g.size() {
		q := math.Sin(2 * math.Pi * g.f[i])
		if q <= 0 {
			t.Fatalf("grid point %d at f=%v has non-positive basis gain", i, g.f[i])
		}
		testutil.RequireNear(t, g.d[i], 1/q, 1e-12)
		testutil.RequireNear(t, g.w[i], 2*q, 1e-12)
	}
}

func TestBuildGrid_NyquistNullAvoidedForEvenLength(t *testing.T) {
	spec := LowpassSpec(20, 0.2, 0.28)
	_, _, r := spec.order()
	g := buildGrid(spec, r, defaultGridDensity)

	if last := g.f[g.size()-1]; last >= 0.5 {
		t.Fatalf("last grid point %v sits on the f=0.5 null", last)
	}
	for i := range g.size() {
		if math.IsInf(g.d[i], 0) || math.IsNaN(g.d[i]) || g.w[i] <= 0 {
			t.Fatalf("grid point %d at f=%v: desired %v, weight %v", i, g.f[i], g.d[i], g.w[i])
		}
	}
}

func TestBuildGrid_DensityScalesSize(t *testing.T) {
	spec := LowpassSpec(41, 0.2, 0.25)
	_, _, r := spec.order()

	low := buildGrid(spec, r, 8).size()
	high := buildGrid(spec, r, 32).size()
	if high < 3*low {
		t.Fatalf("density 32 grid has %d points, density 8 has %d; expected ~4x", high, low)
	}
}
