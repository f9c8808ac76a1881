package testutil

import (
	"math"
	"testing"
)

// RequireSymmetric fails t unless h[i] == h[len-1-i] for all i
// (linear-phase Type I/II impulse response).
func RequireSymmetric(t *testing.T, h []float64) {
	t.Helper()
	n := len(h)
	for i := range n / 2 {
		if h[i] != h[n-1-i] {
			t.Fatalf("not symmetric: h[%d]=%v, h[%d]=%v", i, h[i], n-1-i, h[n-1-i])
		}
	}
}

// RequireAntisymmetric fails t unless h[i] == -h[len-1-i] for all i
// (linear-phase Type III/IV impulse response). For odd lengths this
// forces the center tap to zero.
func RequireAntisymmetric(t *testing.T, h []float64) {
	t.Helper()
	n := len(h)
	for i := range n/2 + 1 {
		if h[i] != -h[n-1-i] {
			t.Fatalf("not antisymmetric: h[%d]=%v, h[%d]=%v", i, h[i], n-1-i, h[n-1-i])
		}
	}
}

// RequireAlternatingSigns fails t unless adjacent values in e have
// strictly opposite signs and equal magnitude within eps.
func RequireAlternatingSigns(t *testing.T, e []float64, eps float64) {
	t.Helper()
	if len(e) < 2 {
		t.Fatalf("need at least 2 values, got %d", len(e))
	}
	mag := math.Abs(e[0])
	for i := 1; i < len(e); i++ {
		if e[i]*e[i-1] >= 0 {
			t.Fatalf("signs do not alternate at %d: %v then %v", i, e[i-1], e[i])
		}
		if diff := math.Abs(math.Abs(e[i]) - mag); diff > eps {
			t.Fatalf("magnitude at %d is %v, want %v within %v", i, math.Abs(e[i]), mag, eps)
		}
	}
}
