package testutil

import "testing"

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs([]float64{-3, 1, 2}); got != 3 {
		t.Fatalf("MaxAbs = %v, want 3", got)
	}
	if got := MaxAbs(nil); got != 0 {
		t.Fatalf("MaxAbs(nil) = %v, want 0", got)
	}
}

func TestRequireSymmetric(t *testing.T) {
	RequireSymmetric(t, []float64{1, 2, 3, 2, 1})
	RequireSymmetric(t, []float64{1, 2, 2, 1})
}

func TestRequireAntisymmetric(t *testing.T) {
	RequireAntisymmetric(t, []float64{-1, -2, 0, 2, 1})
	RequireAntisymmetric(t, []float64{-1, -2, 2, 1})
}

func TestRequireAlternatingSigns(t *testing.T) {
	RequireAlternatingSigns(t, []float64{0.5, -0.5, 0.5, -0.5}, 1e-12)
	RequireAlternatingSigns(t, []float64{-0.5, 0.49, -0.51}, 0.02)
}
