package equiripple

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Specification validation tests
// ---------------------------------------------------------------------------

func TestSpecValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
	}{
		{"zero length", Spec{Length: 0, Bands: []Band{{0, 0.5, 1, 1}}}},
		{"negative length", Spec{Length: -3, Bands: []Band{{0, 0.5, 1, 1}}}},
		{"excessive length", Spec{Length: maxLength + 1, Bands: []Band{{0, 0.5, 1, 1}}}},
		{"no bands", Spec{Length: 21}},
		{"edge below zero", Spec{Length: 21, Bands: []Band{{-0.1, 0.2, 1, 1}}}},
		{"edge above nyquist", Spec{Length: 21, Bands: []Band{{0.3, 0.6, 1, 1}}}},
		{"descending edges", Spec{Length: 21, Bands: []Band{{0.3, 0.2, 1, 1}}}},
		{"empty band", Spec{Length: 21, Bands: []Band{{0.2, 0.2, 1, 1}}}},
		{"overlapping bands", Spec{Length: 21, Bands: []Band{{0, 0.3, 1, 1}, {0.25, 0.5, 0, 1}}}},
		{"zero weight", Spec{Length: 21, Bands: []Band{{0, 0.3, 1, 0}}}},
		{"negative weight", Spec{Length: 21, Bands: []Band{{0, 0.3, 1, -1}}}},
		{"unknown type", Spec{Length: 21, Bands: []Band{{0, 0.3, 1, 1}}, Type: BandType(99)}},
		{"antisymmetric single tap", Spec{Length: 1, Bands: []Band{{0.05, 0.45, 1, 1}}, Type: TypeHilbert}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("Validate = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestSpecValidate_Accepts(t *testing.T) {
	specs := []Spec{
		{Length: 1, Bands: []Band{{0, 0.5, 1, 1}}},
		{Length: 21, Bands: []Band{{0, 0.25, 1, 1}, {0.3, 0.5, 0, 1}}},
		// Bands touching at a shared edge do not overlap.
		{Length: 21, Bands: []Band{{0, 0.25, 1, 1}, {0.25, 0.5, 0, 1}}},
		{Length: 31, Bands: []Band{{0.05, 0.45, 1, 2}}, Type: TypeHilbert},
	}
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			t.Fatalf("Validate(%+v) = %v, want nil", spec, err)
		}
	}
}

func TestSpecOrder(t *testing.T) {
	cases := []struct {
		length                int
		btype                 BandType
		parity, semi, approxR int
	}{
		{21, TypeBandpass, 1, 10, 11},
		{20, TypeBandpass, 0, 10, 10},
		{1, TypeBandpass, 1, 0, 1},
		{2, TypeBandpass, 0, 1, 1},
		// Antisymmetric responses have no constant cosine term.
		{31, TypeHilbert, 1, 15, 15},
		{22, TypeDifferentiator, 0, 11, 11},
	}
	for _, tc := range cases {
		parity, semi, r := (Spec{Length: tc.length, Type: tc.btype}).order()
		if parity != tc.parity || semi != tc.semi || r != tc.approxR {
			t.Fatalf("order(%d, type %d) = (%d, %d, %d), want (%d, %d, %d)",
				tc.length, tc.btype, parity, semi, r, tc.parity, tc.semi, tc.approxR)
		}
	}
}

func TestConvenienceSpecs(t *testing.T) {
	lp := LowpassSpec(21, 0.2, 0.3)
	if err := lp.Validate(); err != nil {
		t.Fatalf("LowpassSpec invalid: %v", err)
	}
	if lp.Bands[0].Desired != 1 || lp.Bands[1].Desired != 0 {
		t.Fatalf("LowpassSpec gains = %v/%v, want 1/0", lp.Bands[0].Desired, lp.Bands[1].Desired)
	}

	hp := HighpassSpec(21, 0.2, 0.3)
	if err := hp.Validate(); err != nil {
		t.Fatalf("HighpassSpec invalid: %v", err)
	}
	if hp.Bands[0].Desired != 0 || hp.Bands[1].Desired != 1 {
		t.Fatalf("HighpassSpec gains = %v/%v, want 0/1", hp.Bands[0].Desired, hp.Bands[1].Desired)
	}

	bp := BandpassSpec(41, 0.1, 0.15, 0.3, 0.35)
	if err := bp.Validate(); err != nil {
		t.Fatalf("BandpassSpec invalid: %v", err)
	}
	if len(bp.Bands) != 3 || bp.Bands[1].Desired != 1 {
		t.Fatalf("BandpassSpec bands malformed: %+v", bp.Bands)
	}

	bs := BandstopSpec(41, 0.1, 0.15, 0.3, 0.35)
	if err := bs.Validate(); err != nil {
		t.Fatalf("BandstopSpec invalid: %v", err)
	}
	if len(bs.Bands) != 3 || bs.Bands[1].Desired != 0 {
		t.Fatalf("BandstopSpec bands malformed: %+v", bs.Bands)
	}
}
