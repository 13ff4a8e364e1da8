package window

import (
	"math"
	"testing"
)

func TestGenerate_Length(t *testing.T) {
	for _, n := range []int{1, 2, 64, 1024} {
		coeffs := Generate(TypeHann, n)
		if len(coeffs) != n {
			t.Errorf("length %d: got %d coefficients", n, len(coeffs))
		}
	}

	if Generate(TypeHann, 0) != nil {
		t.Error("length 0: expected nil")
	}

	if Generate(TypeHann, -4) != nil {
		t.Error("negative length: expected nil")
	}
}

func TestGenerate_Symmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		coeffs := Generate(typ, 65)
		for i := range len(coeffs) / 2 {
			j := len(coeffs) - 1 - i
			if math.Abs(coeffs[i]-coeffs[j]) > 1e-12 {
				t.Errorf("type %d: coeffs[%d]=%v != coeffs[%d]=%v", typ, i, coeffs[i], j, coeffs[j])
			}
		}
	}
}

func TestGenerate_HannEndpoints(t *testing.T) {
	coeffs := Generate(TypeHann, 9)

	if math.Abs(coeffs[0]) > 1e-12 || math.Abs(coeffs[8]) > 1e-12 {
		t.Errorf("Hann endpoints: %v, %v, want 0", coeffs[0], coeffs[8])
	}

	if math.Abs(coeffs[4]-1) > 1e-12 {
		t.Errorf("Hann center: %v, want 1", coeffs[4])
	}
}

func TestGenerate_Rectangular(t *testing.T) {
	for _, c := range Generate(TypeRectangular, 16) {
		if c != 1 {
			t.Fatalf("rectangular coefficient %v, want 1", c)
		}
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 1, 1, 1}
	coeffs := []float64{0, 0.5, 0.5, 0}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range out {
		if out[i] != coeffs[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], coeffs[i])
		}
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Error("mismatched lengths: expected error")
	}

	if err := ApplyCoefficientsInPlace(samples, coeffs[:2]); err == nil {
		t.Error("mismatched lengths in-place: expected error")
	}
}

func TestCoherentGain(t *testing.T) {
	// Rectangular window has coherent gain 1.
	got, err := CoherentGain(Generate(TypeRectangular, 32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(got-1) > 1e-12 {
		t.Errorf("rectangular coherent gain = %v, want 1", got)
	}

	// Hann window has coherent gain ~0.5.
	got, err = CoherentGain(Generate(TypeHann, 4096))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(got-0.5) > 1e-3 {
		t.Errorf("Hann coherent gain = %v, want ~0.5", got)
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Error("empty coefficients: expected error")
	}
}
