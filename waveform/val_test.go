package waveform

import (
	"math"
	"testing"
)

func TestValFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Val
	}{
		{"zero", 0, 0},
		{"quarter", 0.25, 64},
		{"half", 0.5, 128},
		{"three quarters", 0.75, 192},
		{"one", 1, 255},
		{"just below one", 255.0 / 256.0, 255},
		{"smallest nonzero", 1.0 / 256.0, 1},
		{"below quantization step", 1.0 / 512.0, 0},
		{"negative clamps", -0.5, 0},
		{"above one clamps", 1.5, 255},
		{"nan is silence", math.NaN(), 0},
		{"positive inf is silence", math.Inf(1), 0},
		{"negative inf is silence", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValFromFloat(tt.in); got != tt.want {
				t.Errorf("ValFromFloat(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestValRoundTrip(t *testing.T) {
	for q := 0; q <= int(MaxVal); q++ {
		v := Val(q)
		if got := ValFromFloat(v.Float()); got != v {
			t.Fatalf("round trip of %d gave %d", v, got)
		}
	}
}

func TestValMonotonic(t *testing.T) {
	prev := ValFromFloat(0)

	for i := 1; i <= 1000; i++ {
		v := ValFromFloat(float64(i) / 1000)
		if v < prev {
			t.Fatalf("quantization not monotonic at %d/1000: %d < %d", i, v, prev)
		}

		prev = v
	}

	if prev != MaxVal {
		t.Fatalf("ValFromFloat(1) = %d, want %d", prev, MaxVal)
	}
}

func TestValFloatRange(t *testing.T) {
	if got := Val(0).Float(); got != 0 {
		t.Errorf("Val(0).Float() = %v, want 0", got)
	}

	if got := MaxVal.Float(); got != 1 {
		t.Errorf("MaxVal.Float() = %v, want 1", got)
	}

	if !Val(0).IsZero() || Val(1).IsZero() {
		t.Error("IsZero misclassifies values")
	}
}
