package waveform

import (
	"errors"
	"math"
	"testing"
)

func TestSpectralFlatnessEmpty(t *testing.T) {
	if _, err := SpectralFlatness(nil); !errors.Is(err, ErrEmptyWindow) {
		t.Errorf("SpectralFlatness(nil) error = %v, want %v", err, ErrEmptyWindow)
	}
}

func TestSpectralFlatnessSilence(t *testing.T) {
	got, err := SpectralFlatness(make([]float64, 256))
	if err != nil {
		t.Fatalf("SpectralFlatness: %v", err)
	}

	if got != 1 {
		t.Errorf("flatness of silence = %v, want 1", got)
	}
}

func TestSpectralFlatnessImpulse(t *testing.T) {
	// A centered impulse has a flat magnitude spectrum.
	signal := make([]float64, 256)
	signal[128] = 1

	got, err := SpectralFlatness(signal)
	if err != nil {
		t.Fatalf("SpectralFlatness: %v", err)
	}

	if got < 0.9 {
		t.Errorf("flatness of impulse = %v, want near 1", got)
	}
}

func TestSpectralFlatnessTone(t *testing.T) {
	// Eight full cycles across the window: a single spectral line.
	signal := make([]float64, 256)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 8 * float64(i) / 256)
	}

	got, err := SpectralFlatness(signal)
	if err != nil {
		t.Fatalf("SpectralFlatness: %v", err)
	}

	if got > 0.1 {
		t.Errorf("flatness of pure tone = %v, want near 0", got)
	}
}

func TestSpectralFlatnessRange(t *testing.T) {
	// Zero-padded odd length, corrupted samples: the result must stay a
	// valid flatness.
	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = math.Sin(float64(i)) * 0.3
	}

	signal[13] = math.NaN()
	signal[47] = math.Inf(1)

	got, err := SpectralFlatness(signal)
	if err != nil {
		t.Fatalf("SpectralFlatness: %v", err)
	}

	if math.IsNaN(got) || got < 0 || got > 1 {
		t.Errorf("flatness = %v, want value in [0, 1]", got)
	}
}
