package waveform

import (
	"math"
	"testing"
)

func rgbNear(a, b RGB, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps
}

func TestSpectralRGB(t *testing.T) {
	v := BandVals{Low: 255, Mid: 128, High: 64}

	got := v.SpectralRGB()
	want := RGB{R: 1, G: 128.0 / 255, B: 64.0 / 255}

	if !rgbNear(got, want, 1e-12) {
		t.Errorf("SpectralRGB() = %+v, want %+v", got, want)
	}
}

func TestSpectralRGBSilence(t *testing.T) {
	var v BandVals

	if got := v.SpectralRGB(); got != (RGB{}) {
		t.Errorf("silent SpectralRGB() = %+v, want black", got)
	}

	if got := v.SpectralRGBAll(); got != (RGB{}) {
		t.Errorf("silent SpectralRGBAll() = %+v, want black", got)
	}
}

func TestSpectralRGBMaxBrightness(t *testing.T) {
	// The dominant band always saturates its channel; the brightness cap
	// only matters when it exceeds every band value.
	v := BandVals{Low: 64, Mid: 96, High: 32}

	got := v.SpectralRGBMax(0.5)
	want := RGB{
		R: (64.0 / 255) / 0.5,
		G: (96.0 / 255) / 0.5,
		B: (32.0 / 255) / 0.5,
	}

	if !rgbNear(got, want, 1e-12) {
		t.Errorf("SpectralRGBMax(0.5) = %+v, want %+v", got, want)
	}

	// A cap below the loudest band is raised to it, keeping channels in
	// range.
	got = v.SpectralRGBMax(0.1)
	if got.G != 1 {
		t.Errorf("dominant channel = %v, want 1", got.G)
	}

	for _, ch := range []float64{got.R, got.G, got.B} {
		if ch < 0 || ch > 1 {
			t.Errorf("channel %v out of [0, 1]", ch)
		}
	}
}

func TestSpectralRGBAll(t *testing.T) {
	v := BandVals{All: 128, Low: 64, Mid: 96, High: 32}

	got := v.SpectralRGBAll()
	want := v.SpectralRGBMax(128.0 / 255)

	if got != want {
		t.Errorf("SpectralRGBAll() = %+v, want %+v", got, want)
	}
}

func TestPaletteRGBEndpoints(t *testing.T) {
	if got := PaletteRGB(0, 1); !rgbNear(got, RGB{B: 1}, 1e-9) {
		t.Errorf("tonal endpoint = %+v, want blue", got)
	}

	if got := PaletteRGB(1, 1); !rgbNear(got, RGB{R: 1}, 1e-9) {
		t.Errorf("flat endpoint = %+v, want red", got)
	}

	if got := PaletteRGB(0.5, 0); !rgbNear(got, RGB{}, 1e-9) {
		t.Errorf("zero amplitude = %+v, want black", got)
	}
}

func TestPaletteRGBClamping(t *testing.T) {
	inputs := []struct{ flatness, amplitude float64 }{
		{-1, 2},
		{2, -1},
		{math.NaN(), 1},
		{0.5, math.Inf(1)},
	}

	for _, in := range inputs {
		c := PaletteRGB(in.flatness, in.amplitude)
		for _, ch := range []float64{c.R, c.G, c.B} {
			if math.IsNaN(ch) || ch < 0 || ch > 1 {
				t.Errorf("PaletteRGB(%v, %v) channel %v out of range",
					in.flatness, in.amplitude, ch)
			}
		}
	}
}

func TestRGB8(t *testing.T) {
	r, g, b := RGB{R: 1, G: 0.5, B: 0}.RGB8()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("RGB8() = (%d, %d, %d), want (255, 128, 0)", r, g, b)
	}
}
