package waveform

import (
	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/window"
	"github.com/cwbudde/algo-waveform/spectrum"
)

// SpectralFlatness measures how noise-like a raw sample window is from its
// magnitude spectrum. The window is Hann-weighted and zero-padded to the
// next power of two before the transform. The result is in [0, 1]: one for
// white noise or silence, near zero for a pure tone.
//
// This is the FFT counterpart of [Bin.Flatness], which estimates the same
// quantity from the three band energies without a transform.
func SpectralFlatness(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptyWindow
	}

	n := nextPowerOfTwo(len(samples))

	coeffs := window.Generate(window.TypeHann, len(samples))

	in := make([]complex128, n)
	for i, x := range samples {
		in[i] = complex(core.Sanitize(x)*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, err
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, err
	}

	mag := spectrum.Magnitude(out[:n/2+1])

	return spectrum.Flatness(mag), nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
