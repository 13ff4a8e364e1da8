package waveform

import (
	"math"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

// bandAccumulator tracks the running peak and sum of squares of one band
// within the current window.
type bandAccumulator struct {
	peak  float64
	sumSq float64
}

func (a *bandAccumulator) add(s float64) {
	if abs := math.Abs(s); abs > a.peak {
		a.peak = abs
	}

	a.sumSq += s * s
}

// finish reduces the accumulated values to a quantized BandSummary.
//
// For a sinusoidal signal the peak equals sqrt(2) times the RMS. That is a
// good enough model of the expected input, so the RMS is scaled by sqrt(2)
// to the peak range and clamped. Filter overshoot beyond 1.0 is clamped as
// well, never wrapped.
func (a bandAccumulator) finish(rmsDiv float64) BandSummary {
	energy := math.Sqrt(a.sumSq/rmsDiv) * math.Sqrt2

	return BandSummary{
		Peak:   ValFromFloat(core.Clamp01(a.peak)),
		Energy: ValFromFloat(core.Clamp01(energy)),
	}
}

// binAccumulator tracks all four bands of the current window.
type binAccumulator struct {
	count int
	all   bandAccumulator
	low   bandAccumulator
	mid   bandAccumulator
	high  bandAccumulator
}

func (a *binAccumulator) add(s bandSample) {
	a.count++
	a.all.add(s.all)
	a.low.add(s.low)
	a.mid.add(s.mid)
	a.high.add(s.high)
}

// finish reduces the window to a Bin using the given energy divisor.
// rmsDiv must be positive.
func (a binAccumulator) finish(rmsDiv float64) Bin {
	return Bin{
		All:  a.all.finish(rmsDiv),
		Low:  a.low.finish(rmsDiv),
		Mid:  a.mid.finish(rmsDiv),
		High: a.high.finish(rmsDiv),
	}
}
