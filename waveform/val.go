package waveform

import "github.com/cwbudde/algo-waveform/dsp/core"

// Val is an amplitude-like quantity quantized to 8 bits.
//
// The quantization maps [0, 1] onto 0..255: q = min(floor(v*256), 255) and
// back v = q/255. Round-tripping any Val through Float and ValFromFloat is
// exact, which makes the packed bin encoding lossless at this granularity.
type Val uint8

// MaxVal is the largest quantized value, representing 1.0.
const MaxVal Val = 255

// ValFromFloat quantizes v to 8 bits. Inputs are sanitized before clamping,
// so NaN and infinite values map to silence and out-of-range values cannot
// wrap.
func ValFromFloat(v float64) Val {
	v = core.Clamp01(core.Sanitize(v))

	mapped := v * 256
	if mapped > 255 {
		return MaxVal
	}

	return Val(mapped)
}

// Float returns the amplitude in [0, 1] represented by v.
func (v Val) Float() float64 {
	return float64(v) / float64(MaxVal)
}

// IsZero reports whether v represents silence.
func (v Val) IsZero() bool {
	return v == 0
}
