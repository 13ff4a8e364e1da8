package design

import (
	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
)

// LinkwitzRileyLP designs a lowpass Linkwitz-Riley cascade of the given order.
//
// A Linkwitz-Riley filter of order 2N cascades two identical Butterworth
// filters of order N, producing -6.02 dB at the crossover frequency and a
// squared-Butterworth magnitude response.
//
// The order must be a positive even integer (2, 4, 6, 8, ...). Returns nil
// for invalid parameters.
func LinkwitzRileyLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || order%2 != 0 {
		return nil
	}

	bw := ButterworthLP(freq, order/2, sampleRate)
	if bw == nil {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, 2*len(bw))
	sections = append(sections, bw...)
	sections = append(sections, bw...)

	return sections
}

// LinkwitzRileyHP designs a highpass Linkwitz-Riley cascade of the given order.
//
// The order must be a positive even integer (2, 4, 6, 8, ...). Returns nil
// for invalid parameters.
func LinkwitzRileyHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || order%2 != 0 {
		return nil
	}

	bw := ButterworthHP(freq, order/2, sampleRate)
	if bw == nil {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, 2*len(bw))
	sections = append(sections, bw...)
	sections = append(sections, bw...)

	return sections
}
