// Package design computes biquad coefficients for the filter families used
// by the waveform analyzer.
//
// Single-section designs follow the RBJ audio EQ cookbook formulas
// ([Lowpass], [Highpass], [Bandpass], [Allpass]). Higher-order cascades are
// built from them: [ButterworthLP]/[ButterworthHP] distribute per-section Q
// values for a maximally flat response, and [LinkwitzRileyLP]/
// [LinkwitzRileyHP] cascade two identical Butterworth halves for -6.02 dB
// at the crossover frequency.
//
// All designs validate their parameters: a frequency at or above Nyquist, a
// non-positive sample rate, or non-finite inputs yield zero coefficients
// (single sections) or nil (cascades). Callers that need hard failures wrap
// these checks at construction time.
package design
