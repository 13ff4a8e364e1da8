// Package spectrum provides helpers for working with complex FFT outputs:
// magnitude and power extraction (vectorized via algo-vecmath) and spectral
// flatness of a magnitude spectrum.
package spectrum
