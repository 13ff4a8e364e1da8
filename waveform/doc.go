// Package waveform reduces a stream of normalized audio samples to a compact
// sequence of 64-bit bins for waveform rendering.
//
// An [Analyzer] partitions its input into fixed-length analysis windows and
// splits each sample into four frequency bands: the unfiltered signal plus a
// low / mid / high three-band crossover (Linkwitz-Riley LR4 edges with an
// overlapping Butterworth mid band). Per band and window it accumulates the
// absolute peak and a scaled RMS energy, quantizes both to 8 bits ([Val]),
// and emits one [Bin]. Filter state is owned by the Analyzer and carries
// across window boundaries; it is never reset between windows.
//
// A [Bin] derives two further quantities: spectral flatness (geometric over
// arithmetic mean of the low/mid/high energies, 1 = flat/noise-like,
// 0 = tonal, silence defined as perfectly flat) and an RGB color for
// rendering (band-ratio mapping, or a flatness-driven palette via
// [PaletteRGB]).
//
// The dense 64-bit encoding of a Bin is [Packed]; its bit layout and byte
// order are a fixed binary contract documented on that type.
package waveform
