package waveform

import "math"

// BandSummary holds the two quantized measurements of one frequency band
// within one analysis window.
type BandSummary struct {
	// Peak is the clamped absolute peak value in 0..=1.
	Peak Val

	// Energy is the clamped, sine-scaled RMS value in 0..=1.
	Energy Val
}

// BandVals holds one quantized value per analysis band, either the peaks or
// the energies of a [Bin].
type BandVals struct {
	All  Val
	Low  Val
	Mid  Val
	High Val
}

// Bin is the per-window analysis result: peak and energy for the unfiltered
// signal and for each of the three crossover bands. A Bin is immutable once
// produced and packs losslessly into a [Packed] 64-bit value.
type Bin struct {
	All  BandSummary
	Low  BandSummary
	Mid  BandSummary
	High BandSummary
}

// Peaks returns the per-band peak values.
func (b Bin) Peaks() BandVals {
	return BandVals{
		All:  b.All.Peak,
		Low:  b.Low.Peak,
		Mid:  b.Mid.Peak,
		High: b.High.Peak,
	}
}

// Energies returns the per-band energy values.
func (b Bin) Energies() BandVals {
	return BandVals{
		All:  b.All.Energy,
		Low:  b.Low.Energy,
		Mid:  b.Mid.Energy,
		High: b.High.Energy,
	}
}

// Flatness returns the spectral flatness of the bin in [0, 1]: the ratio of
// the geometric mean to the arithmetic mean of the low/mid/high band
// energies.
//
// Convention: 1 means perfectly flat (noise-like), 0 means perfectly tonal.
// A silent bin (all band energies zero) is defined as perfectly flat and
// returns 1. A single zero band energy makes the geometric mean zero, so the
// result is 0; that is the correct degenerate value, not an error.
//
// See https://en.wikipedia.org/wiki/Spectral_flatness
func (b Bin) Flatness() float64 {
	low := b.Low.Energy.Float()
	mid := b.Mid.Energy.Float()
	high := b.High.Energy.Float()

	arithmeticMean := (low + mid + high) / 3
	if arithmeticMean == 0 {
		// Silence; defined as perfectly flat.
		return 1
	}

	geometricMean := math.Cbrt(low * mid * high)

	return geometricMean / arithmeticMean
}

// IsSilence reports whether every band measurement of the bin is zero.
func (b Bin) IsSilence() bool {
	return b == Bin{}
}
