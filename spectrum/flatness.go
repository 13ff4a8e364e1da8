package spectrum

import "math"

// Flatness returns the spectral flatness (Wiener entropy) of a one-sided
// magnitude spectrum: the ratio of the geometric mean to the arithmetic mean
// of the bins, in [0, 1].
//
// The convention matches the waveform package: 1 means perfectly flat
// (noise-like), 0 means perfectly tonal. The DC bin is excluded. A silent
// spectrum (all bins zero) is defined as perfectly flat and returns 1; a
// spectrum with some zero bins has a zero geometric mean and returns 0.
func Flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 1
	}

	// Operate on bins 1..N-1 (skip DC bin 0). The geometric mean is
	// computed in the log domain for numerical stability.
	nBins := n - 1
	sumLin := 0.0
	sumLog := 0.0
	hasZero := false

	for i := 1; i < n; i++ {
		v := magnitude[i]

		sumLin += v
		if v > 0 {
			sumLog += math.Log(v)
		} else {
			hasZero = true
		}
	}

	meanLin := sumLin / float64(nBins)
	if meanLin == 0 {
		// Silence; defined as perfectly flat.
		return 1
	}

	if hasZero {
		return 0
	}

	meanLog := sumLog / float64(nBins)
	geoMean := math.Exp(meanLog)

	return geoMean / meanLin
}
