package waveform

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

// RGB is a color with channel values in [0, 1].
type RGB struct {
	R, G, B float64
}

// RGB8 quantizes the color to 8 bits per channel.
func (c RGB) RGB8() (r, g, b uint8) {
	return uint8(ValFromFloat(c.R)), uint8(ValFromFloat(c.G)), uint8(ValFromFloat(c.B))
}

// SpectralRGB maps the low/mid/high values onto the red/green/blue channels
// at full brightness.
func (v BandVals) SpectralRGB() RGB {
	return v.SpectralRGBMax(1)
}

// SpectralRGBAll maps the low/mid/high values onto the red/green/blue
// channels with brightness limited by the all-band value.
func (v BandVals) SpectralRGBAll() RGB {
	return v.SpectralRGBMax(v.All.Float())
}

// SpectralRGBMax maps the low/mid/high values onto the red/green/blue
// channels with custom brightness limited by max.
//
// The max value controls the brightness of the resulting color; without it,
// one component would always be maxed out and only the edges of the RGB
// space could be reached. Silence maps to black.
func (v BandVals) SpectralRGBMax(max float64) RGB {
	low := v.Low.Float()
	mid := v.Mid.Float()
	high := v.High.Float()

	denom := core.Sanitize(max)
	for _, band := range []float64{low, mid, high} {
		if band > denom {
			denom = band
		}
	}

	if denom == 0 {
		return RGB{}
	}

	return RGB{
		R: low / denom,
		G: mid / denom,
		B: high / denom,
	}
}

// Palette hue endpoints in degrees: tonal content renders blue, flat
// (noise-like) content renders red.
const (
	paletteTonalHue = 240.0
	paletteFlatHue  = 0.0
)

// PaletteRGB maps a flatness value and an amplitude onto a continuous HSV
// palette: flatness selects the hue (monotonically from blue at 0 to red
// at 1) and amplitude the brightness. Both inputs are clamped to [0, 1],
// so the mapping is total; zero amplitude yields black.
func PaletteRGB(flatness, amplitude float64) RGB {
	flatness = core.Clamp01(core.Sanitize(flatness))
	amplitude = core.Clamp01(core.Sanitize(amplitude))

	hue := paletteTonalHue + (paletteFlatHue-paletteTonalHue)*flatness
	c := colorful.Hsv(hue, 1, amplitude)

	return RGB{R: c.R, G: c.G, B: c.B}
}
