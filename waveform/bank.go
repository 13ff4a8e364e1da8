package waveform

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
	"github.com/cwbudde/algo-waveform/dsp/filter/design"
)

// Crossover frequency limits for the band splitter.
const (
	minCrossoverHz = 20.0
	maxCrossoverHz = 20000.0
)

// Default crossover frequencies. Rekordbox splits at roughly 200/2000 Hz,
// Superpowered at 200/1600 Hz; the low/mid and mid/high band edges overlap
// deliberately so that crossover-region content registers in both bands.
const (
	defaultLowLPHz  = 200.0
	defaultLowHPHz  = 160.0
	defaultHighLPHz = 1600.0
	defaultHighHPHz = 1200.0
)

// CrossoverConfig holds the band-split frequencies of the three-band
// filter bank.
type CrossoverConfig struct {
	// LowLPHz is the low/mid crossover (lowpass edge of the low band).
	LowLPHz float64

	// LowHPHz is the lower edge of the mid band. It sits below LowLPHz so
	// the mid band overlaps the lows.
	LowHPHz float64

	// HighLPHz is the upper edge of the mid band. It sits above HighHPHz so
	// the mid band overlaps the highs.
	HighLPHz float64

	// HighHPHz is the mid/high crossover (highpass edge of the high band).
	HighHPHz float64
}

// DefaultCrossoverConfig returns the default band-split frequencies.
func DefaultCrossoverConfig() CrossoverConfig {
	return CrossoverConfig{
		LowLPHz:  defaultLowLPHz,
		LowHPHz:  defaultLowHPHz,
		HighLPHz: defaultHighLPHz,
		HighHPHz: defaultHighHPHz,
	}
}

func (c CrossoverConfig) validate(sampleRate float64) error {
	freqs := []float64{c.LowLPHz, c.LowHPHz, c.HighLPHz, c.HighHPHz}
	for _, f := range freqs {
		if !design.Valid(f, sampleRate) {
			return fmt.Errorf("%w: %.1f Hz out of (0, %.1f)", ErrInvalidCrossover, f, sampleRate/2)
		}

		if f < minCrossoverHz || f > maxCrossoverHz {
			return fmt.Errorf("%w: %.1f Hz outside audible range [%.0f, %.0f]",
				ErrInvalidCrossover, f, minCrossoverHz, maxCrossoverHz)
		}
	}

	if c.LowHPHz > c.LowLPHz {
		return fmt.Errorf("%w: low HP %.1f Hz above low LP %.1f Hz", ErrInvalidCrossover, c.LowHPHz, c.LowLPHz)
	}

	if c.LowLPHz >= c.HighHPHz {
		return fmt.Errorf("%w: empty mid band (%.1f >= %.1f Hz)", ErrInvalidCrossover, c.LowLPHz, c.HighHPHz)
	}

	if c.HighHPHz > c.HighLPHz {
		return fmt.Errorf("%w: high HP %.1f Hz above high LP %.1f Hz", ErrInvalidCrossover, c.HighHPHz, c.HighLPHz)
	}

	return nil
}

// bank is the three-band splitter: an LR4 lowpass for the low band, a pair
// of second-order Butterworth HP/LP sections for the overlapping mid band,
// and an LR4 highpass for the high band. The chains own their delay-line
// state; it persists across window boundaries.
type bank struct {
	low  *biquad.Chain
	mid  *biquad.Chain
	high *biquad.Chain
}

func newBank(crossover CrossoverConfig, sampleRate float64) (*bank, error) {
	if err := crossover.validate(sampleRate); err != nil {
		return nil, err
	}

	lowCoeffs := design.LinkwitzRileyLP(crossover.LowLPHz, 4, sampleRate)
	highCoeffs := design.LinkwitzRileyHP(crossover.HighHPHz, 4, sampleRate)

	midCoeffs := append(
		design.ButterworthHP(crossover.LowHPHz, 2, sampleRate),
		design.ButterworthLP(crossover.HighLPHz, 2, sampleRate)...,
	)

	if lowCoeffs == nil || highCoeffs == nil || len(midCoeffs) != 2 {
		return nil, fmt.Errorf("%w: design failed at %.1f Hz sample rate", ErrInvalidCrossover, sampleRate)
	}

	return &bank{
		low:  biquad.NewChain(lowCoeffs),
		mid:  biquad.NewChain(midCoeffs),
		high: biquad.NewChain(highCoeffs),
	}, nil
}

// bandSample holds one input sample split into the four analysis bands.
type bandSample struct {
	all  float64
	low  float64
	mid  float64
	high float64
}

// process splits one (already sanitized) input sample into the four bands.
func (b *bank) process(x float64) bandSample {
	return bandSample{
		all:  x,
		low:  b.low.ProcessSample(x),
		mid:  b.mid.ProcessSample(x),
		high: b.high.ProcessSample(x),
	}
}

// reset clears all delay-line state.
func (b *bank) reset() {
	b.low.Reset()
	b.mid.Reset()
	b.high.Reset()
}

// stable reports whether every chain in the bank is stable. Holds for all
// valid crossover configurations; exposed for tests.
func (b *bank) stable() bool {
	return b.low.IsStable() && b.mid.IsStable() && b.high.IsStable()
}
