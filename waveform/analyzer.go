package waveform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

// Analyzer reduces one audio channel to a stream of [Bin] values. It owns
// the crossover filter state and the in-progress window accumulator; both
// carry across calls, so an Analyzer must not be shared between channels.
// Independent channels each get their own Analyzer and can then be
// processed in parallel without locking.
type Analyzer struct {
	cfg           Config
	samplesPerBin float64
	pending       float64
	bank          *bank
	acc           binAccumulator
}

// New creates an Analyzer from the given options. All configuration is
// validated here; processing itself never fails.
func New(opts ...Option) (*Analyzer, error) {
	return NewFromConfig(ApplyOptions(opts...))
}

// NewFromConfig creates an Analyzer from an explicit Config, for callers
// that assemble the configuration themselves rather than through options.
func NewFromConfig(cfg Config) (*Analyzer, error) {
	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSampleRate, cfg.SampleRate)
	}

	if cfg.WindowLength < 0 || (cfg.WindowLength == 0 && cfg.BinsPerSec <= 0) {
		return nil, fmt.Errorf("%w: bins/sec %v, window length %d",
			ErrInvalidResolution, cfg.BinsPerSec, cfg.WindowLength)
	}

	samplesPerBin := float64(cfg.WindowLength)
	if cfg.WindowLength == 0 {
		samplesPerBin = math.Max(cfg.SampleRate/cfg.BinsPerSec, minSamplesPerBin)
	}

	bank, err := newBank(cfg.Crossover, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		cfg:           cfg,
		samplesPerBin: samplesPerBin,
		bank:          bank,
	}, nil
}

// SampleRate returns the configured input sample rate in Hz.
func (a *Analyzer) SampleRate() float64 {
	return a.cfg.SampleRate
}

// SamplesPerBin returns the analysis window length in samples. The value
// may be fractional when derived from a bin rate; the remainder is carried
// between windows so the average window length is exact.
func (a *Analyzer) SamplesPerBin() float64 {
	return a.samplesPerBin
}

// ProcessSample feeds one sample into the analyzer. When the sample
// completes an analysis window the previous window's Bin is returned with
// ok=true; otherwise ok is false.
//
// NaN and infinite samples are replaced by silence before filtering so a
// single corrupted sample cannot poison the filter state or the window.
func (a *Analyzer) ProcessSample(x float64) (bin Bin, ok bool) {
	if a.pending >= a.samplesPerBin {
		a.pending -= a.samplesPerBin
		bin, ok = a.finishBin()
	}

	a.acc.add(a.bank.process(core.Sanitize(x)))
	a.pending++

	return bin, ok
}

// ProcessBlock feeds a block of samples, appending completed bins to dst
// and returning the extended slice. dst may be nil.
func (a *Analyzer) ProcessBlock(buf []float64, dst []Bin) []Bin {
	for _, x := range buf {
		if bin, ok := a.ProcessSample(x); ok {
			dst = append(dst, bin)
		}
	}

	return dst
}

// Flush finalizes the in-progress window at end of stream.
//
// A still-unemitted complete window is always returned. A partial trailing
// window is finalized according to the configured [TrailPolicy]: TrailPad
// treats the missing samples as silence, TrailDrop discards the partial
// window and returns ok=false. The analyzer is left empty either way; the
// filter state is not reset.
func (a *Analyzer) Flush() (bin Bin, ok bool) {
	if a.acc.count == 0 {
		return Bin{}, false
	}

	if a.pending >= a.samplesPerBin {
		a.pending = 0

		return a.finishBin()
	}

	if a.cfg.Trail == TrailDrop {
		a.acc = binAccumulator{}
		a.pending = 0

		return Bin{}, false
	}

	// TrailPad: the energy divisor is the full window length, so the
	// missing remainder counts as silence. The peak is unaffected by
	// padding with zeros.
	bin = a.acc.finish(a.samplesPerBin)
	a.acc = binAccumulator{}
	a.pending = 0

	return bin, true
}

// Reset clears the filter state and discards the in-progress window,
// preparing the analyzer for an unrelated stream.
func (a *Analyzer) Reset() {
	a.bank.reset()
	a.acc = binAccumulator{}
	a.pending = 0
}

func (a *Analyzer) finishBin() (Bin, bool) {
	if a.acc.count == 0 {
		return Bin{}, false
	}

	bin := a.acc.finish(float64(a.acc.count))
	a.acc = binAccumulator{}

	return bin, true
}
