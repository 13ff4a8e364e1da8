package waveform

import "github.com/cwbudde/algo-waveform/dsp/core"

// Resolution adopted from Superpowered, which analyzes at 150 points/sec.
const defaultBinsPerSec = 150.0

// minSamplesPerBin bounds the window length from below so that very high
// bin rates cannot degenerate into windows of a handful of samples.
const minSamplesPerBin = 64.0

// TrailPolicy selects how a partial trailing window is finalized when the
// input stream ends. The choice is explicit; the analyzer never mixes the
// two behaviors.
type TrailPolicy int

const (
	// TrailPad treats the missing remainder of the final window as silence:
	// the energy divisor is the full window length and the peak is taken
	// over the samples actually seen.
	TrailPad TrailPolicy = iota

	// TrailDrop discards a partial trailing window without emitting a bin.
	TrailDrop
)

// Config defines the static configuration of an [Analyzer]. It is fixed at
// construction and read-only for the lifetime of the stream.
type Config struct {
	core.ProcessorConfig

	// BinsPerSec is the analysis resolution in bins per second. Ignored
	// when WindowLength is set.
	BinsPerSec float64

	// WindowLength, when positive, fixes the window to an exact sample
	// count instead of deriving it from BinsPerSec.
	WindowLength int

	// Crossover holds the band-split frequencies.
	Crossover CrossoverConfig

	// Trail selects the partial-trailing-window policy for Flush.
	Trail TrailPolicy
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default analyzer configuration: 44.1 kHz,
// 150 bins/sec, default crossover bands, trailing window padded.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		BinsPerSec:      defaultBinsPerSec,
		Crossover:       DefaultCrossoverConfig(),
		Trail:           TrailPad,
	}
}

// WithSampleRate sets the input sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBinsPerSec sets the analysis resolution in bins per second.
func WithBinsPerSec(binsPerSec float64) Option {
	return func(cfg *Config) {
		if binsPerSec > 0 {
			cfg.BinsPerSec = binsPerSec
		}
	}
}

// WithWindowLength fixes the analysis window to an exact sample count,
// overriding the BinsPerSec-derived length.
func WithWindowLength(samples int) Option {
	return func(cfg *Config) {
		if samples > 0 {
			cfg.WindowLength = samples
		}
	}
}

// WithCrossover sets custom band-split frequencies.
func WithCrossover(crossover CrossoverConfig) Option {
	return func(cfg *Config) {
		cfg.Crossover = crossover
	}
}

// WithTrailPolicy sets the partial-trailing-window policy.
func WithTrailPolicy(policy TrailPolicy) Option {
	return func(cfg *Config) {
		cfg.Trail = policy
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
