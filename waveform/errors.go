package waveform

import "errors"

var (
	// ErrInvalidSampleRate reports a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("waveform: sample rate must be positive and finite")

	// ErrInvalidResolution reports a non-positive bin rate and window length.
	ErrInvalidResolution = errors.New("waveform: bins per second or window length must be positive")

	// ErrInvalidCrossover reports crossover frequencies that are out of range
	// or not properly ordered.
	ErrInvalidCrossover = errors.New("waveform: invalid crossover frequencies")

	// ErrEmptyWindow reports an empty sample window where at least one
	// sample is required.
	ErrEmptyWindow = errors.New("waveform: sample window must not be empty")
)
