// Command waveform renders WAV files into compact per-window analysis bins.
//
// Usage:
//
//	waveform [flags] file.wav [file.wav ...]
//
// Each input channel is mixed down to mono, split into low/mid/high bands
// and reduced to one 64-bit bin per analysis window. The bins can be
// printed as hex for downstream renderers or as a human-readable table.
//
// Examples:
//
//	waveform track.wav
//	waveform -rate 75 track.wav
//	waveform -window 1024 -format table track.wav
//	waveform -format color track.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-waveform/waveform"
)

func main() {
	rate := flag.Float64("rate", 150, "analysis resolution in bins per second")
	windowLen := flag.Int("window", 0, "fixed window length in samples (overrides -rate)")
	policy := flag.String("trail", "pad", "partial trailing window policy: pad or drop")
	format := flag.String("format", "hex", "output format: hex, table or color")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: waveform [flags] file.wav [file.wav ...]\n\n")
		fmt.Fprintf(os.Stderr, "Summarizes WAV audio into per-window peak/energy bins.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  waveform track.wav\n")
		fmt.Fprintf(os.Stderr, "  waveform -window 1024 -format table track.wav\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	trail, err := parseTrailPolicy(*policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	exitCode := 0

	for _, path := range flag.Args() {
		if err := analyzeFile(path, *rate, *windowLen, trail, *format); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)

			exitCode = 1
		}
	}

	os.Exit(exitCode)
}

func parseTrailPolicy(s string) (waveform.TrailPolicy, error) {
	switch s {
	case "pad":
		return waveform.TrailPad, nil
	case "drop":
		return waveform.TrailDrop, nil
	default:
		return 0, fmt.Errorf("unknown trail policy %q (want pad or drop)", s)
	}
}

func analyzeFile(path string, rate float64, windowLen int, trail waveform.TrailPolicy, format string) error {
	samples, sampleRate, err := readMono(path)
	if err != nil {
		return err
	}

	opts := []waveform.Option{
		waveform.WithSampleRate(sampleRate),
		waveform.WithBinsPerSec(rate),
		waveform.WithTrailPolicy(trail),
	}
	if windowLen > 0 {
		opts = append(opts, waveform.WithWindowLength(windowLen))
	}

	a, err := waveform.New(opts...)
	if err != nil {
		return err
	}

	bins := a.ProcessBlock(samples, nil)
	if bin, ok := a.Flush(); ok {
		bins = append(bins, bin)
	}

	switch format {
	case "hex":
		printHex(bins)
	case "table":
		return printTable(path, bins, a.SamplesPerBin()/sampleRate)
	case "color":
		printColor(bins)
	default:
		return fmt.Errorf("unknown format %q (want hex, table or color)", format)
	}

	return nil
}

// readMono decodes a WAV file, mixes all channels down to one and scales
// the samples to [-1, 1].
func readMono(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode: %w", err)
	}

	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, 0, fmt.Errorf("decode: missing format information")
	}

	if dec.BitDepth == 0 || dec.BitDepth > 32 {
		return nil, 0, fmt.Errorf("decode: unsupported bit depth %d", dec.BitDepth)
	}

	channels := buf.Format.NumChannels
	scale := 1.0 / float64(int64(1)<<(dec.BitDepth-1))
	frames := len(buf.Data) / channels
	samples := make([]float64, frames)

	for i := range samples {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}

		samples[i] = sum * scale / float64(channels)
	}

	return samples, float64(buf.Format.SampleRate), nil
}

func printHex(bins []waveform.Bin) {
	for _, bin := range bins {
		fmt.Printf("%016x\n", uint64(bin.Pack()))
	}
}

func printTable(path string, bins []waveform.Bin, binDur float64) error {
	fmt.Printf("%s: %d bins\n", path, len(bins))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Time [s]\tPeak\tEnergy\tLow\tMid\tHigh\tFlatness\n")

	for i, bin := range bins {
		e := bin.Energies()
		fmt.Fprintf(tw, "%.3f\t%d\t%d\t%d\t%d\t%d\t%.3f\n",
			float64(i)*binDur,
			bin.All.Peak,
			e.All,
			e.Low,
			e.Mid,
			e.High,
			bin.Flatness(),
		)
	}

	return tw.Flush()
}

func printColor(bins []waveform.Bin) {
	for _, bin := range bins {
		r, g, b := bin.Energies().SpectralRGBAll().RGB8()
		fmt.Printf("#%02x%02x%02x\n", r, g, b)
	}
}
