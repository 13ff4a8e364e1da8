package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-waveform/waveform"
)

// writeWAV writes 16-bit PCM frames to a temp file and returns its path.
func writeWAV(t *testing.T, sampleRate, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}

	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadMonoMixesChannels(t *testing.T) {
	// Opposite full-scale channels cancel; equal channels pass through.
	data := []int{
		16384, -16384,
		16384, 16384,
		-32768, -32768,
		0, 0,
	}

	path := writeWAV(t, 48000, 2, data)

	samples, sampleRate, err := readMono(path)
	if err != nil {
		t.Fatalf("readMono: %v", err)
	}

	if sampleRate != 48000 {
		t.Errorf("sample rate = %v, want 48000", sampleRate)
	}

	want := []float64{0, 0.5, -1, 0}
	if len(samples) != len(want) {
		t.Fatalf("got %d frames, want %d", len(samples), len(want))
	}

	for i := range want {
		if math.Abs(samples[i]-want[i]) > 1e-9 {
			t.Errorf("frame %d = %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestReadMonoRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	if err := os.WriteFile(path, []byte("definitely not audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := readMono(path); err == nil {
		t.Error("expected error for non-WAV input")
	}
}

func TestParseTrailPolicy(t *testing.T) {
	if p, err := parseTrailPolicy("pad"); err != nil || p != waveform.TrailPad {
		t.Errorf("parseTrailPolicy(pad) = %v, %v", p, err)
	}

	if p, err := parseTrailPolicy("drop"); err != nil || p != waveform.TrailDrop {
		t.Errorf("parseTrailPolicy(drop) = %v, %v", p, err)
	}

	if _, err := parseTrailPolicy("keep"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
