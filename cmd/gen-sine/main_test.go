package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/g722/wavio"
)

func TestRunGeneratesWavFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-output", outPath, "-length", "0.05", "-frequency", "220"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	buf, err := wavio.Decode(f)
	if err != nil {
		t.Fatalf("generated file is not a valid wav: %v", err)
	}

	if buf.Format.SampleRate != 8000 {
		t.Fatalf("sample rate = %d, want 8000", buf.Format.SampleRate)
	}

	// 0.05 sec * 8000 Hz = 400 samples
	if len(buf.Data) != 400 {
		t.Fatalf("expected 400 samples, got %d", len(buf.Data))
	}
}

func TestRunCustomSampleRate(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine16k.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-samplerate", "16000"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	buf, err := wavio.Decode(f)
	if err != nil {
		t.Fatalf("generated file is not a valid wav: %v", err)
	}

	if buf.Format.SampleRate != 16000 {
		t.Fatalf("sample rate = %d, want 16000", buf.Format.SampleRate)
	}

	if len(buf.Data) != 160 {
		t.Fatalf("expected 160 samples, got %d", len(buf.Data))
	}
}

func TestRunFlagParseError(t *testing.T) {
	err := run([]string{"-length", "not-a-number"})
	if err == nil {
		t.Fatalf("expected failure for invalid flag value")
	}
}

func TestRunAmplitudeOutOfRange(t *testing.T) {
	err := run([]string{"-amplitude", "1.5"})
	if err == nil {
		t.Fatal("expected error for out-of-range amplitude")
	}
}

func TestRunInvalidOutputPath(t *testing.T) {
	err := run([]string{"-output", "/nonexistent/dir/file.wav", "-length", "0.001"})
	if err == nil {
		t.Fatal("expected error for invalid output path")
	}
}
