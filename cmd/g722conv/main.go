// Command g722conv converts between WAV files and raw G.722 streams.
//
// A .wav input is encoded to a raw .g722 file; any other input is
// treated as raw G.722 and decoded to .wav (or .aif with -format aiff).
// The raw stream carries no header, so the bit rate used for decoding
// must match the one used at encode time.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/g722"
	"github.com/cwbudde/g722/wavio"
	"github.com/go-audio/aiff"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("g722conv", flag.ContinueOnError)

	input := flagSet.String("input", "", "input file (.wav encodes, anything else decodes)")
	output := flagSet.String("output", "", "output file (derived from the input path when empty)")
	bitrate := flagSet.Int("bitrate", 64000, "G.722 bit rate: 48000, 56000 or 64000")
	samplerate := flagSet.Int("samplerate", 8000, "sample rate written to decoded file headers")
	format := flagSet.String("format", "wav", "decoded output format: wav or aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *input == "" {
		return errors.New("the -input flag is required")
	}

	if _, err := os.Stat(*input); err != nil {
		return fmt.Errorf("input file does not exist: %s", *input)
	}

	rate := g722.Rate(*bitrate)

	if strings.EqualFold(filepath.Ext(*input), ".wav") {
		return encodeFile(*input, *output, rate)
	}

	return decodeFile(*input, *output, rate, *samplerate, *format)
}

// derivePath swaps the input path's extension.
func derivePath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

func encodeFile(input, output string, rate g722.Rate) error {
	enc, err := g722.NewEncoder(rate)
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", input, err)
	}
	defer in.Close()

	buf, err := wavio.Decode(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	samples := wavio.Int16Samples(buf)
	if len(samples)%2 != 0 {
		// The codec consumes whole sample pairs.
		log.Printf("padding odd sample count %d with one zero sample", len(samples))
		samples = append(samples, 0)
	}

	if output == "" {
		output = derivePath(input, ".g722")
	}

	log.Printf("encoding %s (%d samples at %d Hz) to %s at %d bit/s",
		input, len(samples), buf.Format.SampleRate, output, rate)

	data, err := enc.Encode(samples)
	if err != nil {
		return err
	}

	err = os.WriteFile(output, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	log.Printf("wrote %d bytes", len(data))

	return nil
}

func decodeFile(input, output string, rate g722.Rate, sampleRate int, format string) error {
	dec, err := g722.NewDecoder(rate)
	if err != nil {
		return err
	}

	switch format {
	case "wav":
		if output == "" {
			output = derivePath(input, ".wav")
		}
	case "aiff":
		if output == "" {
			output = derivePath(input, ".aif")
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	samples, err := dec.Decode(data)
	if err != nil {
		return err
	}

	log.Printf("decoding %s (%d bytes) to %s at %d Hz", input, len(data), output, sampleRate)

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer out.Close()

	buf := wavio.FromInt16(samples, sampleRate)

	if format == "aiff" {
		encoder := aiff.NewEncoder(out, sampleRate, 16, 1)

		err = encoder.Write(buf)
		if err != nil {
			return fmt.Errorf("failed to write aiff data: %w", err)
		}

		err = encoder.Close()
		if err != nil {
			return fmt.Errorf("failed to finalize aiff file: %w", err)
		}
	} else {
		err = wavio.Encode(out, buf)
		if err != nil {
			return fmt.Errorf("failed to write wav data: %w", err)
		}
	}

	log.Printf("wrote %d samples", len(samples))

	return nil
}
