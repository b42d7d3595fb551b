// Command gen-sine writes a mono 16-bit sine WAV file, handy for
// producing codec-rate test input for g722conv.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/g722/wavio"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("samplerate", 8000, "sample rate in hertz")
	amplitude := flagSet.Float64("amplitude", 0.8, "amplitude between 0 and 1")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *amplitude < 0 || *amplitude > 1 {
		return fmt.Errorf("amplitude %g out of range [0, 1]", *amplitude)
	}

	log.Printf("generating a %g sec sine wav at %g hz", *length, *frequency)

	numSamples := int(float64(*sampleRate) * *length)
	samples := make([]int16, numSamples)
	scale := *amplitude * 32767

	for i := range samples {
		samples[i] = int16(scale * math.Sin(2*math.Pi**frequency*float64(i)/float64(*sampleRate)))
	}

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	return wavio.Encode(file, wavio.FromInt16(samples, *sampleRate))
}
