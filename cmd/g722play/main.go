// Command g722play decodes a raw G.722 file and plays it on the
// default audio device.
package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cwbudde/g722"
	"github.com/ebitengine/oto/v3"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("g722play", flag.ContinueOnError)

	input := flagSet.String("input", "", "raw G.722 file to play")
	bitrate := flagSet.Int("bitrate", 64000, "bit rate the file was encoded with")
	samplerate := flagSet.Int("samplerate", 16000, "playback sample rate in hertz")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *input == "" {
		return errors.New("the -input flag is required")
	}

	dec, err := g722.NewDecoder(g722.Rate(*bitrate))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *input, err)
	}

	samples, err := dec.Decode(data)
	if err != nil {
		return err
	}

	log.Printf("playing %s: %d samples at %d Hz", *input, len(samples), *samplerate)

	return play(pcmBytes(samples), *samplerate)
}

// pcmBytes serializes samples as little-endian signed 16-bit PCM, the
// layout the audio device consumes.
func pcmBytes(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

func play(pcm []byte, sampleRate int) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}

	<-ready

	player := ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	return player.Close()
}
