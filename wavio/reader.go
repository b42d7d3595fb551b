package wavio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const wavFormatPCM = 1

var (
	// ErrNotWAV indicates the stream does not start with a RIFF header.
	ErrNotWAV = errors.New("not a RIFF/WAVE stream")
	// ErrFmtChunkNotFound indicates the data chunk appeared before any
	// fmt chunk, or the file ended without one.
	ErrFmtChunkNotFound = errors.New("fmt chunk not found")
	// ErrDataChunkNotFound indicates the file holds no data chunk.
	ErrDataChunkNotFound = errors.New("data chunk not found")
	// ErrUnsupportedFormat is returned for compressed or float WAV
	// formats and for bit depths other than 8, 16 and 24.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
)

type fmtInfo struct {
	formatTag     uint16
	numChans      uint16
	sampleRate    uint32
	bitsPerSample uint16
}

// Decode reads a PCM WAV stream and returns its samples as mono 16-bit
// values. Multi-channel files are downmixed by averaging; 8 and 24-bit
// samples are rescaled to 16-bit. The returned buffer always reports
// one channel and SourceBitDepth 16.
func Decode(r io.Reader) (*audio.IntBuffer, error) {
	parser := riff.New(r)

	id, size, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if id != riff.RiffID {
		return nil, ErrNotWAV
	}

	parser.ID = id
	parser.Size = size

	err = binary.Read(r, binary.BigEndian, &parser.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to read RIFF format: %w", err)
	}

	var (
		info    fmtInfo
		haveFmt bool
	)

	for {
		chunk, err := parser.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("failed to read chunk header: %w", err)
		}

		switch chunk.ID {
		case riff.FmtID:
			info, err = decodeFmtChunk(chunk)
			if err != nil {
				return nil, err
			}

			haveFmt = true
		case riff.DataFormatID:
			if !haveFmt {
				return nil, ErrFmtChunkNotFound
			}

			return decodeDataChunk(chunk, info)
		default:
			chunk.Drain()
		}
	}

	if !haveFmt {
		return nil, ErrFmtChunkNotFound
	}

	return nil, ErrDataChunkNotFound
}

func decodeFmtChunk(chunk *riff.Chunk) (fmtInfo, error) {
	var (
		info           fmtInfo
		avgBytesPerSec uint32
		blockAlign     uint16
	)

	fields := []struct {
		name string
		dst  any
	}{
		{"format tag", &info.formatTag},
		{"channel count", &info.numChans},
		{"sample rate", &info.sampleRate},
		{"avg bytes/sec", &avgBytesPerSec},
		{"block align", &blockAlign},
		{"bit depth", &info.bitsPerSample},
	}

	for _, f := range fields {
		err := chunk.ReadLE(f.dst)
		if err != nil {
			return info, fmt.Errorf("failed to read %s: %w", f.name, err)
		}
	}

	chunk.Drain()

	if info.formatTag != wavFormatPCM {
		return info, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, info.formatTag)
	}

	switch info.bitsPerSample {
	case 8, 16, 24:
	default:
		return info, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, info.bitsPerSample)
	}

	if info.numChans < 1 {
		return info, fmt.Errorf("%w: zero channels", ErrUnsupportedFormat)
	}

	return info, nil
}

func decodeDataChunk(chunk *riff.Chunk, info fmtInfo) (*audio.IntBuffer, error) {
	raw, err := io.ReadAll(chunk.R)
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	bytesPerSample := int(info.bitsPerSample) / 8
	frameSize := bytesPerSample * int(info.numChans)
	frames := len(raw) / frameSize

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(info.sampleRate),
		},
		SourceBitDepth: 16,
		Data:           make([]int, frames),
	}

	for f := range frames {
		sum := 0
		for c := range int(info.numChans) {
			off := f*frameSize + c*bytesPerSample
			sum += int(decodeSample(raw[off:], info.bitsPerSample))
		}

		buf.Data[f] = sum / int(info.numChans)
	}

	return buf, nil
}
