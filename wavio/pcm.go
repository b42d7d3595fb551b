package wavio

import (
	"encoding/binary"

	"github.com/go-audio/audio"
)

// decodeSample reads one little-endian PCM sample and rescales it to
// the 16-bit range. 8-bit WAV samples are unsigned per the format.
func decodeSample(b []byte, bitDepth uint16) int16 {
	switch bitDepth {
	case 8:
		return (int16(b[0]) - 128) << 8
	case 16:
		return int16(binary.LittleEndian.Uint16(b))
	case 24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v -= 1 << 24
		}

		return int16(v >> 8)
	default:
		return 0
	}
}

func clampInt16(v int) int16 {
	if v > 32767 {
		return 32767
	}

	if v < -32768 {
		return -32768
	}

	return int16(v)
}

// Int16Samples extracts buf's data as int16 values, clamping anything
// outside the 16-bit range.
func Int16Samples(buf *audio.IntBuffer) []int16 {
	if buf == nil {
		return nil
	}

	out := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = clampInt16(v)
	}

	return out
}

// FromInt16 wraps mono 16-bit samples in an IntBuffer at the given
// sample rate.
func FromInt16(samples []int16, sampleRate int) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}

	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	return buf
}
