package wavio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-audio/audio"
)

// buildWav assembles a raw WAV stream for decode tests.
func buildWav(t *testing.T, formatTag, numChans, bitDepth int, sampleRate int, data []byte) []byte {
	t.Helper()

	byteDepth := bitDepth / 8
	blockAlign := numChans * byteDepth

	var out bytes.Buffer

	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(36+len(data)))
	out.WriteString("WAVE")
	out.WriteString("fmt ")
	binary.Write(&out, binary.LittleEndian, uint32(16))
	binary.Write(&out, binary.LittleEndian, uint16(formatTag))
	binary.Write(&out, binary.LittleEndian, uint16(numChans))
	binary.Write(&out, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&out, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&out, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&out, binary.LittleEndian, uint16(bitDepth))
	out.WriteString("data")
	binary.Write(&out, binary.LittleEndian, uint32(len(data)))
	out.Write(data)

	return out.Bytes()
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	samples := []int16{0, 100, -100, 32767, -32768, 12345, -12345}

	var stream bytes.Buffer

	err := Encode(&stream, FromInt16(samples, 8000))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	buf, err := Decode(bytes.NewReader(stream.Bytes()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if buf.Format.SampleRate != 8000 {
		t.Fatalf("sample rate = %d, want 8000", buf.Format.SampleRate)
	}

	if buf.Format.NumChannels != 1 {
		t.Fatalf("channels = %d, want 1", buf.Format.NumChannels)
	}

	got := Int16Samples(buf)
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}

	for i, want := range samples {
		if got[i] != want {
			t.Fatalf("sample %d = %d, want %d", i, got[i], want)
		}
	}
}

func TestEncodeClampsOutOfRange(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{40000, -40000},
	}

	var stream bytes.Buffer

	err := Encode(&stream, buf)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out, err := Decode(bytes.NewReader(stream.Bytes()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if out.Data[0] != 32767 || out.Data[1] != -32768 {
		t.Fatalf("clamped samples = %d,%d, want 32767,-32768", out.Data[0], out.Data[1])
	}
}

func TestEncodeNilBuffer(t *testing.T) {
	var stream bytes.Buffer

	if err := Encode(&stream, nil); !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("Encode(nil) error = %v, want ErrNilBuffer", err)
	}
}

func TestDecodeStereoDownmix(t *testing.T) {
	// Two frames of 16-bit stereo: (1000, 3000) and (-2000, -4000).
	var data bytes.Buffer
	for _, v := range []int16{1000, 3000, -2000, -4000} {
		binary.Write(&data, binary.LittleEndian, v)
	}

	stream := buildWav(t, 1, 2, 16, 44100, data.Bytes())

	buf, err := Decode(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(buf.Data) != 2 {
		t.Fatalf("decoded %d frames, want 2", len(buf.Data))
	}

	if buf.Data[0] != 2000 || buf.Data[1] != -3000 {
		t.Fatalf("downmix = %d,%d, want 2000,-3000", buf.Data[0], buf.Data[1])
	}
}

func TestDecode8BitRescale(t *testing.T) {
	// 8-bit WAV samples are unsigned around 128.
	stream := buildWav(t, 1, 1, 8, 8000, []byte{128, 255, 0})

	buf, err := Decode(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := []int{0, 127 << 8, -128 << 8}
	for i, w := range want {
		if buf.Data[i] != w {
			t.Fatalf("sample %d = %d, want %d", i, buf.Data[i], w)
		}
	}
}

func TestDecode24BitRescale(t *testing.T) {
	// One positive and one negative 24-bit sample.
	data := []byte{
		0x00, 0x00, 0x40, // 0x400000 -> 0x4000
		0x00, 0x00, 0xc0, // -0x400000 -> -0x4000
	}

	stream := buildWav(t, 1, 1, 24, 48000, data)

	buf, err := Decode(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if buf.Data[0] != 0x4000 || buf.Data[1] != -0x4000 {
		t.Fatalf("samples = %d,%d, want %d,%d", buf.Data[0], buf.Data[1], 0x4000, -0x4000)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
		want   error
	}{
		{"not riff", []byte("JUNKJUNKJUNKJUNK"), ErrNotWAV},
		{"float format", buildWav(t, 3, 1, 16, 8000, nil), ErrUnsupportedFormat},
		{"gsm format", buildWav(t, 49, 1, 16, 8000, nil), ErrUnsupportedFormat},
		{"32 bit", buildWav(t, 1, 1, 32, 8000, nil), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tt.stream))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeMissingData(t *testing.T) {
	// fmt chunk only, stream ends before any data chunk.
	full := buildWav(t, 1, 1, 16, 8000, nil)
	truncated := full[:12+8+16] // RIFF header + fmt header + fmt body

	_, err := Decode(bytes.NewReader(truncated))
	if !errors.Is(err, ErrDataChunkNotFound) {
		t.Fatalf("Decode error = %v, want ErrDataChunkNotFound", err)
	}
}

func TestInt16SamplesNil(t *testing.T) {
	if got := Int16Samples(nil); got != nil {
		t.Fatalf("Int16Samples(nil) = %v, want nil", got)
	}
}
