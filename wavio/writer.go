package wavio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
)

// ErrNilBuffer is returned when encoding a nil or format-less buffer.
var ErrNilBuffer = errors.New("nil audio buffer")

// Encode writes buf as a canonical 16-bit PCM WAV file. Sample values
// outside the 16-bit range are clamped. The whole file is assembled in
// memory first, so no seeking is needed on w.
func Encode(w io.Writer, buf *audio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return ErrNilBuffer
	}

	numChans := buf.Format.NumChannels
	if numChans < 1 {
		numChans = 1
	}

	const (
		bitDepth    = 16
		byteDepth   = bitDepth / 8
		fmtSize     = 16
		headerExtra = 4 + 8 + fmtSize + 8 // WAVE id + fmt header/body + data header
	)

	dataSize := len(buf.Data) * byteDepth
	blockAlign := numChans * byteDepth

	out := bytes.NewBuffer(make([]byte, 0, 12+headerExtra+dataSize))

	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(headerExtra+dataSize))
	out.WriteString("WAVE")

	out.WriteString("fmt ")
	binary.Write(out, binary.LittleEndian, uint32(fmtSize))
	binary.Write(out, binary.LittleEndian, uint16(wavFormatPCM))
	binary.Write(out, binary.LittleEndian, uint16(numChans))
	binary.Write(out, binary.LittleEndian, uint32(buf.Format.SampleRate))
	binary.Write(out, binary.LittleEndian, uint32(buf.Format.SampleRate*blockAlign))
	binary.Write(out, binary.LittleEndian, uint16(blockAlign))
	binary.Write(out, binary.LittleEndian, uint16(bitDepth))

	out.WriteString("data")
	binary.Write(out, binary.LittleEndian, uint32(dataSize))

	for _, v := range buf.Data {
		binary.Write(out, binary.LittleEndian, clampInt16(v))
	}

	_, err := w.Write(out.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write wav stream: %w", err)
	}

	return nil
}
