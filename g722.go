package g722

import "errors"

// Rate selects the compressed bit rate of a G.722 stream.
type Rate int

// Supported bit rates in bits per second.
const (
	Rate48000 Rate = 48000
	Rate56000 Rate = 56000
	Rate64000 Rate = 64000
)

var (
	// ErrInvalidRate is returned when constructing a codec with a bit
	// rate other than 48000, 56000 or 64000.
	ErrInvalidRate = errors.New("unsupported G.722 bit rate")
	// ErrOddSampleCount is returned by Encode before any processing when
	// the PCM input does not hold a whole number of sample pairs.
	ErrOddSampleCount = errors.New("PCM sample count must be even")
)

// codeBits returns the total codeword width in bits for the rate.
func (r Rate) codeBits() (int, error) {
	switch r {
	case Rate48000:
		return 6, nil
	case Rate56000:
		return 7, nil
	case Rate64000:
		return 8, nil
	default:
		return 0, ErrInvalidRate
	}
}

// Encoder compresses 16-bit PCM into a G.722 bitstream. It is stateful
// and must not be used from more than one goroutine at a time; use one
// Encoder per stream.
type Encoder struct {
	rate Rate
	bits int

	qmf  qmfFilter
	low  band
	high band
}

// NewEncoder creates an encoder with fresh adaptive state for the given
// bit rate.
func NewEncoder(rate Rate) (*Encoder, error) {
	bits, err := rate.codeBits()
	if err != nil {
		return nil, err
	}

	e := &Encoder{rate: rate, bits: bits}
	e.low.reset(initialStepLow)
	e.high.reset(initialStepHigh)

	return e, nil
}

// Rate returns the configured bit rate.
func (e *Encoder) Rate() Rate {
	return e.rate
}

// Decoder expands a G.722 bitstream back into 16-bit PCM. It is
// stateful and must not be used from more than one goroutine at a time.
// The stream carries no rate marker, so the decoder rate must match the
// rate used at encode time; a mismatch produces garbled audio, not an
// error.
type Decoder struct {
	rate Rate
	bits int

	qmf  qmfFilter
	low  band
	high band
}

// NewDecoder creates a decoder with fresh adaptive state for the given
// bit rate.
func NewDecoder(rate Rate) (*Decoder, error) {
	bits, err := rate.codeBits()
	if err != nil {
		return nil, err
	}

	d := &Decoder{rate: rate, bits: bits}
	d.low.reset(initialStepLow)
	d.high.reset(initialStepHigh)

	return d, nil
}

// Rate returns the configured bit rate.
func (d *Decoder) Rate() Rate {
	return d.rate
}

// saturate clamps a value to the signed 16-bit range.
func saturate(v int) int {
	if v > 32767 {
		return 32767
	}

	if v < -32768 {
		return -32768
	}

	return v
}
