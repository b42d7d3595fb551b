package g722

// Encode compresses the given 16-bit mono PCM samples, appending to the
// adaptive state left by previous calls. The sample count must be even
// since every output octet covers one QMF sample pair; otherwise
// ErrOddSampleCount is returned before any state is touched. The output
// always holds exactly len(pcm)/2 bytes, and an empty input yields an
// empty output.
func (e *Encoder) Encode(pcm []int16) ([]byte, error) {
	if len(pcm)%2 != 0 {
		return nil, ErrOddSampleCount
	}

	out := make([]byte, len(pcm)/2)

	for i := 0; i < len(pcm); i += 2 {
		xlow, xhigh := e.qmf.analyze(pcm[i], pcm[i+1])

		ilow := e.encodeLowBand(xlow)
		ihigh := e.encodeHighBand(xhigh)

		// The high-band bits sit above the full 6-bit low-band codeword;
		// narrower rates drop low-band enhancement bits off the bottom.
		out[i/2] = byte((ihigh<<6 | ilow) >> (8 - e.bits))
	}

	return out, nil
}

// encodeLowBand quantizes one low-band sample and returns the 6-bit
// codeword. The adaptation always runs on the 4-bit core so encoder and
// decoder stay synchronized at every rate.
func (e *Encoder) encodeLowBand(xlow int) int {
	// SUBTRA
	el := saturate(xlow - e.low.s)

	// QUANTL
	wd := el
	if el < 0 {
		wd = -(el + 1)
	}

	i := 1
	for ; i < 30; i++ {
		decision := (quantDecisionLow[i] * e.low.det) >> 12
		if wd < decision {
			break
		}
	}

	ilow := lowCodePos[i]
	if el < 0 {
		ilow = lowCodeNeg[i]
	}

	// INVQAL
	ril := ilow >> 2
	dlow := (e.low.det * invQuantLow4[ril]) >> 15

	// LOGSCL, SCALEL
	e.low.updateScaleFactor(scaleDeltaLow[scaleIndexLow[ril]], scaleCeilLow, scaleShiftLow)

	e.low.updatePredictor(dlow)

	return ilow
}

// encodeHighBand quantizes one high-band sample and returns the 2-bit
// codeword.
func (e *Encoder) encodeHighBand(xhigh int) int {
	// SUBTRA
	eh := saturate(xhigh - e.high.s)

	// QUANTH
	wd := eh
	if eh < 0 {
		wd = -(eh + 1)
	}

	mih := 1
	if wd >= (564*e.high.det)>>12 {
		mih = 2
	}

	ihigh := highCodePos[mih]
	if eh < 0 {
		ihigh = highCodeNeg[mih]
	}

	// INVQAH
	dhigh := (e.high.det * invQuantHigh[ihigh]) >> 15

	// LOGSCH, SCALEH
	e.high.updateScaleFactor(scaleDeltaHigh[scaleIndexHigh[ihigh]], scaleCeilHigh, scaleShiftHigh)

	e.high.updatePredictor(dhigh)

	return ihigh
}
