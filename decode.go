package g722

// Decode expands the given compressed octets, appending to the adaptive
// state left by previous calls. Every input byte yields exactly two PCM
// samples; an empty input yields an empty output. All inputs are
// well-formed, so there is no error path.
func (d *Decoder) Decode(data []byte) ([]int16, error) {
	pcm := make([]int16, 2*len(data))

	for i, octet := range data {
		rlow := d.decodeLowBand(int(octet))
		rhigh := d.decodeHighBand(int(octet))

		pcm[2*i], pcm[2*i+1] = d.qmf.synthesize(rlow, rhigh)
	}

	return pcm, nil
}

// decodeLowBand reconstructs one low-band sample from the codeword in
// the low bits of the octet. Reconstruction uses the full codeword
// width for the configured rate, while the adaptation runs on the 4-bit
// core exactly as on the encode side.
func (d *Decoder) decodeLowBand(code int) int {
	var wd2, ril int

	switch d.bits {
	case 8:
		wd1 := code & 0x3f
		wd2 = invQuantLow6[wd1]
		ril = wd1 >> 2
	case 7:
		wd1 := code & 0x1f
		wd2 = invQuantLow5[wd1]
		ril = wd1 >> 1
	default:
		ril = code & 0x0f
		wd2 = invQuantLow4[ril]
	}

	// INVQBL, RECONS
	rlow := d.low.s + (d.low.det*wd2)>>15

	// LIMIT
	if rlow > 16383 {
		rlow = 16383
	} else if rlow < -16384 {
		rlow = -16384
	}

	// INVQAL
	dlow := (d.low.det * invQuantLow4[ril]) >> 15

	// LOGSCL, SCALEL
	d.low.updateScaleFactor(scaleDeltaLow[scaleIndexLow[ril]], scaleCeilLow, scaleShiftLow)

	d.low.updatePredictor(dlow)

	return rlow
}

// decodeHighBand reconstructs one high-band sample from the two bits
// above the low-band codeword.
func (d *Decoder) decodeHighBand(code int) int {
	ihigh := (code >> (d.bits - 2)) & 0x03

	// INVQAH
	dhigh := (d.high.det * invQuantHigh[ihigh]) >> 15

	// RECONS
	rhigh := dhigh + d.high.s

	// LIMIT
	if rhigh > 16383 {
		rhigh = 16383
	} else if rhigh < -16384 {
		rhigh = -16384
	}

	// LOGSCH, SCALEH
	d.high.updateScaleFactor(scaleDeltaHigh[scaleIndexHigh[ihigh]], scaleCeilHigh, scaleShiftHigh)

	d.high.updatePredictor(dhigh)

	return rhigh
}
