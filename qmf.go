package g722

// qmfFilter is the 24-tap quadrature mirror filter shared by analysis
// (encode) and synthesis (decode). One instance only ever runs in one
// direction; the delay line holds input PCM samples on the encode side
// and band sums/differences on the decode side.
type qmfFilter struct {
	x [24]int
}

// push shifts a new value pair into the delay line, discarding the two
// oldest entries.
func (q *qmfFilter) push(v0, v1 int) {
	copy(q.x[:22], q.x[2:])
	q.x[22] = v0
	q.x[23] = v1
}

// analyze consumes one pair of PCM samples and produces the decimated
// low-band and high-band signals.
func (q *qmfFilter) analyze(s0, s1 int16) (xlow, xhigh int) {
	q.push(int(s0), int(s1))

	var sumEven, sumOdd int
	for i, tap := range qmfTaps {
		sumOdd += q.x[2*i] * tap
		sumEven += q.x[2*i+1] * qmfTaps[11-i]
	}

	xlow = (sumEven + sumOdd) >> 14
	xhigh = (sumEven - sumOdd) >> 14

	return xlow, xhigh
}

// synthesize recombines one reconstructed low-band and high-band sample
// into two interleaved PCM output samples.
func (q *qmfFilter) synthesize(rlow, rhigh int) (int16, int16) {
	q.push(rlow+rhigh, rlow-rhigh)

	var out0, out1 int
	for i, tap := range qmfTaps {
		out1 += q.x[2*i] * tap
		out0 += q.x[2*i+1] * qmfTaps[11-i]
	}

	return int16(saturate(out0 >> 11)), int16(saturate(out1 >> 11))
}
