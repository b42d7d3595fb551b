package g722

// Per-band adaptation constants. The low band keeps a 15-segment log
// scale (shift 8, ceiling 18432); the high band uses a wider range
// (shift 10, ceiling 22528). Initial quantizer steps per the reference
// reset state.
const (
	initialStepLow  = 32
	initialStepHigh = 8

	scaleCeilLow  = 18432
	scaleCeilHigh = 22528

	scaleShiftLow  = 8
	scaleShiftHigh = 10
)

// band holds the adaptive predictor-quantizer state for one sub-band:
// a two-pole/six-zero predictor with decision-directed adaptation.
// Field names follow the signal names of the G.722 block diagrams so
// the arithmetic can be checked against the specification.
type band struct {
	s  int // predictor output, sp + sz (PREDIC)
	sp int // pole section output (FILTEP)
	sz int // zero section output (FILTEZ)

	r  [3]int // reconstructed signal history
	p  [3]int // partially reconstructed signal history
	a  [3]int // pole coefficients
	ap [3]int // updated pole coefficients
	d  [7]int // quantized difference history
	b  [7]int // zero coefficients
	bp [7]int // updated zero coefficients
	sg [7]int // sign scratch used by the coefficient updates

	nb  int // logarithmic scale factor
	det int // linear quantizer step size
}

// reset clears the adaptive state and installs the initial step size.
func (b *band) reset(step int) {
	*b = band{det: step}
}

// updateScaleFactor runs the log scale factor adaptation (LOGSCL or
// LOGSCH) followed by the conversion back to a linear step (SCALEL or
// SCALEH). delta is the table-selected step adjustment, ceil and shift
// are the band's range constants.
func (b *band) updateScaleFactor(delta, ceil, shift int) {
	nb := (b.nb*127)>>7 + delta
	if nb < 0 {
		nb = 0
	} else if nb > ceil {
		nb = ceil
	}

	b.nb = nb

	wd1 := (b.nb >> 6) & 31

	wd2 := shift - (b.nb >> 11)

	var wd3 int
	if wd2 < 0 {
		wd3 = invLogTable[wd1] << -wd2
	} else {
		wd3 = invLogTable[wd1] >> wd2
	}

	b.det = wd3 << 2
}

// updatePredictor runs the block 4 recursion: it feeds the quantized
// difference d into the reconstruction and history buffers, adapts the
// pole and zero coefficients, and leaves the next predicted value in s.
func (b *band) updatePredictor(d int) {
	// RECONS
	b.d[0] = d
	b.r[0] = saturate(b.s + d)

	// PARREC
	b.p[0] = saturate(b.sz + d)

	// UPPOL2
	for i := range 3 {
		b.sg[i] = b.p[i] >> 15
	}

	wd1 := saturate(b.a[1] << 2)

	wd2 := wd1
	if b.sg[0] == b.sg[1] {
		wd2 = -wd1
	}

	if wd2 > 32767 {
		wd2 = 32767
	}

	wd3 := (wd2 >> 7) - 128
	if b.sg[0] == b.sg[2] {
		wd3 = (wd2 >> 7) + 128
	}

	wd3 += (b.a[2] * 32512) >> 15

	if wd3 > 12288 {
		wd3 = 12288
	} else if wd3 < -12288 {
		wd3 = -12288
	}

	b.ap[2] = wd3

	// UPPOL1
	b.sg[0] = b.p[0] >> 15
	b.sg[1] = b.p[1] >> 15

	wd1 = -192
	if b.sg[0] == b.sg[1] {
		wd1 = 192
	}

	wd2 = (b.a[1] * 32640) >> 15

	b.ap[1] = saturate(wd1 + wd2)

	wd3 = saturate(15360 - b.ap[2])
	if b.ap[1] > wd3 {
		b.ap[1] = wd3
	} else if b.ap[1] < -wd3 {
		b.ap[1] = -wd3
	}

	// UPZERO
	wd1 = 128
	if d == 0 {
		wd1 = 0
	}

	b.sg[0] = d >> 15

	for i := 1; i < 7; i++ {
		b.sg[i] = b.d[i] >> 15

		wd2 := -wd1
		if b.sg[i] == b.sg[0] {
			wd2 = wd1
		}

		wd3 := (b.b[i] * 32640) >> 15

		b.bp[i] = saturate(wd2 + wd3)
	}

	// DELAYA
	for i := 6; i > 0; i-- {
		b.d[i] = b.d[i-1]
		b.b[i] = b.bp[i]
	}

	for i := 2; i > 0; i-- {
		b.r[i] = b.r[i-1]
		b.p[i] = b.p[i-1]
		b.a[i] = b.ap[i]
	}

	// FILTEP
	wd1 = saturate(b.r[1] + b.r[1])
	wd1 = (b.a[1] * wd1) >> 15
	wd2 = saturate(b.r[2] + b.r[2])
	wd2 = (b.a[2] * wd2) >> 15
	b.sp = saturate(wd1 + wd2)

	// FILTEZ
	b.sz = 0
	for i := 6; i > 0; i-- {
		wd := saturate(b.d[i] + b.d[i])
		b.sz += (b.b[i] * wd) >> 15
	}

	b.sz = saturate(b.sz)

	// PREDIC
	b.s = saturate(b.sp + b.sz)
}
