package g722

// Lookup tables from the ITU-T G.722 specification. The values are the
// fixed-point constants of the reference implementation and must not be
// recomputed or approximated.

// Transmit/receive QMF filter coefficients (Tables 11/12). The full
// 24-tap filter is symmetric, so only twelve coefficients are stored
// and applied forwards to the even taps and backwards to the odd taps.
var qmfTaps = [12]int{
	3, -11, 12, 32, -210, 951, 3876, -805,
	362, -156, 53, -11,
}

// Low-band quantizer decision levels (QUANTL, Table 7). Indices 1..29
// are compared against the scaled prediction error; index 0 and the
// trailing entries are never decision points.
var quantDecisionLow = [32]int{
	0, 35, 72, 110, 150, 190, 233, 276,
	323, 370, 422, 473, 530, 587, 650, 714,
	786, 858, 940, 1023, 1121, 1219, 1339, 1458,
	1612, 1765, 1980, 2195, 2557, 2919, 0, 0,
}

// 6-bit low-band codewords by decision interval and sign (Table 7).
var (
	lowCodeNeg = [32]int{
		0, 63, 62, 31, 30, 29, 28, 27,
		26, 25, 24, 23, 22, 21, 20, 19,
		18, 17, 16, 15, 14, 13, 12, 11,
		10, 9, 8, 7, 6, 5, 4, 0,
	}
	lowCodePos = [32]int{
		0, 61, 60, 59, 58, 57, 56, 55,
		54, 53, 52, 51, 50, 49, 48, 47,
		46, 45, 44, 43, 42, 41, 40, 39,
		38, 37, 36, 35, 34, 33, 32, 0,
	}
)

// High-band codewords by decision interval and sign (QUANTH, Table 13).
var (
	highCodeNeg = [3]int{0, 1, 0}
	highCodePos = [3]int{0, 3, 2}
)

// Inverse quantizer output multipliers: 4-bit core (INVQAL, Table 9),
// 5 and 6-bit low band (INVQBL, Tables 17/18) and 2-bit high band
// (INVQAH, Table 14).
var (
	invQuantLow4 = [16]int{
		0, -20456, -12896, -8968, -6288, -4240, -2584, -1200,
		20456, 12896, 8968, 6288, 4240, 2584, 1200, 0,
	}
	invQuantLow5 = [32]int{
		-280, -280, -23352, -17560, -14120, -11664, -9752, -8184,
		-6864, -5712, -4696, -3784, -2960, -2208, -1520, -880,
		23352, 17560, 14120, 11664, 9752, 8184, 6864, 5712,
		4696, 3784, 2960, 2208, 1520, 880, 280, -280,
	}
	invQuantLow6 = [64]int{
		-136, -136, -136, -136, -24808, -21904, -19008, -16704,
		-14984, -13512, -12280, -11192, -10232, -9360, -8576, -7856,
		-7192, -6576, -6000, -5456, -4944, -4464, -4008, -3576,
		-3168, -2776, -2400, -2032, -1688, -1360, -1040, -728,
		24808, 21904, 19008, 16704, 14984, 13512, 12280, 11192,
		10232, 9360, 8576, 7856, 7192, 6576, 6000, 5456,
		4944, 4464, 4008, 3576, 3168, 2776, 2400, 2032,
		1688, 1360, 1040, 728, 432, 136, -432, -136,
	}
	invQuantHigh = [4]int{-7408, -1616, 7408, 1616}
)

// Scale factor adaptation: the 4-bit core codeword (low) or 2-bit
// codeword (high) selects a row (LOGSCL/LOGSCH, Tables 8/15), and the
// row selects a logarithmic step delta (Tables 10/16).
var (
	scaleIndexLow = [16]int{
		0, 7, 6, 5, 4, 3, 2, 1,
		7, 6, 5, 4, 3, 2, 1, 0,
	}
	scaleIndexHigh = [4]int{2, 1, 2, 1}
	scaleDeltaLow  = [8]int{-60, -30, 58, 172, 334, 538, 1198, 3042}
	scaleDeltaHigh = [3]int{0, -214, 798}
)

// Inverse logarithm table used to turn the log scale factor back into a
// linear quantizer step (SCALEL/SCALEH, Table 19).
var invLogTable = [32]int{
	2048, 2093, 2139, 2186, 2233, 2282, 2332, 2383,
	2435, 2489, 2543, 2599, 2656, 2714, 2774, 2834,
	2896, 2960, 3025, 3091, 3158, 3228, 3298, 3371,
	3444, 3520, 3597, 3676, 3756, 3838, 3922, 4008,
}
