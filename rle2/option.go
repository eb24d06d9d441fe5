package rle2

import "math"

// encodingOption mirrors EncodingOption from the original RLEv2 design: the
// scratch the encoder fills in while deciding how to write one block, and
// then reads back from while actually writing it.
type encodingOption struct {
	encoding subEncoding

	zzBits90p    int
	zzBits100p   int
	brBits95p    int
	brBits100p   int
	bitsDeltaMax int

	min int64

	// width is the payload bit width actually used for DIRECT/DELTA
	// (variable)/PATCHED_BASE's base-reduced values, already ladder-aligned.
	width int
}

// deltaAt returns the signed logical delta between literal i-1 and literal
// i of a block. Literals are stored zig-zagged when the codec is signed,
// raw otherwise; deltaAt recovers the logical domain either way.
func deltaAt(literals []uint64, i int, signed bool) int64 {
	if signed {
		return unZigzag(literals[i]) - unZigzag(literals[i-1])
	}
	return int64(literals[i]) - int64(literals[i-1])
}

// monotonic reports whether every adjacent delta in literals has the same
// sign (zero deltas are compatible with either direction).
func monotonic(literals []uint64, signed bool) bool {
	sign := 0
	for i := 1; i < len(literals); i++ {
		d := deltaAt(literals, i, signed)
		switch {
		case d > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case d < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// percentileWidth returns the ladder-aligned bit width such that at least a
// fraction p of data's values fit in it. It reuses one 65-bucket histogram
// (one bucket per possible raw bit width 0..64) per call, mirroring
// percentileBits' histgram[HIST_LEN] reuse across the encoder's 90p and 95p
// computations within one determineEncoding.
func percentileWidth(hist *[65]int, data []uint64, p float64) int {
	for i := range hist {
		hist[i] = 0
	}
	for _, v := range data {
		hist[bitWidth(v)]++
	}
	n := len(data)
	target := int(math.Ceil(p * float64(n)))
	if target < 1 {
		target = 1
	}
	cum := 0
	for w := 0; w <= 64; w++ {
		cum += hist[w]
		if cum >= target {
			return alignToLadder(w)
		}
	}
	return 64
}

// analyze (determineEncoding in the original design) picks the sub-encoding for one block of n<=maxScope
// literals that is not already a short-repeat or whole-block fixed-delta
// candidate (the caller checks those first). It implements the percentile
// decision rules: DIRECT if the 90th and 100th percentile zig-zag widths
// agree (no tail worth patching), DELTA if the widest zig-zagged delta
// still fits the 90th percentile width, PATCHED_BASE (signed only) if the
// base-reduced 100th percentile width exceeds the 95th, DIRECT otherwise.
func (e *Encoder) analyze(literals []uint64) encodingOption {
	var opt encodingOption
	n := len(literals)

	opt.zzBits100p = percentileWidth(&e.histogram, literals, 1.0)
	opt.zzBits90p = percentileWidth(&e.histogram, literals, 0.90)

	e.adjDeltas = e.adjDeltas[:0]
	for i := 1; i < n; i++ {
		d := deltaAt(literals, i, e.signed)
		e.adjDeltas = append(e.adjDeltas, zigzag(d))
	}
	opt.bitsDeltaMax = percentileWidth(&e.histogram, e.adjDeltas, 1.0)

	if opt.zzBits100p == opt.zzBits90p {
		opt.encoding = tagDirect
		opt.width = opt.zzBits100p
		return opt
	}

	// DELTA's non-first deltas are packed as magnitudes, their sign fixed
	// by the first delta, so it is only a legal choice when every delta in
	// the block shares one direction (zero deltas go along with either).
	if opt.bitsDeltaMax <= opt.zzBits90p && monotonic(literals, e.signed) {
		opt.encoding = tagDelta
		opt.width = opt.bitsDeltaMax
		return opt
	}

	if e.signed {
		min := unZigzag(literals[0])
		for _, v := range literals {
			if lv := unZigzag(v); lv < min {
				min = lv
			}
		}
		e.baseRedLiterals = e.baseRedLiterals[:0]
		for _, v := range literals {
			e.baseRedLiterals = append(e.baseRedLiterals, uint64(unZigzag(v)-min))
		}
		opt.brBits100p = percentileWidth(&e.histogram, e.baseRedLiterals, 1.0)
		opt.brBits95p = percentileWidth(&e.histogram, e.baseRedLiterals, 0.95)
		if opt.brBits100p != opt.brBits95p {
			opt.encoding = tagPatchedBase
			opt.width = opt.brBits95p
			opt.min = min
			return opt
		}
	}

	opt.encoding = tagDirect
	opt.width = opt.zzBits100p
	return opt
}
