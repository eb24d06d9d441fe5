package rle2

import "math/bits"

// fixedBitSizeLadder is FixedBitSizes::FBS from the ORC C++ header, in
// enum order: index is the 5-bit width code stored on the wire, value is
// the actual bit width it represents. Every DIRECT/PATCHED_BASE/DELTA
// payload width is one of these 32 values.
var fixedBitSizeLadder = [32]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 26, 28, 30, 32, 40, 48, 56, 64,
}

// widthEncoding maps a ladder-member bit width to its 5-bit wire code.
func widthEncoding(width int) (byte, error) {
	for i, w := range fixedBitSizeLadder {
		if w == width {
			return byte(i), nil
		}
	}
	return 0, parseErrorf("width %d is not a member of the FixedBitSize ladder", width)
}

// widthDecoding maps a 5-bit wire code back to its bit width. delta
// indicates the DELTA sub-encoding's header, where code 0 legitimately
// means "fixed delta, no payload width" rather than ladder index 0 (width
// 1); every other sub-encoding treats code 0 as width 1 like any other
// ladder entry.
func widthDecoding(code byte, delta bool) (int, error) {
	if delta && code == 0 {
		return 0, nil
	}
	if int(code) >= len(fixedBitSizeLadder) {
		return 0, parseErrorf("width code %d out of range", code)
	}
	return fixedBitSizeLadder[code], nil
}

// bitWidth returns the number of bits needed to hold v, 0 for v==0.
func bitWidth(v uint64) int {
	return bits.Len64(v)
}

// alignToLadder rounds bits up to the nearest FixedBitSize ladder member.
func alignToLadder(bitsNeeded int) int {
	if bitsNeeded <= 0 {
		return 1
	}
	for _, w := range fixedBitSizeLadder {
		if w >= bitsNeeded {
			return w
		}
	}
	return 64
}

// alignForBitPacking applies the alignBitPacking option on top of an
// already ladder-aligned width: when enabled, a width of 8 or more rounds
// up to the next whole byte (itself always a ladder member, since 8, 16,
// 24, 32, 40, 48, 56 and 64 are all on the ladder), so the decoder's
// byte-aligned fast path in writeInts/readIntsInto applies. Widths below
// 8 and the option disabled both pass the width through unchanged.
func alignForBitPacking(width int, enabled bool) int {
	if !enabled || width < 8 {
		return width
	}
	aligned := ((width + 7) / 8) * 8
	if aligned > 64 {
		aligned = 64
	}
	return aligned
}

// byteWidth returns the minimum number of bytes needed to hold v.
func byteWidth(v uint64) int {
	w := bitWidth(v)
	return (w + 7) / 8
}
