package rle2

// zigzag maps a signed value to an unsigned one so that small-magnitude
// values (positive or negative) end up with small bit widths:
// 0, -1, 1, -2, 2, ... -> 0, 1, 2, 3, 4, ...
func zigzag(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// unZigzag inverts zigzag.
func unZigzag(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
