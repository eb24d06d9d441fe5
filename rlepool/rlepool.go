// Package rlepool defines the growable-buffer pool contract the Decoder
// uses for its per-run value scratch, sized to the teacher's pattern of
// growing-never-shrinking decode buffers (RleDecoderV2's unpacked and
// unpackedPatch DataBuffers in the original implementation).
package rlepool

// Int64Pool grows buf to at least minLen elements, reusing buf's backing
// array when it is already large enough. Implementations must never shrink
// or reallocate smaller than the caller's previous high-water mark, so a
// Decoder that keeps reusing the returned slice never reallocates once it
// has seen the largest run in its stream.
type Int64Pool interface {
	Grow(buf []uint64, minLen int) []uint64
}

// SlicePool is the default Int64Pool: a thin wrapper over Go's append-based
// slice growth. It exists so a caller with a real arena allocator can swap
// in their own implementation without changing the Decoder.
type SlicePool struct{}

func (SlicePool) Grow(buf []uint64, minLen int) []uint64 {
	if cap(buf) >= minLen {
		return buf[:minLen]
	}
	grown := make([]uint64, minLen)
	copy(grown, buf)
	return grown
}
