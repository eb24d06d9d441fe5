// Package config holds the plain option structs the rle2 codec is
// constructed with, mirroring the teacher's ReaderOptions/WriterOptions
// style: no functional options, just exported fields with sane zero values.
package config

// EncoderOptions configures a rle2.Encoder.
type EncoderOptions struct {
	// AlignBitPacking mirrors RleEncoderV2's alignedBitPacking constructor
	// flag. Every payload width is always rounded up to the FixedBitSize
	// ladder regardless of this flag; when AlignBitPacking is true (the
	// default), DIRECT and DELTA widths of 8 bits or more are additionally
	// widened to the next whole byte, so unpacking can use the
	// byte-aligned fast path in readIntsInto. PATCHED_BASE's base-reduced
	// width is never widened this way.
	AlignBitPacking bool

	// ScratchCapacity sizes the encoder's literal buffer and its reusable
	// per-block scratch slices (adjDeltas, baseRedLiterals; gapVsPatchList
	// gets a tenth of it) up front, so at 512 a full block of Write calls
	// never reallocates them.
	ScratchCapacity int
}

// DefaultEncoderOptions returns the options the teacher's writer used by
// default: aligned bit packing, scratch sized for one full block.
func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{
		AlignBitPacking: true,
		ScratchCapacity: 512,
	}
}

// DecoderOptions configures a rle2.Decoder.
type DecoderOptions struct {
	// InitialUnpackCapacity sizes the decoder's run-value buffer before the
	// first block is read. The buffer grows but never shrinks afterwards,
	// matching the teacher's unpacked/unpackedPatch DataBuffer reuse.
	InitialUnpackCapacity int
}

// DefaultDecoderOptions mirrors the teacher's default row-group sizing.
func DefaultDecoderOptions() DecoderOptions {
	return DecoderOptions{InitialUnpackCapacity: 512}
}
