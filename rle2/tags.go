package rle2

// subEncoding is the 2-bit tag in the top of a block's first header byte,
// EncodingType from the original RLEv2 design.
type subEncoding byte

const (
	tagShortRepeat subEncoding = 0
	tagDirect      subEncoding = 1
	tagPatchedBase subEncoding = 2
	tagDelta       subEncoding = 3
)

const (
	// minRepeat is MIN_REPEAT: the shortest run of equal values worth
	// encoding as SHORT_REPEAT or a fixed delta instead of DIRECT.
	minRepeat = 3

	// maxShortRepeatCount is the largest run SHORT_REPEAT's 3-bit count
	// field can hold (3 + 0..7).
	maxShortRepeatCount = 10

	// maxScope is the largest number of literals buffered into one block
	// before the encoder is forced to flush, MAX_SCOPE in the teacher.
	maxScope = 512

	// maxPatchGap is the largest gap PATCHED_BASE's gap field can encode
	// directly; longer gaps are split into 255-runs plus a zero patch.
	maxPatchGap = 255
)
