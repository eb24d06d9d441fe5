package rle2

import "github.com/pkg/errors"

// Sentinel error kinds. Wrap them with errors.Wrapf to add call-site
// context; callers distinguish kinds with errors.Is, not message parsing.
var (
	// ErrParse marks a malformed or truncated wire encoding: a bad
	// sub-encoding tag, a width index past the ladder's end, a patch list
	// that runs past the declared length.
	ErrParse = errors.New("rle2: parse error")

	// ErrNotImplementedYet marks PATCHED_BASE on an unsigned Encoder or
	// Decoder, which this codec does not support.
	ErrNotImplementedYet = errors.New("rle2: not implemented")

	// ErrOutOfRange marks a Seek to a byte offset the input cannot
	// reposition to. Skipping past the end of the stream is an ErrParse.
	ErrOutOfRange = errors.New("rle2: out of range")
)

func parseErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrParse, format, args...)
}

func notImplementedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotImplementedYet, format, args...)
}

func outOfRangef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}
