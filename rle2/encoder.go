package rle2

import (
	"github.com/pkg/errors"

	"github.com/orclib/rle2/config"
	"github.com/orclib/rle2/rleio"
)

// Encoder buffers up to maxScope values, then for each accumulated block
// picks and writes the most compact of SHORT_REPEAT, DIRECT, PATCHED_BASE
// or DELTA. Values are stored internally in the domain the wire format
// uses directly: zig-zagged if the codec is signed, raw if not, so the
// percentile analysis and the final bit-packing share one representation.
type Encoder struct {
	out             rleio.ByteWriter
	signed          bool
	alignBitPacking bool

	literals []uint64

	// scratch reused across blocks, never reallocated once grown to
	// maxScope, matching the original RleEncoderV2's note that these
	// "should belong to EncodingOption... moved here for performance".
	adjDeltas       []uint64
	baseRedLiterals []uint64
	gapVsPatchList  []uint64
	histogram       [65]int

	totalWritten uint64
}

// NewEncoder returns an Encoder writing to out. signed selects whether
// Write (int64, zig-zagged) or WriteUint (uint64, raw) is the legal input
// method.
func NewEncoder(out rleio.ByteWriter, signed bool, opts config.EncoderOptions) *Encoder {
	scratchCap := opts.ScratchCapacity
	if scratchCap <= 0 {
		scratchCap = maxScope
	}
	return &Encoder{
		out:             out,
		signed:          signed,
		alignBitPacking: opts.AlignBitPacking,
		literals:        make([]uint64, 0, scratchCap),
		adjDeltas:       make([]uint64, 0, scratchCap),
		baseRedLiterals: make([]uint64, 0, scratchCap),
		gapVsPatchList:  make([]uint64, 0, scratchCap/maxShortRepeatCount+2),
	}
}

// Write appends a signed value. The encoder must have been constructed
// with signed=true.
func (e *Encoder) Write(v int64) error {
	if !e.signed {
		return errors.New("rle2: Write called on an unsigned Encoder; use WriteUint")
	}
	e.literals = append(e.literals, zigzag(v))
	return e.maybeDrain()
}

// WriteUint appends an unsigned value. The encoder must have been
// constructed with signed=false.
func (e *Encoder) WriteUint(v uint64) error {
	if e.signed {
		return errors.New("rle2: WriteUint called on a signed Encoder; use Write")
	}
	e.literals = append(e.literals, v)
	return e.maybeDrain()
}

func (e *Encoder) maybeDrain() error {
	if len(e.literals) < maxScope {
		return nil
	}
	return e.drain()
}

// Flush writes any buffered-but-not-yet-emitted values as a final
// (possibly undersized) block, flushes the underlying writer, and returns
// the total number of bytes written across the Encoder's lifetime.
func (e *Encoder) Flush() (uint64, error) {
	if len(e.literals) > 0 {
		if err := e.drain(); err != nil {
			return e.totalWritten, err
		}
	}
	if err := e.out.Flush(); err != nil {
		return e.totalWritten, errors.WithStack(err)
	}
	return e.totalWritten, nil
}

// Position reports the current seek point: the number of bytes already
// emitted to out, and the number of values buffered but not yet written
// (which a later Seek would need to skip past once this block is flushed).
func (e *Encoder) Position() (byteOffset uint64, bufferedValues int) {
	return e.totalWritten, len(e.literals)
}

// drain emits blocks from e.literals until the buffer is empty.
func (e *Encoder) drain() error {
	for len(e.literals) > 0 {
		if err := e.emitNextBlock(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) emitNextBlock() error {
	lits := e.literals
	n := len(lits)

	repeat := countLeadingRepeat(lits)
	if repeat >= minRepeat {
		if repeat == n && repeat > maxShortRepeatCount {
			// A long constant run compresses far better as a
			// fixed-delta-zero DELTA block than as repeated
			// SHORT_REPEATs.
			return e.emitFixedDelta(lits[:repeat], 0)
		}
		if repeat > maxShortRepeatCount {
			repeat = maxShortRepeatCount
		}
		return e.emitShortRepeat(lits[:repeat])
	}

	if n >= 2 {
		if ok, delta := wholeBlockFixedDelta(lits, e.signed); ok {
			return e.emitFixedDelta(lits, delta)
		}
	} else if n == 1 {
		return e.emitFixedDelta(lits, 0)
	}

	opt := e.analyze(lits)
	switch opt.encoding {
	case tagDirect:
		return e.emitDirect(lits, opt)
	case tagDelta:
		return e.emitVariableDelta(lits, opt)
	case tagPatchedBase:
		return e.emitPatchedBase(lits, opt)
	default:
		return e.emitDirect(lits, opt)
	}
}

// countLeadingRepeat returns the length of the run of equal values at the
// start of lits (minimum 1).
func countLeadingRepeat(lits []uint64) int {
	n := 1
	for n < len(lits) && lits[n] == lits[0] {
		n++
	}
	return n
}

// wholeBlockFixedDelta reports whether every adjacent pair in lits has the
// same logical delta, i.e. the whole block is an arithmetic progression.
func wholeBlockFixedDelta(lits []uint64, signed bool) (bool, int64) {
	if len(lits) < 2 {
		return false, 0
	}
	d0 := deltaAt(lits, 1, signed)
	for i := 2; i < len(lits); i++ {
		if deltaAt(lits, i, signed) != d0 {
			return false, 0
		}
	}
	return true, d0
}

func (e *Encoder) consume(n int) {
	e.literals = e.literals[n:]
}

func (e *Encoder) writeByte(b byte) error {
	if err := e.out.WriteByte(b); err != nil {
		return errors.WithStack(err)
	}
	e.totalWritten++
	return nil
}

func (e *Encoder) countingWriter() *countingWriter {
	return &countingWriter{w: e.out, e: e}
}

// countingWriter adapts e.out so writeInts/writeUvarint/writeLongBE calls
// keep e.totalWritten accurate without every call site doing the
// bookkeeping itself.
type countingWriter struct {
	w rleio.ByteWriter
	e *Encoder
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.e.totalWritten += uint64(n)
	if err != nil {
		return n, errors.WithStack(err)
	}
	return n, nil
}

func (c *countingWriter) WriteByte(b byte) error {
	if err := c.w.WriteByte(b); err != nil {
		return errors.WithStack(err)
	}
	c.e.totalWritten++
	return nil
}

func (c *countingWriter) Len() int { return c.w.Len() }

func (c *countingWriter) Flush() error { return c.w.Flush() }
