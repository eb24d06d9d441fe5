package rle2

import (
	"io"

	"github.com/pkg/errors"

	"github.com/orclib/rle2/config"
	"github.com/orclib/rle2/rlepool"
	"github.com/orclib/rle2/rlepos"
	"github.com/orclib/rle2/rleio"
)

// Decoder reads blocks written by Encoder, eagerly unpacking each run (at
// most maxScope values) into values in the wire domain (zig-zagged if
// signed, raw otherwise), so Next/Skip/Seek only need to track a read
// cursor over already-reconstructed values — PATCHED_BASE's patch
// application happens once per run, not once per Next call.
type Decoder struct {
	in     rleio.ByteReader
	signed bool
	pool   rlepool.Int64Pool

	sub       subEncoding
	runLength int
	runRead   int
	values    []uint64

	scratch []uint64
}

// NewDecoder returns a Decoder reading from in. signed must match the
// Encoder the bytes were produced with.
func NewDecoder(in rleio.ByteReader, signed bool, opts config.DecoderOptions) *Decoder {
	initCap := opts.InitialUnpackCapacity
	if initCap <= 0 {
		initCap = maxScope
	}
	return &Decoder{
		in:     in,
		signed: signed,
		pool:   rlepool.SlicePool{},
		values: make([]uint64, 0, initCap),
	}
}

// ensureRun reads and decodes the next block's header once the current run
// is exhausted.
func (d *Decoder) ensureRun() error {
	if d.runRead < d.runLength {
		return nil
	}
	first, err := d.in.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return parseErrorf("stream ended before the next block header: %v", err)
		}
		return errors.WithStack(err)
	}
	d.sub = subEncoding(first >> 6)
	switch d.sub {
	case tagShortRepeat:
		err = d.decodeShortRepeat(first)
	case tagDirect:
		err = d.decodeDirect(first)
	case tagPatchedBase:
		if !d.signed {
			return notImplementedf("PATCHED_BASE on an unsigned decoder")
		}
		err = d.decodePatchedBase(first)
	case tagDelta:
		err = d.decodeDelta(first)
	default:
		return parseErrorf("unknown sub-encoding tag %d", d.sub)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return parseErrorf("truncated block: %v", err)
		}
		return err
	}
	d.runRead = 0
	return nil
}

// Next fills out with the next len(out) signed values, consulting notNull
// (when non-nil) to skip positions that are null in the caller's batch
// without consuming a codec value for them. The Decoder must have been
// constructed with signed=true.
func (d *Decoder) Next(out []int64, notNull []byte) error {
	if !d.signed {
		return errors.New("rle2: Next called on an unsigned Decoder; use NextUint")
	}
	for i := range out {
		if notNull != nil && notNull[i] == 0 {
			continue
		}
		if err := d.ensureRun(); err != nil {
			return err
		}
		out[i] = unZigzag(d.values[d.runRead])
		d.runRead++
	}
	return nil
}

// NextUint is Next's unsigned counterpart.
func (d *Decoder) NextUint(out []uint64, notNull []byte) error {
	if d.signed {
		return errors.New("rle2: NextUint called on a signed Decoder; use Next")
	}
	for i := range out {
		if notNull != nil && notNull[i] == 0 {
			continue
		}
		if err := d.ensureRun(); err != nil {
			return err
		}
		out[i] = d.values[d.runRead]
		d.runRead++
	}
	return nil
}

// Skip advances past n values without materializing them, still walking
// run headers (and thus patch lists) as needed.
func (d *Decoder) Skip(n int) error {
	for n > 0 {
		if err := d.ensureRun(); err != nil {
			return err
		}
		take := d.runLength - d.runRead
		if take > n {
			take = n
		}
		d.runRead += take
		n -= take
	}
	return nil
}

// Seek repositions the decoder using a position provider: the first Next
// call is the absolute byte offset to resume reading from, the second is
// the number of values to skip within the run that starts there.
func (d *Decoder) Seek(p rlepos.Provider) error {
	byteOffset, err := p.Next()
	if err != nil {
		return errors.WithStack(err)
	}
	valuesToSkip, err := p.Next()
	if err != nil {
		return errors.WithStack(err)
	}
	d.runLength = 0
	d.runRead = 0
	if err := d.in.SeekTo(int64(byteOffset)); err != nil {
		return outOfRangef("seek to byte offset %d: %v", byteOffset, err)
	}
	return d.Skip(int(valuesToSkip))
}
