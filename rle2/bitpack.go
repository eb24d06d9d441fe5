package rle2

import (
	"github.com/pkg/errors"

	"github.com/orclib/rle2/rlepool"
	"github.com/orclib/rle2/rleio"
)

// bitWriter packs values MSB-first into a byte stream, carrying at most 7
// leftover bits between calls. Forgetting it (starting a fresh one) between
// a block's values and its patch list keeps the two bitstreams byte-aligned,
// matching the teacher's forgetBits/resetReadLongs calls at section
// boundaries.
type bitWriter struct {
	cur      byte
	bitsLeft int
}

func (w *bitWriter) writeBits(out rleio.ByteWriter, value uint64, width int) error {
	for width > 0 {
		free := 8 - w.bitsLeft
		take := width
		if take > free {
			take = free
		}
		shift := uint(width - take)
		mask := uint64(1)<<uint(take) - 1
		part := byte((value >> shift) & mask)
		w.cur = (w.cur << uint(take)) | part
		w.bitsLeft += take
		width -= take
		if w.bitsLeft == 8 {
			if err := out.WriteByte(w.cur); err != nil {
				return errors.WithStack(err)
			}
			w.cur = 0
			w.bitsLeft = 0
		}
	}
	return nil
}

// flush pads any leftover bits with zeros and writes the final partial
// byte, if any.
func (w *bitWriter) flush(out rleio.ByteWriter) error {
	if w.bitsLeft == 0 {
		return nil
	}
	b := w.cur << uint(8-w.bitsLeft)
	w.cur = 0
	w.bitsLeft = 0
	return errors.WithStack(out.WriteByte(b))
}

// bitReader is the symmetric unpacker for bitWriter's output.
type bitReader struct {
	cur      byte
	bitsLeft int
}

func (r *bitReader) readBits(in rleio.ByteReader, width int) (uint64, error) {
	var value uint64
	for width > 0 {
		if r.bitsLeft == 0 {
			b, err := in.ReadByte()
			if err != nil {
				return 0, errors.WithStack(err)
			}
			r.cur = b
			r.bitsLeft = 8
		}
		take := width
		if take > r.bitsLeft {
			take = r.bitsLeft
		}
		shift := uint(r.bitsLeft - take)
		mask := byte(1<<uint(take) - 1)
		part := (r.cur >> shift) & mask
		value = (value << uint(take)) | uint64(part)
		r.bitsLeft -= take
		width -= take
	}
	return value, nil
}

// writeInts packs values at a fixed bit width, with a byte-aligned fast
// path (no bit shifting) for widths that are multiples of 8 — 8, 16, 24,
// 32, 40, 48, 56, 64, which readIntsInto also reads back whole bytes at a
// time. A width of 0 writes nothing: the
// DELTA fixed-delta case carries no payload at all.
func writeInts(out rleio.ByteWriter, values []uint64, width int) error {
	if width == 0 {
		return nil
	}
	if width%8 == 0 {
		nbytes := width / 8
		for _, v := range values {
			if err := writeLongBE(out, v, nbytes); err != nil {
				return err
			}
		}
		return nil
	}
	var w bitWriter
	for _, v := range values {
		if err := w.writeBits(out, v, width); err != nil {
			return err
		}
	}
	return w.flush(out)
}

// readIntsInto unpacks n values at a fixed bit width into dst[:n], growing
// dst through pool so repeated calls across runs never reallocate once
// they've seen the largest run in the stream.
func readIntsInto(in rleio.ByteReader, pool rlepool.Int64Pool, dst []uint64, n int, width int) ([]uint64, error) {
	dst = pool.Grow(dst, n)
	if width == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return dst, nil
	}
	if width%8 == 0 {
		nbytes := width / 8
		for i := 0; i < n; i++ {
			v, err := readLongBE(in, nbytes)
			if err != nil {
				return nil, err
			}
			dst[i] = v
		}
		return dst, nil
	}
	var r bitReader
	for i := 0; i < n; i++ {
		v, err := r.readBits(in, width)
		if err != nil {
			return nil, err
		}
		dst[i] = v
	}
	return dst, nil
}
