package rle2

import (
	"github.com/pkg/errors"

	"github.com/orclib/rle2/rleio"
)

// writeUvarint writes v as a little-endian base-128 varint with MSB
// continuation bits, the same scheme the teacher reaches for via
// encoding/binary.PutUvarint when it writes PATCHED_BASE/DELTA bases.
func writeUvarint(out rleio.ByteWriter, v uint64) error {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			if err := out.WriteByte(b | 0x80); err != nil {
				return errors.WithStack(err)
			}
			continue
		}
		return errors.WithStack(out.WriteByte(b))
	}
}

// readUvarint reads a varint written by writeUvarint.
func readUvarint(in rleio.ByteReader) (uint64, error) {
	var v uint64
	var shift uint
	for i := 0; i < 10; i++ {
		b, err := in.ReadByte()
		if err != nil {
			return 0, errors.WithStack(err)
		}
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, nil
		}
		shift += 7
	}
	return 0, parseErrorf("varint longer than 10 bytes")
}

// writeVarint writes a signed value as zig-zag followed by an unsigned
// varint.
func writeVarint(out rleio.ByteWriter, v int64) error {
	return writeUvarint(out, zigzag(v))
}

// readVarint reads a varint written by writeVarint.
func readVarint(in rleio.ByteReader) (int64, error) {
	u, err := readUvarint(in)
	if err != nil {
		return 0, err
	}
	return unZigzag(u), nil
}

// readLongBE reads a big-endian, byteSize-byte unsigned value, as used by
// SHORT_REPEAT's value and PATCHED_BASE's base.
func readLongBE(in rleio.ByteReader, byteSize int) (uint64, error) {
	var v uint64
	for i := 0; i < byteSize; i++ {
		b, err := in.ReadByte()
		if err != nil {
			return 0, errors.WithStack(err)
		}
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// writeLongBE writes v as a big-endian, byteSize-byte value.
func writeLongBE(out rleio.ByteWriter, v uint64, byteSize int) error {
	for i := byteSize - 1; i >= 0; i-- {
		if err := out.WriteByte(byte(v >> uint(i*8))); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
