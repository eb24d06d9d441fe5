// Package rleio defines the seekable byte input and buffered byte output
// contracts the rle2 codec reads from and writes to, plus in-memory
// implementations of each. These stand in for the real chunked, compressed
// stripe stream a full ORC reader/writer would provide; that layer is out
// of scope here, so only its contract is modeled.
package rleio

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// ByteReader is the seekable byte input a Decoder consumes. A real
// implementation sits on top of a decompressed ORC stripe stream; MemReader
// is the in-memory stand-in used by tests and standalone callers.
type ByteReader interface {
	io.Reader
	io.ByteReader

	// Pos returns the current read offset in bytes from the start of the
	// stream.
	Pos() int64

	// SeekTo repositions the stream to an absolute byte offset, as returned
	// by a prior Pos() call or supplied by a position provider.
	SeekTo(pos int64) error
}

// ByteWriter is the buffered byte output a Encoder appends to. A real
// implementation would chunk and compress before handing bytes to a stripe
// writer; MemWriter is the in-memory stand-in.
type ByteWriter interface {
	io.Writer
	io.ByteWriter

	// Len reports the number of bytes written so far.
	Len() int

	// Flush pushes any buffered bytes to the underlying sink.
	Flush() error
}

// MemReader is a ByteReader backed by a plain byte slice.
type MemReader struct {
	data []byte
	pos  int
}

// NewMemReader wraps data for reading. The slice is not copied.
func NewMemReader(data []byte) *MemReader {
	return &MemReader{data: data}
}

func (r *MemReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *MemReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *MemReader) Pos() int64 { return int64(r.pos) }

func (r *MemReader) SeekTo(pos int64) error {
	if pos < 0 || pos > int64(len(r.data)) {
		return errors.Errorf("rleio: seek position %d out of range [0,%d]", pos, len(r.data))
	}
	r.pos = int(pos)
	return nil
}

// MemWriter is a ByteWriter backed by a bytes.Buffer.
type MemWriter struct {
	buf bytes.Buffer
}

// NewMemWriter returns an empty in-memory writer.
func NewMemWriter() *MemWriter {
	return &MemWriter{}
}

func (w *MemWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *MemWriter) WriteByte(b byte) error { return w.buf.WriteByte(b) }

func (w *MemWriter) Len() int { return w.buf.Len() }

// Flush is a no-op: bytes.Buffer has nothing downstream to push to.
func (w *MemWriter) Flush() error { return nil }

// Bytes returns the accumulated output. The caller must not modify it.
func (w *MemWriter) Bytes() []byte { return w.buf.Bytes() }
