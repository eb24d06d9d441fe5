package rleio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemReaderReadAndSeek(t *testing.T) {
	r := NewMemReader([]byte{1, 2, 3, 4})
	b, err := r.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte(1), b)
	assert.Equal(t, int64(1), r.Pos())

	assert.NoError(t, r.SeekTo(3))
	b, err = r.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte(4), b)

	assert.Error(t, r.SeekTo(10))
}

func TestMemWriterAccumulates(t *testing.T) {
	w := NewMemWriter()
	assert.NoError(t, w.WriteByte(0xAB))
	n, err := w.Write([]byte{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 4, w.Len())
	assert.Equal(t, []byte{0xAB, 1, 2, 3}, w.Bytes())
	assert.NoError(t, w.Flush())
}
