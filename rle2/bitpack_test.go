package rle2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orclib/rle2/rlepool"
	"github.com/orclib/rle2/rleio"
)

func TestWriteReadIntsRoundTrip(t *testing.T) {
	widths := []int{1, 2, 3, 4, 5, 7, 8, 9, 16, 21, 24, 32, 40, 48, 56, 64}
	for _, width := range widths {
		max := uint64(1)<<uint(width) - 1
		if width == 64 {
			max = ^uint64(0)
		}
		values := []uint64{0, 1, max, max / 2, max / 3}

		w := rleio.NewMemWriter()
		assert.NoError(t, writeInts(w, values, width))

		r := rleio.NewMemReader(w.Bytes())
		got, err := readIntsInto(r, rlepool.SlicePool{}, nil, len(values), width)
		assert.NoError(t, err)
		assert.Equal(t, values, got, "width=%d", width)
	}
}

func TestWriteIntsZeroWidthWritesNothing(t *testing.T) {
	w := rleio.NewMemWriter()
	assert.NoError(t, writeInts(w, []uint64{0, 0, 0}, 0))
	assert.Equal(t, 0, w.Len())
}

func TestVarintRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, -128, 1 << 20, -(1 << 20), 1<<62 - 1}
	w := rleio.NewMemWriter()
	for _, v := range values {
		assert.NoError(t, writeVarint(w, v))
	}
	r := rleio.NewMemReader(w.Bytes())
	for _, want := range values {
		got, err := readVarint(r)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLongBERoundTrip(t *testing.T) {
	w := rleio.NewMemWriter()
	assert.NoError(t, writeLongBE(w, 0x1234, 4))
	r := rleio.NewMemReader(w.Bytes())
	got, err := readLongBE(r, 4)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x1234), got)
	assert.Equal(t, []byte{0x00, 0x00, 0x12, 0x34}, w.Bytes())
}
