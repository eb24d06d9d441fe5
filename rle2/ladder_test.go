package rle2

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	SetLogLevel(log.TraceLevel)
}

func TestWidthEncodingRoundTrip(t *testing.T) {
	for _, w := range fixedBitSizeLadder {
		code, err := widthEncoding(w)
		assert.NoError(t, err)
		back, err := widthDecoding(code, false)
		assert.NoError(t, err)
		assert.Equal(t, w, back)
	}
}

func TestWidthEncodingRejectsNonLadderWidth(t *testing.T) {
	_, err := widthEncoding(25)
	assert.Error(t, err)
}

func TestWidthDecodingDeltaZeroSentinel(t *testing.T) {
	w, err := widthDecoding(0, true)
	assert.NoError(t, err)
	assert.Equal(t, 0, w)

	w, err = widthDecoding(0, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, w)
}

func TestAlignToLadder(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 5: 5, 25: 26, 29: 30, 33: 40, 64: 64}
	for bits, want := range cases {
		assert.Equal(t, want, alignToLadder(bits), "bits=%d", bits)
	}
}

func TestAlignForBitPacking(t *testing.T) {
	type tc struct {
		width   int
		enabled bool
		want    int
	}
	for _, c := range []tc{
		{width: 1, enabled: true, want: 1},
		{width: 7, enabled: true, want: 7},
		{width: 8, enabled: true, want: 8},
		{width: 9, enabled: true, want: 16},
		{width: 16, enabled: true, want: 16},
		{width: 17, enabled: true, want: 24},
		{width: 26, enabled: true, want: 32},
		{width: 64, enabled: true, want: 64},
		{width: 9, enabled: false, want: 9},
		{width: 26, enabled: false, want: 26},
	} {
		assert.Equal(t, c.want, alignForBitPacking(c.width, c.enabled), "width=%d enabled=%v", c.width, c.enabled)
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, 1000000, -1000000, 1<<62 - 1, -(1 << 62)}
	for _, v := range values {
		assert.Equal(t, v, unZigzag(zigzag(v)))
	}
}
