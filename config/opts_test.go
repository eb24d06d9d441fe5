package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEncoderOptions(t *testing.T) {
	opts := DefaultEncoderOptions()
	assert.True(t, opts.AlignBitPacking)
	assert.Equal(t, 512, opts.ScratchCapacity)
}

func TestDefaultDecoderOptions(t *testing.T) {
	opts := DefaultDecoderOptions()
	assert.Equal(t, 512, opts.InitialUnpackCapacity)
}
