package rlepos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceProviderYieldsOffsetThenSkipCount(t *testing.T) {
	p := NewSliceProvider(128, 7)

	byteOffset, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, uint64(128), byteOffset)

	valuesToSkip, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), valuesToSkip)

	_, err = p.Next()
	assert.Error(t, err)
}
