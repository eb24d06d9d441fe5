package rlepool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlicePoolReusesBackingArrayWhenLargeEnough(t *testing.T) {
	var pool SlicePool
	buf := make([]uint64, 4, 16)
	grown := pool.Grow(buf, 8)
	assert.Equal(t, 8, len(grown))
	assert.Equal(t, 16, cap(grown))
}

func TestSlicePoolReallocatesWhenTooSmall(t *testing.T) {
	var pool SlicePool
	buf := make([]uint64, 2, 2)
	grown := pool.Grow(buf, 10)
	assert.Equal(t, 10, len(grown))
	assert.True(t, cap(grown) >= 10)
}
