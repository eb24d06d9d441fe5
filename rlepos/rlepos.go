// Package rlepos defines the position provider contract Decoder.Seek
// consumes, collapsed from the teacher's row-index position lists
// (orc/column/int_reader.go's c.data.Seek(chunkOffset, offset, pos)) down to
// the codec's own minimal two-call contract.
package rlepos

// Provider yields the two numbers a seek needs, in order: the absolute byte
// offset into the stream to seek to, then the number of already-decoded
// values to skip within the run that starts there. Decoder.Seek calls
// Next exactly twice.
type Provider interface {
	Next() (uint64, error)
}

// SliceProvider is a Provider backed by a fixed pair of values, useful for
// tests and for callers that already have a decoded row-index entry.
type SliceProvider struct {
	values []uint64
	idx    int
}

// NewSliceProvider returns a Provider serving byteOffset then valuesToSkip.
func NewSliceProvider(byteOffset, valuesToSkip uint64) *SliceProvider {
	return &SliceProvider{values: []uint64{byteOffset, valuesToSkip}}
}

func (p *SliceProvider) Next() (uint64, error) {
	if p.idx >= len(p.values) {
		return 0, errOutOfValues
	}
	v := p.values[p.idx]
	p.idx++
	return v, nil
}
