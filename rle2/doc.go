// Package rle2 implements the ORC RLEv2 integer run-length codec: an
// encoder and decoder for streams of 64-bit signed or unsigned integers
// using the four ORC sub-encodings (short repeat, direct, patched base,
// delta), chosen per block by percentile bit-width analysis so the wire
// bytes are bit-exact with the ORC specification.
package rle2
