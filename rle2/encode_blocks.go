package rle2

// emitShortRepeat writes all of lits (3..10 equal values) as a SHORT_REPEAT
// block: tag, byte width of the value, run count, then the value itself
// big-endian.
func (e *Encoder) emitShortRepeat(lits []uint64) error {
	value := lits[0]
	count := len(lits)
	width := byteWidth(value)
	if width == 0 {
		width = 1
	}
	header := byte(tagShortRepeat)<<6 | byte(width-1)<<3 | byte(count-minRepeat)
	if err := e.writeByte(header); err != nil {
		return err
	}
	cw := e.countingWriter()
	if err := writeLongBE(cw, value, width); err != nil {
		return err
	}
	e.consume(count)
	logger.Tracef("rle2: emitted SHORT_REPEAT count=%d width=%d", count, width)
	return nil
}

// emitFixedDelta writes all of lits as a DELTA block with no payload: the
// base plus a constant per-step delta reconstructs every value.
func (e *Encoder) emitFixedDelta(lits []uint64, delta int64) error {
	length := len(lits)
	lenMinus1 := length - 1
	header0 := byte(tagDelta)<<6 | byte((lenMinus1>>8)&0x01)
	header1 := byte(lenMinus1 & 0xff)
	if err := e.writeByte(header0); err != nil {
		return err
	}
	if err := e.writeByte(header1); err != nil {
		return err
	}
	cw := e.countingWriter()
	if err := e.writeBase(cw, lits[0]); err != nil {
		return err
	}
	if err := writeVarint(cw, delta); err != nil {
		return err
	}
	e.consume(length)
	logger.Tracef("rle2: emitted DELTA (fixed) length=%d delta=%d", length, delta)
	return nil
}

// emitVariableDelta writes lits as a DELTA block whose first delta carries
// the run's direction and whose remaining deltas are packed magnitudes.
// The payload width is widened to a whole byte first when alignBitPacking
// is set, per the option's contract. A 1-bit payload is written at width 2,
// since width code 0 in a DELTA header marks a fixed-delta block.
func (e *Encoder) emitVariableDelta(lits []uint64, opt encodingOption) error {
	length := len(lits)
	width := alignForBitPacking(opt.width, e.alignBitPacking)
	if width == 1 {
		width = 2
	}
	widthCode, err := widthEncoding(width)
	if err != nil {
		return err
	}
	lenMinus1 := length - 1
	header0 := byte(tagDelta)<<6 | widthCode<<1 | byte((lenMinus1>>8)&0x01)
	header1 := byte(lenMinus1 & 0xff)
	if err := e.writeByte(header0); err != nil {
		return err
	}
	if err := e.writeByte(header1); err != nil {
		return err
	}
	cw := e.countingWriter()
	if err := e.writeBase(cw, lits[0]); err != nil {
		return err
	}
	firstDelta := deltaAt(lits, 1, e.signed)
	if err := writeVarint(cw, firstDelta); err != nil {
		return err
	}
	if length > 2 {
		mags := e.adjDeltas[:0]
		for i := 2; i < length; i++ {
			d := deltaAt(lits, i, e.signed)
			if d < 0 {
				d = -d
			}
			mags = append(mags, uint64(d))
		}
		if err := writeInts(cw, mags, width); err != nil {
			return err
		}
	}
	e.consume(length)
	logger.Tracef("rle2: emitted DELTA (variable) length=%d width=%d", length, width)
	return nil
}

// emitDirect writes lits as a DIRECT block: header, then each value
// bit-packed at opt.width in its wire domain (zig-zag if signed). The
// payload width is widened to a whole byte first when alignBitPacking is
// set, per the option's contract.
func (e *Encoder) emitDirect(lits []uint64, opt encodingOption) error {
	length := len(lits)
	width := alignForBitPacking(opt.width, e.alignBitPacking)
	widthCode, err := widthEncoding(width)
	if err != nil {
		return err
	}
	lenMinus1 := length - 1
	header0 := byte(tagDirect)<<6 | widthCode<<1 | byte((lenMinus1>>8)&0x01)
	header1 := byte(lenMinus1 & 0xff)
	if err := e.writeByte(header0); err != nil {
		return err
	}
	if err := e.writeByte(header1); err != nil {
		return err
	}
	cw := e.countingWriter()
	if err := writeInts(cw, lits, width); err != nil {
		return err
	}
	e.consume(length)
	logger.Tracef("rle2: emitted DIRECT length=%d width=%d", length, width)
	return nil
}

// emitPatchedBase writes lits as a PATCHED_BASE block: a base-reduced,
// narrow-width packed array plus a sidecar list of (gap, highBits) patches
// for the values that did not fit the chosen width. Unlike DIRECT and
// DELTA, PATCHED_BASE's base-reduced width is never widened for
// alignBitPacking: only DIRECT and DELTA widths are byte-aligned.
func (e *Encoder) emitPatchedBase(lits []uint64, opt encodingOption) error {
	if !e.signed {
		return notImplementedf("PATCHED_BASE for an unsigned encoder")
	}
	length := len(lits)
	width := opt.width
	mask := uint64(1)<<uint(width) - 1

	// First pass: find which positions need a patch and the widest gap and
	// high-bits value among them, without yet knowing patchWidth (which
	// determines how those pairs get packed together).
	lastPatchPos := 0
	maxPatchHigh := uint64(0)
	maxGap := 0
	for i, v := range lits {
		reduced := uint64(unZigzag(v) - opt.min)
		if reduced&^mask == 0 {
			continue
		}
		gap := i - lastPatchPos
		for gap > maxPatchGap {
			if maxPatchGap > maxGap {
				maxGap = maxPatchGap
			}
			gap -= maxPatchGap
		}
		if high := reduced >> uint(width); high > maxPatchHigh {
			maxPatchHigh = high
		}
		if gap > maxGap {
			maxGap = gap
		}
		lastPatchPos = i
	}

	patchWidth := alignToLadder(bitWidth(maxPatchHigh))
	patchWidthCode, err := widthEncoding(patchWidth)
	if err != nil {
		return err
	}
	patchGapWidth := bitWidth(uint64(maxGap))
	if patchGapWidth == 0 {
		patchGapWidth = 1
	}

	// Second pass: now that patchWidth is fixed, pack (gap, high) pairs as
	// gap<<patchWidth|high, matching how the decoder splits them back
	// apart.
	e.gapVsPatchList = e.gapVsPatchList[:0]
	lastPatchPos = 0
	for i, v := range lits {
		reduced := uint64(unZigzag(v) - opt.min)
		if reduced&^mask == 0 {
			continue
		}
		gap := i - lastPatchPos
		for gap > maxPatchGap {
			e.gapVsPatchList = append(e.gapVsPatchList, uint64(maxPatchGap)<<uint(patchWidth))
			gap -= maxPatchGap
		}
		high := reduced >> uint(width)
		e.gapVsPatchList = append(e.gapVsPatchList, uint64(gap)<<uint(patchWidth)|high)
		lastPatchPos = i
	}
	patchListLen := len(e.gapVsPatchList)

	// +1 bit reserves room for the sign bit on top of the magnitude's own
	// bits, so a magnitude that exactly fills a byte doesn't collide with
	// the sign we're about to OR into its top bit.
	baseWidthBytes := (bitWidth(uint64(absInt64(opt.min))) + 1 + 7) / 8
	if baseWidthBytes == 0 {
		baseWidthBytes = 1
	}

	widthCode, err := widthEncoding(width)
	if err != nil {
		return err
	}
	lenMinus1 := length - 1
	header0 := byte(tagPatchedBase)<<6 | widthCode<<1 | byte((lenMinus1>>8)&0x01)
	header1 := byte(lenMinus1 & 0xff)
	header2 := byte(baseWidthBytes-1)<<5 | patchWidthCode
	header3 := byte(patchGapWidth-1)<<5 | byte(patchListLen)

	if err := e.writeByte(header0); err != nil {
		return err
	}
	if err := e.writeByte(header1); err != nil {
		return err
	}
	if err := e.writeByte(header2); err != nil {
		return err
	}
	if err := e.writeByte(header3); err != nil {
		return err
	}

	cw := e.countingWriter()

	baseMagnitude := uint64(absInt64(opt.min))
	if opt.min < 0 {
		baseMagnitude |= uint64(1) << uint(baseWidthBytes*8-1)
	}
	if err := writeLongBE(cw, baseMagnitude, baseWidthBytes); err != nil {
		return err
	}

	e.baseRedLiterals = e.baseRedLiterals[:0]
	for _, v := range lits {
		reduced := uint64(unZigzag(v) - opt.min)
		e.baseRedLiterals = append(e.baseRedLiterals, reduced&mask)
	}
	if err := writeInts(cw, e.baseRedLiterals, width); err != nil {
		return err
	}

	if patchListLen > 0 {
		if err := writeInts(cw, e.gapVsPatchList, patchGapWidth+patchWidth); err != nil {
			return err
		}
	}

	e.consume(length)
	logger.Tracef("rle2: emitted PATCHED_BASE length=%d width=%d patches=%d", length, width, patchListLen)
	return nil
}

// writeBase writes a block's first value as a varint in the domain the
// codec is configured for (signed zig-zag, or raw unsigned).
func (e *Encoder) writeBase(cw *countingWriter, v uint64) error {
	if e.signed {
		return writeVarint(cw, unZigzag(v))
	}
	return writeUvarint(cw, v)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
