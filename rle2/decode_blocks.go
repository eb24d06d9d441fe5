package rle2

// decodeShortRepeat reads a SHORT_REPEAT block into d.values.
func (d *Decoder) decodeShortRepeat(first byte) error {
	width := int((first>>3)&0x07) + 1
	count := int(first&0x07) + minRepeat
	v, err := readLongBE(d.in, width)
	if err != nil {
		return err
	}
	d.values = d.pool.Grow(d.values, count)
	for i := 0; i < count; i++ {
		d.values[i] = v
	}
	d.runLength = count
	logger.Tracef("rle2: decoded SHORT_REPEAT count=%d width=%d", count, width)
	return nil
}

// readLengthHeader reads the second header byte common to DIRECT and
// DELTA: 5-bit width code in the first byte's low 6 bits plus the length's
// high bit, one more byte for the length's low 8 bits.
func (d *Decoder) readLengthHeader(first byte, delta bool) (width, length int, err error) {
	b1, err := d.in.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	widthCode := (first >> 1) & 0x1f
	width, err = widthDecoding(widthCode, delta)
	if err != nil {
		return 0, 0, err
	}
	length = (int(first&0x01)<<8 | int(b1)) + 1
	return width, length, nil
}

func (d *Decoder) decodeDirect(first byte) error {
	width, length, err := d.readLengthHeader(first, false)
	if err != nil {
		return err
	}
	d.values, err = readIntsInto(d.in, d.pool, d.values, length, width)
	if err != nil {
		return err
	}
	d.runLength = length
	logger.Tracef("rle2: decoded DIRECT length=%d width=%d", length, width)
	return nil
}

func (d *Decoder) decodeDelta(first byte) error {
	width, length, err := d.readLengthHeader(first, true)
	if err != nil {
		return err
	}

	var base uint64
	if d.signed {
		b, err := readVarint(d.in)
		if err != nil {
			return err
		}
		base = zigzag(b)
	} else {
		base, err = readUvarint(d.in)
		if err != nil {
			return err
		}
	}
	firstDelta, err := readVarint(d.in)
	if err != nil {
		return err
	}

	d.values = d.pool.Grow(d.values, length)
	d.values[0] = base
	if length == 1 {
		d.runLength = 1
		return nil
	}
	d.values[1] = d.step(base, firstDelta)

	if width == 0 {
		prev := d.values[1]
		for i := 2; i < length; i++ {
			prev = d.step(prev, firstDelta)
			d.values[i] = prev
		}
		d.runLength = length
		logger.Tracef("rle2: decoded DELTA (fixed) length=%d delta=%d", length, firstDelta)
		return nil
	}

	if length > 2 {
		mags, err := readIntsInto(d.in, d.pool, d.scratch, length-2, width)
		if err != nil {
			return err
		}
		d.scratch = mags
		prev := d.values[1]
		for i := 0; i < len(mags); i++ {
			mag := int64(mags[i])
			if firstDelta < 0 {
				mag = -mag
			}
			prev = d.step(prev, mag)
			d.values[2+i] = prev
		}
	}
	d.runLength = length
	logger.Tracef("rle2: decoded DELTA (variable) length=%d width=%d", length, width)
	return nil
}

// step adds a signed logical delta to a value stored in the wire domain
// (zig-zag if signed, raw otherwise), returning the result in that same
// domain.
func (d *Decoder) step(wireValue uint64, delta int64) uint64 {
	if d.signed {
		return zigzag(unZigzag(wireValue) + delta)
	}
	if delta >= 0 {
		return wireValue + uint64(delta)
	}
	return wireValue - uint64(-delta)
}

func (d *Decoder) decodePatchedBase(first byte) error {
	b1, err := d.in.ReadByte()
	if err != nil {
		return err
	}
	b2, err := d.in.ReadByte()
	if err != nil {
		return err
	}
	b3, err := d.in.ReadByte()
	if err != nil {
		return err
	}

	widthCode := (first >> 1) & 0x1f
	width, err := widthDecoding(widthCode, false)
	if err != nil {
		return err
	}
	length := (int(first&0x01)<<8 | int(b1)) + 1

	baseWidthBytes := int((b2>>5)&0x07) + 1
	patchWidth, err := widthDecoding(b2&0x1f, false)
	if err != nil {
		return err
	}
	patchGapWidth := int((b3>>5)&0x07) + 1
	patchListLen := int(b3 & 0x1f)

	baseMagnitude, err := readLongBE(d.in, baseWidthBytes)
	if err != nil {
		return err
	}
	signBit := uint64(1) << uint(baseWidthBytes*8-1)
	base := int64(baseMagnitude &^ signBit)
	if baseMagnitude&signBit != 0 {
		base = -base
	}

	d.values, err = readIntsInto(d.in, d.pool, d.values, length, width)
	if err != nil {
		return err
	}

	if patchListLen > 0 {
		patchEntries, err := readIntsInto(d.in, d.pool, nil, patchListLen, patchGapWidth+patchWidth)
		if err != nil {
			return err
		}
		patchMask := uint64(1)<<uint(patchWidth) - 1
		pos := 0
		for _, entry := range patchEntries {
			gap := entry >> uint(patchWidth)
			patch := entry & patchMask
			if gap == uint64(maxPatchGap) && patch == 0 {
				pos += maxPatchGap
				continue
			}
			pos += int(gap)
			if pos >= length {
				return parseErrorf("patch at position %d past block length %d", pos, length)
			}
			d.values[pos] |= patch << uint(width)
		}
	}

	for i := 0; i < length; i++ {
		d.values[i] = zigzag(base + int64(d.values[i]))
	}

	d.runLength = length
	logger.Tracef("rle2: decoded PATCHED_BASE length=%d width=%d patches=%d", length, width, patchListLen)
	return nil
}
