package parquetreader

// hybridDecoder decodes the hybrid RLE / bit-packed encoding used for
// definition levels and for dictionary-index streams: a concatenation
// of runs, each opening with a varint indicator whose low bit selects
// between a literal (bit-packed) run and a repeated-value run.
type hybridDecoder struct {
	src   []byte
	pos   int
	width int

	repeatRemaining  uint32
	repeatValue      uint32
	literalRemaining uint32

	// litBuf holds decoded-but-not-yet-consumed literal values: a
	// literal run's chunk size (up to 1024) does not have to divide
	// evenly into whatever count the caller asks for per getBatch/
	// getBatchSpaced call, so leftovers must survive across calls.
	litBuf []uint32
	litPos int
}

func newHybridDecoder(src []byte, width int) *hybridDecoder {
	return &hybridDecoder{src: src, width: width, litBuf: make([]uint32, 0, 1024)}
}

// readVarint decodes a base-128 little-endian varint. A sixth byte is
// rejected before it is read; a value of up to 5 bytes that still
// exceeds 32 significant bits is rejected after accumulation.
func (d *hybridDecoder) readVarint() (uint64, error) {
	var result uint64
	for shift := 0; ; shift += 7 {
		if shift >= 35 {
			return 0, newErr(VarintOverflow, "varint too long")
		}
		if d.pos >= len(d.src) {
			return 0, newErr(IOError, "short read")
		}
		b := d.src[d.pos]
		d.pos++
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
	}
	if result > 0xffffffff {
		return 0, newErr(VarintOverflow, "varint too long")
	}
	return result, nil
}

func (d *hybridDecoder) maxValue() uint64 {
	if d.width >= 32 {
		return 0xffffffff
	}
	return (uint64(1) << uint(d.width)) - 1
}

// readRunHeader reads the next indicator and populates either the
// repeated-run or literal-run counters.
func (d *hybridDecoder) readRunHeader() error {
	h, err := d.readVarint()
	if err != nil {
		return err
	}
	if h&1 == 1 {
		d.literalRemaining = uint32(h>>1) * 8
		return nil
	}
	count := uint32(h >> 1)
	nbytes := (d.width + 7) / 8
	buf, err := d.take(nbytes)
	if err != nil {
		return err
	}
	var v uint32
	for i := 0; i < nbytes; i++ {
		v |= uint32(buf[i]) << (8 * i)
	}
	if uint64(v) > d.maxValue() {
		return newErr(CorruptPayload, "repeated value exceeds bit width")
	}
	d.repeatRemaining = count
	d.repeatValue = v
	return nil
}

func (d *hybridDecoder) take(n int) ([]byte, error) {
	if n < 0 || len(d.src)-d.pos < n {
		return nil, newErr(IOError, "short read")
	}
	b := d.src[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// fillLiteralBuf unpacks the next chunk (up to 1024) of the current
// literal run into litBuf, resetting litPos to 0. Called only once
// litBuf is fully drained.
func (d *hybridDecoder) fillLiteralBuf() error {
	n := d.literalRemaining
	if n > 1024 {
		n = 1024
	}
	// unpack32 only operates on whole multiples of 32; pad the request
	// up and ignore the tail beyond the run's real length.
	padded := int(n)
	if padded%32 != 0 {
		padded += 32 - padded%32
	}
	// The source may end right after the run (no trailing slack), so
	// zero-fill a copy when it is shorter than the padded byte count.
	src := d.src[d.pos:]
	if need := (padded*d.width + 7) / 8; len(src) < need {
		tmp := make([]byte, need)
		copy(tmp, src)
		src = tmp
	}
	if err := unpack32(src, d.litBuf[:padded], padded, d.width); err != nil {
		return err
	}
	realBytes := (int(n) * d.width) / 8
	if (int(n)*d.width)%8 != 0 {
		realBytes++
	}
	if err := d.skip(realBytes); err != nil {
		return err
	}
	d.literalRemaining -= n
	d.litBuf = d.litBuf[:n]
	d.litPos = 0
	return nil
}

func (d *hybridDecoder) skip(n int) error {
	if n < 0 || len(d.src)-d.pos < n {
		return newErr(IOError, "short read")
	}
	d.pos += n
	return nil
}

// getBatch decodes exactly n values into dst, returning the number of
// values actually produced (less than n only at end-of-buffer).
func (d *hybridDecoder) getBatch(dst []uint32, n int) (int, error) {
	produced := 0
	for produced < n {
		if d.repeatRemaining == 0 && d.literalRemaining == 0 && d.litPos >= len(d.litBuf) {
			if d.pos >= len(d.src) {
				return produced, nil
			}
			if err := d.readRunHeader(); err != nil {
				return produced, err
			}
		}
		switch {
		case d.repeatRemaining > 0:
			take := int(d.repeatRemaining)
			if n-produced < take {
				take = n - produced
			}
			for i := 0; i < take; i++ {
				dst[produced+i] = d.repeatValue
			}
			produced += take
			d.repeatRemaining -= uint32(take)
		case d.litPos < len(d.litBuf):
			take := len(d.litBuf) - d.litPos
			if n-produced < take {
				take = n - produced
			}
			copy(dst[produced:produced+take], d.litBuf[d.litPos:d.litPos+take])
			produced += take
			d.litPos += take
		case d.literalRemaining > 0:
			if err := d.fillLiteralBuf(); err != nil {
				return produced, err
			}
		default:
			return produced, nil
		}
	}
	return produced, nil
}

// getBatchSpaced decodes n-nullCount values from the stream and
// spreads them across dst[0..n] according to defined (1 = consume the
// next decoded value, 0 = leave the slot untouched). Within a repeated
// run, every consumed slot receives repeatValue; the run's remaining
// counter is only decremented for consumed slots. Within a literal
// run, values are decoded into a scratch buffer and placed into
// successive defined positions.
func (d *hybridDecoder) getBatchSpaced(n int, nullCount int, defined []byte, dst []uint32) error {
	want := n - nullCount
	produced := 0
	i := 0

	for i < n {
		if defined[i] == 0 {
			i++
			continue
		}
		if produced >= want {
			return newErr(CorruptPayload, "defined mask does not match value count")
		}
		if d.repeatRemaining == 0 && d.literalRemaining == 0 && d.litPos >= len(d.litBuf) {
			if d.pos >= len(d.src) {
				return newErr(IOError, "short read")
			}
			if err := d.readRunHeader(); err != nil {
				return err
			}
		}
		switch {
		case d.repeatRemaining > 0:
			dst[i] = d.repeatValue
			d.repeatRemaining--
			produced++
			i++
		case d.litPos < len(d.litBuf):
			dst[i] = d.litBuf[d.litPos]
			d.litPos++
			produced++
			i++
		case d.literalRemaining > 0:
			if err := d.fillLiteralBuf(); err != nil {
				return err
			}
		default:
			return newErr(IOError, "short read")
		}
	}
	return nil
}
