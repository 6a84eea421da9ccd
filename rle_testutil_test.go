package parquetreader

// Hand-rolled hybrid RLE / bit-pack encoding helpers used only to build
// synthetic page bytes for tests. Independent of the decoder under
// test so a bug in one can't hide a matching bug in the other.

func appendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// literalRun bit-packs values (LSB-first within each byte, no padding
// between values) as a hybrid literal run. len(values) must be a
// multiple of 8; short groups are padded by the caller with zeros.
func literalRun(values []uint32, width int) []byte {
	if len(values)%8 != 0 {
		panic("literalRun: len(values) must be a multiple of 8")
	}
	groups := len(values) / 8
	out := appendVarint(nil, uint64(groups)<<1|1)

	var bitBuf uint64
	var bitCount uint
	for _, v := range values {
		bitBuf |= uint64(v) << bitCount
		bitCount += uint(width)
		for bitCount >= 8 {
			out = append(out, byte(bitBuf))
			bitBuf >>= 8
			bitCount -= 8
		}
	}
	if bitCount > 0 {
		out = append(out, byte(bitBuf))
	}
	return out
}

// repeatedRun encodes count copies of value as a hybrid repeated run.
func repeatedRun(value uint32, count int, width int) []byte {
	out := appendVarint(nil, uint64(count)<<1)
	nbytes := (width + 7) / 8
	for i := 0; i < nbytes; i++ {
		out = append(out, byte(value>>(8*i)))
	}
	return out
}

// rleFramed prefixes a run buffer with its little-endian uint32 length,
// as data-page-v1 definition-level streams are.
func rleFramed(payload []byte) []byte {
	l := uint32(len(payload))
	return append([]byte{byte(l), byte(l >> 8), byte(l >> 16), byte(l >> 24)}, payload...)
}

func padTo8(values []uint32) []uint32 {
	for len(values)%8 != 0 {
		values = append(values, 0)
	}
	return values
}
