package parquetreader

import (
	"encoding/binary"
	"math"
)

// plainReader decodes PLAIN-encoded values of a single physical type
// from a byte window, tracking the bit cursor booleans need (booleans
// are bit-packed 1 bit per value even in the PLAIN encoding; the
// rewrite fixes the bug documented in the design notes where an
// earlier implementation read a whole byte per boolean).
type plainReader struct {
	w       *byteWindow
	bitPos  uint // next unread bit within the current partially-read byte, 0..7
	curByte byte
}

func newPlainReader(w *byteWindow) *plainReader {
	return &plainReader{w: w}
}

func (p *plainReader) readBool() (bool, error) {
	if p.bitPos == 0 {
		b, err := p.w.readByte()
		if err != nil {
			return false, err
		}
		p.curByte = b
	}
	bit := (p.curByte >> p.bitPos) & 1
	p.bitPos = (p.bitPos + 1) % 8
	return bit == 1, nil
}

func readPlainInt32(w *byteWindow) (int32, error) {
	b, err := w.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func readPlainInt64(w *byteWindow) (int64, error) {
	b, err := w.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func readPlainInt96(w *byteWindow) ([12]byte, error) {
	var out [12]byte
	b, err := w.take(12)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func readPlainFloat32(w *byteWindow) (float32, error) {
	b, err := w.take(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func readPlainFloat64(w *byteWindow) (float64, error) {
	b, err := w.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// readPlainByteArray reads a 4-byte LE length prefix followed by that
// many bytes, failing with payload-length-exceeded if the declared
// length runs past the window.
func readPlainByteArray(w *byteWindow) ([]byte, error) {
	n, err := readPlainInt32(w)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > int32(w.remaining()) {
		return nil, newErr(PayloadLengthExceeded, "byte_array length exceeds page window")
	}
	return w.take(int(n))
}

// readPlainFixedLenByteArray reads exactly length bytes with no
// length prefix.
func readPlainFixedLenByteArray(w *byteWindow, length int) ([]byte, error) {
	if length > w.remaining() {
		return nil, newErr(PayloadLengthExceeded, "fixed_len_byte_array runs past page window")
	}
	return w.take(length)
}
