package parquetreader

import "encoding/binary"

// byteWindow is a length-aware cursor over an in-memory byte slice. It
// replaces the source's mix of raw pointer arithmetic and separate
// length counters with a single abstraction that fails cleanly at
// underrun instead of reading out of bounds.
//
// limit is the declared logical length of the window; buf may extend
// past it with trailing slack (decompressPage's over-read padding).
// take/remaining/peekU32LE/skip all enforce limit, not len(buf), so a
// declared length that runs past the real page window is rejected
// instead of silently reading zeroed padding. rest is the one
// exception: it hands back the full physical buffer, so the hybrid
// decoder's 32-at-a-time unpacker can over-read into that slack.
type byteWindow struct {
	buf   []byte
	limit int
	pos   int
}

// newByteWindow builds a window whose logical length is the whole of
// buf — the right choice whenever buf is already sized exactly to its
// content, with no separate physical over-allocation.
func newByteWindow(buf []byte) *byteWindow {
	return &byteWindow{buf: buf, limit: len(buf)}
}

// newByteWindowWithLimit builds a window over buf whose logical length
// is limit, distinct from len(buf); use this when buf carries trailing
// slack beyond its declared content.
func newByteWindowWithLimit(buf []byte, limit int) *byteWindow {
	return &byteWindow{buf: buf, limit: limit}
}

// remaining reports how many unread bytes are left in the window.
func (w *byteWindow) remaining() int {
	return w.limit - w.pos
}

// take returns the next n bytes and advances the cursor past them.
func (w *byteWindow) take(n int) ([]byte, error) {
	if n < 0 || w.remaining() < n {
		return nil, newErr(IOError, "short read")
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}

// peekU32LE reads a little-endian uint32 without advancing the cursor.
func (w *byteWindow) peekU32LE() (uint32, error) {
	if w.remaining() < 4 {
		return 0, newErr(IOError, "short read")
	}
	return binary.LittleEndian.Uint32(w.buf[w.pos : w.pos+4]), nil
}

// skip advances the cursor by n bytes without returning them.
func (w *byteWindow) skip(n int) error {
	if n < 0 || w.remaining() < n {
		return newErr(IOError, "short read")
	}
	w.pos += n
	return nil
}

// readByte consumes and returns a single byte.
func (w *byteWindow) readByte() (byte, error) {
	b, err := w.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// rest returns every remaining byte in the physical buffer, including
// any trailing slack past the logical window, without advancing the
// cursor.
func (w *byteWindow) rest() []byte {
	return w.buf[w.pos:]
}
