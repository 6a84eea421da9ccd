package parquetreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteWindowTakeAdvancesCursor(t *testing.T) {
	w := newByteWindow([]byte{1, 2, 3, 4, 5})
	b, err := w.take(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, 3, w.remaining())
}

func TestByteWindowTakePastEndIsIOError(t *testing.T) {
	w := newByteWindow([]byte{1, 2})
	_, err := w.take(3)
	require.Error(t, err)
	assert.Equal(t, IOError, err.(*Error).Kind)
}

func TestByteWindowPeekU32LEDoesNotAdvance(t *testing.T) {
	w := newByteWindow([]byte{0x01, 0x00, 0x00, 0x00, 0xff})
	v, err := w.peekU32LE()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)
	assert.Equal(t, 5, w.remaining())
}

func TestByteWindowRestAndSkip(t *testing.T) {
	w := newByteWindow([]byte{1, 2, 3, 4})
	require.NoError(t, w.skip(1))
	assert.Equal(t, []byte{2, 3, 4}, w.rest())
}

func TestByteWindowReadByte(t *testing.T) {
	w := newByteWindow([]byte{0x42})
	b, err := w.readByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), b)
	_, err = w.readByte()
	require.Error(t, err)
}

func TestByteWindowWithLimitStopsAtLogicalBoundNotPhysicalBuffer(t *testing.T) {
	buf := make([]byte, 4+slackBytes) // logical window of 4 bytes, rest is slack
	w := newByteWindowWithLimit(buf, 4)
	assert.Equal(t, 4, w.remaining())

	_, err := w.take(5)
	require.Error(t, err)
	assert.Equal(t, IOError, err.(*Error).Kind)

	b, err := w.take(4)
	require.NoError(t, err)
	assert.Equal(t, 4, len(b))
	assert.Equal(t, 0, w.remaining())

	_, err = w.take(1)
	require.Error(t, err)
}

func TestByteWindowWithLimitRestStillExposesPhysicalSlack(t *testing.T) {
	buf := make([]byte, 4+slackBytes)
	w := newByteWindowWithLimit(buf, 4)
	require.NoError(t, w.skip(2))
	// rest() must hand back the full physical remainder, slack
	// included, for the hybrid decoder's over-read.
	assert.Equal(t, len(buf)-2, len(w.rest()))
}
