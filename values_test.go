package parquetreader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainReaderReadBoolBitOrder(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, true, true}
	src := packBoolsLSB(bits)
	w := newByteWindow(src)
	pr := newPlainReader(w)
	for i, want := range bits {
		got, err := pr.readBool()
		require.NoError(t, err, "index %d", i)
		assert.Equal(t, want, got, "index %d", i)
	}
}

func TestReadPlainInt32(t *testing.T) {
	w := newByteWindow(appendPlainInt32(nil, -42))
	v, err := readPlainInt32(w)
	require.NoError(t, err)
	assert.Equal(t, int32(-42), v)
}

func TestReadPlainInt64(t *testing.T) {
	w := newByteWindow(appendPlainInt64(nil, 1<<40))
	v, err := readPlainInt64(w)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), v)
}

func TestReadPlainFloat32(t *testing.T) {
	var src []byte
	bits := math.Float32bits(3.14)
	src = appendLE32(src, bits)
	w := newByteWindow(src)
	v, err := readPlainFloat32(w)
	require.NoError(t, err)
	assert.Equal(t, float32(3.14), v)
}

func TestReadPlainFloat64(t *testing.T) {
	w := newByteWindow(appendPlainFloat64Bits(nil, math.Float64bits(2.71828)))
	v, err := readPlainFloat64(w)
	require.NoError(t, err)
	assert.Equal(t, 2.71828, v)
}

func TestReadPlainByteArray(t *testing.T) {
	w := newByteWindow(appendPlainByteArray(nil, "hello"))
	b, err := readPlainByteArray(w)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

func TestReadPlainByteArrayLengthExceedsWindow(t *testing.T) {
	w := newByteWindow(appendLE32(nil, 100))
	_, err := readPlainByteArray(w)
	require.Error(t, err)
	assert.Equal(t, PayloadLengthExceeded, err.(*Error).Kind)
}

func TestReadPlainByteArrayLengthExceedsLogicalWindowNotPhysicalSlack(t *testing.T) {
	// A declared length that overruns the true page window (10 bytes)
	// but still fits inside decompressPage's physical over-allocation
	// (10+slackBytes) must still fail: the trailing slack is padding,
	// not page content.
	logicalLen := 10
	buf := appendLE32(nil, uint32(logicalLen)) // 4-byte length prefix
	buf = append(buf, make([]byte, logicalLen)...)
	buf = append(buf, make([]byte, slackBytes)...)

	w := newByteWindowWithLimit(buf, 4+logicalLen)
	_, err := readPlainByteArray(w)
	require.NoError(t, err)

	w2 := newByteWindowWithLimit(buf, 4+logicalLen)
	w2.buf[0] = byte(logicalLen + 20)
	_, err = readPlainByteArray(w2)
	require.Error(t, err)
	assert.Equal(t, PayloadLengthExceeded, err.(*Error).Kind)
}

func TestReadPlainByteArrayNegativeLength(t *testing.T) {
	w := newByteWindow(appendLE32(nil, 0x80000000))
	_, err := readPlainByteArray(w)
	require.Error(t, err)
	assert.Equal(t, PayloadLengthExceeded, err.(*Error).Kind)
}

func TestReadPlainFixedLenByteArray(t *testing.T) {
	w := newByteWindow([]byte{1, 2, 3, 4})
	b, err := readPlainFixedLenByteArray(w, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, b)
}

func TestReadPlainFixedLenByteArrayTooShort(t *testing.T) {
	w := newByteWindow([]byte{1, 2})
	_, err := readPlainFixedLenByteArray(w, 4)
	require.Error(t, err)
	assert.Equal(t, PayloadLengthExceeded, err.(*Error).Kind)
}

func TestReadPlainFixedLenByteArrayLengthExceedsLogicalWindowNotPhysicalSlack(t *testing.T) {
	buf := append([]byte{1, 2, 3, 4}, make([]byte, slackBytes)...)
	w := newByteWindowWithLimit(buf, 4)
	_, err := readPlainFixedLenByteArray(w, 8)
	require.Error(t, err)
	assert.Equal(t, PayloadLengthExceeded, err.(*Error).Kind)
}

func TestReadPlainInt96(t *testing.T) {
	src := make([]byte, 12)
	for i := range src {
		src[i] = byte(i + 1)
	}
	w := newByteWindow(src)
	v, err := readPlainInt96(w)
	require.NoError(t, err)
	var want [12]byte
	copy(want[:], src)
	assert.Equal(t, want, v)
}
