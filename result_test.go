package parquetreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResultColumnAllocatesMatchingSlice(t *testing.T) {
	col := &Column{Type: TypeInt64}
	rc := newResultColumn(col, 5)
	assert.Len(t, rc.Defined, 5)
	assert.Len(t, rc.Int64Values, 5)
	assert.Nil(t, rc.Int32Values)
}

func TestResultColumnAppendStringAndLookup(t *testing.T) {
	col := &Column{Type: TypeByteArray}
	rc := newResultColumn(col, 2)
	i0 := rc.appendString([]byte("first"))
	i1 := rc.appendString([]byte("second"))
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, "first", string(rc.String(i0)))
	assert.Equal(t, "second", string(rc.String(i1)))
}
