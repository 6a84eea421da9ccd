package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	parquetreader "github.com/brineio/parquetreader"
	"github.com/brineio/parquetreader/internal/parquetformat"
)

func TestPrintFlatSchema(t *testing.T) {
	columns := []*parquetreader.Column{
		{ID: 0, Name: "id", Type: parquetreader.TypeInt64},
		{ID: 1, Name: "tag", Type: parquetreader.TypeFixedLenByteArray, TypeLen: 8},
	}
	var buf bytes.Buffer
	printFlatSchema(&buf, columns, nil)
	out := buf.String()
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "i64")
	assert.Contains(t, out, "tag")
	assert.Contains(t, out, "fixed_len_byte_array")
	assert.Contains(t, out, "8")
}

func TestPrintFlatSchemaWithChunkInfoShowsCodec(t *testing.T) {
	columns := []*parquetreader.Column{
		{ID: 0, Name: "id", Type: parquetreader.TypeInt64},
	}
	chunkInfo := func(columnID int) (parquetreader.ColumnChunkInfo, error) {
		return parquetreader.ColumnChunkInfo{Codec: parquetformat.Snappy}, nil
	}
	var buf bytes.Buffer
	printFlatSchema(&buf, columns, chunkInfo)
	assert.Contains(t, buf.String(), "SNAPPY")
}

func TestPhysicalTypeName(t *testing.T) {
	assert.Equal(t, "bool", physicalTypeName(parquetreader.TypeBool))
	assert.Equal(t, "byte_array", physicalTypeName(parquetreader.TypeByteArray))
}
