package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	parquetreader "github.com/brineio/parquetreader"
)

func TestFormatValueNullRow(t *testing.T) {
	col := &parquetreader.Column{Name: "value", Type: parquetreader.TypeInt32}
	rc := &parquetreader.ResultColumn{
		Column:      col,
		Defined:     []byte{0, 1},
		Int32Values: []int32{0, 7},
	}
	assert.Equal(t, "null", formatValue(rc, 0))
	assert.Equal(t, "7", formatValue(rc, 1))
}

func TestFormatValueScalarTypes(t *testing.T) {
	boolCol := &parquetreader.Column{Name: "flag", Type: parquetreader.TypeBool}
	boolRC := &parquetreader.ResultColumn{Column: boolCol, Defined: []byte{1}, BoolValues: []bool{true}}
	assert.Equal(t, "true", formatValue(boolRC, 0))

	i64Col := &parquetreader.Column{Name: "big", Type: parquetreader.TypeInt64}
	i64RC := &parquetreader.ResultColumn{Column: i64Col, Defined: []byte{1}, Int64Values: []int64{9000000000}}
	assert.Equal(t, "9000000000", formatValue(i64RC, 0))

	f64Col := &parquetreader.Column{Name: "measure", Type: parquetreader.TypeFloat64}
	f64RC := &parquetreader.ResultColumn{Column: f64Col, Defined: []byte{1}, Float64Values: []float64{1.5}}
	assert.Equal(t, "1.5", formatValue(f64RC, 0))
}
