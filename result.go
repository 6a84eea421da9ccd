package parquetreader

// stringEntry is one (offset, length) slot into a ResultColumn's byte
// arena. The value slot for byte_array / fixed_len_byte_array columns
// stores the index of the entry describing that row's bytes.
type stringEntry struct {
	offset int
	length int
}

// ResultColumn is the output buffer for one column across one row
// group: a dense, fixed-width value array (typed per the column's
// physical type) and a parallel byte-valued Defined mask. Variable-
// length columns additionally own a byte arena and an index array of
// entries into it; the same arena backs both the dictionary and the
// materialized result for byte_array columns, per the unified
// dictionary/result-heap design.
type ResultColumn struct {
	Column *Column

	Defined []byte

	BoolValues    []bool
	Int32Values   []int32
	Int64Values   []int64
	Int96Values   [][12]byte
	Float32Values []float32
	Float64Values []float64

	// HeapIndex holds, for byte_array and fixed_len_byte_array columns,
	// the index into Arena/Entries describing each row's bytes.
	HeapIndex []int
	Arena     []byte
	Entries   []stringEntry
}

// newResultColumn allocates a result column sized to nrows, per §4.5's
// initialize_result contract: value array width depends on physical
// type, defined array zeroed.
func newResultColumn(col *Column, nrows int) *ResultColumn {
	rc := &ResultColumn{
		Column:  col,
		Defined: make([]byte, nrows),
	}
	switch col.Type {
	case TypeBool:
		rc.BoolValues = make([]bool, nrows)
	case TypeInt32:
		rc.Int32Values = make([]int32, nrows)
	case TypeInt64:
		rc.Int64Values = make([]int64, nrows)
	case TypeInt96:
		rc.Int96Values = make([][12]byte, nrows)
	case TypeFloat32:
		rc.Float32Values = make([]float32, nrows)
	case TypeFloat64:
		rc.Float64Values = make([]float64, nrows)
	case TypeByteArray, TypeFixedLenByteArray:
		rc.HeapIndex = make([]int, nrows)
	}
	return rc
}

// appendString stores b in the arena and returns the new entry's
// index, growing Entries by one.
func (rc *ResultColumn) appendString(b []byte) int {
	off := len(rc.Arena)
	rc.Arena = append(rc.Arena, b...)
	idx := len(rc.Entries)
	rc.Entries = append(rc.Entries, stringEntry{offset: off, length: len(b)})
	return idx
}

// String returns the bytes an entry index refers to.
func (rc *ResultColumn) String(idx int) []byte {
	e := rc.Entries[idx]
	return rc.Arena[e.offset : e.offset+e.length]
}

// Result is a fully populated row group: one ResultColumn per column,
// in column-id order.
type Result struct {
	NRows   int
	Columns []*ResultColumn
}
