package parquetreader

import (
	"os"

	"github.com/pkg/errors"

	"github.com/brineio/parquetreader/internal/parquetformat"
)

// ParquetFile owns one open file and its immutable, already-validated
// metadata for the reader's lifetime. Concurrent use of a single
// instance from multiple goroutines is unsafe; open separate instances
// against the same path for parallel row-group reads.
type ParquetFile struct {
	f    *os.File
	meta *parquetformat.FileMetaData

	columns []*Column
	nrow    int64
}

// Open validates the file's framing (PAR1 magic, footer length) and
// decodes and validates its structural metadata.
func Open(path string) (*ParquetFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErr(IOError, "open file", err)
	}
	pf, err := openFile(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return pf, nil
}

func openFile(f *os.File) (*ParquetFile, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, wrapErr(IOError, "stat file", err)
	}
	if info.Size() < 12 {
		return nil, newErr(BadMagic, "file shorter than the minimum framing size")
	}

	md, err := parquetformat.ReadFileMetaData(f)
	if err != nil {
		if errors.Is(err, parquetformat.ErrBadMagic) {
			return nil, newErr(BadMagic, "missing PAR1 marker")
		}
		if errors.Is(err, parquetformat.ErrBadFooter) {
			return nil, newErr(BadFooter, "invalid footer length")
		}
		return nil, wrapErr(MetadataDecode, "decode footer", err)
	}

	columns, err := buildColumns(md)
	if err != nil {
		return nil, err
	}

	var nrow int64
	for _, rg := range md.RowGroups {
		nrow += rg.NumRows
	}

	return &ParquetFile{f: f, meta: md, columns: columns, nrow: nrow}, nil
}

// Close releases the underlying file handle.
func (pf *ParquetFile) Close() error {
	return pf.f.Close()
}

// Columns returns the ordered list of flat, top-level columns.
func (pf *ParquetFile) Columns() []*Column {
	return pf.columns
}

// NRow returns the total row count across all row groups.
func (pf *ParquetFile) NRow() int64 {
	return pf.nrow
}

// NumRowGroups returns the number of row groups in the file.
func (pf *ParquetFile) NumRowGroups() int {
	return len(pf.meta.RowGroups)
}

// ScanState is a cursor across a file's row groups.
type ScanState struct {
	rowGroupIdx int
}

// InitializeResult allocates a result container shaped to the file's
// columns; the caller reuses it across calls to Scan.
func (pf *ParquetFile) InitializeResult() *Result {
	return &Result{Columns: make([]*ResultColumn, len(pf.columns))}
}

// Scan fills result with the next row group's data, in column-id
// order, returning false once every row group has been consumed.
func (pf *ParquetFile) Scan(state *ScanState, result *Result) (bool, error) {
	if state.rowGroupIdx >= len(pf.meta.RowGroups) {
		result.NRows = 0
		return false, nil
	}

	rg := pf.meta.RowGroups[state.rowGroupIdx]
	nrows := int(rg.NumRows)
	result.NRows = nrows
	result.Columns = result.Columns[:0]

	for _, col := range pf.columns {
		if col.ID >= len(rg.Columns) {
			return false, newErr(MetadataDecode, "row group missing column chunk")
		}
		chunk := rg.Columns[col.ID]
		rc := newResultColumn(col, nrows)
		if err := decodeColumnChunk(pf.f, chunk, col, rc, nrows); err != nil {
			return false, err
		}
		result.Columns = append(result.Columns, rc)
	}

	state.rowGroupIdx++
	return true, nil
}

// ColumnChunkInfo carries a column chunk's directory-level metadata —
// compression codec, declared encodings, byte offsets/sizes, and the
// writer's raw statistics — without decoding any of its pages.
type ColumnChunkInfo struct {
	Codec                 parquetformat.CompressionCodec
	Encodings             []parquetformat.Encoding
	DataPageOffset        int64
	DictionaryPageOffset  *int64
	TotalCompressedSize   int64
	TotalUncompressedSize int64
	NumValues             int64
	Statistics            *parquetformat.Statistics
}

// ColumnChunkInfo returns the directory-level metadata for one column
// of one row group, identified by row-group index and column id.
func (pf *ParquetFile) ColumnChunkInfo(rowGroupIdx, columnID int) (ColumnChunkInfo, error) {
	if rowGroupIdx < 0 || rowGroupIdx >= len(pf.meta.RowGroups) {
		return ColumnChunkInfo{}, newErr(MetadataDecode, "row group index out of range")
	}
	rg := pf.meta.RowGroups[rowGroupIdx]
	if columnID < 0 || columnID >= len(rg.Columns) {
		return ColumnChunkInfo{}, newErr(MetadataDecode, "column id out of range")
	}
	md := rg.Columns[columnID].MetaData
	if md == nil {
		return ColumnChunkInfo{}, newErr(MetadataDecode, "column chunk missing metadata")
	}
	return ColumnChunkInfo{
		Codec:                 md.Codec,
		Encodings:             md.Encodings,
		DataPageOffset:        md.DataPageOffset,
		DictionaryPageOffset:  md.DictionaryPageOffset,
		TotalCompressedSize:   md.TotalCompressedSize,
		TotalUncompressedSize: md.TotalUncompressedSize,
		NumValues:             md.NumValues,
		Statistics:            md.Statistics,
	}, nil
}
