package parquetreader

import (
	"os"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"

	"github.com/brineio/parquetreader/internal/parquetformat"
)

func schemaRoot(nChildren int32) *parquetformat.SchemaElement {
	n := nChildren
	return &parquetformat.SchemaElement{Name: "schema", NumChildren: &n}
}

func schemaLeaf(name string, typ parquetformat.Type, typeLen int32) *parquetformat.SchemaElement {
	t := typ
	rep := parquetformat.Optional
	se := &parquetformat.SchemaElement{Name: name, Type: &t, RepetitionType: &rep}
	if typeLen > 0 {
		se.TypeLength = &typeLen
	}
	return se
}

func compressForTest(t *testing.T, codec parquetformat.CompressionCodec, plain []byte) []byte {
	switch codec {
	case parquetformat.Uncompressed:
		return plain
	case parquetformat.Snappy:
		return snappy.Encode(nil, plain)
	default:
		t.Fatalf("compressForTest: unsupported codec %v", codec)
		return nil
	}
}

func encodeDictionaryPageBytes(t *testing.T, codec parquetformat.CompressionCodec, encoding parquetformat.Encoding, plain []byte, numValues int) []byte {
	compressed := compressForTest(t, codec, plain)
	ph := &parquetformat.PageHeader{
		Type:                 parquetformat.DictionaryPage,
		UncompressedPageSize: int32(len(plain)),
		CompressedPageSize:   int32(len(compressed)),
		DictionaryPageHeader: &parquetformat.DictionaryPageHeader{NumValues: int32(numValues), Encoding: encoding},
	}
	hdr, err := parquetformat.EncodePageHeader(ph)
	require.NoError(t, err)
	return append(hdr, compressed...)
}

func encodeDataPageBytes(t *testing.T, codec parquetformat.CompressionCodec, encoding parquetformat.Encoding, plain []byte, numValues int) []byte {
	compressed := compressForTest(t, codec, plain)
	ph := &parquetformat.PageHeader{
		Type:                 parquetformat.DataPage,
		UncompressedPageSize: int32(len(plain)),
		CompressedPageSize:   int32(len(compressed)),
		DataPageHeader: &parquetformat.DataPageHeader{
			NumValues:               int32(numValues),
			Encoding:                encoding,
			DefinitionLevelEncoding: parquetformat.EncodingRLE,
			RepetitionLevelEncoding: parquetformat.EncodingRLE,
		},
	}
	hdr, err := parquetformat.EncodePageHeader(ph)
	require.NoError(t, err)
	return append(hdr, compressed...)
}

// encodeV2PlaceholderPageBytes builds a page header declaring
// data_page_v2, with no sub-header payload beyond the framing fields —
// enough to be rejected as soon as its type is observed.
func encodeV2PlaceholderPageBytes(t *testing.T) []byte {
	ph := &parquetformat.PageHeader{
		Type:                 parquetformat.DataPageV2,
		UncompressedPageSize: 0,
		CompressedPageSize:   0,
	}
	hdr, err := parquetformat.EncodePageHeader(ph)
	require.NoError(t, err)
	return hdr
}

// encodeDefLevels frames bits (one per row, 1 = defined) as the hybrid
// RLE stream data-page-v1 definition levels are stored as.
func encodeDefLevels(bits []uint32) []byte {
	return rleFramed(literalRun(padTo8(append([]uint32{}, bits...)), 1))
}

func allOnes(n int) []uint32 {
	v := make([]uint32, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

func allZeros(n int) []uint32 {
	return make([]uint32, n)
}

// chunkSpec describes one column chunk's page bytes, ready to be
// concatenated into a file buffer at a known offset.
type chunkSpec struct {
	typ       parquetformat.Type
	pathName  string
	codec     parquetformat.CompressionCodec
	numValues int64
	pages     []byte // dictionary page(s), if any, followed by data page(s)
	dictLen   int64  // byte length of the leading dictionary section, 0 if none
}

func buildParquetFile(t *testing.T, schema []*parquetformat.SchemaElement, chunks []chunkSpec, nrows int64) []byte {
	buf := []byte("PAR1")

	columnChunks := make([]*parquetformat.ColumnChunk, len(chunks))
	var totalByteSize int64
	for i, c := range chunks {
		chunkStart := int64(len(buf))
		buf = append(buf, c.pages...)
		chunkEnd := int64(len(buf))
		totalCompressed := chunkEnd - chunkStart

		var dictOffset *int64
		dataOffset := chunkStart
		if c.dictLen > 0 {
			do := chunkStart
			dictOffset = &do
			dataOffset = chunkStart + c.dictLen
		}

		md := &parquetformat.ColumnMetaData{
			Type:                  c.typ,
			Encodings:             []parquetformat.Encoding{parquetformat.EncodingPlain, parquetformat.EncodingRLEDictionary, parquetformat.EncodingRLE},
			PathInSchema:          []string{c.pathName},
			Codec:                 c.codec,
			NumValues:             c.numValues,
			TotalUncompressedSize: totalCompressed,
			TotalCompressedSize:   totalCompressed,
			DataPageOffset:        dataOffset,
			DictionaryPageOffset:  dictOffset,
		}
		columnChunks[i] = &parquetformat.ColumnChunk{FileOffset: chunkStart, MetaData: md}
		totalByteSize += totalCompressed
	}

	rg := &parquetformat.RowGroup{Columns: columnChunks, TotalByteSize: totalByteSize, NumRows: nrows}
	createdBy := "fixture-writer"
	meta := &parquetformat.FileMetaData{
		Version:   1,
		Schema:    schema,
		NumRows:   nrows,
		RowGroups: []*parquetformat.RowGroup{rg},
		CreatedBy: &createdBy,
	}
	footer, err := parquetformat.EncodeFileMetaData(meta)
	require.NoError(t, err)
	buf = append(buf, footer...)
	buf = appendLE32(buf, uint32(len(footer)))
	buf = append(buf, "PAR1"...)
	return buf
}

// writeFixture writes buf to a temp file and returns its path.
func writeFixture(t *testing.T, buf []byte) string {
	f, err := os.CreateTemp(t.TempDir(), "fixture-*.parquet")
	require.NoError(t, err)
	_, err = f.Write(buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
