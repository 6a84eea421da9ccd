// Package parquetformat implements the small slice of the Parquet Thrift
// IDL (parquet.thrift) that this reader needs to open a file: the footer
// FileMetaData tree and the per-page PageHeader. It plays the role the
// teacher fills with a full `thrift -gen go` output living in a separate
// `parquet` package; here it is hand-written against the same
// github.com/apache/thrift compact-protocol runtime, in the same
// Read(ctx, iprot)-method shape real generated code takes.
package parquetformat

// Type is the physical, on-disk value type of a schema leaf.
type Type int32

const (
	Boolean           Type = 0
	Int32             Type = 1
	Int64             Type = 2
	Int96             Type = 3
	Float             Type = 4
	Double            Type = 5
	ByteArray         Type = 6
	FixedLenByteArray Type = 7
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN_TYPE"
	}
}

// FieldRepetitionType is the repetition of a schema element.
type FieldRepetitionType int32

const (
	Required FieldRepetitionType = 0
	Optional FieldRepetitionType = 1
	Repeated FieldRepetitionType = 2
)

func (r FieldRepetitionType) String() string {
	switch r {
	case Required:
		return "REQUIRED"
	case Optional:
		return "OPTIONAL"
	case Repeated:
		return "REPEATED"
	default:
		return "UNKNOWN_REPETITION"
	}
}

// Encoding is the value/level encoding of a page.
type Encoding int32

const (
	EncodingPlain                Encoding = 0
	EncodingPlainDictionary      Encoding = 2
	EncodingRLE                  Encoding = 3
	EncodingBitPacked            Encoding = 4
	EncodingDeltaBinaryPacked    Encoding = 5
	EncodingDeltaLengthByteArray Encoding = 6
	EncodingDeltaByteArray       Encoding = 7
	EncodingRLEDictionary        Encoding = 8
	EncodingByteStreamSplit      Encoding = 9
)

func (e Encoding) String() string {
	switch e {
	case EncodingPlain:
		return "PLAIN"
	case EncodingPlainDictionary:
		return "PLAIN_DICTIONARY"
	case EncodingRLE:
		return "RLE"
	case EncodingBitPacked:
		return "BIT_PACKED"
	case EncodingDeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case EncodingDeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case EncodingDeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case EncodingRLEDictionary:
		return "RLE_DICTIONARY"
	case EncodingByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN_ENCODING"
	}
}

// CompressionCodec is the block-compression method of a column chunk.
type CompressionCodec int32

const (
	Uncompressed CompressionCodec = 0
	Snappy       CompressionCodec = 1
	Gzip         CompressionCodec = 2
	Lzo          CompressionCodec = 3
	Brotli       CompressionCodec = 4
	Lz4          CompressionCodec = 5
	Zstd         CompressionCodec = 6
	Lz4Raw       CompressionCodec = 7
)

func (c CompressionCodec) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Lzo:
		return "LZO"
	case Brotli:
		return "BROTLI"
	case Lz4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	case Lz4Raw:
		return "LZ4_RAW"
	default:
		return "UNKNOWN_CODEC"
	}
}

// PageType distinguishes dictionary, data and index pages.
type PageType int32

const (
	DataPage       PageType = 0
	IndexPage      PageType = 1
	DictionaryPage PageType = 2
	DataPageV2     PageType = 3
)

func (p PageType) String() string {
	switch p {
	case DataPage:
		return "DATA_PAGE"
	case IndexPage:
		return "INDEX_PAGE"
	case DictionaryPage:
		return "DICTIONARY_PAGE"
	case DataPageV2:
		return "DATA_PAGE_V2"
	default:
		return "UNKNOWN_PAGE_TYPE"
	}
}

// SchemaElement is one node of the flattened schema tree.
type SchemaElement struct {
	Type           *Type
	TypeLength     *int32
	RepetitionType *FieldRepetitionType
	Name           string
	NumChildren    *int32
	ConvertedType  *int32
	FieldID        *int32
}

// Statistics carries the raw, uninterpreted min/max/null-count bytes a
// writer recorded for a column chunk. The reader never computes these;
// it only surfaces what is already on disk.
type Statistics struct {
	Max          []byte
	Min          []byte
	NullCount    *int64
	DistinctCount *int64
	MaxValue     []byte
	MinValue     []byte
}

// DataPageHeader is the data-page-v1 sub-header.
type DataPageHeader struct {
	NumValues               int32
	Encoding                Encoding
	DefinitionLevelEncoding Encoding
	RepetitionLevelEncoding Encoding
	Statistics              *Statistics
}

// DictionaryPageHeader is the dictionary-page sub-header.
type DictionaryPageHeader struct {
	NumValues int32
	Encoding  Encoding
	IsSorted  *bool
}

// PageHeader is the per-page framing record.
type PageHeader struct {
	Type                 PageType
	UncompressedPageSize int32
	CompressedPageSize   int32
	DataPageHeader       *DataPageHeader
	DictionaryPageHeader *DictionaryPageHeader
	// The data_page_header_v2 field is not decoded: v2 pages are
	// rejected (v2-not-supported) as soon as Type is observed, so nothing
	// needs its fields. PageHeader.Read skips the struct and only records
	// here that it was present.
	sawDataPageHeaderV2 bool
}

// SawDataPageHeaderV2 reports whether the header carried a (skipped)
// data_page_header_v2 field.
func (p *PageHeader) SawDataPageHeaderV2() bool { return p.sawDataPageHeaderV2 }

// ColumnMetaData is the per-chunk descriptor embedded in ColumnChunk.
type ColumnMetaData struct {
	Type                  Type
	Encodings             []Encoding
	PathInSchema          []string
	Codec                 CompressionCodec
	NumValues             int64
	TotalUncompressedSize int64
	TotalCompressedSize   int64
	DataPageOffset        int64
	DictionaryPageOffset  *int64
	Statistics            *Statistics
}

// ColumnChunk is one column's storage descriptor within a row group.
type ColumnChunk struct {
	FilePath *string
	FileOffset int64
	MetaData *ColumnMetaData
}

// RowGroup is a horizontal partition of the table.
type RowGroup struct {
	Columns             []*ColumnChunk
	TotalByteSize       int64
	NumRows             int64
}

// FileMetaData is the fully decoded file footer.
type FileMetaData struct {
	Version               int32
	Schema                []*SchemaElement
	NumRows               int64
	RowGroups             []*RowGroup
	CreatedBy             *string
	EncryptionAlgorithmSet bool
}
