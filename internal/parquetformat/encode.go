package parquetformat

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"
)

// Write methods mirror the Read methods in decode.go in the same generated-
// code shape. Nothing in this reader writes a Parquet file, but tests
// need a reliable way to build synthetic footers and page headers, and
// serializing through the real compact-protocol writer is far less
// error-prone than hand-assembling framed bytes.

func (s *SchemaElement) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "SchemaElement"); err != nil {
		return err
	}
	if s.Type != nil {
		if err := oprot.WriteFieldBegin(ctx, "type", thrift.I32, 1); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, int32(*s.Type)); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if s.TypeLength != nil {
		if err := oprot.WriteFieldBegin(ctx, "type_length", thrift.I32, 2); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, *s.TypeLength); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if s.RepetitionType != nil {
		if err := oprot.WriteFieldBegin(ctx, "repetition_type", thrift.I32, 3); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, int32(*s.RepetitionType)); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldBegin(ctx, "name", thrift.STRING, 4); err != nil {
		return err
	}
	if err := oprot.WriteString(ctx, s.Name); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if s.NumChildren != nil {
		if err := oprot.WriteFieldBegin(ctx, "num_children", thrift.I32, 5); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, *s.NumChildren); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if s.FieldID != nil {
		if err := oprot.WriteFieldBegin(ctx, "field_id", thrift.I32, 9); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, *s.FieldID); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

func (c *ColumnMetaData) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "ColumnMetaData"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "type", thrift.I32, 1); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(c.Type)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "encodings", thrift.LIST, 2); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.I32, len(c.Encodings)); err != nil {
		return err
	}
	for _, e := range c.Encodings {
		if err := oprot.WriteI32(ctx, int32(e)); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "path_in_schema", thrift.LIST, 3); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.STRING, len(c.PathInSchema)); err != nil {
		return err
	}
	for _, p := range c.PathInSchema {
		if err := oprot.WriteString(ctx, p); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "codec", thrift.I32, 4); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(c.Codec)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "num_values", thrift.I64, 5); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, c.NumValues); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "total_uncompressed_size", thrift.I64, 6); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, c.TotalUncompressedSize); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "total_compressed_size", thrift.I64, 7); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, c.TotalCompressedSize); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "data_page_offset", thrift.I64, 9); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, c.DataPageOffset); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if c.DictionaryPageOffset != nil {
		if err := oprot.WriteFieldBegin(ctx, "dictionary_page_offset", thrift.I64, 11); err != nil {
			return err
		}
		if err := oprot.WriteI64(ctx, *c.DictionaryPageOffset); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

func (c *ColumnChunk) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "ColumnChunk"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "file_offset", thrift.I64, 2); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, c.FileOffset); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if c.MetaData != nil {
		if err := oprot.WriteFieldBegin(ctx, "meta_data", thrift.STRUCT, 3); err != nil {
			return err
		}
		if err := c.MetaData.Write(ctx, oprot); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

func (r *RowGroup) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "RowGroup"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "columns", thrift.LIST, 1); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(r.Columns)); err != nil {
		return err
	}
	for _, c := range r.Columns {
		if err := c.Write(ctx, oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "total_byte_size", thrift.I64, 2); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, r.TotalByteSize); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "num_rows", thrift.I64, 3); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, r.NumRows); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

func (m *FileMetaData) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "FileMetaData"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "version", thrift.I32, 1); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, m.Version); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "schema", thrift.LIST, 2); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(m.Schema)); err != nil {
		return err
	}
	for _, se := range m.Schema {
		if err := se.Write(ctx, oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "num_rows", thrift.I64, 3); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, m.NumRows); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "row_groups", thrift.LIST, 4); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(m.RowGroups)); err != nil {
		return err
	}
	for _, rg := range m.RowGroups {
		if err := rg.Write(ctx, oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if m.EncryptionAlgorithmSet {
		if err := oprot.WriteFieldBegin(ctx, "encryption_algorithm", thrift.STRUCT, 8); err != nil {
			return err
		}
		// An empty union payload is enough for the reader, which only
		// checks for the field's presence.
		if err := oprot.WriteStructBegin(ctx, "EncryptionAlgorithm"); err != nil {
			return err
		}
		if err := oprot.WriteFieldStop(ctx); err != nil {
			return err
		}
		if err := oprot.WriteStructEnd(ctx); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

func (d *DataPageHeader) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "DataPageHeader"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "num_values", thrift.I32, 1); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, d.NumValues); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "encoding", thrift.I32, 2); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(d.Encoding)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "definition_level_encoding", thrift.I32, 3); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(d.DefinitionLevelEncoding)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "repetition_level_encoding", thrift.I32, 4); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(d.RepetitionLevelEncoding)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

func (d *DictionaryPageHeader) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "DictionaryPageHeader"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "num_values", thrift.I32, 1); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, d.NumValues); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "encoding", thrift.I32, 2); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(d.Encoding)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

func (p *PageHeader) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "PageHeader"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "type", thrift.I32, 1); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(p.Type)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "uncompressed_page_size", thrift.I32, 2); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, p.UncompressedPageSize); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "compressed_page_size", thrift.I32, 3); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, p.CompressedPageSize); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if p.DataPageHeader != nil {
		if err := oprot.WriteFieldBegin(ctx, "data_page_header", thrift.STRUCT, 5); err != nil {
			return err
		}
		if err := p.DataPageHeader.Write(ctx, oprot); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.DictionaryPageHeader != nil {
		if err := oprot.WriteFieldBegin(ctx, "dictionary_page_header", thrift.STRUCT, 7); err != nil {
			return err
		}
		if err := p.DictionaryPageHeader.Write(ctx, oprot); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}
