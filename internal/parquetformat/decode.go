package parquetformat

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/pkg/errors"
)

func i32ptr(v int32) *int32                             { return &v }
func i64ptr(v int64) *int64                             { return &v }
func boolptr(v bool) *bool                              { return &v }
func repPtr(v FieldRepetitionType) *FieldRepetitionType { return &v }
func typePtr(v Type) *Type                              { return &v }

// Read decodes one SchemaElement struct from iprot, per the field IDs
// of parquet.thrift's SchemaElement (fields 1,2,3,4,5,6,9 are the ones
// this reader cares about; everything else -- logicalType, scale,
// precision -- is skipped).
func (s *SchemaElement) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return errors.Wrap(err, "SchemaElement: struct begin")
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return errors.Wrap(err, "SchemaElement: field begin")
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			s.Type = typePtr(Type(v))
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			s.TypeLength = i32ptr(v)
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			s.RepetitionType = repPtr(FieldRepetitionType(v))
		case 4:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return err
			}
			s.Name = v
		case 5:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			s.NumChildren = i32ptr(v)
		case 6:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			s.ConvertedType = i32ptr(v)
		case 9:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			s.FieldID = i32ptr(v)
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

// Read decodes one Statistics struct (min/max/null_count/distinct_count
// and the newer min_value/max_value fields).
func (s *Statistics) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return err
			}
			s.Max = v
		case 2:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return err
			}
			s.Min = v
		case 3:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			s.NullCount = i64ptr(v)
		case 4:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			s.DistinctCount = i64ptr(v)
		case 5:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return err
			}
			s.MaxValue = v
		case 6:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return err
			}
			s.MinValue = v
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func readEncodingList(ctx context.Context, iprot thrift.TProtocol) ([]Encoding, error) {
	elemType, size, err := iprot.ReadListBegin(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Encoding, 0, size)
	for i := 0; i < size; i++ {
		if elemType == thrift.I32 {
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, Encoding(v))
		} else if err := iprot.Skip(ctx, elemType); err != nil {
			return nil, err
		}
	}
	return out, iprot.ReadListEnd(ctx)
}

func readStringList(ctx context.Context, iprot thrift.TProtocol) ([]string, error) {
	elemType, size, err := iprot.ReadListBegin(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, size)
	for i := 0; i < size; i++ {
		if elemType == thrift.STRING {
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		} else if err := iprot.Skip(ctx, elemType); err != nil {
			return nil, err
		}
	}
	return out, iprot.ReadListEnd(ctx)
}

// Read decodes one ColumnMetaData struct.
func (c *ColumnMetaData) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			c.Type = Type(v)
		case 2:
			enc, err := readEncodingList(ctx, iprot)
			if err != nil {
				return err
			}
			c.Encodings = enc
		case 3:
			paths, err := readStringList(ctx, iprot)
			if err != nil {
				return err
			}
			c.PathInSchema = paths
		case 4:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			c.Codec = CompressionCodec(v)
		case 5:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			c.NumValues = v
		case 6:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			c.TotalUncompressedSize = v
		case 7:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			c.TotalCompressedSize = v
		case 9:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			c.DataPageOffset = v
		case 11:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			c.DictionaryPageOffset = i64ptr(v)
		case 12:
			stats := &Statistics{}
			if err := stats.Read(ctx, iprot); err != nil {
				return err
			}
			c.Statistics = stats
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

// Read decodes one ColumnChunk struct.
func (c *ColumnChunk) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return err
			}
			c.FilePath = &v
		case 2:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			c.FileOffset = v
		case 3:
			md := &ColumnMetaData{}
			if err := md.Read(ctx, iprot); err != nil {
				return err
			}
			c.MetaData = md
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

// Read decodes one RowGroup struct.
func (r *RowGroup) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			elemType, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			r.Columns = make([]*ColumnChunk, 0, size)
			for i := 0; i < size; i++ {
				if elemType == thrift.STRUCT {
					cc := &ColumnChunk{}
					if err := cc.Read(ctx, iprot); err != nil {
						return err
					}
					r.Columns = append(r.Columns, cc)
				} else if err := iprot.Skip(ctx, elemType); err != nil {
					return err
				}
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 2:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			r.TotalByteSize = v
		case 3:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			r.NumRows = v
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

// Read decodes the top-level FileMetaData struct (the file footer).
func (m *FileMetaData) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			m.Version = v
		case 2:
			elemType, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			m.Schema = make([]*SchemaElement, 0, size)
			for i := 0; i < size; i++ {
				if elemType == thrift.STRUCT {
					se := &SchemaElement{}
					if err := se.Read(ctx, iprot); err != nil {
						return err
					}
					m.Schema = append(m.Schema, se)
				} else if err := iprot.Skip(ctx, elemType); err != nil {
					return err
				}
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 3:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			m.NumRows = v
		case 4:
			elemType, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			m.RowGroups = make([]*RowGroup, 0, size)
			for i := 0; i < size; i++ {
				if elemType == thrift.STRUCT {
					rg := &RowGroup{}
					if err := rg.Read(ctx, iprot); err != nil {
						return err
					}
					m.RowGroups = append(m.RowGroups, rg)
				} else if err := iprot.Skip(ctx, elemType); err != nil {
					return err
				}
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 6:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return err
			}
			m.CreatedBy = &v
		case 8:
			// encryption_algorithm: a Thrift union. We never need to
			// know which variant, only that the file declared one.
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
			m.EncryptionAlgorithmSet = true
			if err := iprot.ReadFieldEnd(ctx); err != nil {
				return err
			}
			continue
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

// Read decodes one DataPageHeader struct.
func (d *DataPageHeader) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			d.NumValues = v
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			d.Encoding = Encoding(v)
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			d.DefinitionLevelEncoding = Encoding(v)
		case 4:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			d.RepetitionLevelEncoding = Encoding(v)
		case 5:
			stats := &Statistics{}
			if err := stats.Read(ctx, iprot); err != nil {
				return err
			}
			d.Statistics = stats
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

// Read decodes one DictionaryPageHeader struct.
func (d *DictionaryPageHeader) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			d.NumValues = v
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			d.Encoding = Encoding(v)
		case 3:
			v, err := iprot.ReadBool(ctx)
			if err != nil {
				return err
			}
			d.IsSorted = boolptr(v)
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

// Read decodes one PageHeader struct.
func (p *PageHeader) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldType, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.Type = PageType(v)
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.UncompressedPageSize = v
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.CompressedPageSize = v
		case 5:
			dph := &DataPageHeader{}
			if err := dph.Read(ctx, iprot); err != nil {
				return err
			}
			p.DataPageHeader = dph
		case 7:
			dph := &DictionaryPageHeader{}
			if err := dph.Read(ctx, iprot); err != nil {
				return err
			}
			p.DictionaryPageHeader = dph
		case 8:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
			p.sawDataPageHeaderV2 = true
			if err := iprot.ReadFieldEnd(ctx); err != nil {
				return err
			}
			continue
		default:
			if err := iprot.Skip(ctx, fieldType); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}
