package parquetreader

import (
	"github.com/brineio/parquetreader/internal/parquetformat"
)

// PhysicalType is the closed set of on-disk value encodings this
// reader understands.
type PhysicalType int

const (
	TypeBool PhysicalType = iota
	TypeInt32
	TypeInt64
	TypeInt96
	TypeFloat32
	TypeFloat64
	TypeByteArray
	TypeFixedLenByteArray
)

func physicalTypeFrom(t parquetformat.Type) (PhysicalType, error) {
	switch t {
	case parquetformat.Boolean:
		return TypeBool, nil
	case parquetformat.Int32:
		return TypeInt32, nil
	case parquetformat.Int64:
		return TypeInt64, nil
	case parquetformat.Int96:
		return TypeInt96, nil
	case parquetformat.Float:
		return TypeFloat32, nil
	case parquetformat.Double:
		return TypeFloat64, nil
	case parquetformat.ByteArray:
		return TypeByteArray, nil
	case parquetformat.FixedLenByteArray:
		return TypeFixedLenByteArray, nil
	default:
		return 0, newErr(UnsupportedType, t.String())
	}
}

// Column describes one flat, top-level leaf of the file's schema.
type Column struct {
	ID       int
	Name     string
	Type     PhysicalType
	TypeLen  int // valid only when Type == TypeFixedLenByteArray
	Schema   *parquetformat.SchemaElement
}

func buildColumns(md *parquetformat.FileMetaData) ([]*Column, error) {
	if md.EncryptionAlgorithmSet {
		return nil, newErr(EncryptedNotSupported, "file declares an encryption algorithm")
	}
	if len(md.Schema) < 2 {
		return nil, newErr(NestedNotSupported, "schema too small")
	}
	root := md.Schema[0]
	if root.NumChildren == nil || int(*root.NumChildren) != len(md.Schema)-1 {
		return nil, newErr(NestedNotSupported, "root child count mismatch")
	}

	columns := make([]*Column, 0, len(md.Schema)-1)
	for i, se := range md.Schema[1:] {
		if se.NumChildren != nil && *se.NumChildren != 0 {
			return nil, newErr(NestedNotSupported, se.Name)
		}
		if se.Type == nil {
			return nil, newErr(NestedNotSupported, se.Name+": missing physical type")
		}
		if se.RepetitionType == nil || *se.RepetitionType != parquetformat.Optional {
			return nil, newErr(NonOptionalNotSupported, se.Name)
		}
		pt, err := physicalTypeFrom(*se.Type)
		if err != nil {
			return nil, err
		}
		typeLen := 0
		if pt == TypeFixedLenByteArray {
			if se.TypeLength == nil {
				return nil, newErr(UnsupportedType, se.Name+": missing type_length")
			}
			typeLen = int(*se.TypeLength)
		}
		columns = append(columns, &Column{
			ID:      i,
			Name:    se.Name,
			Type:    pt,
			TypeLen: typeLen,
			Schema:  se,
		})
	}
	return columns, nil
}
