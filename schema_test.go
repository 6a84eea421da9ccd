package parquetreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brineio/parquetreader/internal/parquetformat"
)

func TestBuildColumnsFlatOptionalSchema(t *testing.T) {
	md := &parquetformat.FileMetaData{
		Schema: []*parquetformat.SchemaElement{
			schemaRoot(2),
			schemaLeaf("a", parquetformat.Int32, 0),
			schemaLeaf("b", parquetformat.ByteArray, 0),
		},
	}
	cols, err := buildColumns(md)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "a", cols[0].Name)
	assert.Equal(t, TypeInt32, cols[0].Type)
	assert.Equal(t, 0, cols[0].ID)
	assert.Equal(t, "b", cols[1].Name)
	assert.Equal(t, TypeByteArray, cols[1].Type)
	assert.Equal(t, 1, cols[1].ID)
}

func TestBuildColumnsFixedLenByteArrayCarriesTypeLen(t *testing.T) {
	md := &parquetformat.FileMetaData{
		Schema: []*parquetformat.SchemaElement{
			schemaRoot(1),
			schemaLeaf("fixed", parquetformat.FixedLenByteArray, 16),
		},
	}
	cols, err := buildColumns(md)
	require.NoError(t, err)
	assert.Equal(t, 16, cols[0].TypeLen)
}

func TestBuildColumnsRejectsEncryption(t *testing.T) {
	md := &parquetformat.FileMetaData{EncryptionAlgorithmSet: true}
	_, err := buildColumns(md)
	require.Error(t, err)
	assert.Equal(t, EncryptedNotSupported, err.(*Error).Kind)
}

func TestBuildColumnsRejectsNestedSchema(t *testing.T) {
	md := &parquetformat.FileMetaData{
		Schema: []*parquetformat.SchemaElement{
			schemaRoot(1),
			{Name: "group", NumChildren: i32ptrTest(1)},
		},
	}
	_, err := buildColumns(md)
	require.Error(t, err)
	assert.Equal(t, NestedNotSupported, err.(*Error).Kind)
}

func TestBuildColumnsRejectsNonOptionalRepetition(t *testing.T) {
	required := parquetformat.Required
	typ := parquetformat.Int32
	md := &parquetformat.FileMetaData{
		Schema: []*parquetformat.SchemaElement{
			schemaRoot(1),
			{Name: "value", Type: &typ, RepetitionType: &required},
		},
	}
	_, err := buildColumns(md)
	require.Error(t, err)
	assert.Equal(t, NonOptionalNotSupported, err.(*Error).Kind)
}

func TestBuildColumnsRejectsRootChildMismatch(t *testing.T) {
	md := &parquetformat.FileMetaData{
		Schema: []*parquetformat.SchemaElement{
			schemaRoot(2),
			schemaLeaf("a", parquetformat.Int32, 0),
		},
	}
	_, err := buildColumns(md)
	require.Error(t, err)
	assert.Equal(t, NestedNotSupported, err.(*Error).Kind)
}

func i32ptrTest(v int32) *int32 { return &v }
