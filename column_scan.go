package parquetreader

import (
	"io"

	"github.com/brineio/parquetreader/internal/parquetformat"
)

// decodeColumnChunk decodes one column chunk into rc: an optional
// dictionary page followed by one or more data-page-v1 records, read
// and dispatched per the page loop in §4.4.
func decodeColumnChunk(r io.ReaderAt, chunk *parquetformat.ColumnChunk, col *Column, rc *ResultColumn, nrows int) error {
	if chunk.FilePath != nil {
		return newErr(ExternalChunkUnsupported, "column chunk references another file")
	}
	md := chunk.MetaData
	if md == nil {
		return newErr(MetadataDecode, "column chunk missing metadata")
	}
	if len(md.PathInSchema) != 1 {
		return newErr(NestedNotSupported, "column chunk path is not a single element")
	}

	startOffset := md.DataPageOffset
	if md.DictionaryPageOffset != nil && *md.DictionaryPageOffset >= 4 {
		startOffset = *md.DictionaryPageOffset
	}

	total := int(md.TotalCompressedSize)
	buf := make([]byte, total+slackBytes)
	if total > 0 {
		n, err := r.ReadAt(buf[:total], startOffset)
		if err != nil && err != io.EOF {
			return wrapErr(IOError, "read column chunk", err)
		}
		if n != total {
			return newErr(IOError, "short read of column chunk")
		}
	}

	var dict *dictionary
	hasDict := false
	rowOffset := 0
	cursor := 0

	for cursor < total {
		header, headerLen, err := parquetformat.ReadPageHeader(&sliceReader{buf: buf[cursor:total]})
		if err != nil {
			return wrapErr(MetadataDecode, "decode page header", err)
		}
		cursor += headerLen
		compressedSize := int(header.CompressedPageSize)
		if cursor+compressedSize > total {
			return newErr(IOError, "page runs past chunk boundary")
		}
		payload := buf[cursor : cursor+compressedSize]

		switch header.Type {
		case parquetformat.DictionaryPage:
			if hasDict {
				return newErr(DuplicateDictionary, "second dictionary page in one chunk")
			}
			dph := header.DictionaryPageHeader
			if dph == nil {
				return newErr(MetadataDecode, "dictionary page missing sub-header")
			}
			if dph.Encoding != parquetformat.EncodingPlain && dph.Encoding != parquetformat.EncodingPlainDictionary {
				return newErr(UnsupportedEncoding, dph.Encoding.String())
			}
			uncompressedSize := int(header.UncompressedPageSize)
			window, err := decompressPage(md.Codec, payload, uncompressedSize)
			if err != nil {
				return err
			}
			d, err := decodeDictionaryPage(window, col, rc, int(dph.NumValues), uncompressedSize)
			if err != nil {
				return err
			}
			dict = d
			hasDict = true

		case parquetformat.DataPage:
			dh := header.DataPageHeader
			if dh == nil {
				return newErr(MetadataDecode, "data page missing sub-header")
			}
			if isDictEncoding(dh.Encoding) && !hasDict {
				return newErr(MissingDictionary, "dictionary-coded data page before dictionary page")
			}
			uncompressedSize := int(header.UncompressedPageSize)
			window, err := decompressPage(md.Codec, payload, uncompressedSize)
			if err != nil {
				return err
			}
			n := int(dh.NumValues)
			if rowOffset+n > nrows {
				return newErr(MetadataDecode, "data page overruns row group row count")
			}
			if err := decodeDataPageV1(dh, window, col, rc, rowOffset, dict, uncompressedSize); err != nil {
				return err
			}
			rowOffset += n

		case parquetformat.DataPageV2:
			return newErr(V2NotSupported, "data page v2 present")

		default:
			// index pages and anything else are ignored.
		}

		cursor += compressedSize
	}

	return nil
}

func isDictEncoding(e parquetformat.Encoding) bool {
	return e == parquetformat.EncodingRLEDictionary || e == parquetformat.EncodingPlainDictionary
}

// sliceReader is a minimal io.Reader over a byte slice, used only to
// hand parquetformat.ReadPageHeader a bounded view of the chunk buffer
// without giving it access to the trailing slack.
type sliceReader struct {
	buf []byte
	pos int
}

func (s *sliceReader) Read(p []byte) (int, error) {
	if s.pos >= len(s.buf) {
		return 0, io.EOF
	}
	n := copy(p, s.buf[s.pos:])
	s.pos += n
	return n, nil
}

// decodeDictionaryPage reads numValues PLAIN-encoded values of the
// column's physical type and installs them as the chunk dictionary.
// byte_array columns write straight into the result column's string
// heap instead of allocating a separate dictionary.
func decodeDictionaryPage(window []byte, col *Column, rc *ResultColumn, numValues int, uncompressedSize int) (*dictionary, error) {
	w := newByteWindowWithLimit(window, uncompressedSize)
	switch col.Type {
	case TypeBool:
		d := &dictionary{typ: TypeBool, boolValues: make([]bool, numValues)}
		pr := newPlainReader(w)
		for i := 0; i < numValues; i++ {
			v, err := pr.readBool()
			if err != nil {
				return nil, wrapErr(IOError, "dictionary page", err)
			}
			d.boolValues[i] = v
		}
		return d, nil
	case TypeInt32:
		d := &dictionary{typ: TypeInt32, int32Values: make([]int32, numValues)}
		for i := 0; i < numValues; i++ {
			v, err := readPlainInt32(w)
			if err != nil {
				return nil, wrapErr(IOError, "dictionary page", err)
			}
			d.int32Values[i] = v
		}
		return d, nil
	case TypeInt64:
		d := &dictionary{typ: TypeInt64, int64Values: make([]int64, numValues)}
		for i := 0; i < numValues; i++ {
			v, err := readPlainInt64(w)
			if err != nil {
				return nil, wrapErr(IOError, "dictionary page", err)
			}
			d.int64Values[i] = v
		}
		return d, nil
	case TypeInt96:
		d := &dictionary{typ: TypeInt96, int96Values: make([][12]byte, numValues)}
		for i := 0; i < numValues; i++ {
			v, err := readPlainInt96(w)
			if err != nil {
				return nil, wrapErr(IOError, "dictionary page", err)
			}
			d.int96Values[i] = v
		}
		return d, nil
	case TypeFloat32:
		d := &dictionary{typ: TypeFloat32, float32Values: make([]float32, numValues)}
		for i := 0; i < numValues; i++ {
			v, err := readPlainFloat32(w)
			if err != nil {
				return nil, wrapErr(IOError, "dictionary page", err)
			}
			d.float32Values[i] = v
		}
		return d, nil
	case TypeFloat64:
		d := &dictionary{typ: TypeFloat64, float64Values: make([]float64, numValues)}
		for i := 0; i < numValues; i++ {
			v, err := readPlainFloat64(w)
			if err != nil {
				return nil, wrapErr(IOError, "dictionary page", err)
			}
			d.float64Values[i] = v
		}
		return d, nil
	case TypeByteArray:
		for i := 0; i < numValues; i++ {
			b, err := readPlainByteArray(w)
			if err != nil {
				return nil, err
			}
			rc.appendString(b)
		}
		return &dictionary{typ: TypeByteArray}, nil
	case TypeFixedLenByteArray:
		d := &dictionary{typ: TypeFixedLenByteArray, fixedLen: make([][]byte, numValues)}
		for i := 0; i < numValues; i++ {
			b, err := readPlainFixedLenByteArray(w, col.TypeLen)
			if err != nil {
				return nil, err
			}
			cp := make([]byte, len(b))
			copy(cp, b)
			d.fixedLen[i] = cp
		}
		return d, nil
	default:
		return nil, newErr(UnsupportedType, "dictionary page")
	}
}

// decodeDataPageV1 decodes one data-page-v1 payload (definition levels
// then values) into rc starting at rowOffset, per §4.4.1.
func decodeDataPageV1(dh *parquetformat.DataPageHeader, window []byte, col *Column, rc *ResultColumn, rowOffset int, dict *dictionary, uncompressedSize int) error {
	n := int(dh.NumValues)
	if dh.DefinitionLevelEncoding != parquetformat.EncodingRLE {
		return newErr(UnsupportedEncoding, "definition levels: "+dh.DefinitionLevelEncoding.String())
	}

	w := newByteWindowWithLimit(window, uncompressedSize)
	l, err := readPlainInt32(w)
	if err != nil {
		return wrapErr(IOError, "definition level length", err)
	}
	defBytes, err := w.take(int(l))
	if err != nil {
		return wrapErr(IOError, "definition level payload", err)
	}

	defined := rc.Defined[rowOffset : rowOffset+n]
	defDecoder := newHybridDecoder(defBytes, 1)
	defLevels := make([]uint32, n)
	got, err := defDecoder.getBatch(defLevels, n)
	if err != nil {
		return err
	}
	if got != n {
		return newErr(IOError, "definition levels ran short")
	}
	for i, v := range defLevels {
		defined[i] = byte(v)
	}

	nullCount := 0
	for _, b := range defined {
		if b == 0 {
			nullCount++
		}
	}

	switch {
	case dh.Encoding == parquetformat.EncodingPlain:
		return decodePlainValues(w, col, rc, rowOffset, n, defined)
	case isDictEncoding(dh.Encoding):
		return decodeDictValues(w, col, rc, rowOffset, n, defined, nullCount, dict)
	default:
		return newErr(UnsupportedEncoding, dh.Encoding.String())
	}
}

func decodePlainValues(w *byteWindow, col *Column, rc *ResultColumn, rowOffset, n int, defined []byte) error {
	switch col.Type {
	case TypeBool:
		pr := newPlainReader(w)
		for i := 0; i < n; i++ {
			if defined[i] == 0 {
				continue
			}
			v, err := pr.readBool()
			if err != nil {
				return wrapErr(IOError, "plain bool value", err)
			}
			rc.BoolValues[rowOffset+i] = v
		}
	case TypeInt32:
		for i := 0; i < n; i++ {
			if defined[i] == 0 {
				continue
			}
			v, err := readPlainInt32(w)
			if err != nil {
				return wrapErr(IOError, "plain int32 value", err)
			}
			rc.Int32Values[rowOffset+i] = v
		}
	case TypeInt64:
		for i := 0; i < n; i++ {
			if defined[i] == 0 {
				continue
			}
			v, err := readPlainInt64(w)
			if err != nil {
				return wrapErr(IOError, "plain int64 value", err)
			}
			rc.Int64Values[rowOffset+i] = v
		}
	case TypeInt96:
		for i := 0; i < n; i++ {
			if defined[i] == 0 {
				continue
			}
			v, err := readPlainInt96(w)
			if err != nil {
				return wrapErr(IOError, "plain int96 value", err)
			}
			rc.Int96Values[rowOffset+i] = v
		}
	case TypeFloat32:
		for i := 0; i < n; i++ {
			if defined[i] == 0 {
				continue
			}
			v, err := readPlainFloat32(w)
			if err != nil {
				return wrapErr(IOError, "plain float value", err)
			}
			rc.Float32Values[rowOffset+i] = v
		}
	case TypeFloat64:
		for i := 0; i < n; i++ {
			if defined[i] == 0 {
				continue
			}
			v, err := readPlainFloat64(w)
			if err != nil {
				return wrapErr(IOError, "plain double value", err)
			}
			rc.Float64Values[rowOffset+i] = v
		}
	case TypeByteArray:
		for i := 0; i < n; i++ {
			if defined[i] == 0 {
				continue
			}
			b, err := readPlainByteArray(w)
			if err != nil {
				return err
			}
			rc.HeapIndex[rowOffset+i] = rc.appendString(b)
		}
	case TypeFixedLenByteArray:
		for i := 0; i < n; i++ {
			if defined[i] == 0 {
				continue
			}
			b, err := readPlainFixedLenByteArray(w, col.TypeLen)
			if err != nil {
				return err
			}
			rc.HeapIndex[rowOffset+i] = rc.appendString(b)
		}
	default:
		return newErr(UnsupportedType, "plain value")
	}
	return nil
}

func decodeDictValues(w *byteWindow, col *Column, rc *ResultColumn, rowOffset, n int, defined []byte, nullCount int, dict *dictionary) error {
	if dict == nil {
		return newErr(MissingDictionary, "no dictionary installed for this chunk")
	}
	widthByte, err := w.readByte()
	if err != nil {
		return wrapErr(IOError, "dictionary index width", err)
	}
	width := int(widthByte)

	indices := make([]uint32, n)
	if width == 0 {
		// all zeros; nothing to decode
	} else {
		dec := newHybridDecoder(w.rest(), width)
		if nullCount > 0 {
			if err := dec.getBatchSpaced(n, nullCount, defined, indices); err != nil {
				return err
			}
		} else {
			got, err := dec.getBatch(indices, n)
			if err != nil {
				return err
			}
			if got != n {
				return newErr(IOError, "dictionary index stream ran short")
			}
		}
	}

	dictSize := dict.size()
	for i := 0; i < n; i++ {
		if defined[i] == 0 {
			continue
		}
		idx := int(indices[i])
		if col.Type != TypeByteArray && (idx < 0 || idx >= dictSize) {
			return newErr(CorruptPayload, "dictionary index out of range")
		}
		switch col.Type {
		case TypeByteArray:
			if idx < 0 || idx >= len(rc.Entries) {
				return newErr(CorruptPayload, "dictionary index out of range")
			}
			rc.HeapIndex[rowOffset+i] = idx
		case TypeBool:
			rc.BoolValues[rowOffset+i] = dict.boolValues[idx]
		case TypeInt32:
			rc.Int32Values[rowOffset+i] = dict.int32Values[idx]
		case TypeInt64:
			rc.Int64Values[rowOffset+i] = dict.int64Values[idx]
		case TypeInt96:
			rc.Int96Values[rowOffset+i] = dict.int96Values[idx]
		case TypeFloat32:
			rc.Float32Values[rowOffset+i] = dict.float32Values[idx]
		case TypeFloat64:
			rc.Float64Values[rowOffset+i] = dict.float64Values[idx]
		case TypeFixedLenByteArray:
			rc.HeapIndex[rowOffset+i] = rc.appendString(dict.fixedLen[idx])
		default:
			return newErr(UnsupportedType, "dictionary value")
		}
	}
	return nil
}
