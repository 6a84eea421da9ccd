package parquetformat

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// magic is the 4-byte marker that opens and closes every Parquet file.
const magic = "PAR1"

const footerLengthFieldSize = 4

// ErrBadMagic is returned when a file is missing the leading or trailing
// PAR1 marker.
var ErrBadMagic = errors.New("parquetformat: bad magic")

// ErrBadFooter is returned when the footer-length prefix is zero,
// negative, or points before the leading magic.
var ErrBadFooter = errors.New("parquetformat: bad footer length")

// ReadFileMetaData validates the file's leading and trailing PAR1 magic,
// reads the little-endian footer-length prefix, seeks to the footer and
// decodes it as a FileMetaData struct.
func ReadFileMetaData(r io.ReadSeeker) (*FileMetaData, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "seek to end")
	}
	if size < int64(2*len(magic)+footerLengthFieldSize) {
		return nil, ErrBadMagic
	}

	head := make([]byte, len(magic))
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "seek to start")
	}
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, errors.Wrap(err, "read leading magic")
	}
	if !bytes.Equal(head, []byte(magic)) {
		return nil, ErrBadMagic
	}

	trailer := make([]byte, footerLengthFieldSize+len(magic))
	if _, err := r.Seek(-int64(len(trailer)), io.SeekEnd); err != nil {
		return nil, errors.Wrap(err, "seek to trailer")
	}
	if _, err := io.ReadFull(r, trailer); err != nil {
		return nil, errors.Wrap(err, "read trailer")
	}
	if !bytes.Equal(trailer[footerLengthFieldSize:], []byte(magic)) {
		return nil, ErrBadMagic
	}

	footerLen := int64(binary.LittleEndian.Uint32(trailer[:footerLengthFieldSize]))
	footerStart := size - int64(len(trailer)) - footerLen
	if footerLen <= 0 || footerStart < int64(len(magic)) {
		return nil, ErrBadFooter
	}

	if _, err := r.Seek(footerStart, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "seek to footer")
	}

	lr := io.LimitReader(r, footerLen)
	transport := newCountingTransport(lr)
	protocol := compactProtocol(transport)

	md := &FileMetaData{}
	if err := md.Read(context.Background(), protocol); err != nil {
		return nil, errors.Wrap(err, "decode file metadata")
	}
	return md, nil
}

// EncodeFileMetaData serializes md with the compact protocol, for
// building synthetic footers in tests.
func EncodeFileMetaData(md *FileMetaData) ([]byte, error) {
	var buf bytes.Buffer
	transport := newBufTransport(&buf)
	protocol := compactProtocol(transport)
	if err := md.Write(context.Background(), protocol); err != nil {
		return nil, errors.Wrap(err, "encode file metadata")
	}
	if err := protocol.Flush(context.Background()); err != nil {
		return nil, errors.Wrap(err, "flush protocol")
	}
	return buf.Bytes(), nil
}

// EncodePageHeader serializes ph with the compact protocol, for
// building synthetic page headers in tests.
func EncodePageHeader(ph *PageHeader) ([]byte, error) {
	var buf bytes.Buffer
	transport := newBufTransport(&buf)
	protocol := compactProtocol(transport)
	if err := ph.Write(context.Background(), protocol); err != nil {
		return nil, errors.Wrap(err, "encode page header")
	}
	if err := protocol.Flush(context.Background()); err != nil {
		return nil, errors.Wrap(err, "flush protocol")
	}
	return buf.Bytes(), nil
}

// ReadPageHeader decodes one PageHeader from the current read position
// and reports exactly how many bytes it consumed, so the caller can
// advance past the header to the page's data bytes.
func ReadPageHeader(r io.Reader) (*PageHeader, int, error) {
	transport := newCountingTransport(r)
	protocol := compactProtocol(transport)

	ph := &PageHeader{}
	if err := ph.Read(context.Background(), protocol); err != nil {
		return nil, 0, errors.Wrap(err, "decode page header")
	}
	return ph, int(transport.consumed), nil
}
