package parquetformat

import (
	"context"
	"io"

	"github.com/apache/thrift/lib/go/thrift"
)

// countingTransport adapts a plain io.Reader into a read-only
// thrift.TTransport while counting exactly how many bytes the protocol
// consumed from it. This is how the page-header framed length (the
// number of bytes the header occupied on disk) is recovered: Thrift
// compact protocol has no explicit length prefix, so the only way to
// know where a struct ends is to watch the transport that read it.
//
// Grounded on jankokondic-parquet's countingReader/countingTransport,
// which solves the identical problem the identical way.
type countingTransport struct {
	r        io.Reader
	consumed int64
}

func newCountingTransport(r io.Reader) *countingTransport {
	return &countingTransport{r: r}
}

func (t *countingTransport) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	t.consumed += int64(n)
	return n, err
}

func (t *countingTransport) Write(p []byte) (int, error) {
	return 0, thrift.NewTTransportException(thrift.NOT_IMPLEMENTED, "countingTransport is read-only")
}

func (t *countingTransport) Close() error                    { return nil }
func (t *countingTransport) Flush(ctx context.Context) error { return nil }
func (t *countingTransport) Open() error                     { return nil }
func (t *countingTransport) IsOpen() bool                    { return true }
func (t *countingTransport) RemainingBytes() uint64          { return ^uint64(0) }

func compactProtocol(t thrift.TTransport) thrift.TProtocol {
	return thrift.NewTCompactProtocolFactoryConf(&thrift.TConfiguration{}).GetProtocol(t)
}

// bufTransport adapts a bytes.Buffer into a write-only thrift.TTransport,
// used only by the Encode* test-support helpers in footer.go.
type bufTransport struct {
	buf io.Writer
}

func newBufTransport(w io.Writer) *bufTransport {
	return &bufTransport{buf: w}
}

func (t *bufTransport) Read(p []byte) (int, error) {
	return 0, thrift.NewTTransportException(thrift.NOT_IMPLEMENTED, "bufTransport is write-only")
}

func (t *bufTransport) Write(p []byte) (int, error) { return t.buf.Write(p) }
func (t *bufTransport) Close() error                    { return nil }
func (t *bufTransport) Flush(ctx context.Context) error { return nil }
func (t *bufTransport) Open() error                     { return nil }
func (t *bufTransport) IsOpen() bool                    { return true }
func (t *bufTransport) RemainingBytes() uint64          { return ^uint64(0) }
