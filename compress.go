package parquetreader

import (
	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/brineio/parquetreader/internal/parquetformat"
)

// slackBytes is the trailing padding every decompression target and
// per-chunk buffer carries, so unpack32's 32-at-a-time reads never run
// past the logical end of a buffer.
const slackBytes = 32 * 4

// decompressPage produces a readable byte window of exactly
// uncompressedSize bytes (plus slackBytes of zeroed trailing padding)
// from a possibly-compressed page payload.
func decompressPage(codec parquetformat.CompressionCodec, src []byte, uncompressedSize int) ([]byte, error) {
	switch codec {
	case parquetformat.Uncompressed:
		out := make([]byte, uncompressedSize+slackBytes)
		copy(out, src)
		return out, nil
	case parquetformat.Snappy:
		decoded, err := snappy.Decode(nil, src)
		if err != nil {
			return nil, wrapErr(DecompressionFailed, "snappy decode", err)
		}
		if len(decoded) != uncompressedSize {
			return nil, wrapErr(DecompressionFailed, "snappy length mismatch", errors.New("size mismatch"))
		}
		out := make([]byte, uncompressedSize+slackBytes)
		copy(out, decoded)
		return out, nil
	default:
		return nil, newErr(UnsupportedCodec, codec.String())
	}
}
