package parquetreader

import "github.com/pkg/errors"

// Kind classifies why a read failed. Every exported error from this
// package can be inspected with errors.As into an *Error to recover it.
type Kind int

const (
	BadMagic Kind = iota
	BadFooter
	MetadataDecode
	EncryptedNotSupported
	NestedNotSupported
	NonOptionalNotSupported
	UnsupportedType
	UnsupportedCodec
	DecompressionFailed
	UnsupportedEncoding
	V2NotSupported
	MissingDictionary
	DuplicateDictionary
	PayloadLengthExceeded
	CorruptPayload
	VarintOverflow
	UnsupportedBitWidth
	IOError
	ExternalChunkUnsupported
)

func (k Kind) String() string {
	switch k {
	case BadMagic:
		return "bad-magic"
	case BadFooter:
		return "bad-footer"
	case MetadataDecode:
		return "metadata-decode"
	case EncryptedNotSupported:
		return "encrypted-not-supported"
	case NestedNotSupported:
		return "nested-not-supported"
	case NonOptionalNotSupported:
		return "non-optional-not-supported"
	case UnsupportedType:
		return "unsupported-type"
	case UnsupportedCodec:
		return "unsupported-codec"
	case DecompressionFailed:
		return "decompression-failed"
	case UnsupportedEncoding:
		return "unsupported-encoding"
	case V2NotSupported:
		return "v2-not-supported"
	case MissingDictionary:
		return "missing-dictionary"
	case DuplicateDictionary:
		return "duplicate-dictionary"
	case PayloadLengthExceeded:
		return "payload-length-exceeded"
	case CorruptPayload:
		return "corrupt-payload"
	case VarintOverflow:
		return "varint-overflow"
	case UnsupportedBitWidth:
		return "unsupported-bit-width"
	case IOError:
		return "io-error"
	case ExternalChunkUnsupported:
		return "external-chunk-unsupported"
	default:
		return "unknown"
	}
}

// Error is the single error type this package returns. It carries a
// Kind for programmatic dispatch and wraps the underlying cause (via
// github.com/pkg/errors) so %+v still prints a stack trace during
// debugging.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Kind.String() + ": " + e.msg + ": " + e.err.Error()
	}
	return e.Kind.String() + ": " + e.msg
}

func (e *Error) Unwrap() error { return e.err }

func newErr(kind Kind, msg string) error {
	return &Error{Kind: kind, msg: msg}
}

func wrapErr(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, msg: msg, err: errors.WithStack(cause)}
}
