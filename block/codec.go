// Package block frames compressed payloads in a self-describing container
// so that text the UTF-C codec cannot or should not handle is still stored.
//
// Block format:
//
//	[method (1)] [total size incl. header (4 LE)] [original size (4 LE)] [payload...]
//
// The method byte selects the codec used to decode the payload.
package block

import "fmt"

// Codec compresses and decompresses block payloads.
type Codec interface {
	// MethodByte returns the single-byte codec identifier.
	MethodByte() byte
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte, decompressedSize int) ([]byte, error)
}

// Method byte constants.
const (
	MethodNone byte = 0x02
	MethodLZ4  byte = 0x82
	MethodUTFC byte = 0xA0
)

// CodecFor returns the codec registered for a method byte.
func CodecFor(method byte) (Codec, error) {
	switch method {
	case MethodNone:
		return &NoneCodec{}, nil
	case MethodLZ4:
		return &LZ4Codec{}, nil
	case MethodUTFC:
		return &UTFCCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownMethod, method)
	}
}

// ParseMethod returns the codec for a method name: "none", "lz4" or "utfc".
func ParseMethod(name string) (Codec, error) {
	switch name {
	case "none":
		return &NoneCodec{}, nil
	case "lz4":
		return &LZ4Codec{}, nil
	case "utfc":
		return &UTFCCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// MethodName returns the name of a method byte, or "unknown".
func MethodName(method byte) string {
	switch method {
	case MethodNone:
		return "none"
	case MethodLZ4:
		return "lz4"
	case MethodUTFC:
		return "utfc"
	default:
		return "unknown"
	}
}
