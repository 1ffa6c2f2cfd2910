package block

import (
	"fmt"

	"github.com/coregx/utfc"
)

// UTFCCodec stores UTF-8 text in the UTF-C wire format.
// The zero value uses the default utfc configuration.
type UTFCCodec struct {
	codec *utfc.Codec
}

// NewUTFCCodec returns a UTFCCodec backed by codec.
func NewUTFCCodec(codec *utfc.Codec) *UTFCCodec {
	return &UTFCCodec{codec: codec}
}

func (c *UTFCCodec) MethodByte() byte { return MethodUTFC }

func (c *UTFCCodec) Compress(src []byte) ([]byte, error) {
	if c.codec == nil {
		return utfc.Compress(src)
	}
	return c.codec.Compress(src)
}

// Decompress decodes src and checks that it yields exactly
// decompressedSize bytes.
func (c *UTFCCodec) Decompress(src []byte, decompressedSize int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if c.codec == nil {
		out, err = utfc.Decompress(src)
	} else {
		out, err = c.codec.Decompress(src)
	}
	if err != nil {
		return nil, fmt.Errorf("utfc decompress: %w", err)
	}
	if len(out) != decompressedSize {
		return nil, fmt.Errorf("utfc decompress: %w: expected %d bytes, got %d",
			ErrSizeMismatch, decompressedSize, len(out))
	}
	return out, nil
}
