package block

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxRatio bounds the expansion of an LZ4 block; a header claiming
// more is rejected before allocating.
const lz4MaxRatio = 255

// LZ4Codec implements LZ4 block compression.
type LZ4Codec struct{}

func (c *LZ4Codec) MethodByte() byte { return MethodLZ4 }

// Compress returns ErrIncompressible when LZ4 cannot shrink src; the caller
// decides whether to store it raw.
func (c *LZ4Codec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("lz4 compress: %w", ErrIncompressible)
	}
	return dst[:n], nil
}

func (c *LZ4Codec) Decompress(src []byte, decompressedSize int) ([]byte, error) {
	if decompressedSize == 0 {
		return []byte{}, nil
	}
	if decompressedSize > lz4MaxRatio*len(src) {
		return nil, fmt.Errorf("lz4 decompress: %w: %d bytes cannot expand to %d",
			ErrSizeMismatch, len(src), decompressedSize)
	}
	dst := make([]byte, decompressedSize)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if n != decompressedSize {
		return nil, fmt.Errorf("lz4 decompress: %w: expected %d bytes, got %d",
			ErrSizeMismatch, decompressedSize, n)
	}
	return dst, nil
}
