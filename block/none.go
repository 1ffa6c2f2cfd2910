package block

import "fmt"

// NoneCodec stores payloads uncompressed.
type NoneCodec struct{}

func (c *NoneCodec) MethodByte() byte { return MethodNone }

func (c *NoneCodec) Compress(src []byte) ([]byte, error) {
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst, nil
}

func (c *NoneCodec) Decompress(src []byte, decompressedSize int) ([]byte, error) {
	if len(src) != decompressedSize {
		return nil, fmt.Errorf("%w: raw payload has %d bytes, header says %d",
			ErrSizeMismatch, len(src), decompressedSize)
	}
	dst := make([]byte, decompressedSize)
	copy(dst, src)
	return dst, nil
}
