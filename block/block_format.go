package block

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/coregx/utfc/internal/conv"
)

// HeaderSize is the size of the block header. The total size stored in the
// header includes it.
const HeaderSize = 9

// Block errors.
var (
	// ErrUnknownMethod indicates a method byte or name with no codec.
	ErrUnknownMethod = errors.New("unknown compression method")

	// ErrShortBlock indicates a block shorter than its header claims.
	ErrShortBlock = errors.New("compressed block too small")

	// ErrSizeMismatch indicates a payload that does not decode to the
	// original size recorded in the header.
	ErrSizeMismatch = errors.New("compressed block size mismatch")

	// ErrIncompressible indicates a codec that could not shrink its input.
	ErrIncompressible = errors.New("data is incompressible")

	// ErrTooLarge indicates input whose size does not fit the header.
	ErrTooLarge = errors.New("block too large")
)

// Header is the decoded block header.
type Header struct {
	Method       byte
	Total        uint32
	Uncompressed uint32
}

// CompressBlock compresses data and returns the full block (header + compressed payload).
func CompressBlock(codec Codec, data []byte) ([]byte, error) {
	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, err
	}

	total, err := conv.IntToUint32(HeaderSize + len(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: %d payload bytes", ErrTooLarge, len(compressed))
	}
	size, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %d input bytes", ErrTooLarge, len(data))
	}

	block := make([]byte, HeaderSize+len(compressed))
	block[0] = codec.MethodByte()
	binary.LittleEndian.PutUint32(block[1:5], total)
	binary.LittleEndian.PutUint32(block[5:9], size)
	copy(block[HeaderSize:], compressed)

	return block, nil
}

// DecompressBlock reads a compressed block, validates its header and
// decompresses the payload with the codec named by the method byte.
// Bytes after the block's total size are ignored.
func DecompressBlock(data []byte) ([]byte, error) {
	return DecompressBlockWith(data, nil)
}

// DecompressBlockWith is like DecompressBlock but decodes with codec when
// the block's method byte matches codec.MethodByte(). A nil codec always
// uses the registered one.
func DecompressBlockWith(data []byte, codec Codec) ([]byte, error) {
	h, err := ReadBlockHeader(data)
	if err != nil {
		return nil, err
	}

	if codec == nil || codec.MethodByte() != h.Method {
		codec, err = CodecFor(h.Method)
		if err != nil {
			return nil, err
		}
	}

	size, err := conv.Uint32ToInt(h.Uncompressed)
	if err != nil {
		return nil, fmt.Errorf("%w: original size %d", ErrTooLarge, h.Uncompressed)
	}

	return codec.Decompress(data[HeaderSize:h.Total], size)
}

// ReadBlockHeader reads and validates the header of a compressed block.
func ReadBlockHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrShortBlock, len(data))
	}
	h := Header{
		Method:       data[0],
		Total:        binary.LittleEndian.Uint32(data[1:5]),
		Uncompressed: binary.LittleEndian.Uint32(data[5:9]),
	}
	if h.Total < HeaderSize {
		return Header{}, fmt.Errorf("%w: header says %d, below header size", ErrSizeMismatch, h.Total)
	}
	if uint64(h.Total) > uint64(len(data)) {
		return Header{}, fmt.Errorf("%w: header says %d, have %d", ErrShortBlock, h.Total, len(data))
	}
	return h, nil
}
