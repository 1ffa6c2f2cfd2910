package block

import "go.uber.org/zap"

// CompressText frames UTF-8 text with UTF-C, storing it raw when UTF-C
// rejects the input or does not make it smaller.
func CompressText(data []byte) ([]byte, error) {
	return CompressWithFallback(&UTFCCodec{}, data)
}

// CompressWithFallback frames data with codec. If codec fails or produces a
// payload no smaller than data, the block is written with NoneCodec instead.
func CompressWithFallback(codec Codec, data []byte) ([]byte, error) {
	log := Logger().With(
		zap.String("method", MethodName(codec.MethodByte())),
		zap.Int("size", len(data)),
	)

	compressed, err := codec.Compress(data)
	switch {
	case err != nil:
		log.Debug("codec rejected input, storing raw", zap.Error(err))
	case len(compressed) >= len(data):
		log.Debug("codec did not shrink input, storing raw", zap.Int("compressed", len(compressed)))
	default:
		log.Debug("block compressed", zap.Int("compressed", len(compressed)))
		return CompressBlock(passthrough{codec: codec, payload: compressed}, data)
	}

	return CompressBlock(&NoneCodec{}, data)
}

// passthrough hands an already compressed payload to CompressBlock.
type passthrough struct {
	codec   Codec
	payload []byte
}

func (p passthrough) MethodByte() byte { return p.codec.MethodByte() }

func (p passthrough) Compress([]byte) ([]byte, error) { return p.payload, nil }

func (p passthrough) Decompress(src []byte, decompressedSize int) ([]byte, error) {
	return p.codec.Decompress(src, decompressedSize)
}
