// Package utfc implements UTF-C, a lossless compression format for UTF-8
// text that factors out repeated lead bytes of multi-byte characters.
//
// Characters of the same script usually share every byte but the last.
// UTF-C writes those lead bytes once and then only the final (payload) byte
// of each following character, until the lead changes. ASCII passes through
// unchanged, and long ASCII runs are skipped with vector instructions (see
// package simd).
//
// Wire format:
//
//	compressed    := length_header body
//	length_header := 0xFF* remainder        ; length = 255*count(0xFF) + remainder
//	body          := (ascii_run | lead_change | lead_reuse)*
//	lead_change   := lead_bytes payload_byte
//	lead_reuse    := payload_byte
//
// Basic usage:
//
//	compressed, err := utfc.Compress([]byte("ÄÖÜ"))
//	// compressed == []byte{6, 195, 132, 150, 156}
//
//	text, err := utfc.Decompress(compressed)
//
// UTF-C is not a general-purpose compressor and not a UTF-8 validator:
// it rejects input only when a byte sequence matches no UTF-8 pattern.
// Callers that must store arbitrary bytes can fall back to raw storage;
// package block implements that policy.
package utfc

import "github.com/coregx/utfc/simd"

var std = MustNewCodec(DefaultConfig())

// Compress compresses UTF-8 text using the default configuration.
//
// Example:
//
//	compressed, err := utfc.Compress([]byte("HΉHΉ"))
//	// compressed == []byte{6, 72, 206, 137, 72, 137}
func Compress(src []byte) ([]byte, error) {
	return std.Compress(src)
}

// Decompress decompresses data produced by Compress.
func Decompress(src []byte) ([]byte, error) {
	return std.Decompress(src)
}

// IsASCII reports whether every byte of data is ASCII. ASCII-only text
// compresses to its length header followed by the text itself.
func IsASCII(data []byte) bool {
	return simd.IsASCII(data)
}

// ContainsNonASCII reports whether data holds at least one byte >= 0x80.
func ContainsNonASCII(data []byte) bool {
	return simd.ContainsNonASCII(data)
}

// FirstNonASCII returns the index of the first byte >= 0x80 in data,
// or -1 if there is none.
func FirstNonASCII(data []byte) int {
	return simd.FirstNonASCII(data)
}
