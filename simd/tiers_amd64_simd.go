//go:build amd64 && goexperiment.simd

package simd

import (
	"math/bits"
	"simd/archsimd"
	"unsafe"
)

// compiledTiers lists the x86-64 kernels, widest first. Each one compares
// the block against zero as signed bytes; lanes >= 0x80 are negative, and
// ToBits gathers their flags into an integer mask (VPMOVMSKB/VPMOVB2M).
//
// Algorithm (per block):
//  1. Load 64/32/16 bytes into a ZMM/YMM/XMM register
//  2. Signed compare against zero, giving a lane mask of bytes >= 0x80
//  3. If the mask is nonzero, the lowest set bit is the answer
//
// Performance characteristics:
//   - avx512: 64 bytes per iteration, needs AVX-512BW
//   - avx2: 32 bytes per iteration
//   - avx: 16 bytes per iteration, picks up what the wider tiers leave
var compiledTiers = []Tier{
	{Name: "avx512", Width: 64, Available: func() bool { return archsimd.X86.AVX512() }, Scan: scanAVX512},
	{Name: "avx2", Width: 32, Available: func() bool { return archsimd.X86.AVX2() }, Scan: scanAVX2},
	{Name: "avx", Width: 16, Available: func() bool { return archsimd.X86.AVX() }, Scan: scanAVX},
}

var zeros [64]int8

func asInt8(b []byte) []int8 {
	return unsafe.Slice((*int8)(unsafe.Pointer(unsafe.SliceData(b))), len(b))
}

func scanAVX512(data []byte) (int, int) {
	s := asInt8(data)
	n := len(s) &^ 63
	zero := archsimd.LoadInt8x64Slice(zeros[:])
	for i := 0; i < n; i += 64 {
		m := uint64(archsimd.LoadInt8x64Slice(s[i : i+64]).Less(zero).ToBits())
		if m != 0 {
			return n, i + bits.TrailingZeros64(m)
		}
	}
	return n, -1
}

func scanAVX2(data []byte) (int, int) {
	s := asInt8(data)
	n := len(s) &^ 31
	zero := archsimd.LoadInt8x32Slice(zeros[:32])
	for i := 0; i < n; i += 32 {
		m := uint64(archsimd.LoadInt8x32Slice(s[i : i+32]).Less(zero).ToBits())
		if m != 0 {
			return n, i + bits.TrailingZeros64(m)
		}
	}
	return n, -1
}

func scanAVX(data []byte) (int, int) {
	s := asInt8(data)
	n := len(s) &^ 15
	zero := archsimd.LoadInt8x16Slice(zeros[:16])
	for i := 0; i < n; i += 16 {
		m := uint64(archsimd.LoadInt8x16Slice(s[i : i+16]).Less(zero).ToBits())
		if m != 0 {
			return n, i + bits.TrailingZeros64(m)
		}
	}
	return n, -1
}
