//go:build !arm64 && !(amd64 && goexperiment.simd)

package simd

// Without vector intrinsics the 16-byte tier runs the byte-mask emulation on
// general purpose registers. It needs no CPU feature, so it is always available.
//
// Performance: 16 bytes per iteration as two 64-bit words (SWAR).
var compiledTiers = []Tier{
	{Name: "swar", Width: 16, Available: func() bool { return true }, Scan: scanEmulated16},
}
