//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// NEON has no byte-mask extraction instruction, so the arm64 tier builds the
// mask with the shift-and-accumulate emulation in movemask.go.
//
// Performance: 16 bytes per iteration; the mask costs a dozen integer
// operations instead of one instruction, still several times faster than
// the scalar loop on long ASCII runs.
var compiledTiers = []Tier{
	{Name: "neon", Width: 16, Available: func() bool { return cpu.ARM64.HasASIMD }, Scan: scanEmulated16},
}
