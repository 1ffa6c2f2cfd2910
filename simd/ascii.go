// Package simd finds the first non-ASCII byte in a buffer using the widest
// vector kernel the build and the executing CPU support.
//
// Kernels are organised as tiers (see Tier). The tiers compiled into a binary
// depend on build tags:
//   - amd64 with GOEXPERIMENT=simd: AVX-512 (64 B), AVX2 (32 B), AVX (16 B)
//   - arm64: NEON (16 B) with an emulated byte mask
//   - everything else: a 16-byte SWAR kernel using the same emulation
//
// A scalar loop always handles whatever the tiers leave over. Results are
// identical to a byte-by-byte scan for every input.
//
// Setting UTFC_NO_SIMD to a true value disables the vector tiers of the
// package-level functions, which is useful for testing and debugging.
package simd

import (
	"os"
	"strconv"
	"sync"
)

var (
	defaultScanner     *Scanner
	defaultScannerOnce sync.Once
)

// Default returns the process-wide scanner used by the package-level
// functions. It holds every compiled tier unless UTFC_NO_SIMD is set.
func Default() *Scanner {
	defaultScannerOnce.Do(func() {
		width := 0
		if noSIMDEnv() {
			width = -1
		}
		defaultScanner = NewScanner(width)
	})
	return defaultScanner
}

// noSIMDEnv reports whether UTFC_NO_SIMD asks for the scalar path.
func noSIMDEnv() bool {
	val := os.Getenv("UTFC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CompiledTiers returns the tiers built into this binary, widest first,
// whether or not the executing CPU supports them.
func CompiledTiers() []Tier {
	out := make([]Tier, len(compiledTiers))
	copy(out, compiledTiers)
	return out
}

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
// An empty slice is ASCII.
//
// Example:
//
//	if simd.IsASCII(data) {
//	    // no multi-byte characters to handle
//	}
func IsASCII(data []byte) bool {
	return Default().IsASCII(data)
}

// ContainsNonASCII reports whether data holds at least one byte >= 0x80.
func ContainsNonASCII(data []byte) bool {
	return !Default().IsASCII(data)
}

// FirstNonASCII returns the index of the first non-ASCII byte, or -1 if all
// bytes are ASCII.
//
// Example:
//
//	idx := simd.FirstNonASCII([]byte("Hello Wörld")) // 7
func FirstNonASCII(data []byte) int {
	return Default().FirstNonASCII(data)
}

// CountNonASCII returns the number of non-ASCII bytes in the slice.
//
// Performance: Same as FirstNonASCII per ASCII run; each non-ASCII byte
// costs one extra dispatch, so mostly non-ASCII input approaches the
// scalar loop.
func CountNonASCII(data []byte) int {
	s := Default()
	count := 0
	for {
		idx := s.FirstNonASCII(data)
		if idx < 0 {
			return count
		}
		count++
		data = data[idx+1:]
	}
}
