package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// Vector128 is a 128-bit vector of 16 byte lanes, held as two 64-bit words
// in the target's native byte order. Lane i is byte i of the source memory.
//
// It is the portable stand-in for a 16-byte SIMD register on targets whose
// vector unit cannot extract a byte mask (NEON) or that have no vector unit
// the package uses. The 16-byte tiers on those targets are built on it.
//
// Example:
//
//	v := simd.Load128(block[:16])
//	if m := v.MoveMask(); m != 0 {
//	    first := bits.TrailingZeros16(m) // first non-ASCII lane
//	}
type Vector128 struct {
	lo, hi    uint64
	bigEndian bool
}

// Load128 loads the first 16 bytes of b into a vector using the native
// byte order. Bytes past 16 are ignored. It panics if len(b) < 16.
func Load128(b []byte) Vector128 {
	return load128(b, cpu.IsBigEndian)
}

func load128(b []byte, bigEndian bool) Vector128 {
	_ = b[15]
	if bigEndian {
		return Vector128{
			lo:        binary.BigEndian.Uint64(b[0:8]),
			hi:        binary.BigEndian.Uint64(b[8:16]),
			bigEndian: true,
		}
	}
	return Vector128{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// Lane returns byte lane i (0..15).
func (v Vector128) Lane(i int) byte {
	w := v.lo
	if i >= 8 {
		w = v.hi
	}
	return laneByte(w, i&7, v.bigEndian)
}

// laneByte extracts memory byte i (0..7) of a word loaded with the given order.
func laneByte(w uint64, i int, bigEndian bool) byte {
	if bigEndian {
		i = 7 - i
	}
	return byte(w >> (8 * uint(i)))
}

// Shift-right-and-accumulate masks. Each keeps the bits of a lane that
// survive a right shift by n so nothing leaks in from the next lane up.
const (
	lowBits8   = 0x0101010101010101 // bit 0 of each 8-bit lane
	keep16by7  = 0x01FF01FF01FF01FF // 16-bit lanes, shift 7
	keep32by14 = 0x0003FFFF0003FFFF // 32-bit lanes, shift 14
	keep64by28 = 0x0000000FFFFFFFFF // 64-bit lanes, shift 28
)

// packSignBits folds the sign bits of the eight byte lanes in w into the
// least significant byte of w:
//
//	u8:  x >> 7            each lane becomes 0 or 1
//	u16: x + (x >> 7)      two flags per 16-bit lane
//	u32: x + (x >> 14)     four flags per 32-bit lane
//	u64: x + (x >> 28)     eight flags per 64-bit lane
//
// Lanes never carry into each other: every partial sum fits its lane.
func packSignBits(w uint64) uint64 {
	w = (w >> 7) & lowBits8
	w += (w >> 7) & keep16by7
	w += (w >> 14) & keep32by14
	w += (w >> 28) & keep64by28
	return w
}

// MoveMask returns a 16-bit mask with bit i set iff lane i has its high bit
// set. It matches the x86 PMOVMSKB instruction bit for bit.
//
// Algorithm:
//  1. Shift every lane's sign bit down to bit 0 (x >> 7, masked per lane)
//  2. Shift-and-add by 7, 14 and 28 so flags accumulate across lanes
//     8 -> 16 -> 32 -> 64 bits, leaving 8 flags in one byte of each word
//  3. Extract that byte from both words and join them into 16 bits
//
// Performance: eleven shift/and/add operations per 64-bit word on general
// purpose registers, with no branches.
//
// The two packed bytes sit at memory lanes 0 and 8 on little-endian targets
// and at lanes 7 and 15 on big-endian ones, where the flags also come out
// in reverse order and are fixed with a bit reversal.
func (v Vector128) MoveMask() uint16 {
	lo := packSignBits(v.lo)
	hi := packSignBits(v.hi)
	if v.bigEndian {
		b0 := bits.Reverse8(laneByte(lo, 7, true))
		b1 := bits.Reverse8(laneByte(hi, 7, true))
		return uint16(b0) | uint16(b1)<<8
	}
	return uint16(laneByte(lo, 0, false)) | uint16(laneByte(hi, 0, false))<<8
}

// scanEmulated16 is the 16-byte kernel for targets without a native
// byte-mask instruction.
func scanEmulated16(data []byte) (int, int) {
	return scanEmulated16Order(data, cpu.IsBigEndian)
}

func scanEmulated16Order(data []byte, bigEndian bool) (int, int) {
	n := len(data) &^ 15
	for i := 0; i < n; i += 16 {
		if m := load128(data[i:i+16], bigEndian).MoveMask(); m != 0 {
			return n, i + bits.TrailingZeros16(m)
		}
	}
	return n, -1
}
