// Package conv provides checked integer conversions for the fixed-width
// size fields of the block container.
//
// Block headers store sizes as uint32. Inputs larger than that cannot be
// framed, and on 32-bit platforms a stored uint32 may not fit an int, so
// both directions report overflow instead of truncating.
package conv

import (
	"errors"
	"math"
)

// ErrOverflow indicates a value that does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts n to uint32.
// Returns ErrOverflow if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) (uint32, error) {
	// uint comparison avoids overflow on 32-bit platforms where int cannot
	// represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		return 0, ErrOverflow
	}
	return uint32(n), nil
}

// Uint32ToInt converts n to int.
// Returns ErrOverflow if n exceeds math.MaxInt.
func Uint32ToInt(n uint32) (int, error) {
	if uint64(n) > math.MaxInt {
		return 0, ErrOverflow
	}
	return int(n), nil
}
