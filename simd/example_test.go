package simd_test

import (
	"fmt"

	"github.com/coregx/utfc/simd"
)

// ExampleVector128_MoveMask shows the emulated byte mask of a 16-byte block.
func ExampleVector128_MoveMask() {
	v := simd.Load128([]byte("Hello, Wörld!!!!"))
	fmt.Printf("%016b\n", v.MoveMask())
	// Output: 0000001100000000
}

// ExampleVector128_Lane reads single lanes back out of a vector.
func ExampleVector128_Lane() {
	v := simd.Load128([]byte("Hello, Wörld!!!!"))
	fmt.Printf("%c %#x %#x\n", v.Lane(0), v.Lane(8), v.Lane(9))
	// Output: H 0xc3 0xb6
}

// ExampleFirstNonASCII locates the first multi-byte character.
func ExampleFirstNonASCII() {
	fmt.Println(simd.FirstNonASCII([]byte("Hello Wörld")))
	fmt.Println(simd.FirstNonASCII([]byte("plain")))
	// Output:
	// 7
	// -1
}
