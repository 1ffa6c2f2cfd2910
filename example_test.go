package utfc_test

import (
	"errors"
	"fmt"

	"github.com/coregx/utfc"
)

// ExampleCompress shows the lead of a repeated script being written once.
func ExampleCompress() {
	compressed, err := utfc.Compress([]byte("ÄÖÜ"))
	if err != nil {
		panic(err)
	}
	fmt.Println(compressed)
	// Output: [6 195 132 150 156]
}

// ExampleDecompress demonstrates the inverse operation.
func ExampleDecompress() {
	text, err := utfc.Decompress([]byte{6, 72, 206, 137, 72, 137})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(text))
	// Output: HΉHΉ
}

// ExampleLengthFromCompressed reads the original length from the header only.
func ExampleLengthFromCompressed() {
	compressed, _ := utfc.Compress([]byte("🅗🅔🅛🅛🅞 🅦🅞🅡🅛🅓"))
	fmt.Println(utfc.LengthFromCompressed(compressed, 0))
	// Output: 41
}

// ExampleNewCodec demonstrates a codec restricted to 16-byte vector blocks.
func ExampleNewCodec() {
	config := utfc.DefaultConfig()
	config.MaxVectorWidth = 16
	codec, err := utfc.NewCodec(config)
	if err != nil {
		panic(err)
	}
	compressed, _ := codec.Compress([]byte("Hello world"))
	fmt.Println(len(compressed))
	// Output: 12
}

// ExampleLeadError shows how malformed input is reported.
func ExampleLeadError() {
	_, err := utfc.Compress([]byte{0x95})
	fmt.Println(errors.Is(err, utfc.ErrMalformedLead))
	fmt.Println(err)
	// Output:
	// true
	// utfc: compress: malformed UTF-8 lead at offset 0: 95
}

// ExampleFirstNonASCII locates the first multi-byte character.
func ExampleFirstNonASCII() {
	fmt.Println(utfc.FirstNonASCII([]byte("Hello Wörld")))
	// Output: 7
}
