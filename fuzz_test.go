package utfc

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"
)

// FuzzRoundTrip checks that every valid UTF-8 input survives a round trip
// and that invalid inputs fail cleanly.
//
// Run with:
//
//	go test -fuzz=FuzzRoundTrip -fuzztime=30s
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("HΉHΉ"))
	f.Add([]byte("Hello עוֹלָם"))
	f.Add([]byte("🅗🅔🅛🅛🅞 🅦🅞🅡🅛🅓"))
	f.Add(bytes.Repeat([]byte("ab€"), 50))
	f.Add([]byte{0x95})

	f.Fuzz(func(t *testing.T, data []byte) {
		compressed, err := Compress(data)
		if err != nil {
			if utf8.Valid(data) {
				t.Fatalf("Compress rejected valid UTF-8 %q: %v", data, err)
			}
			if !errors.Is(err, ErrMalformedLead) {
				t.Fatalf("Compress error %v is not ErrMalformedLead", err)
			}
			return
		}
		if len(compressed) > HeaderLen(len(data))+len(data) {
			t.Fatalf("compressed %d bytes into %d", len(data), len(compressed))
		}
		if got := LengthFromCompressed(compressed, 0); got != len(data) {
			t.Fatalf("LengthFromCompressed = %d, want %d", got, len(data))
		}
		back, err := Decompress(compressed)
		if err != nil {
			t.Fatalf("Decompress(%v) error: %v", compressed, err)
		}
		if !bytes.Equal(back, data) {
			t.Fatalf("round trip of %q gave %q", data, back)
		}
	})
}

// FuzzDecompress feeds arbitrary bytes to Decompress; it must never panic.
func FuzzDecompress(f *testing.F) {
	f.Add([]byte{1, 0x95})
	f.Add([]byte{255, 255})
	f.Add([]byte{6, 72, 206, 137, 72, 137})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = Decompress(data)
	})
}
