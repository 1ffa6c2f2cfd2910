package utfc

import (
	"errors"
	"testing"
)

func TestLeadError_Format(t *testing.T) {
	_, err := Compress([]byte{'o', 'k', 0x95, 0x96})
	if err == nil {
		t.Fatal("Compress accepted a bare continuation byte")
	}
	want := "utfc: compress: malformed UTF-8 lead at offset 2: 95 96"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

// TestLeadError_CopiesBytes checks that the diagnostic bytes do not alias
// the caller's buffer.
func TestLeadError_CopiesBytes(t *testing.T) {
	src := []byte{0x95, 0x95}
	_, err := Compress(src)
	var le *LeadError
	if !errors.As(err, &le) {
		t.Fatalf("error %v is not *LeadError", err)
	}
	src[0] = 'x'
	if le.Bytes[0] != 0x95 {
		t.Error("LeadError.Bytes aliases the input")
	}
}

func TestTruncatedHeader_Message(t *testing.T) {
	_, err := Decompress([]byte{255, 255})
	want := "utfc: truncated length header: 2 sentinel bytes without terminal byte"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}
