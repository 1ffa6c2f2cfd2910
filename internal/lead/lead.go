// Package lead classifies the UTF-8 encoding shape at the start of a byte window.
//
// A multi-byte UTF-8 character is split into its lead bytes (every byte except
// the last) and its payload byte (the last one). Characters of the same script
// usually share the lead bytes, which is what the utfc codec factors out.
//
// Classification only inspects bit patterns. It does not reject overlong
// encodings or surrogates, so it is not a UTF-8 validator.
package lead

// MaxLen is the maximum number of bytes in one UTF-8 encoded character.
const MaxLen = 4

// Kind identifies the encoding shape found at the start of a window.
type Kind uint8

const (
	// Invalid means no 1/2/3/4-byte pattern matches the window.
	Invalid Kind = iota
	// ASCII is a single byte with the high bit clear.
	ASCII
	// Lead2 is a 2-byte sequence: 110xxxxx 10xxxxxx.
	Lead2
	// Lead3 is a 3-byte sequence: 1110xxxx 10xxxxxx 10xxxxxx.
	Lead3
	// Lead4 is a 4-byte sequence: 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx.
	Lead4
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case ASCII:
		return "ascii"
	case Lead2:
		return "lead2"
	case Lead3:
		return "lead3"
	case Lead4:
		return "lead4"
	default:
		return "unknown"
	}
}

// Shape is the result of Classify. For multi-byte kinds it borrows the
// matched bytes from the classified window; no copy is made.
type Shape struct {
	kind Kind
	seq  []byte
}

// Kind returns the shape's kind.
func (s Shape) Kind() Kind {
	return s.kind
}

// Len returns the number of bytes the shape covers: 0 for Invalid,
// 1 for ASCII and 2/3/4 for the multi-byte kinds.
func (s Shape) Len() int {
	return len(s.seq)
}

// IsMultiByte reports whether the shape carries lead and payload bytes.
func (s Shape) IsMultiByte() bool {
	return s.kind >= Lead2
}

// Lead returns the lead bytes (all but the last byte of the sequence).
// It returns nil for Invalid and ASCII shapes.
func (s Shape) Lead() []byte {
	if !s.IsMultiByte() {
		return nil
	}
	n := len(s.seq) - 1
	return s.seq[:n:n]
}

// Payload returns the last byte of a multi-byte sequence.
// It returns 0 for Invalid and ASCII shapes.
func (s Shape) Payload() byte {
	if !s.IsMultiByte() {
		return 0
	}
	return s.seq[len(s.seq)-1]
}

// Classify returns the shape at the start of window, testing the 4-byte
// pattern first and the ASCII pattern last. Patterns that need more bytes
// than the window holds are skipped, so Classify never reads past the end.
// An empty window is Invalid.
func Classify(window []byte) Shape {
	n := len(window)
	switch {
	case n >= 4 && is4(window):
		return Shape{kind: Lead4, seq: window[:4:4]}
	case n >= 3 && is3(window):
		return Shape{kind: Lead3, seq: window[:3:3]}
	case n >= 2 && is2(window):
		return Shape{kind: Lead2, seq: window[:2:2]}
	case n >= 1 && window[0]>>7 == 0:
		return Shape{kind: ASCII, seq: window[:1:1]}
	default:
		return Shape{kind: Invalid}
	}
}

// IsContinuation reports whether b has the 10xxxxxx continuation pattern.
func IsContinuation(b byte) bool {
	return b>>6 == 0b10
}

func is2(w []byte) bool {
	return w[0]>>5 == 0b110 && IsContinuation(w[1])
}

func is3(w []byte) bool {
	return w[0]>>4 == 0b1110 && IsContinuation(w[1]) && IsContinuation(w[2])
}

func is4(w []byte) bool {
	return w[0]>>3 == 0b11110 && IsContinuation(w[1]) && IsContinuation(w[2]) && IsContinuation(w[3])
}
