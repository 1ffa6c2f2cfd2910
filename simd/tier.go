package simd

// Tier describes one vector kernel that finds the first byte with its
// high bit set.
//
// Scan processes data in whole blocks of Width bytes, from the start,
// and returns the number of bytes it covered and the index of the first
// non-ASCII byte within data, or -1 if the covered bytes are all ASCII.
// Bytes past the last whole block are left to narrower tiers.
type Tier struct {
	// Name identifies the instruction set, e.g. "avx2" or "neon".
	Name string

	// Width is the block size in bytes (16, 32 or 64).
	Width int

	// Available reports whether the executing CPU can run Scan.
	// The answer comes from facts probed once at process start.
	Available func() bool

	// Scan is the kernel. It is only called with len(data) >= Width.
	Scan func(data []byte) (covered int, index int)
}

// Scanner locates the first non-ASCII byte using an ordered list of tiers,
// widest first, followed by a scalar loop.
//
// A Scanner is immutable and safe for concurrent use.
type Scanner struct {
	tiers []Tier
}

// NewScanner returns a Scanner over the compiled tiers whose width does not
// exceed maxWidth. A maxWidth of 0 keeps every compiled tier; a negative
// maxWidth keeps none, leaving only the scalar loop.
func NewScanner(maxWidth int) *Scanner {
	return newScanner(compiledTiers, maxWidth)
}

func newScanner(all []Tier, maxWidth int) *Scanner {
	tiers := make([]Tier, 0, len(all))
	for _, t := range all {
		if maxWidth < 0 || (maxWidth > 0 && t.Width > maxWidth) {
			continue
		}
		tiers = append(tiers, t)
	}
	return &Scanner{tiers: tiers}
}

// Tiers returns a copy of the scanner's tier list, widest first.
func (s *Scanner) Tiers() []Tier {
	out := make([]Tier, len(s.tiers))
	copy(out, s.tiers)
	return out
}

// FirstNonASCII returns the index of the first byte >= 0x80 in data,
// or -1 if there is none.
//
// Algorithm:
//  1. Run each tier, widest first, on the bytes not yet covered, skipping
//     tiers wider than what remains or unsupported by the CPU
//  2. A tier compares whole blocks and stops at the first nonzero mask
//  3. A tier that finds nothing reports how many bytes it covered; the next
//     tier starts there
//  4. The scalar loop checks the remaining tail, shorter than 16 bytes
//     whenever a 16-byte tier ran
//
// Performance characteristics:
//   - Inputs shorter than 16 bytes: scalar loop only
//   - Long ASCII runs: bounded by memory bandwidth with the AVX2/AVX-512 tiers
//   - Early non-ASCII bytes: returns after the first block
//
// FirstNonASCII does not allocate.
func (s *Scanner) FirstNonASCII(data []byte) int {
	return dispatch(s.tiers, data)
}

// IsASCII reports whether every byte in data is < 0x80.
func (s *Scanner) IsASCII(data []byte) bool {
	return dispatch(s.tiers, data) < 0
}

// dispatch runs the tiers in order, then the scalar loop. covered is the
// number of leading bytes already cleared by a wider tier; narrower tiers
// start from there so no byte is scanned twice.
func dispatch(tiers []Tier, data []byte) int {
	covered := 0
	for i := range tiers {
		t := &tiers[i]
		if len(data)-covered < t.Width || !t.Available() {
			continue
		}
		n, idx := t.Scan(data[covered:])
		if idx >= 0 {
			return covered + idx
		}
		covered += n
	}
	return firstNonASCIIScalar(data, covered)
}

// firstNonASCIIScalar scans data[from:] one byte at a time.
func firstNonASCIIScalar(data []byte, from int) int {
	for i := from; i < len(data); i++ {
		if data[i]&0x80 != 0 {
			return i
		}
	}
	return -1
}
