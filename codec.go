package utfc

import (
	"bytes"

	"github.com/coregx/utfc/internal/lead"
	"github.com/coregx/utfc/simd"
)

// maxDiagnosticBytes bounds the bytes copied into a LeadError.
const maxDiagnosticBytes = lead.MaxLen

// Codec compresses and decompresses UTF-8 text.
//
// A Codec is immutable and safe to use concurrently from multiple
// goroutines. Each call keeps its own lead cache and output buffer.
type Codec struct {
	config  Config
	scanner *simd.Scanner
}

// NewCodec returns a Codec using config.
// Returns an error if the configuration is invalid.
//
// Example:
//
//	codec, err := utfc.NewCodec(utfc.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewCodec(config Config) (*Codec, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var scanner *simd.Scanner
	switch {
	case !config.EnableSIMD:
		scanner = simd.NewScanner(-1)
	case config.MaxVectorWidth == 0:
		scanner = simd.Default()
	default:
		scanner = simd.NewScanner(config.MaxVectorWidth)
	}

	return &Codec{config: config, scanner: scanner}, nil
}

// MustNewCodec is like NewCodec but panics if the configuration is invalid.
func MustNewCodec(config Config) *Codec {
	c, err := NewCodec(config)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// Config returns the configuration the codec was built with.
func (c *Codec) Config() Config {
	return c.config
}

// Tiers returns the names of the scanner tiers this codec may use, widest
// first. An empty result means ASCII runs are scanned with the scalar loop.
func (c *Codec) Tiers() []string {
	tiers := c.scanner.Tiers()
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.Name
	}
	return names
}

// Compress returns the compressed form of src: a length header followed by
// ASCII runs copied verbatim and multi-byte characters whose lead bytes are
// written only when they differ from the previous character's.
//
// It fails with a *LeadError wrapping ErrMalformedLead if src is not a
// sequence of well-formed UTF-8 byte patterns. No partial output is
// returned on error.
func (c *Codec) Compress(src []byte) ([]byte, error) {
	// Output never exceeds header + input: every character emits at most
	// its own length.
	out := make([]byte, 0, HeaderLen(len(src))+len(src))
	out = appendHeader(out, len(src))

	var last []byte
	for pos := 0; pos < len(src); {
		window := src[pos:]
		shape := lead.Classify(window)

		switch shape.Kind() {
		case lead.Invalid:
			return nil, newLeadError("compress", ErrMalformedLead, src, pos)
		case lead.ASCII:
			n := c.asciiRun(window)
			out = append(out, window[:n]...)
			pos += n
			continue
		}

		if l := shape.Lead(); !bytes.Equal(l, last) {
			out = append(out, l...)
			last = l
		}
		out = append(out, shape.Payload())
		pos += shape.Len()
	}

	return out, nil
}

// Decompress reverses Compress.
//
// It fails with ErrTruncatedHeader if the length header never terminates,
// and with a *LeadError wrapping ErrMissingLead if a payload byte appears
// before any lead. The header length only sizes the output buffer; it is
// not checked against the decoded length.
func (c *Codec) Decompress(src []byte) ([]byte, error) {
	length, hlen, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	body := src[hlen:]

	// Each body byte decodes to at most lead.MaxLen bytes, which bounds the
	// allocation a forged header can cause.
	out := make([]byte, 0, min(length, lead.MaxLen*len(body)))

	var last []byte
	for pos := 0; pos < len(body); {
		window := body[pos:]
		shape := lead.Classify(window)

		var payload byte
		var n int
		switch shape.Kind() {
		case lead.Invalid:
			// A bare payload byte reuses the cached lead.
			if len(last) == 0 {
				return nil, newLeadError("decompress", ErrMissingLead, src, hlen+pos)
			}
			payload, n = window[0], 1
		case lead.ASCII:
			k := c.asciiRun(window)
			out = append(out, window[:k]...)
			pos += k
			continue
		default:
			last = shape.Lead()
			payload, n = shape.Payload(), shape.Len()
		}

		out = append(out, last...)
		out = append(out, payload)
		pos += n
	}

	return out, nil
}

// asciiRun returns the length of the ASCII run at the start of window.
// window[0] must be ASCII.
func (c *Codec) asciiRun(window []byte) int {
	// Single ASCII bytes between multi-byte characters are common in mixed
	// text; skip the scanner for them.
	if len(window) == 1 || window[1]&0x80 != 0 {
		return 1
	}
	idx := c.scanner.FirstNonASCII(window[2:])
	if idx < 0 {
		return len(window)
	}
	return idx + 2
}
