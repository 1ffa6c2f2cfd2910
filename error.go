package utfc

import (
	"errors"
	"fmt"
)

// Codec errors. Use errors.Is to test for them; the concrete error may be
// a *LeadError carrying the offending bytes.
var (
	// ErrMalformedLead indicates input to Compress that does not start with a
	// 1, 2, 3 or 4-byte UTF-8 pattern at some position.
	ErrMalformedLead = errors.New("malformed UTF-8 lead")

	// ErrMissingLead indicates a payload byte in compressed input that reuses
	// a lead before any lead has been seen.
	ErrMissingLead = errors.New("payload without cached lead")

	// ErrTruncatedHeader indicates compressed input whose length header has
	// no terminal byte.
	ErrTruncatedHeader = errors.New("truncated length header")
)

// LeadError reports where a compress or decompress call stopped and which
// bytes it could not handle.
type LeadError struct {
	// Op is "compress" or "decompress".
	Op string

	// Offset is the position of the offending bytes in the input.
	Offset int

	// Bytes holds up to four bytes starting at Offset. It is a copy.
	Bytes []byte

	// Err is ErrMalformedLead or ErrMissingLead.
	Err error
}

// Error implements the error interface
func (e *LeadError) Error() string {
	return fmt.Sprintf("utfc: %s: %v at offset %d: % x", e.Op, e.Err, e.Offset, e.Bytes)
}

// Unwrap returns the underlying error
func (e *LeadError) Unwrap() error {
	return e.Err
}

func newLeadError(op string, err error, input []byte, offset int) *LeadError {
	end := min(offset+maxDiagnosticBytes, len(input))
	return &LeadError{
		Op:     op,
		Offset: offset,
		Bytes:  append([]byte(nil), input[offset:end]...),
		Err:    err,
	}
}
