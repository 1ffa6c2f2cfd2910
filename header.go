package utfc

import "fmt"

// headerSentinel marks one full multiple of 255 in the length header.
const headerSentinel = 255

// HeaderLen returns the size in bytes of the length header written for an
// input of n bytes: one sentinel per full multiple of 255 plus one
// terminal byte.
func HeaderLen(n int) int {
	return n/headerSentinel + 1
}

// appendHeader appends the length header for n to dst.
func appendHeader(dst []byte, n int) []byte {
	for i := n / headerSentinel; i > 0; i-- {
		dst = append(dst, headerSentinel)
	}
	return append(dst, byte(n%headerSentinel))
}

// ReadHeader parses the length header at the start of compressed data.
// It returns the original length recorded in the header and the number of
// header bytes. It fails with ErrTruncatedHeader if data ends before a
// terminal byte (< 255) is found.
func ReadHeader(data []byte) (length, size int, err error) {
	for i, b := range data {
		if b < headerSentinel {
			return i*headerSentinel + int(b), i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("utfc: %w: %d sentinel bytes without terminal byte", ErrTruncatedHeader, len(data))
}

// LengthFromCompressed returns the original length recorded in the header
// of compressed data without decompressing it.
//
// A positive limit stops the summation once the running total reaches
// limit, which allows asking "is the text at least limit bytes long?"
// while reading as few header bytes as possible. The result may then be
// less than the full length. A limit of 0 (or any negative value) means
// no limit and reads the whole header; it does not stop after the first
// byte.
//
// Data that ends inside the header yields the sum of the bytes seen.
//
// Example:
//
//	n := utfc.LengthFromCompressed(compressed, 0)
func LengthFromCompressed(data []byte, limit int) int {
	total := 0
	for _, b := range data {
		total += int(b)
		if b < headerSentinel || (limit > 0 && total >= limit) {
			break
		}
	}
	return total
}
