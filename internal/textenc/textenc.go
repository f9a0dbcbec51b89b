// Package textenc converts raw chunk bytes to Go strings.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Decoder turns raw bytes into a string. It never fails; undecodable input is
// replaced rather than rejected.
type Decoder func([]byte) string

// Lossy decodes b as UTF-8, replacing every invalid sequence with U+FFFD.
func Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	// The UTF-8 decoder substitutes invalid input and never returns an error.
	out, _ := unicode.UTF8.NewDecoder().Bytes(b)
	return string(out)
}

// Latin1 decodes b as ISO 8859-1, the character set PNG mandates for tEXt.
func Latin1(b []byte) string {
	// Every byte maps to a code point, so decoding cannot fail.
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(out)
}
