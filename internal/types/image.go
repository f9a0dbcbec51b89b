// Package types provides the core data structures for parsed PNG metadata.
//
// This package defines the ImageDescriptor, ImageHeader, ColorType and chunk
// table types shared by the framer, the chunk decoders and the public API.
package types

// ColorType is the IHDR color type code.
type ColorType uint8

const (
	// ColorGrayscale is a single luminance sample per pixel.
	ColorGrayscale ColorType = 0
	// ColorTruecolor is an RGB triple per pixel.
	ColorTruecolor ColorType = 2
	// ColorIndexed is a palette index per pixel.
	ColorIndexed ColorType = 3
	// ColorGrayscaleAlpha is luminance followed by alpha.
	ColorGrayscaleAlpha ColorType = 4
	// ColorTruecolorAlpha is RGB followed by alpha.
	ColorTruecolorAlpha ColorType = 6
)

// ParseColorType maps a raw IHDR byte to its ColorType.
//
// Any value outside {0, 2, 3, 4, 6} yields an InvalidColorTypeError; file
// input can carry arbitrary bytes, so this is a normal failure, not a bug.
func ParseColorType(b uint8) (ColorType, error) {
	switch ColorType(b) {
	case ColorGrayscale, ColorTruecolor, ColorIndexed, ColorGrayscaleAlpha, ColorTruecolorAlpha:
		return ColorType(b), nil
	}
	return 0, &InvalidColorTypeError{Value: b}
}

func (c ColorType) String() string {
	switch c {
	case ColorGrayscale:
		return "Grayscale"
	case ColorTruecolor:
		return "Truecolor"
	case ColorIndexed:
		return "Indexed"
	case ColorGrayscaleAlpha:
		return "GrayscaleAlpha"
	case ColorTruecolorAlpha:
		return "TruecolorAlpha"
	default:
		return "Unknown"
	}
}

// HasAlpha reports whether pixels of this color type carry an alpha sample.
func (c ColorType) HasAlpha() bool {
	return c == ColorGrayscaleAlpha || c == ColorTruecolorAlpha
}

// ImageHeader holds the fields of the IHDR chunk.
type ImageHeader struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// ImageDescriptor is the result of parsing a PNG file.
//
// Optional fields are nil when the corresponding chunk was not present:
//   - Text: tEXt chunks
//   - LastModified: tIME chunk
//   - Gamma: gAMA chunk
//
// An ImageDescriptor is built once at the end of a successful parse and is
// never modified by the library afterwards.
type ImageDescriptor struct {
	ImageHeader

	// Textual metadata merged from every tEXt chunk, keyed by keyword
	Text map[string]string

	// Last modification time, formatted as "M/D/YYYY H:MM:SS"
	LastModified *string

	// Display gamma (gAMA value / 100000)
	Gamma *float64

	// Distinct chunk types in the order they first appear in the file
	ChunkTypes []string
}

// HasText reports whether the file carried at least one tEXt chunk.
func (d *ImageDescriptor) HasText() bool {
	return d.Text != nil
}
