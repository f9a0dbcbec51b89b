package ril

import (
	"github.com/blakeanedved/ril/internal/chunk"
	"github.com/blakeanedved/ril/internal/types"
)

// ImageDescriptor is an alias to types.ImageDescriptor.
// Re-exporting from internal/types to maintain public API.
type ImageDescriptor = types.ImageDescriptor

// ImageHeader is an alias to types.ImageHeader.
type ImageHeader = types.ImageHeader

// ColorType is an alias to types.ColorType.
type ColorType = types.ColorType

// Re-export all color type constants.
const (
	ColorGrayscale      = types.ColorGrayscale
	ColorTruecolor      = types.ColorTruecolor
	ColorIndexed        = types.ColorIndexed
	ColorGrayscaleAlpha = types.ColorGrayscaleAlpha
	ColorTruecolorAlpha = types.ColorTruecolorAlpha
)

// Signature is the fixed 8-byte sequence every PNG file starts with.
const Signature = chunk.Signature

// ChunkRecord is one framed chunk, as passed to a ChunkVerifier.
type ChunkRecord = chunk.Record

// ChunkVerifier checks the integrity of each framed chunk.
type ChunkVerifier = chunk.Verifier

// ChunkVerifierFunc adapts a function to the ChunkVerifier interface.
type ChunkVerifierFunc = chunk.VerifierFunc

// ParseColorType maps a raw IHDR color type byte to a ColorType.
func ParseColorType(b uint8) (ColorType, error) {
	return types.ParseColorType(b)
}
