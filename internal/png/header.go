package png

import (
	"bytes"
	"fmt"

	"github.com/blakeanedved/ril/internal/binary"
	"github.com/blakeanedved/ril/internal/registry"
	"github.com/blakeanedved/ril/internal/types"
)

// headerLength is the size of the IHDR payload.
const headerLength = 13

// headerDecoder decodes the first IHDR chunk.
type headerDecoder struct{}

func (headerDecoder) Decode(chunks []types.RawChunk, img *types.ImageDescriptor, opts registry.Options) error {
	h, err := DecodeHeader(chunks[0].Data)
	if err != nil {
		return withPath(err, opts.Path)
	}

	img.ImageHeader = h

	opts.Logger.Debug("decoded IHDR",
		"width", h.Width,
		"height", h.Height,
		"bit_depth", h.BitDepth,
		"color_type", h.ColorType,
		"interlace", h.InterlaceMethod,
	)
	return nil
}

// DecodeHeader decodes IHDR chunk data.
//
// Bytes past the first 13 are ignored. Fewer than 13 bytes yields
// *types.MalformedChunkError; a color type byte outside {0, 2, 3, 4, 6}
// yields *types.InvalidColorTypeError.
func DecodeHeader(data []byte) (types.ImageHeader, error) {
	if len(data) < headerLength {
		return types.ImageHeader{}, &types.MalformedChunkError{
			Type:   types.ChunkIHDR,
			Reason: fmt.Sprintf("need %d bytes, got %d", headerLength, len(data)),
		}
	}

	sr := binary.NewSafeReader(data, 0, "")
	cr := binary.NewChainReader(binary.NewReader(sr, 0))

	width := binary.ReadChained[uint32](cr, "width")
	height := binary.ReadChained[uint32](cr, "height")
	bitDepth := binary.ReadChained[uint8](cr, "bit depth")
	colorCode := binary.ReadChained[uint8](cr, "color type")
	compression := binary.ReadChained[uint8](cr, "compression method")
	filter := binary.ReadChained[uint8](cr, "filter method")
	interlace := binary.ReadChained[uint8](cr, "interlace method")

	if err := cr.Error(); err != nil {
		return types.ImageHeader{}, &types.MalformedChunkError{Type: types.ChunkIHDR, Reason: err.Error()}
	}

	colorType, err := types.ParseColorType(colorCode)
	if err != nil {
		return types.ImageHeader{}, err
	}

	return types.ImageHeader{
		Width:             width,
		Height:            height,
		BitDepth:          bitDepth,
		ColorType:         colorType,
		CompressionMethod: compression,
		FilterMethod:      filter,
		InterlaceMethod:   interlace,
	}, nil
}

// EncodeHeader returns the 13-byte IHDR payload for h.
func EncodeHeader(h types.ImageHeader) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, headerLength))
	sw := binary.NewSafeWriter(buf)

	// bytes.Buffer writes only fail by panicking
	_ = binary.Write(sw, h.Width)
	_ = binary.Write(sw, h.Height)
	_ = sw.WriteBytes([]byte{
		h.BitDepth,
		uint8(h.ColorType),
		h.CompressionMethod,
		h.FilterMethod,
		h.InterlaceMethod,
	})

	return buf.Bytes()
}

func init() {
	registry.Register(types.ChunkIHDR, headerDecoder{})
}
