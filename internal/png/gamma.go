package png

import (
	"fmt"

	"github.com/blakeanedved/ril/internal/binary"
	"github.com/blakeanedved/ril/internal/registry"
	"github.com/blakeanedved/ril/internal/types"
)

// gammaScale is the factor gAMA values are stored multiplied by.
const gammaScale = 100000.0

func decodeGammaChunk(chunks []types.RawChunk, img *types.ImageDescriptor, opts registry.Options) error {
	g, err := DecodeGamma(chunks[0].Data)
	if err != nil {
		return withPath(err, opts.Path)
	}

	img.Gamma = &g

	opts.Logger.Debug("decoded gAMA", "gamma", g)
	return nil
}

// DecodeGamma decodes gAMA chunk data.
func DecodeGamma(data []byte) (float64, error) {
	if len(data) < 4 {
		return 0, &types.MalformedChunkError{
			Type:   types.ChunkGAMA,
			Reason: fmt.Sprintf("need 4 bytes, got %d", len(data)),
		}
	}

	v, err := binary.Uint32(data[0:4])
	if err != nil {
		return 0, err
	}
	return float64(v) / gammaScale, nil
}

func init() {
	registry.Register(types.ChunkGAMA, registry.DecoderFunc(decodeGammaChunk))
}
