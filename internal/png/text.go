package png

import (
	"bytes"
	"fmt"

	"github.com/blakeanedved/ril/internal/registry"
	"github.com/blakeanedved/ril/internal/textenc"
	"github.com/blakeanedved/ril/internal/types"
)

// maxKeywordLength is the PNG limit on tEXt keywords, checked in strict mode.
const maxKeywordLength = 79

// textDecoder merges every tEXt chunk into one map.
type textDecoder struct{}

func (textDecoder) Decode(chunks []types.RawChunk, img *types.ImageDescriptor, opts registry.Options) error {
	entries, err := DecodeText(chunks, opts.Text, opts.StrictText)
	if err != nil {
		return withPath(err, opts.Path)
	}

	img.Text = entries

	for key := range entries {
		opts.Logger.Debug("decoded tEXt entry", "key", key)
	}
	return nil
}

// DecodeText decodes tEXt chunks into a keyword → value map.
//
// Each chunk holds one or more records of the form
//
//	keyword NUL value [NUL keyword NUL value ...]
//
// A value runs to the next NUL or to the end of the chunk. A keyword that is
// not terminated by a NUL inside the chunk yields *types.MalformedChunkError,
// so a trailing keyword with no value, as in "Author\x00Jane\x00Smith", is
// rejected rather than dropped.
// Later keywords overwrite earlier ones, across chunks as well as within one.
// dec defaults to textenc.Lossy when nil.
func DecodeText(chunks []types.RawChunk, dec textenc.Decoder, strict bool) (map[string]string, error) {
	if dec == nil {
		dec = textenc.Lossy
	}

	entries := make(map[string]string)

	for n, c := range chunks {
		data := c.Data
		i := 0

		for i < len(data) {
			sep := bytes.IndexByte(data[i:], 0)
			if sep < 0 {
				return nil, &types.MalformedChunkError{
					Type:   types.ChunkTEXt,
					Reason: fmt.Sprintf("chunk %d: keyword at byte %d is not NUL-terminated", n, i),
				}
			}
			if strict && (sep == 0 || sep > maxKeywordLength) {
				return nil, &types.MalformedChunkError{
					Type:   types.ChunkTEXt,
					Reason: fmt.Sprintf("chunk %d: keyword length %d outside 1-%d", n, sep, maxKeywordLength),
				}
			}
			key := dec(data[i : i+sep])
			i += sep + 1

			end := bytes.IndexByte(data[i:], 0)
			if end < 0 {
				end = len(data) - i
			}
			value := dec(data[i : i+end])
			i += end + 1

			entries[key] = value
		}
	}

	return entries, nil
}

func init() {
	registry.Register(types.ChunkTEXt, textDecoder{})
}
