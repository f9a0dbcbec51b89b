package png

import (
	"fmt"

	"github.com/blakeanedved/ril/internal/binary"
	"github.com/blakeanedved/ril/internal/registry"
	"github.com/blakeanedved/ril/internal/types"
)

const timestampLength = 7

// Timestamp is the content of a tIME chunk.
type Timestamp struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// String formats the timestamp as "M/D/YYYY H:MM:SS". Only minute and second
// are zero-padded.
func (ts Timestamp) String() string {
	return fmt.Sprintf("%d/%d/%d %d:%02d:%02d", ts.Month, ts.Day, ts.Year, ts.Hour, ts.Minute, ts.Second)
}

type timestampDecoder struct{}

func (timestampDecoder) Decode(chunks []types.RawChunk, img *types.ImageDescriptor, opts registry.Options) error {
	ts, err := DecodeTimestamp(chunks[0].Data)
	if err != nil {
		return withPath(err, opts.Path)
	}

	s := ts.String()
	img.LastModified = &s

	opts.Logger.Debug("decoded tIME", "last_modified", s)
	return nil
}

// DecodeTimestamp decodes tIME chunk data.
func DecodeTimestamp(data []byte) (Timestamp, error) {
	if len(data) < timestampLength {
		return Timestamp{}, &types.MalformedChunkError{
			Type:   types.ChunkTIME,
			Reason: fmt.Sprintf("need %d bytes, got %d", timestampLength, len(data)),
		}
	}

	year, err := binary.Uint16(data[0:2])
	if err != nil {
		return Timestamp{}, err
	}

	return Timestamp{
		Year:   year,
		Month:  data[2],
		Day:    data[3],
		Hour:   data[4],
		Minute: data[5],
		Second: data[6],
	}, nil
}

func init() {
	registry.Register(types.ChunkTIME, timestampDecoder{})
}
