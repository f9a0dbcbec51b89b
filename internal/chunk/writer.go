package chunk

import (
	"fmt"
	"io"
	"math"

	"github.com/blakeanedved/ril/internal/binary"
)

// Writer emits a PNG datastream chunk by chunk.
type Writer struct {
	sw *binary.SafeWriter
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{sw: binary.NewSafeWriter(w)}
}

// WriteSignature writes the 8-byte PNG signature.
func (w *Writer) WriteSignature() error {
	return w.sw.WriteString(Signature)
}

// WriteChunk writes a complete chunk record, computing its CRC.
func (w *Writer) WriteChunk(chunkType string, data []byte) error {
	if len(chunkType) != 4 {
		return fmt.Errorf("chunk type %q: must be exactly 4 bytes", chunkType)
	}
	if uint64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("%s chunk: data length %d exceeds 32 bits", chunkType, len(data))
	}

	var tag [4]byte
	copy(tag[:], chunkType)

	start := w.sw.Offset()
	err := binary.Write[uint32](w.sw, uint32(len(data)))
	if err == nil {
		err = w.sw.WriteBytes(tag[:])
	}
	if err == nil {
		err = w.sw.WriteBytes(data)
	}
	if err == nil {
		err = binary.Write[uint32](w.sw, Checksum(tag, data))
	}
	if err != nil {
		return fmt.Errorf("write %s chunk at offset %d: %w", chunkType, start, err)
	}
	return nil
}
