package chunk

import (
	"hash/crc32"

	"github.com/blakeanedved/ril/internal/types"
)

// Verifier checks the integrity of a framed chunk.
type Verifier interface {
	Verify(rec Record) error
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(Record) error

// Verify calls f(rec).
func (f VerifierFunc) Verify(rec Record) error {
	return f(rec)
}

// CRC32Verifier checks the stored CRC against the IEEE CRC-32 of the chunk
// type and data, as defined by the PNG format.
type CRC32Verifier struct{}

// Verify returns *types.ChecksumMismatchError when the CRC does not match.
func (CRC32Verifier) Verify(rec Record) error {
	actual := Checksum(rec.RawType, rec.Data)
	if actual != rec.CRC {
		return &types.ChecksumMismatchError{
			Type:   rec.Type,
			Offset: rec.Offset,
			Stored: rec.CRC,
			Actual: actual,
		}
	}
	return nil
}

// Checksum computes the CRC-32 stored after a chunk's data.
func Checksum(chunkType [4]byte, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(chunkType[:])
	h.Write(data)
	return h.Sum32()
}
