// Package chunk splits a PNG datastream into its chunk records.
//
// A chunk record is laid out as
//
//	length (4 bytes, big-endian) | type (4 bytes) | data (length bytes) | CRC (4 bytes)
//
// Walk visits records one at a time; Frame groups them by type into a
// types.ChunkTable.
package chunk

import (
	"errors"

	"github.com/blakeanedved/ril/internal/binary"
	"github.com/blakeanedved/ril/internal/textenc"
	"github.com/blakeanedved/ril/internal/types"
)

// Signature is the fixed 8-byte PNG file signature.
const Signature = "\x89PNG\r\n\x1a\n"

// Record is one framed chunk.
//
// Data aliases the buffer passed to Walk or Frame and must not be modified.
type Record struct {
	Data    []byte
	Type    string  // type tag, decoded as lossy UTF-8
	RawType [4]byte // type tag exactly as stored
	Offset  int64   // file offset of the length field
	Length  uint32
	CRC     uint32
}

// Options configures framing.
type Options struct {
	// Verifier checks each record's CRC. Nil skips verification.
	Verifier Verifier

	// Path is used in error messages only.
	Path string

	// Base is the file offset of the first byte of the buffer, normally
	// len(Signature). Used in error messages and Record.Offset.
	Base int64
}

// Walk calls fn for every chunk record in buf, in file order.
//
// buf must start at a chunk boundary and is consumed up to its exact end.
// A record cut short by the end of buf yields *types.TruncatedChunkError.
// Errors returned by fn or by the verifier stop the walk and are returned
// unchanged.
func Walk(buf []byte, opts Options, fn func(Record) error) error {
	sr := binary.NewSafeReader(buf, opts.Base, opts.Path)
	r := binary.NewReader(sr, 0)

	for r.Remaining() > 0 {
		start := r.Offset()
		truncated := func(chunkType, what string, err error) error {
			return &types.TruncatedChunkError{
				Err:    err,
				Path:   opts.Path,
				Type:   chunkType,
				What:   what,
				Offset: opts.Base + start,
			}
		}

		length, err := binary.ReadValue[uint32](r, "chunk length")
		if err != nil {
			return truncated("", "chunk length", err)
		}

		tag, err := r.ReadBytes(4, "chunk type")
		if err != nil {
			return truncated("", "chunk type", err)
		}
		chunkType := textenc.Lossy(tag)

		if int64(length) > r.Remaining() {
			return truncated(chunkType, "chunk data", &types.OutOfBoundsError{
				Path:   opts.Path,
				What:   "chunk data",
				Offset: opts.Base + r.Offset(),
				Length: int(length),
				Size:   opts.Base + r.Size(),
			})
		}
		data, err := r.ReadBytes(int(length), "chunk data")
		if err != nil {
			return truncated(chunkType, "chunk data", err)
		}

		crc, err := binary.ReadValue[uint32](r, "chunk CRC")
		if err != nil {
			return truncated(chunkType, "chunk CRC", err)
		}

		rec := Record{
			Data:   data,
			Type:   chunkType,
			Offset: opts.Base + start,
			Length: length,
			CRC:    crc,
		}
		copy(rec.RawType[:], tag)

		if opts.Verifier != nil {
			if err := opts.Verifier.Verify(rec); err != nil {
				var mismatch *types.ChecksumMismatchError
				if errors.As(err, &mismatch) && mismatch.Path == "" {
					mismatch.Path = opts.Path
				}
				return err
			}
		}

		if err := fn(rec); err != nil {
			return err
		}
	}

	return nil
}

// Frame decomposes buf into a table of raw chunks grouped by type.
//
// Chunks of the same type keep file order. The returned chunks alias buf.
func Frame(buf []byte, opts Options) (*types.ChunkTable, error) {
	table := types.NewChunkTable()

	err := Walk(buf, opts, func(rec Record) error {
		table.Add(rec.Type, types.RawChunk{Data: rec.Data, Length: rec.Length})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}
