package ril

import (
	"github.com/blakeanedved/ril/internal/types"
)

// LengthMismatchError is an alias to types.LengthMismatchError.
// Returned when a fixed-width conversion receives a slice of the wrong size.
type LengthMismatchError = types.LengthMismatchError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Usually found wrapped inside a TruncatedChunkError.
type OutOfBoundsError = types.OutOfBoundsError

// TruncatedChunkError is an alias to types.TruncatedChunkError.
// Returned when the file ends in the middle of a chunk record.
type TruncatedChunkError = types.TruncatedChunkError

// InvalidSignatureError is an alias to types.InvalidSignatureError.
// Returned when the input does not start with the PNG signature.
type InvalidSignatureError = types.InvalidSignatureError

// MissingChunkError is an alias to types.MissingChunkError.
// Returned when the mandatory IHDR chunk is absent.
type MissingChunkError = types.MissingChunkError

// MalformedChunkError is an alias to types.MalformedChunkError.
// Returned when a recognized chunk is too short or otherwise undecodable.
type MalformedChunkError = types.MalformedChunkError

// InvalidColorTypeError is an alias to types.InvalidColorTypeError.
type InvalidColorTypeError = types.InvalidColorTypeError

// ChecksumMismatchError is an alias to types.ChecksumMismatchError.
// Only returned when CRC validation is enabled.
type ChecksumMismatchError = types.ChecksumMismatchError
