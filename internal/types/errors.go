package types

import "fmt"

// prefix returns "path: " when a path is known, otherwise an empty string.
func prefix(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}

// LengthMismatchError is returned when a fixed-width conversion receives a
// slice of the wrong size.
type LengthMismatchError struct {
	What string
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch converting %s: want %d bytes, got %d", e.What, e.Want, e.Got)
}

// OutOfBoundsError is returned when attempting to read beyond buffer bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%soffset %d out of bounds (buffer size: %d) while reading %s",
			prefix(e.Path), e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%sread of %d bytes at offset %d would exceed buffer size %d while reading %s",
		prefix(e.Path), e.Length, e.Offset, e.Size, e.What)
}

// TruncatedChunkError is returned when the chunk stream ends in the middle of
// a chunk record.
type TruncatedChunkError struct {
	Err    error
	Path   string
	Type   string // empty when the tag itself could not be read
	What   string
	Offset int64
}

func (e *TruncatedChunkError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%struncated chunk at offset %d: missing %s", prefix(e.Path), e.Offset, e.What)
	}
	return fmt.Sprintf("%struncated %s chunk at offset %d: missing %s", prefix(e.Path), e.Type, e.Offset, e.What)
}

func (e *TruncatedChunkError) Unwrap() error {
	return e.Err
}

// InvalidSignatureError is returned when the leading bytes are not the PNG
// signature.
type InvalidSignatureError struct {
	Path string
	Got  []byte
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("%sinvalid PNG signature % x", prefix(e.Path), e.Got)
}

// MissingChunkError is returned when a mandatory chunk is absent.
type MissingChunkError struct {
	Path string
	Type string
}

func (e *MissingChunkError) Error() string {
	return fmt.Sprintf("%smissing required %s chunk", prefix(e.Path), e.Type)
}

// MalformedChunkError is returned when a recognized chunk's data cannot be
// decoded.
type MalformedChunkError struct {
	Path   string
	Type   string
	Reason string
}

func (e *MalformedChunkError) Error() string {
	return fmt.Sprintf("%smalformed %s chunk: %s", prefix(e.Path), e.Type, e.Reason)
}

// InvalidColorTypeError is returned for an IHDR color type byte outside
// {0, 2, 3, 4, 6}.
type InvalidColorTypeError struct {
	Path  string
	Value uint8
}

func (e *InvalidColorTypeError) Error() string {
	return fmt.Sprintf("%sinvalid color type %d", prefix(e.Path), e.Value)
}

// ChecksumMismatchError is returned by chunk verification when the stored
// CRC does not match the computed one.
type ChecksumMismatchError struct {
	Path   string
	Type   string
	Offset int64
	Stored uint32
	Actual uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%s%s chunk at offset %d: CRC mismatch (stored %08x, computed %08x)",
		prefix(e.Path), e.Type, e.Offset, e.Stored, e.Actual)
}
