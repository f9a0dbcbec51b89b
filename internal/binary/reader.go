// Package binary provides type-safe binary reading primitives with bounds checking
package binary

import (
	"github.com/blakeanedved/ril/internal/types"
)

// SafeReader wraps an in-memory buffer with bounds checking and helpful error
// messages.
//
// Offsets passed to SafeReader are relative to the buffer; error messages
// report them relative to the file by adding base.
type SafeReader struct {
	buf  []byte
	path string
	base int64
}

// NewSafeReader creates a new SafeReader. base is the file offset of buf[0].
func NewSafeReader(buf []byte, base int64, path string) *SafeReader {
	return &SafeReader{
		buf:  buf,
		base: base,
		path: path,
	}
}

// Size returns the buffer length.
func (sr *SafeReader) Size() int64 {
	return int64(len(sr.buf))
}

// Slice returns n bytes at the given offset without copying.
//
// The returned slice aliases the underlying buffer and must not be modified.
func (sr *SafeReader) Slice(off int64, n int, what string) ([]byte, error) {
	size := int64(len(sr.buf))
	if off < 0 || off > size || (n > 0 && off == size) {
		return nil, &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: sr.base + off,
			Length: n,
			Size:   sr.base + size,
		}
	}

	if n < 0 || off+int64(n) > size {
		return nil, &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: sr.base + off,
			Length: n,
			Size:   sr.base + size,
		}
	}

	return sr.buf[off : off+int64(n)], nil
}

// Read reads a big-endian value of type T from the given offset.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	b, err := sr.Slice(off, sizeOf[T](), what)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromBE[T](b, what)
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		var zero T
		return zero, err
	}

	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadBytes returns the next n bytes and advances the offset.
// The result aliases the underlying buffer.
func (r *Reader) ReadBytes(n int, what string) ([]byte, error) {
	b, err := r.SafeReader.Slice(r.offset, n, what)
	if err != nil {
		return nil, err
	}

	r.offset += int64(n)
	return b, nil
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int64 {
	return r.Size() - r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](cr.Reader, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
