package binary

import (
	"encoding/binary"

	"github.com/blakeanedved/ril/internal/types"
)

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// FromBE converts a slice of exactly sizeof(T) bytes to T using big-endian
// byte order.
//
// A slice of any other length fails with *types.LengthMismatchError. This
// includes slices cut short at the end of a buffer.
//
// Example:
//
//	width, err := binary.FromBE[uint32](data[0:4], "IHDR width")
func FromBE[T uint8 | uint16 | uint32 | uint64](b []byte, what string) (T, error) {
	var zero T
	size := sizeOf[T]()
	if len(b) != size {
		return zero, &types.LengthMismatchError{What: what, Want: size, Got: len(b)}
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(b[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(b))
	case uint32:
		val = T(binary.BigEndian.Uint32(b))
	case uint64:
		val = T(binary.BigEndian.Uint64(b))
	}

	return val, nil
}

// Uint32 interprets exactly 4 bytes as a big-endian uint32.
func Uint32(b []byte) (uint32, error) {
	return FromBE[uint32](b, "uint32")
}

// Uint16 interprets exactly 2 bytes as a big-endian uint16.
func Uint16(b []byte) (uint16, error) {
	return FromBE[uint16](b, "uint16")
}
