// SPDX-License-Identifier: GPL-3.0-or-later

package atom

// Fixed-width aliases used across the library.
type (
	Byte   = byte
	Int8   = int8
	Int16  = int16
	Int32  = int32
	Int64  = int64
	Uint8  = uint8
	Uint16 = uint16
	Uint32 = uint32
	Uint64 = uint64
	Float  = float32
	Double = float64

	// Usize is the unsigned size type, wide enough for any count.
	Usize = uint

	// Isize is the signed size type, used for counts and offsets.
	Isize = int

	// Char is a single byte of a UTF-8 string.
	Char = byte

	// UChar is a decoded Unicode code point.
	UChar = rune
)

// NullVal returns the zero value of T.
func NullVal[T any]() T {
	var zero T
	return zero
}

// IsNullVal reports whether v is the zero value of T.
func IsNullVal[T comparable](v T) bool {
	return v == NullVal[T]()
}

// Unit is the empty type: its only value is Unit{} and it occupies no
// storage. Pipeline stages that only have side effects return it.
type Unit struct{}
