// SPDX-License-Identifier: GPL-3.0-or-later

package mathx

const hexDigits = "0123456789abcdef"

// IsHexChar reports whether ch is a hexadecimal digit of either case.
func IsHexChar(ch byte) bool {
	_, ok := CharToHex(ch)
	return ok
}

// CharToHex returns the value of the hexadecimal digit ch.
//
// The boolean is false when ch is not a hexadecimal digit.
func CharToHex(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

// HexToChar returns the two lowercase hexadecimal digits of b, high nibble
// first.
func HexToChar(b byte) [2]byte {
	return [2]byte{hexDigits[b>>4], hexDigits[b&0x0F]}
}
