// SPDX-License-Identifier: GPL-3.0-or-later

package digest

import (
	"errors"
	"fmt"

	"github.com/bassosimone/atom/mathx"
)

// ErrInvalidDigest indicates that a string is not a valid hex digest.
var ErrInvalidDigest = errors.New("invalid digest")

// Digest is a fixed-size hash value.
type Digest interface {
	// Bytes returns the digest bytes.
	Bytes() []byte

	// String returns the lowercase hex encoding.
	String() string
}

// Md5Hash is an MD5 digest.
type Md5Hash [16]byte

// Sha1Hash is a SHA-1 digest.
type Sha1Hash [20]byte

// Blake2b256Hash is a BLAKE2b-256 digest.
type Blake2b256Hash [32]byte

var (
	_ Digest = Md5Hash{}
	_ Digest = Sha1Hash{}
	_ Digest = Blake2b256Hash{}
)

// Bytes implements [Digest].
func (h Md5Hash) Bytes() []byte {
	return h[:]
}

// String implements [Digest].
func (h Md5Hash) String() string {
	return encodeHex(h[:])
}

// IsNull reports whether every byte is zero.
func (h Md5Hash) IsNull() bool {
	return h == Md5Hash{}
}

// Bytes implements [Digest].
func (h Sha1Hash) Bytes() []byte {
	return h[:]
}

// String implements [Digest].
func (h Sha1Hash) String() string {
	return encodeHex(h[:])
}

// IsNull reports whether every byte is zero.
func (h Sha1Hash) IsNull() bool {
	return h == Sha1Hash{}
}

// Bytes implements [Digest].
func (h Blake2b256Hash) Bytes() []byte {
	return h[:]
}

// String implements [Digest].
func (h Blake2b256Hash) String() string {
	return encodeHex(h[:])
}

// IsNull reports whether every byte is zero.
func (h Blake2b256Hash) IsNull() bool {
	return h == Blake2b256Hash{}
}

// ParseMd5Hash parses the hex encoding of an [Md5Hash].
func ParseMd5Hash(s string) (Md5Hash, error) {
	var h Md5Hash
	err := decodeHex(h[:], s)
	return h, err
}

// ParseSha1Hash parses the hex encoding of a [Sha1Hash].
func ParseSha1Hash(s string) (Sha1Hash, error) {
	var h Sha1Hash
	err := decodeHex(h[:], s)
	return h, err
}

// ParseBlake2b256Hash parses the hex encoding of a [Blake2b256Hash].
func ParseBlake2b256Hash(s string) (Blake2b256Hash, error) {
	var h Blake2b256Hash
	err := decodeHex(h[:], s)
	return h, err
}

func encodeHex(src []byte) string {
	out := make([]byte, 0, 2*len(src))
	for _, b := range src {
		chars := mathx.HexToChar(b)
		out = append(out, chars[0], chars[1])
	}
	return string(out)
}

func decodeHex(dst []byte, s string) error {
	if len(s) != 2*len(dst) {
		return fmt.Errorf("%w: expected %d hex chars, got %d", ErrInvalidDigest, 2*len(dst), len(s))
	}
	for idx := range dst {
		hi, okHi := mathx.CharToHex(s[2*idx])
		lo, okLo := mathx.CharToHex(s[2*idx+1])
		if !okHi || !okLo {
			clear(dst)
			return fmt.Errorf("%w: non hex char near offset %d", ErrInvalidDigest, 2*idx)
		}
		dst[idx] = hi<<4 | lo
	}
	return nil
}
