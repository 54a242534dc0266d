// SPDX-License-Identifier: GPL-3.0-or-later

package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"

	"github.com/bassosimone/runtimex"
	"golang.org/x/crypto/blake2b"
)

// Generator is a stateful hash accumulator.
type Generator[H Digest] interface {
	// Reset discards the accumulated input.
	Reset()

	// Update accumulates data.
	Update(data []byte)

	// UpdateByte accumulates a single byte.
	UpdateByte(b byte)

	// Finalize returns the digest of the accumulated input and resets
	// the generator.
	Finalize() H
}

// HashGenerator is a [Generator] backed by a [hash.Hash].
//
// Construct using [NewMd5Generator], [NewSha1Generator] or
// [NewBlake2b256Generator].
type HashGenerator[H Digest] struct {
	h       hash.Hash
	convert func(sum []byte) H
}

var (
	_ Generator[Md5Hash]        = &HashGenerator[Md5Hash]{}
	_ Generator[Sha1Hash]       = &HashGenerator[Sha1Hash]{}
	_ Generator[Blake2b256Hash] = &HashGenerator[Blake2b256Hash]{}
)

// NewMd5Generator returns a generator of [Md5Hash] digests.
func NewMd5Generator() *HashGenerator[Md5Hash] {
	return &HashGenerator[Md5Hash]{h: md5.New(), convert: func(sum []byte) Md5Hash {
		return Md5Hash(sum)
	}}
}

// NewSha1Generator returns a generator of [Sha1Hash] digests.
func NewSha1Generator() *HashGenerator[Sha1Hash] {
	return &HashGenerator[Sha1Hash]{h: sha1.New(), convert: func(sum []byte) Sha1Hash {
		return Sha1Hash(sum)
	}}
}

// NewBlake2b256Generator returns a generator of [Blake2b256Hash] digests.
func NewBlake2b256Generator() *HashGenerator[Blake2b256Hash] {
	// New256 only fails for keys longer than 64 bytes
	h := runtimex.PanicOnError1(blake2b.New256(nil))
	return &HashGenerator[Blake2b256Hash]{h: h, convert: func(sum []byte) Blake2b256Hash {
		return Blake2b256Hash(sum)
	}}
}

// Reset implements [Generator].
func (g *HashGenerator[H]) Reset() {
	g.h.Reset()
}

// Update implements [Generator].
func (g *HashGenerator[H]) Update(data []byte) {
	g.h.Write(data)
}

// UpdateByte implements [Generator].
func (g *HashGenerator[H]) UpdateByte(b byte) {
	g.h.Write([]byte{b})
}

// Finalize implements [Generator].
func (g *HashGenerator[H]) Finalize() H {
	out := g.convert(g.h.Sum(nil))
	g.h.Reset()
	return out
}

// Size returns the digest length in bytes.
func (g *HashGenerator[H]) Size() int {
	return g.h.Size()
}

// Sum resets gen, feeds it data and returns the digest.
func Sum[H Digest](gen Generator[H], data []byte) H {
	gen.Reset()
	gen.Update(data)
	return gen.Finalize()
}
