// SPDX-License-Identifier: GPL-3.0-or-later

package uuids

import (
	"github.com/bassosimone/atom/digest"
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// Name-based UUID versions.
const (
	VersionMD5  = uuid.Version(3)
	VersionSHA1 = uuid.Version(5)
)

// Well-known namespaces for name-based UUIDs.
var (
	NamespaceDNS  = uuid.NameSpaceDNS
	NamespaceURL  = uuid.NameSpaceURL
	NamespaceOID  = uuid.NameSpaceOID
	NamespaceX500 = uuid.NameSpaceX500
)

// NameGenerator generates name-based UUIDs within a namespace.
//
// A NameGenerator owns the state of its digest generator and is not safe
// for concurrent use.
//
// Construct using [NewNameGenerator], [NewV3Generator] or [NewV5Generator].
type NameGenerator[H digest.Digest] struct {
	gen       digest.Generator[H]
	namespace uuid.UUID
	version   uuid.Version
}

// NewNameGenerator returns a [*NameGenerator] that hashes with gen and stamps
// the given version. The digests produced by gen must be at least 16 bytes.
func NewNameGenerator[H digest.Digest](
	gen digest.Generator[H], namespace uuid.UUID, version uuid.Version) *NameGenerator[H] {
	runtimex.Assert(version < 16)
	return &NameGenerator[H]{gen: gen, namespace: namespace, version: version}
}

// NewV3Generator returns a [*NameGenerator] of MD5-based version 3 UUIDs.
func NewV3Generator(namespace uuid.UUID) *NameGenerator[digest.Md5Hash] {
	return NewNameGenerator[digest.Md5Hash](digest.NewMd5Generator(), namespace, VersionMD5)
}

// NewV5Generator returns a [*NameGenerator] of SHA-1-based version 5 UUIDs.
func NewV5Generator(namespace uuid.UUID) *NameGenerator[digest.Sha1Hash] {
	return NewNameGenerator[digest.Sha1Hash](digest.NewSha1Generator(), namespace, VersionSHA1)
}

// Namespace returns the namespace of the generated UUIDs.
func (g *NameGenerator[H]) Namespace() uuid.UUID {
	return g.namespace
}

// Version returns the version stamped into the generated UUIDs.
func (g *NameGenerator[H]) Version() uuid.Version {
	return g.version
}

// Generate returns the UUID for name.
//
// The same namespace and name always produce the same UUID.
func (g *NameGenerator[H]) Generate(name string) uuid.UUID {
	g.gen.Reset()
	g.gen.Update(g.namespace[:])
	g.gen.Update([]byte(name))
	sum := g.gen.Finalize().Bytes()
	runtimex.Assert(len(sum) >= 16)

	var out uuid.UUID
	copy(out[:], sum[:16])
	out[8] = (out[8] & 0xBF) | 0x80
	out[6] = (out[6] & 0x0F) | byte(g.version)<<4
	return out
}

// NewV3 returns the version 3 UUID for name within namespace.
func NewV3(namespace uuid.UUID, name string) uuid.UUID {
	return NewV3Generator(namespace).Generate(name)
}

// NewV5 returns the version 5 UUID for name within namespace.
func NewV5(namespace uuid.UUID, name string) uuid.UUID {
	return NewV5Generator(namespace).Generate(name)
}
