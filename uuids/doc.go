// SPDX-License-Identifier: GPL-3.0-or-later

// Package uuids generates UUIDs on top of [github.com/google/uuid].
//
// Name-based UUIDs (versions 3 and 5) are produced by a [NameGenerator]
// driving a [digest.Generator]: the namespace bytes and then the name bytes
// are hashed, the first 16 bytes of the digest are kept, and the version
// and variant bits are overwritten.
package uuids
