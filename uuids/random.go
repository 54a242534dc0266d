// SPDX-License-Identifier: GPL-3.0-or-later

package uuids

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// ErrUnknownNamespace indicates that a namespace is neither a well-known
// name nor a valid UUID.
var ErrUnknownNamespace = errors.New("unknown namespace")

// NewV4 returns a random UUID.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewV4() uuid.UUID {
	return runtimex.PanicOnError1(uuid.NewRandom())
}

// NewV7 returns a time-ordered UUID.
//
// Use it to correlate the log entries of a single run.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewV7() uuid.UUID {
	return runtimex.PanicOnError1(uuid.NewV7())
}

// VersionOf returns the version nibble of u.
func VersionOf(u uuid.UUID) uuid.Version {
	return u.Version()
}

// IsRFCVariant reports whether the top two bits of byte 8 are 10.
func IsRFCVariant(u uuid.UUID) bool {
	return u.Variant() == uuid.RFC4122
}

// ParseNamespace resolves dns, url, oid and x500 (case-insensitive) to the
// well-known namespaces and otherwise parses value as a UUID.
func ParseNamespace(value string) (uuid.UUID, error) {
	switch strings.ToLower(value) {
	case "dns":
		return NamespaceDNS, nil
	case "url":
		return NamespaceURL, nil
	case "oid":
		return NamespaceOID, nil
	case "x500":
		return NamespaceX500, nil
	}
	u, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, value)
	}
	return u, nil
}
