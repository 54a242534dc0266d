// SPDX-License-Identifier: GPL-3.0-or-later

package uuids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewV4(t *testing.T) {
	u := NewV4()
	assert.Equal(t, uuid.Version(4), VersionOf(u))
	assert.True(t, IsRFCVariant(u))
}

func TestNewV7(t *testing.T) {
	parsed, err := uuid.Parse(NewV7().String())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNewV7Uniqueness(t *testing.T) {
	const count = 100
	seen := make(map[uuid.UUID]struct{}, count)

	for range count {
		u := NewV7()
		_, duplicate := seen[u]
		require.False(t, duplicate, "duplicate UUID generated: %s", u)
		seen[u] = struct{}{}
	}
}

func TestParseNamespace(t *testing.T) {
	type testcase struct {
		input  string
		expect uuid.UUID
		err    error
	}

	cases := []testcase{
		{input: "dns", expect: NamespaceDNS},
		{input: "URL", expect: NamespaceURL},
		{input: "oid", expect: NamespaceOID},
		{input: "x500", expect: NamespaceX500},
		{input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", expect: NamespaceDNS},
		{input: "not-a-namespace", expect: uuid.Nil, err: ErrUnknownNamespace},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseNamespace(tc.input)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.expect, got)
		})
	}
}
