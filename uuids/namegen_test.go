// SPDX-License-Identifier: GPL-3.0-or-later

package uuids

import (
	"testing"

	"github.com/bassosimone/atom/digest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNameGenerator(t *testing.T) {
	names := []string{"", "www.example.com", "python.org", "ünïcödé", "a longer name with spaces"}
	namespaces := []uuid.UUID{NamespaceDNS, NamespaceURL, NamespaceOID, NamespaceX500}

	t.Run("version 3 interoperates with google/uuid", func(t *testing.T) {
		for _, ns := range namespaces {
			gen := NewV3Generator(ns)
			for _, name := range names {
				assert.Equal(t, uuid.NewMD5(ns, []byte(name)), gen.Generate(name))
			}
		}
	})

	t.Run("version 5 interoperates with google/uuid", func(t *testing.T) {
		for _, ns := range namespaces {
			gen := NewV5Generator(ns)
			for _, name := range names {
				assert.Equal(t, uuid.NewSHA1(ns, []byte(name)), gen.Generate(name))
			}
		}
	})

	t.Run("well-known vectors", func(t *testing.T) {
		assert.Equal(t, "6fa459ea-ee8a-3ca4-894e-db77e160355e", NewV3(NamespaceDNS, "python.org").String())
		assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d", NewV5(NamespaceDNS, "python.org").String())
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		gen := NewV5Generator(NamespaceURL)
		first := gen.Generate("https://example.com/")
		second := gen.Generate("https://example.com/")
		assert.Equal(t, first, second)
		assert.Equal(t, first, NewV5(NamespaceURL, "https://example.com/"))
	})

	t.Run("version and variant bits", func(t *testing.T) {
		for _, name := range names {
			v3 := NewV3(NamespaceDNS, name)
			v5 := NewV5(NamespaceDNS, name)
			assert.Equal(t, byte(3), v3[6]>>4)
			assert.Equal(t, byte(5), v5[6]>>4)
			assert.Equal(t, byte(0x80), v3[8]&0xC0)
			assert.Equal(t, byte(0x80), v5[8]&0xC0)
			assert.True(t, IsRFCVariant(v3))
			assert.Equal(t, VersionSHA1, VersionOf(v5))
		}
	})

	t.Run("accepts any digest of at least 16 bytes", func(t *testing.T) {
		gen := NewNameGenerator[digest.Blake2b256Hash](digest.NewBlake2b256Generator(), NamespaceOID, 8)
		u := gen.Generate("custom")
		assert.Equal(t, uuid.Version(8), u.Version())
		assert.True(t, IsRFCVariant(u))
		assert.Equal(t, NamespaceOID, gen.Namespace())
		assert.Equal(t, uuid.Version(8), gen.Version())
	})

	t.Run("namespace changes the result", func(t *testing.T) {
		assert.NotEqual(t, NewV5(NamespaceDNS, "x"), NewV5(NamespaceURL, "x"))
	})
}
