// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	t.Run("returns the first match", func(t *testing.T) {
		r := Of(5, 7, 9, 7)
		it := Find(r, 7)
		require.False(t, it.Eq(r.IterEnd()))
		assert.Equal(t, 1, it.Pos())
	})

	t.Run("returns the end when nothing matches", func(t *testing.T) {
		r := Of(5, 7, 9)
		assert.True(t, Find(r, 42).Eq(r.IterEnd()))
		assert.False(t, Contains(r, 42))
	})

	t.Run("works with an end sentinel of a different type", func(t *testing.T) {
		r := newListRange(1, 2, 3)
		it := Find(r, 2)
		require.False(t, it.Eq(listEnd{}))
		assert.Equal(t, 2, it.Value())
		assert.True(t, Contains(r, 3))
		assert.False(t, Contains(r, 4))
	})

	t.Run("FindIf applies the predicate", func(t *testing.T) {
		r := Of("go", "rust", "zig")
		it := FindIf(r, func(s string) bool { return len(s) > 3 })
		assert.Equal(t, "rust", it.Value())
	})

	t.Run("empty range never contains a value", func(t *testing.T) {
		assert.False(t, Contains(newListRange(), 0))
	})
}

func TestFindRange(t *testing.T) {
	type testcase struct {
		name     string
		haystack []int
		needle   []int
		pos      int
		found    bool
	}

	cases := []testcase{{
		name:     "needle in the middle",
		haystack: []int{1, 2, 3, 4, 5},
		needle:   []int{3, 4},
		pos:      2,
		found:    true,
	}, {
		name:     "needle after a partial match",
		haystack: []int{1, 2, 1, 2, 3},
		needle:   []int{1, 2, 3},
		pos:      2,
		found:    true,
	}, {
		name:     "needle at the end",
		haystack: []int{1, 2, 3},
		needle:   []int{2, 3},
		pos:      1,
		found:    true,
	}, {
		name:     "needle longer than haystack",
		haystack: []int{1, 2},
		needle:   []int{1, 2, 3},
		pos:      2,
		found:    false,
	}, {
		name:     "needle missing",
		haystack: []int{1, 2, 3},
		needle:   []int{4},
		pos:      3,
		found:    false,
	}, {
		name:     "empty needle matches at the beginning",
		haystack: []int{1, 2, 3},
		needle:   nil,
		pos:      0,
		found:    true,
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hay, needle := Of(tc.haystack...), Of(tc.needle...)
			it := FindRange(hay, needle)
			assert.Equal(t, tc.pos, it.Pos())
			assert.Equal(t, tc.found, ContainsRange(hay, needle))
		})
	}

	t.Run("mixes iterator families", func(t *testing.T) {
		hay := newListRange(9, 8, 7, 6)
		assert.True(t, ContainsRange(hay, Of(8, 7)))
		assert.False(t, ContainsRange(hay, Of(7, 8)))
		assert.True(t, ContainsRange(Of(9, 8, 7), newListRange(7)))
	})

	t.Run("empty needle in an empty haystack", func(t *testing.T) {
		assert.True(t, ContainsRange(Of[int](), Of[int]()))
	})
}
