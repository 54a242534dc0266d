// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentAllocator(t *testing.T) {
	t.Run("records successful calls", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics := NewAllocatorMetrics(reg, "test")
		alloc := InstrumentAllocator[int](nil, metrics)

		mem, err := alloc.Alloc(5)
		require.NoError(t, err)
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Allocs))
		assert.Equal(t, float64(5), testutil.ToFloat64(metrics.Live))

		alloc.Dealloc(mem)
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Deallocs))
		assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Live))
		assert.Equal(t, 4, testutil.CollectAndCount(reg))
	})

	t.Run("records failures", func(t *testing.T) {
		metrics := NewAllocatorMetrics(nil, "limited")
		alloc := InstrumentAllocator(NewLimitAllocator[int](nil, 1), metrics)

		_, err := alloc.Alloc(2)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Failures))
		assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Allocs))
	})
}
