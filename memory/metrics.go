// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import "github.com/prometheus/client_golang/prometheus"

// AllocatorMetrics holds the Prometheus metrics of an instrumented allocator.
//
// Construct using [NewAllocatorMetrics].
type AllocatorMetrics struct {
	// Allocs counts successful allocations.
	Allocs prometheus.Counter

	// Deallocs counts deallocations.
	Deallocs prometheus.Counter

	// Failures counts failed allocations.
	Failures prometheus.Counter

	// Live tracks the number of live elements.
	Live prometheus.Gauge
}

// NewAllocatorMetrics creates the metrics for the allocator called name and
// registers them with reg. A nil reg leaves them unregistered.
func NewAllocatorMetrics(reg prometheus.Registerer, name string) *AllocatorMetrics {
	labels := prometheus.Labels{"allocator": name}
	m := &AllocatorMetrics{
		Allocs: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atom_allocator_allocs_total",
			Help:        "Total number of successful allocations",
			ConstLabels: labels,
		}),
		Deallocs: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atom_allocator_deallocs_total",
			Help:        "Total number of deallocations",
			ConstLabels: labels,
		}),
		Failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atom_allocator_failures_total",
			Help:        "Total number of failed allocations",
			ConstLabels: labels,
		}),
		Live: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "atom_allocator_live_elements",
			Help:        "Number of elements allocated and not yet released",
			ConstLabels: labels,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Allocs, m.Deallocs, m.Failures, m.Live)
	}
	return m
}

// InstrumentAllocator returns an [Allocator] that records every call to next
// into metrics. A nil next means [DefaultAllocator].
func InstrumentAllocator[T any](next Allocator[T], metrics *AllocatorMetrics) Allocator[T] {
	if next == nil {
		next = DefaultAllocator[T]{}
	}
	return &instrumentedAllocator[T]{metrics: metrics, next: next}
}

type instrumentedAllocator[T any] struct {
	metrics *AllocatorMetrics
	next    Allocator[T]
}

func (a *instrumentedAllocator[T]) Alloc(count int) ([]T, error) {
	mem, err := a.next.Alloc(count)
	if err != nil {
		a.metrics.Failures.Inc()
		return nil, err
	}
	a.metrics.Allocs.Inc()
	a.metrics.Live.Add(float64(len(mem)))
	return mem, nil
}

func (a *instrumentedAllocator[T]) Dealloc(mem []T) {
	a.metrics.Deallocs.Inc()
	a.metrics.Live.Sub(float64(len(mem)))
	a.next.Dealloc(mem)
}
