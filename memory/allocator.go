// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bassosimone/runtimex"
)

// ErrOutOfMemory indicates that an [Allocator] could not satisfy a request.
var ErrOutOfMemory = errors.New("out of memory")

// Allocator hands out element storage.
//
// Alloc returns a zeroed slice whose length is count. Dealloc returns
// storage previously obtained from Alloc on the same allocator. The
// caller must not use the slice after passing it to Dealloc.
type Allocator[T any] interface {
	Alloc(count int) ([]T, error)
	Dealloc(mem []T)
}

// DefaultAllocator is the [Allocator] backed by the Go heap.
//
// The zero value is ready to use.
type DefaultAllocator[T any] struct{}

var _ Allocator[int] = DefaultAllocator[int]{}

// Alloc implements [Allocator].
func (DefaultAllocator[T]) Alloc(count int) ([]T, error) {
	runtimex.Assert(count >= 0)
	return make([]T, count), nil
}

// Dealloc implements [Allocator].
func (DefaultAllocator[T]) Dealloc(mem []T) {
	clear(mem)
}

// CountingAllocator wraps an [Allocator] and counts the calls.
//
// Construct using [NewCountingAllocator].
type CountingAllocator[T any] struct {
	allocs   atomic.Int64
	deallocs atomic.Int64
	live     atomic.Int64
	next     Allocator[T]
}

var _ Allocator[int] = &CountingAllocator[int]{}

// NewCountingAllocator returns a [*CountingAllocator] wrapping next.
//
// A nil next means [DefaultAllocator].
func NewCountingAllocator[T any](next Allocator[T]) *CountingAllocator[T] {
	if next == nil {
		next = DefaultAllocator[T]{}
	}
	return &CountingAllocator[T]{next: next}
}

// Alloc implements [Allocator].
func (a *CountingAllocator[T]) Alloc(count int) ([]T, error) {
	mem, err := a.next.Alloc(count)
	if err != nil {
		return nil, err
	}
	a.allocs.Add(1)
	a.live.Add(int64(len(mem)))
	return mem, nil
}

// Dealloc implements [Allocator].
func (a *CountingAllocator[T]) Dealloc(mem []T) {
	a.deallocs.Add(1)
	a.live.Add(-int64(len(mem)))
	a.next.Dealloc(mem)
}

// Allocs returns the number of successful Alloc calls.
func (a *CountingAllocator[T]) Allocs() int64 {
	return a.allocs.Load()
}

// Deallocs returns the number of Dealloc calls.
func (a *CountingAllocator[T]) Deallocs() int64 {
	return a.deallocs.Load()
}

// Live returns the number of elements allocated and not yet released.
func (a *CountingAllocator[T]) Live() int64 {
	return a.live.Load()
}

// LimitAllocator wraps an [Allocator] and fails with [ErrOutOfMemory] once
// the live element count would exceed a limit.
//
// Construct using [NewLimitAllocator].
type LimitAllocator[T any] struct {
	limit int64
	live  atomic.Int64
	next  Allocator[T]
}

var _ Allocator[int] = &LimitAllocator[int]{}

// NewLimitAllocator returns a [*LimitAllocator] allowing at most limit live
// elements. A nil next means [DefaultAllocator].
func NewLimitAllocator[T any](next Allocator[T], limit int) *LimitAllocator[T] {
	runtimex.Assert(limit >= 0)
	if next == nil {
		next = DefaultAllocator[T]{}
	}
	return &LimitAllocator[T]{limit: int64(limit), next: next}
}

// Alloc implements [Allocator].
func (a *LimitAllocator[T]) Alloc(count int) ([]T, error) {
	if live := a.live.Add(int64(count)); live > a.limit {
		a.live.Add(-int64(count))
		return nil, fmt.Errorf("%w: requested %d elements, limit %d", ErrOutOfMemory, count, a.limit)
	}
	mem, err := a.next.Alloc(count)
	if err != nil {
		a.live.Add(-int64(count))
		return nil, err
	}
	return mem, nil
}

// Dealloc implements [Allocator].
func (a *LimitAllocator[T]) Dealloc(mem []T) {
	a.live.Add(-int64(len(mem)))
	a.next.Dealloc(mem)
}

// Live returns the number of elements allocated and not yet released.
func (a *LimitAllocator[T]) Live() int64 {
	return a.live.Load()
}
