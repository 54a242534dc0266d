// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"slices"

	"github.com/bassosimone/atom/containers"
	"github.com/bassosimone/atom/memory"
	"github.com/bassosimone/runtimex"
)

// Event is a multicast of values of type T to the subscribed handlers.
//
// The zero value has no handlers and is ready to use. An Event must not
// be copied. It is safe for concurrent use.
type Event[T any] struct {
	mu       memory.Mutex
	nextID   uint64
	handlers *containers.DynArr[subscription[T]]
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns the function that unregisters it.
//
// Calling the returned function more than once has no further effect.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = containers.NewDynArr[subscription[T]](nil)
	}
	e.nextID++
	id := e.nextID
	runtimex.Assert(e.handlers.InsertBack(subscription[T]{id: id, fn: fn}) == nil)
	return func() {
		memory.WithLock(&e.mu, func() {
			e.handlers.RemoveIf(func(s subscription[T]) bool {
				return s.id == id
			})
		})
	}
}

// Dispatch calls every handler with value in subscription order.
//
// Handlers run without holding the internal lock, so they may subscribe
// and unsubscribe. Changes take effect from the next Dispatch.
func (e *Event[T]) Dispatch(value T) {
	var snapshot []subscription[T]
	memory.WithLock(&e.mu, func() {
		if e.handlers != nil {
			snapshot = slices.Clone(e.handlers.Data())
		}
	})
	for _, s := range snapshot {
		s.fn(value)
	}
}

// Len returns the number of subscribed handlers.
func (e *Event[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		return 0
	}
	return e.handlers.Count()
}
