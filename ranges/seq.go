// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

import (
	"iter"
	"slices"
)

// Values returns an [iter.Seq] yielding the elements of r in order.
//
// This bridges ranges to Go's range-over-func loops:
//
//	for v := range ranges.Values(arr) {
//		fmt.Println(v)
//	}
func Values[T any, I Iter[T, I, E], E any](r Range[T, I, E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		end := r.IterEnd()
		for it := r.Iter(); !it.Eq(end); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Enumerate returns an [iter.Seq2] yielding the position and value of each
// element of r.
func Enumerate[T any, I Iter[T, I, E], E any](r Range[T, I, E]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		end := r.IterEnd()
		idx := 0
		for it := r.Iter(); !it.Eq(end); it = it.Next() {
			if !yield(idx, it.Value()) {
				return
			}
			idx++
		}
	}
}

// Backward returns an [iter.Seq] yielding the elements of r in reverse order.
func Backward[T any, I BidiIter[T, I, E], E any](r BidiRange[T, I, E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		end := r.IterEnd()
		last := r.Iter()
		if last.Eq(end) {
			return
		}
		var steps int
		for next := last.Next(); !next.Eq(end); next = next.Next() {
			last = next
			steps++
		}
		for it := last; ; it = it.Prev() {
			if !yield(it.Value()) || steps == 0 {
				return
			}
			steps--
		}
	}
}

// Collect copies the elements of r into a new slice.
func Collect[T any, I Iter[T, I, E], E any](r Range[T, I, E]) []T {
	return slices.Collect(Values[T, I, E](r))
}
