// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

import "fmt"

// IsEmpty reports whether r has no elements.
func IsEmpty[T any, I Iter[T, I, E], E any](r Range[T, I, E]) bool {
	return r.Iter().Eq(r.IterEnd())
}

// Count returns the number of elements in r in constant time.
func Count[T any, I JumpIter[T, I, E], E any](r JumpRange[T, I, E]) int {
	return r.Iter().Dist(r.IterEnd())
}

// Data returns the elements of r as a slice sharing r's storage.
func Data[T any, I ArrIter[T, I, E], E any](r ArrRange[T, I, E]) []T {
	return r.Iter().Span(r.IterEnd())
}

// IsIndexInRange reports whether i is a valid index into r.
func IsIndexInRange[T any, I JumpIter[T, I, E], E any](r JumpRange[T, I, E], i int) bool {
	return i >= 0 && i < Count[T, I, E](r)
}

// At returns the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func At[T any, I JumpIter[T, I, E], E any](r JumpRange[T, I, E], i int) (T, error) {
	it, err := IterAt[T, I, E](r, i)
	if err != nil {
		var zero T
		return zero, err
	}
	return it.Value(), nil
}

// Get returns the element at index i without checking the index.
//
// The result is undefined for an invalid index; for slice-backed ranges
// the Go runtime panics.
func Get[T any, I JumpIter[T, I, E], E any](r JumpRange[T, I, E], i int) T {
	return r.Iter().Jump(i).Value()
}

// IterAt returns an iterator to the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func IterAt[T any, I JumpIter[T, I, E], E any](r JumpRange[T, I, E], i int) (I, error) {
	begin := r.Iter()
	if count := begin.Dist(r.IterEnd()); i < 0 || i >= count {
		return begin, newIndexError(i, count)
	}
	return begin.Jump(i), nil
}

// Front returns the first element.
//
// Returns [ErrEmptyRange] if r has no elements.
func Front[T any, I JumpIter[T, I, E], E any](r JumpRange[T, I, E]) (T, error) {
	begin := r.Iter()
	if begin.Eq(r.IterEnd()) {
		var zero T
		return zero, ErrEmptyRange
	}
	return begin.Value(), nil
}

// Back returns the last element.
//
// Returns [ErrEmptyRange] if r has no elements.
func Back[T any, I JumpIter[T, I, E], E any](r JumpRange[T, I, E]) (T, error) {
	begin := r.Iter()
	count := begin.Dist(r.IterEnd())
	if count <= 0 {
		var zero T
		return zero, ErrEmptyRange
	}
	return begin.Jump(count - 1).Value(), nil
}

// MutData returns the elements of r as a writable slice sharing r's storage.
func MutData[T any, I Iter[T, I, E], E any, MI MutArrIter[T, MI, ME], ME any](
	r MutArrRange[T, I, E, MI, ME]) []T {
	return r.MutIter().Span(r.MutIterEnd())
}

// MutIterAt returns a mutable iterator to the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func MutIterAt[T any, I Iter[T, I, E], E any, MI MutJumpIter[T, MI, ME], ME any](
	r MutJumpRange[T, I, E, MI, ME], i int) (MI, error) {
	begin := r.MutIter()
	if count := begin.Dist(r.MutIterEnd()); i < 0 || i >= count {
		return begin, newIndexError(i, count)
	}
	return begin.Jump(i), nil
}

// MutAt returns a pointer to the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func MutAt[T any, I Iter[T, I, E], E any, MI MutJumpIter[T, MI, ME], ME any](
	r MutJumpRange[T, I, E, MI, ME], i int) (*T, error) {
	it, err := MutIterAt[T, I, E, MI, ME](r, i)
	if err != nil {
		return nil, err
	}
	return it.Ref(), nil
}

// MutFront returns a pointer to the first element.
//
// Returns [ErrEmptyRange] if r has no elements.
func MutFront[T any, I Iter[T, I, E], E any, MI MutJumpIter[T, MI, ME], ME any](
	r MutJumpRange[T, I, E, MI, ME]) (*T, error) {
	begin := r.MutIter()
	if begin.Eq(r.MutIterEnd()) {
		return nil, ErrEmptyRange
	}
	return begin.Ref(), nil
}

// MutBack returns a pointer to the last element.
//
// Returns [ErrEmptyRange] if r has no elements.
func MutBack[T any, I Iter[T, I, E], E any, MI MutJumpIter[T, MI, ME], ME any](
	r MutJumpRange[T, I, E, MI, ME]) (*T, error) {
	begin := r.MutIter()
	count := begin.Dist(r.MutIterEnd())
	if count <= 0 {
		return nil, ErrEmptyRange
	}
	return begin.Jump(count - 1).Ref(), nil
}

func newIndexError(i, count int) error {
	return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, count)
}
