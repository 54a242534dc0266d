// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

import "iter"

// ArrImpl is the backing storage capability wrapped by [ArrTrait] and
// [MutArrTrait].
type ArrImpl[T any] interface {
	// Elems returns the live elements. The result must stay valid until
	// the storage is modified.
	Elems() []T
}

// ArrTrait adds the read-only array range vocabulary on top of an [ArrImpl].
//
// Embed ArrTrait in a container to make it an [ArrRange].
type ArrTrait[T any, S ArrImpl[T]] struct {
	impl S
}

// NewArrTrait returns an [ArrTrait] wrapping impl.
func NewArrTrait[T any, S ArrImpl[T]](impl S) ArrTrait[T, S] {
	return ArrTrait[T, S]{impl: impl}
}

// Iter implements [Range].
func (t ArrTrait[T, S]) Iter() SliceIter[T] {
	return NewSliceIter(t.impl.Elems(), 0)
}

// IterEnd implements [Range].
func (t ArrTrait[T, S]) IterEnd() SliceIter[T] {
	elems := t.impl.Elems()
	return NewSliceIter(elems, len(elems))
}

// IterAt returns an iterator to the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func (t ArrTrait[T, S]) IterAt(i int) (SliceIter[T], error) {
	elems := t.impl.Elems()
	if i < 0 || i >= len(elems) {
		return NewSliceIter(elems, 0), newIndexError(i, len(elems))
	}
	return NewSliceIter(elems, i), nil
}

// Count returns the number of elements.
func (t ArrTrait[T, S]) Count() int {
	return len(t.impl.Elems())
}

// Data returns the elements as a slice sharing the underlying storage.
//
// The slice must not be used to write; see [MutArrTrait.MutData].
func (t ArrTrait[T, S]) Data() []T {
	return t.impl.Elems()
}

// IsEmpty reports whether there are no elements.
func (t ArrTrait[T, S]) IsEmpty() bool {
	return t.Count() == 0
}

// IsIndexInRange reports whether i is within [0, count).
func (t ArrTrait[T, S]) IsIndexInRange(i int) bool {
	return i >= 0 && i < t.Count()
}

// At returns the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func (t ArrTrait[T, S]) At(i int) (T, error) {
	elems := t.impl.Elems()
	if i < 0 || i >= len(elems) {
		var zero T
		return zero, newIndexError(i, len(elems))
	}
	return elems[i], nil
}

// Get returns the element at index i without the contract check.
//
// The Go runtime panics if i is out of range.
func (t ArrTrait[T, S]) Get(i int) T {
	return t.impl.Elems()[i]
}

// Front returns the first element.
//
// Returns [ErrEmptyRange] if there are no elements.
func (t ArrTrait[T, S]) Front() (T, error) {
	elems := t.impl.Elems()
	if len(elems) <= 0 {
		var zero T
		return zero, ErrEmptyRange
	}
	return elems[0], nil
}

// Back returns the last element.
//
// Returns [ErrEmptyRange] if there are no elements.
func (t ArrTrait[T, S]) Back() (T, error) {
	elems := t.impl.Elems()
	if len(elems) <= 0 {
		var zero T
		return zero, ErrEmptyRange
	}
	return elems[len(elems)-1], nil
}

// Values returns an [iter.Seq] over the elements.
func (t ArrTrait[T, S]) Values() iter.Seq[T] {
	return Values[T, SliceIter[T], SliceIter[T]](t)
}

// MutArrTrait extends [ArrTrait] with write access.
//
// Embed MutArrTrait in a container to make it a [MutArrRange].
type MutArrTrait[T any, S ArrImpl[T]] struct {
	ArrTrait[T, S]
}

// NewMutArrTrait returns a [MutArrTrait] wrapping impl.
func NewMutArrTrait[T any, S ArrImpl[T]](impl S) MutArrTrait[T, S] {
	return MutArrTrait[T, S]{NewArrTrait[T](impl)}
}

// MutIter implements [MutRange].
func (t MutArrTrait[T, S]) MutIter() MutSliceIter[T] {
	return NewMutSliceIter(t.impl.Elems(), 0)
}

// MutIterEnd implements [MutRange].
func (t MutArrTrait[T, S]) MutIterEnd() MutSliceIter[T] {
	elems := t.impl.Elems()
	return NewMutSliceIter(elems, len(elems))
}

// MutIterAt returns a mutable iterator to the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func (t MutArrTrait[T, S]) MutIterAt(i int) (MutSliceIter[T], error) {
	it, err := t.IterAt(i)
	return MutSliceIter[T]{it}, err
}

// MutData returns the elements as a writable slice sharing the storage.
func (t MutArrTrait[T, S]) MutData() []T {
	return t.impl.Elems()
}

// MutAt returns a pointer to the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func (t MutArrTrait[T, S]) MutAt(i int) (*T, error) {
	elems := t.impl.Elems()
	if i < 0 || i >= len(elems) {
		return nil, newIndexError(i, len(elems))
	}
	return &elems[i], nil
}

// MutGet returns a pointer to the element at index i without the contract
// check.
//
// The Go runtime panics if i is out of range.
func (t MutArrTrait[T, S]) MutGet(i int) *T {
	return &t.impl.Elems()[i]
}

// MutFront returns a pointer to the first element.
//
// Returns [ErrEmptyRange] if there are no elements.
func (t MutArrTrait[T, S]) MutFront() (*T, error) {
	elems := t.impl.Elems()
	if len(elems) <= 0 {
		return nil, ErrEmptyRange
	}
	return &elems[0], nil
}

// MutBack returns a pointer to the last element.
//
// Returns [ErrEmptyRange] if there are no elements.
func (t MutArrTrait[T, S]) MutBack() (*T, error) {
	elems := t.impl.Elems()
	if len(elems) <= 0 {
		return nil, ErrEmptyRange
	}
	return &elems[len(elems)-1], nil
}

// Set overwrites the element at index i.
//
// Returns [ErrIndexOutOfRange] if i is not within [0, count).
func (t MutArrTrait[T, S]) Set(i int, value T) error {
	ptr, err := t.MutAt(i)
	if err != nil {
		return err
	}
	*ptr = value
	return nil
}
