// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

// SliceIter is a read-only [ArrIter] over a Go slice.
//
// The zero value is an iterator over an empty sequence.
type SliceIter[T any] struct {
	elems []T
	pos   int
}

var _ ArrIter[int, SliceIter[int], SliceIter[int]] = SliceIter[int]{}

// NewSliceIter returns a [SliceIter] positioned at pos within elems.
//
// The elems slice is the storage shared by every iterator derived from the
// returned one. Positions in [0, len(elems)] are valid; len(elems) is the end.
func NewSliceIter[T any](elems []T, pos int) SliceIter[T] {
	return SliceIter[T]{elems: elems, pos: pos}
}

// Pos returns the index of the iterator within its storage.
func (it SliceIter[T]) Pos() int {
	return it.pos
}

// Value implements [Iter].
func (it SliceIter[T]) Value() T {
	return it.elems[it.pos]
}

// Next implements [Iter].
func (it SliceIter[T]) Next() SliceIter[T] {
	return SliceIter[T]{elems: it.elems, pos: it.pos + 1}
}

// Eq implements [Iter].
func (it SliceIter[T]) Eq(end SliceIter[T]) bool {
	return it.pos == end.pos
}

// MultiPass implements [FwdIter].
func (it SliceIter[T]) MultiPass() {}

// Prev implements [BidiIter].
func (it SliceIter[T]) Prev() SliceIter[T] {
	return SliceIter[T]{elems: it.elems, pos: it.pos - 1}
}

// Jump implements [JumpIter].
func (it SliceIter[T]) Jump(steps int) SliceIter[T] {
	return SliceIter[T]{elems: it.elems, pos: it.pos + steps}
}

// Sub implements [JumpIter].
func (it SliceIter[T]) Sub(other SliceIter[T]) int {
	return it.pos - other.pos
}

// Dist implements [JumpIter].
func (it SliceIter[T]) Dist(end SliceIter[T]) int {
	return end.pos - it.pos
}

// Span implements [ArrIter].
func (it SliceIter[T]) Span(end SliceIter[T]) []T {
	return it.elems[it.pos:end.pos:end.pos]
}

// MutSliceIter is a [MutArrIter] over a Go slice.
//
// Writes through the iterator modify the shared storage.
type MutSliceIter[T any] struct {
	SliceIter[T]
}

var _ MutArrIter[int, MutSliceIter[int], MutSliceIter[int]] = MutSliceIter[int]{}

// NewMutSliceIter returns a [MutSliceIter] positioned at pos within elems.
func NewMutSliceIter[T any](elems []T, pos int) MutSliceIter[T] {
	return MutSliceIter[T]{SliceIter[T]{elems: elems, pos: pos}}
}

// ReadOnly returns the read-only iterator at the same position.
func (it MutSliceIter[T]) ReadOnly() SliceIter[T] {
	return it.SliceIter
}

// Next implements [Iter].
func (it MutSliceIter[T]) Next() MutSliceIter[T] {
	return MutSliceIter[T]{it.SliceIter.Next()}
}

// Eq implements [Iter].
func (it MutSliceIter[T]) Eq(end MutSliceIter[T]) bool {
	return it.pos == end.pos
}

// Prev implements [BidiIter].
func (it MutSliceIter[T]) Prev() MutSliceIter[T] {
	return MutSliceIter[T]{it.SliceIter.Prev()}
}

// Jump implements [JumpIter].
func (it MutSliceIter[T]) Jump(steps int) MutSliceIter[T] {
	return MutSliceIter[T]{it.SliceIter.Jump(steps)}
}

// Sub implements [JumpIter].
func (it MutSliceIter[T]) Sub(other MutSliceIter[T]) int {
	return it.pos - other.pos
}

// Dist implements [JumpIter].
func (it MutSliceIter[T]) Dist(end MutSliceIter[T]) int {
	return end.pos - it.pos
}

// Span implements [ArrIter].
func (it MutSliceIter[T]) Span(end MutSliceIter[T]) []T {
	return it.elems[it.pos:end.pos:end.pos]
}

// Set implements [MutIter].
func (it MutSliceIter[T]) Set(value T) {
	it.elems[it.pos] = value
}

// Ref implements [MutIter].
func (it MutSliceIter[T]) Ref() *T {
	return &it.elems[it.pos]
}
