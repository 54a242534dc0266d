// SPDX-License-Identifier: GPL-3.0-or-later

package containers

import (
	"fmt"

	"github.com/bassosimone/atom/ranges"
)

// viewImpl is the storage of an [ArrView].
type viewImpl[T any] struct {
	elems []T
}

func (v viewImpl[T]) Elems() []T {
	return v.elems
}

// ArrView is a non-owning, read-only view over contiguous elements.
//
// The viewed storage must outlive the view. A view over a [DynArr] dangles
// once the array grows or is released.
//
// The zero value is an empty view.
type ArrView[T any] struct {
	ranges.ArrTrait[T, viewImpl[T]]
}

var _ ranges.ArrRange[int, ranges.SliceIter[int], ranges.SliceIter[int]] = ArrView[int]{}

// ViewOf returns an [ArrView] over elems. The view never writes and never
// appends, so capacity beyond len(elems) is hidden.
func ViewOf[T any](elems []T) ArrView[T] {
	return ArrView[T]{ranges.NewArrTrait[T](viewImpl[T]{elems[:len(elems):len(elems)]})}
}

// NewArrView returns an [ArrView] over the elements in [begin, end).
func NewArrView[T any](begin, end ranges.SliceIter[T]) ArrView[T] {
	return ViewOf(begin.Span(end))
}

// ViewOfRange returns an [ArrView] over the elements of an array range.
//
// Only the bounds are copied, never the elements.
func ViewOfRange[T any, I ranges.ArrIter[T, I, E], E any](r ranges.ArrRange[T, I, E]) ArrView[T] {
	return ViewOf(ranges.Data[T, I, E](r))
}

// Slice returns the sub-view over [from, to).
//
// Returns [ranges.ErrIndexOutOfRange] unless 0 <= from <= to <= count.
func (v ArrView[T]) Slice(from, to int) (ArrView[T], error) {
	elems := v.Data()
	if from < 0 || to < from || to > len(elems) {
		return ArrView[T]{}, fmt.Errorf("%w: slice [%d:%d], count %d",
			ranges.ErrIndexOutOfRange, from, to, len(elems))
	}
	return ViewOf(elems[from:to]), nil
}

// SliceFrom returns the sub-view starting at from.
func (v ArrView[T]) SliceFrom(from int) (ArrView[T], error) {
	return v.Slice(from, v.Count())
}

// SliceTo returns the sub-view ending before to.
func (v ArrView[T]) SliceTo(to int) (ArrView[T], error) {
	return v.Slice(0, to)
}
