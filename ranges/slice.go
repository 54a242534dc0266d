// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

// Slice is a Go slice viewed as a mutable contiguous range.
//
// Use it to pass literal element lists to range algorithms:
//
//	ranges.Contains(ranges.Of(1, 2, 3), 2)
type Slice[T any] []T

var _ ArrRange[int, SliceIter[int], SliceIter[int]] = Slice[int]{}

var _ MutArrRange[int, SliceIter[int], SliceIter[int], MutSliceIter[int], MutSliceIter[int]] = Slice[int]{}

var _ ArrImpl[int] = Slice[int]{}

// Of returns the given values as a [Slice].
func Of[T any](values ...T) Slice[T] {
	return Slice[T](values)
}

// Elems implements [ArrImpl].
func (s Slice[T]) Elems() []T {
	return s
}

// Iter implements [Range].
func (s Slice[T]) Iter() SliceIter[T] {
	return NewSliceIter([]T(s), 0)
}

// IterEnd implements [Range].
func (s Slice[T]) IterEnd() SliceIter[T] {
	return NewSliceIter([]T(s), len(s))
}

// MutIter implements [MutRange].
func (s Slice[T]) MutIter() MutSliceIter[T] {
	return NewMutSliceIter([]T(s), 0)
}

// MutIterEnd implements [MutRange].
func (s Slice[T]) MutIterEnd() MutSliceIter[T] {
	return NewMutSliceIter([]T(s), len(s))
}
