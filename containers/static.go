// SPDX-License-Identifier: GPL-3.0-or-later

package containers

import (
	"slices"

	"github.com/bassosimone/atom/ranges"
)

// staticImpl is the storage of a [StaticArr].
type staticImpl[T any] []T

func (s staticImpl[T]) Elems() []T {
	return s
}

// StaticArr is an array whose count is fixed at construction.
//
// A StaticArr is not a value type: assigning it or passing it by value
// shares the storage, so writes through one copy are visible in the
// other. Call [StaticArr.Clone] wherever value semantics are needed.
type StaticArr[T any] struct {
	ranges.MutArrTrait[T, staticImpl[T]]
}

var _ ranges.MutArrRange[int, ranges.SliceIter[int], ranges.SliceIter[int],
	ranges.MutSliceIter[int], ranges.MutSliceIter[int]] = StaticArr[int]{}

// MakeStaticArr returns a [StaticArr] of count zero-valued elements.
func MakeStaticArr[T any](count int) StaticArr[T] {
	return newStaticArr(make([]T, count))
}

// StaticArrOf returns a [StaticArr] holding a copy of values.
func StaticArrOf[T any](values ...T) StaticArr[T] {
	return newStaticArr(slices.Clone(values))
}

func newStaticArr[T any](elems []T) StaticArr[T] {
	return StaticArr[T]{ranges.NewMutArrTrait[T](staticImpl[T](elems))}
}

// Clone returns a [StaticArr] holding a copy of the elements.
func (a StaticArr[T]) Clone() StaticArr[T] {
	return StaticArrOf(a.Data()...)
}

// View returns an [ArrView] over the elements.
func (a StaticArr[T]) View() ArrView[T] {
	return ViewOf(a.Data())
}
