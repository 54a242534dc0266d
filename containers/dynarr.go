// SPDX-License-Identifier: GPL-3.0-or-later

package containers

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/bassosimone/atom/memory"
	"github.com/bassosimone/atom/ranges"
	"github.com/bassosimone/runtimex"
)

// dynArrImpl is the storage of a [DynArr].
//
// Invariant: count <= len(arr), and len(arr) is the capacity.
type dynArrImpl[T any] struct {
	arr   []T
	count int
	alloc memory.Allocator[T]
}

func (d *dynArrImpl[T]) Elems() []T {
	return d.arr[:d.count]
}

// DynArr is a growable array owning storage obtained from an allocator.
//
// Storage is allocated on the first insertion. When an insertion needs
// more room, the capacity becomes max(required, 2*capacity).
//
// Construct using [NewDynArr], [DynArrOf] or [DynArrFrom].
type DynArr[T any] struct {
	ranges.MutArrTrait[T, *dynArrImpl[T]]
	impl *dynArrImpl[T]
}

var (
	_ ranges.MutArrRange[int, ranges.SliceIter[int], ranges.SliceIter[int],
		ranges.MutSliceIter[int], ranges.MutSliceIter[int]] = &DynArr[int]{}
	_ ranges.RemovableRange[int, ranges.SliceIter[int], ranges.SliceIter[int]] = &DynArr[int]{}
)

// NewDynArr returns an empty [*DynArr] using alloc.
//
// A nil alloc means [memory.DefaultAllocator].
func NewDynArr[T any](alloc memory.Allocator[T]) *DynArr[T] {
	if alloc == nil {
		alloc = memory.DefaultAllocator[T]{}
	}
	impl := &dynArrImpl[T]{alloc: alloc}
	return &DynArr[T]{MutArrTrait: ranges.NewMutArrTrait[T](impl), impl: impl}
}

// DynArrOf returns a [*DynArr] using the default allocator and holding values.
func DynArrOf[T any](values ...T) *DynArr[T] {
	arr := NewDynArr[T](nil)
	runtimex.Assert(arr.InsertBack(values...) == nil)
	return arr
}

// DynArrFrom returns a [*DynArr] using alloc and holding the elements of r.
func DynArrFrom[T any, I ranges.Iter[T, I, E], E any](
	r ranges.Range[T, I, E], alloc memory.Allocator[T]) (*DynArr[T], error) {
	arr := NewDynArr(alloc)
	if err := arr.InsertBackSeq(ranges.Values[T, I, E](r)); err != nil {
		arr.Destroy()
		return nil, err
	}
	return arr, nil
}

// Allocator returns the allocator owning the storage.
func (a *DynArr[T]) Allocator() memory.Allocator[T] {
	return a.impl.alloc
}

// Capacity returns the number of elements that fit without reallocating.
func (a *DynArr[T]) Capacity() int {
	return len(a.impl.arr)
}

// View returns an [ArrView] over the elements.
//
// The view dangles once the array reallocates or is released.
func (a *DynArr[T]) View() ArrView[T] {
	return ViewOf(a.Data())
}

// Reserve ensures room for at least capacity elements.
func (a *DynArr[T]) Reserve(capacity int) error {
	if capacity <= len(a.impl.arr) {
		return nil
	}
	old, err := a.reallocate(capacity)
	a.dealloc(old)
	return err
}

// InsertBack appends values, which may alias the elements of a.
//
// On error the array is unchanged.
func (a *DynArr[T]) InsertBack(values ...T) error {
	old, err := a.ensureCapacity(a.impl.count + len(values))
	if err != nil {
		return err
	}
	copy(a.impl.arr[a.impl.count:], values)
	a.impl.count += len(values)
	a.dealloc(old)
	return nil
}

// InsertBackSeq appends every value yielded by seq.
//
// On error the values appended so far are kept. The seq must not read
// the storage of a, which may be released while appending.
func (a *DynArr[T]) InsertBackSeq(seq iter.Seq[T]) error {
	for value := range seq {
		if err := a.InsertBack(value); err != nil {
			return err
		}
	}
	return nil
}

// InsertBackRange appends the elements of r to a, reserving room for all of
// them up front. The range may view the elements of a.
func InsertBackRange[T any, I ranges.JumpIter[T, I, E], E any](a *DynArr[T], r ranges.JumpRange[T, I, E]) error {
	old, err := a.ensureCapacity(a.impl.count + ranges.Count[T, I, E](r))
	if err != nil {
		return err
	}
	end := r.IterEnd()
	for it := r.Iter(); !it.Eq(end); it = it.Next() {
		a.impl.arr[a.impl.count] = it.Value()
		a.impl.count++
	}
	a.dealloc(old)
	return nil
}

// InsertAt inserts values before the element at index i.
//
// Index count is valid and appends. The values may alias the elements
// of a. Returns [ranges.ErrIndexOutOfRange] unless 0 <= i <= count.
func (a *DynArr[T]) InsertAt(i int, values ...T) error {
	count := a.impl.count
	if i < 0 || i > count {
		return fmt.Errorf("%w: insert at %d, count %d", ranges.ErrIndexOutOfRange, i, count)
	}
	old, err := a.ensureCapacity(count + len(values))
	if err != nil {
		return err
	}
	if overlaps(a.impl.arr, values) {
		values = slices.Clone(values)
	}
	copy(a.impl.arr[i+len(values):count+len(values)], a.impl.arr[i:count])
	copy(a.impl.arr[i:], values)
	a.impl.count += len(values)
	a.dealloc(old)
	return nil
}

// RemoveAt removes the element at it and returns an iterator to the
// element that followed it.
//
// It implements [ranges.RemovableRange]. The iterator must point to a
// live element.
func (a *DynArr[T]) RemoveAt(it ranges.SliceIter[T]) ranges.SliceIter[T] {
	pos := it.Pos()
	runtimex.Assert(pos >= 0 && pos < a.impl.count)
	a.removeIndex(pos)
	return ranges.NewSliceIter(a.impl.Elems(), pos)
}

// RemoveIndex removes the element at index i.
//
// Returns [ranges.ErrIndexOutOfRange] if i is not within [0, count).
func (a *DynArr[T]) RemoveIndex(i int) error {
	if !a.IsIndexInRange(i) {
		return fmt.Errorf("%w: remove at %d, count %d", ranges.ErrIndexOutOfRange, i, a.impl.count)
	}
	a.removeIndex(i)
	return nil
}

// RemoveBack removes and returns the last element.
//
// Returns [ranges.ErrEmptyRange] if there are no elements.
func (a *DynArr[T]) RemoveBack() (T, error) {
	value, err := a.Back()
	if err != nil {
		return value, err
	}
	a.removeIndex(a.impl.count - 1)
	return value, nil
}

// RemoveIf removes every element for which pred holds and returns how
// many were removed.
func (a *DynArr[T]) RemoveIf(pred func(T) bool) int {
	return ranges.RemoveIf[T, ranges.SliceIter[T], ranges.SliceIter[T]](a, pred)
}

// Clear removes all elements and keeps the storage.
func (a *DynArr[T]) Clear() {
	clear(a.impl.arr[:a.impl.count])
	a.impl.count = 0
}

// Release clears the array and returns its storage to the allocator.
//
// Calling Release on an array without storage does nothing.
func (a *DynArr[T]) Release() {
	a.Clear()
	if a.impl.arr != nil {
		a.impl.alloc.Dealloc(a.impl.arr)
		a.impl.arr = nil
	}
}

// Destroy is Clear followed by Release, suitable for defer.
func (a *DynArr[T]) Destroy() {
	a.Clear()
	a.Release()
}

// Clone returns a deep copy using the same allocator.
func (a *DynArr[T]) Clone() (*DynArr[T], error) {
	out := NewDynArr(a.impl.alloc)
	if err := out.CopyFrom(a); err != nil {
		return nil, err
	}
	return out, nil
}

// CopyFrom replaces the elements with a copy of the elements of src.
//
// On error the array is left unchanged.
func (a *DynArr[T]) CopyFrom(src *DynArr[T]) error {
	if a == src {
		return nil
	}
	elems := src.Data()
	if len(elems) > len(a.impl.arr) {
		mem, err := a.impl.alloc.Alloc(len(elems))
		if err != nil {
			return err
		}
		a.Release()
		a.impl.arr = mem
	}
	a.Clear()
	copy(a.impl.arr, elems)
	a.impl.count = len(elems)
	return nil
}

// MoveFrom releases the storage of a and takes over the storage, count and
// allocator of src. Afterwards src is empty, has no storage and keeps
// its allocator.
func (a *DynArr[T]) MoveFrom(src *DynArr[T]) {
	if a == src {
		return
	}
	a.Release()
	*a.impl = *src.impl
	src.impl.arr = nil
	src.impl.count = 0
}

func (a *DynArr[T]) removeIndex(i int) {
	count := a.impl.count
	copy(a.impl.arr[i:], a.impl.arr[i+1:count])
	var zero T
	a.impl.arr[count-1] = zero
	a.impl.count--
}

// ensureCapacity grows the storage to hold required elements and returns
// the replaced storage, which the caller passes to dealloc once it no
// longer reads from it.
func (a *DynArr[T]) ensureCapacity(required int) ([]T, error) {
	if required <= len(a.impl.arr) {
		return nil, nil
	}
	return a.reallocate(growCapacity(len(a.impl.arr), required))
}

// growCapacity returns the capacity to allocate when required exceeds
// capacity.
func growCapacity(capacity, required int) int {
	return max(required, 2*capacity)
}

func (a *DynArr[T]) reallocate(capacity int) ([]T, error) {
	mem, err := a.impl.alloc.Alloc(capacity)
	if err != nil {
		return nil, err
	}
	copy(mem, a.impl.arr[:a.impl.count])
	old := a.impl.arr
	a.impl.arr = mem
	return old, nil
}

func (a *DynArr[T]) dealloc(mem []T) {
	if mem != nil {
		a.impl.alloc.Dealloc(mem)
	}
}

// overlaps reports whether a and b share memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
