// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

// Range is a begin iterator paired with an end sentinel.
//
// A Range does not own the elements it views.
type Range[T any, I Iter[T, I, E], E any] interface {
	// Iter returns an iterator to the first element.
	Iter() I

	// IterEnd returns the end sentinel.
	IterEnd() E
}

// FwdRange is a [Range] whose iterators are [FwdIter].
type FwdRange[T any, I FwdIter[T, I, E], E any] interface {
	Range[T, I, E]
}

// BidiRange is a [Range] whose iterators are [BidiIter].
type BidiRange[T any, I BidiIter[T, I, E], E any] interface {
	Range[T, I, E]
}

// JumpRange is a [Range] whose iterators are [JumpIter].
type JumpRange[T any, I JumpIter[T, I, E], E any] interface {
	Range[T, I, E]
}

// ArrRange is a [Range] whose iterators are [ArrIter].
type ArrRange[T any, I ArrIter[T, I, E], E any] interface {
	Range[T, I, E]
}

// MutRange is a [Range] that also grants write access through a second
// pair of iterators of types MI and ME.
type MutRange[T any, I Iter[T, I, E], E any, MI MutIter[T, MI, ME], ME any] interface {
	Range[T, I, E]

	// MutIter returns a mutable iterator to the first element.
	MutIter() MI

	// MutIterEnd returns the mutable end sentinel.
	MutIterEnd() ME
}

// MutFwdRange is a [MutRange] whose mutable iterators are [MutFwdIter].
type MutFwdRange[T any, I Iter[T, I, E], E any, MI MutFwdIter[T, MI, ME], ME any] interface {
	MutRange[T, I, E, MI, ME]
}

// MutBidiRange is a [MutRange] whose mutable iterators are [MutBidiIter].
type MutBidiRange[T any, I Iter[T, I, E], E any, MI MutBidiIter[T, MI, ME], ME any] interface {
	MutRange[T, I, E, MI, ME]
}

// MutJumpRange is a [MutRange] whose mutable iterators are [MutJumpIter].
type MutJumpRange[T any, I Iter[T, I, E], E any, MI MutJumpIter[T, MI, ME], ME any] interface {
	MutRange[T, I, E, MI, ME]
}

// MutArrRange is a [MutRange] whose mutable iterators are [MutArrIter].
type MutArrRange[T any, I Iter[T, I, E], E any, MI MutArrIter[T, MI, ME], ME any] interface {
	MutRange[T, I, E, MI, ME]
}

// RemovableRange is a [Range] supporting in-place removal.
//
// Not every range can remove elements: this is a capability, not a
// universal operation.
type RemovableRange[T any, I Iter[T, I, E], E any] interface {
	Range[T, I, E]

	// RemoveAt removes the element at it and returns an iterator to the
	// element that followed it. Other iterators into the range are
	// invalidated.
	RemoveAt(it I) I
}

// IterRange is a [Range] built from an explicit begin and end.
type IterRange[T any, I Iter[T, I, E], E any] struct {
	begin I
	end   E
}

// New returns an [IterRange] over [begin, end).
func New[T any, I Iter[T, I, E], E any](begin I, end E) IterRange[T, I, E] {
	return IterRange[T, I, E]{begin: begin, end: end}
}

// Iter implements [Range].
func (r IterRange[T, I, E]) Iter() I {
	return r.begin
}

// IterEnd implements [Range].
func (r IterRange[T, I, E]) IterEnd() E {
	return r.end
}
