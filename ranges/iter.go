// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

// Iter is the input iterator tier.
//
// The type parameter I is the iterator type itself and E is the type of
// the end sentinel, which may differ from I.
type Iter[T, I, E any] interface {
	// Value returns the element at the current position.
	//
	// Behavior is undefined if the iterator is at the end.
	Value() T

	// Next returns an iterator positioned at the following element.
	Next() I

	// Eq reports whether the iterator has reached the given end.
	Eq(end E) bool
}

// FwdIter is the forward iterator tier.
//
// Iterating twice from a saved copy yields the same sequence.
type FwdIter[T, I, E any] interface {
	Iter[T, I, E]

	// MultiPass tags the iterator as restartable. It does nothing.
	MultiPass()
}

// BidiIter is the bidirectional iterator tier.
type BidiIter[T, I, E any] interface {
	FwdIter[T, I, E]

	// Prev returns an iterator positioned at the preceding element.
	Prev() I
}

// JumpIter is the random access iterator tier.
type JumpIter[T, I, E any] interface {
	BidiIter[T, I, E]

	// Jump returns an iterator moved by steps positions, which may be negative.
	Jump(steps int) I

	// Sub returns the signed distance from other to the receiver.
	Sub(other I) int

	// Dist returns the number of steps from the receiver to end.
	Dist(end E) int
}

// ArrIter is the contiguous iterator tier.
//
// Consecutive positions refer to consecutive elements in memory.
type ArrIter[T, I, E any] interface {
	JumpIter[T, I, E]

	// Span returns the elements from the receiver up to end as a slice
	// sharing the iterator's storage.
	Span(end E) []T
}

// MutIter is the mutable input iterator tier.
type MutIter[T, I, E any] interface {
	Iter[T, I, E]

	// Set overwrites the element at the current position.
	Set(value T)

	// Ref returns a pointer to the element at the current position.
	Ref() *T
}

// MutFwdIter is the mutable forward iterator tier.
type MutFwdIter[T, I, E any] interface {
	FwdIter[T, I, E]
	MutIter[T, I, E]
}

// MutBidiIter is the mutable bidirectional iterator tier.
type MutBidiIter[T, I, E any] interface {
	BidiIter[T, I, E]
	MutIter[T, I, E]
}

// MutJumpIter is the mutable random access iterator tier.
type MutJumpIter[T, I, E any] interface {
	JumpIter[T, I, E]
	MutIter[T, I, E]
}

// MutArrIter is the mutable contiguous iterator tier.
type MutArrIter[T, I, E any] interface {
	ArrIter[T, I, E]
	MutIter[T, I, E]
}
