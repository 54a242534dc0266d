// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

// FindIf returns an iterator to the first element satisfying pred.
//
// If no element matches, the returned iterator compares equal to r's end.
func FindIf[T any, I FwdIter[T, I, E], E any](r FwdRange[T, I, E], pred func(T) bool) I {
	end := r.IterEnd()
	it := r.Iter()
	for ; !it.Eq(end); it = it.Next() {
		if pred(it.Value()) {
			break
		}
	}
	return it
}

// Find returns an iterator to the first element equal to value.
//
// If no element matches, the returned iterator compares equal to r's end.
func Find[T comparable, I FwdIter[T, I, E], E any](r FwdRange[T, I, E], value T) I {
	return FindIf[T, I, E](r, func(elem T) bool {
		return elem == value
	})
}

// Contains reports whether r contains value.
func Contains[T comparable, I FwdIter[T, I, E], E any](r FwdRange[T, I, E], value T) bool {
	return !Find[T, I, E](r, value).Eq(r.IterEnd())
}

// FindRange returns an iterator to the first position in r1 where the
// elements of r2 appear as a contiguous subsequence.
//
// An empty r2 matches at the beginning of r1. If there is no match, the
// returned iterator compares equal to r1's end.
func FindRange[T comparable, I1 FwdIter[T, I1, E1], E1 any, I2 FwdIter[T, I2, E2], E2 any](
	r1 FwdRange[T, I1, E1], r2 FwdRange[T, I2, E2]) I1 {
	end1, end2 := r1.IterEnd(), r2.IterEnd()
	it := r1.Iter()
	for {
		hay, needle := it, r2.Iter()
		for ; !needle.Eq(end2); hay, needle = hay.Next(), needle.Next() {
			if hay.Eq(end1) {
				return hay
			}
			if hay.Value() != needle.Value() {
				break
			}
		}
		if needle.Eq(end2) {
			return it
		}
		it = it.Next()
	}
}

// ContainsRange reports whether the elements of r2 appear in r1 as a
// contiguous subsequence. An empty r2 is always contained.
func ContainsRange[T comparable, I1 FwdIter[T, I1, E1], E1 any, I2 FwdIter[T, I2, E2], E2 any](
	r1 FwdRange[T, I1, E1], r2 FwdRange[T, I2, E2]) bool {
	if r2.Iter().Eq(r2.IterEnd()) {
		return true
	}
	return !FindRange[T, I1, E1, I2, E2](r1, r2).Eq(r1.IterEnd())
}
