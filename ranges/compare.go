// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

// Equal reports whether r1 and r2 have the same length and equal elements
// in the same order.
func Equal[T comparable, I1 FwdIter[T, I1, E1], E1 any, I2 FwdIter[T, I2, E2], E2 any](
	r1 FwdRange[T, I1, E1], r2 FwdRange[T, I2, E2]) bool {
	return EqualFunc[T, I1, E1, I2, E2](r1, r2, func(a, b T) bool {
		return a == b
	})
}

// EqualFunc is like [Equal] but compares elements using eq.
func EqualFunc[T any, I1 FwdIter[T, I1, E1], E1 any, I2 FwdIter[T, I2, E2], E2 any](
	r1 FwdRange[T, I1, E1], r2 FwdRange[T, I2, E2], eq func(a, b T) bool) bool {
	end1, end2 := r1.IterEnd(), r2.IterEnd()
	it1, it2 := r1.Iter(), r2.Iter()
	for ; !it1.Eq(end1) && !it2.Eq(end2); it1, it2 = it1.Next(), it2.Next() {
		if !eq(it1.Value(), it2.Value()) {
			return false
		}
	}
	return it1.Eq(end1) && it2.Eq(end2)
}
