// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

// RemoveIf removes every element of r satisfying pred and returns how
// many elements were removed.
//
// The scan resumes from the iterator returned by [RemovableRange.RemoveAt],
// so the element following a removed one is examined too.
func RemoveIf[T any, I Iter[T, I, E], E any](r RemovableRange[T, I, E], pred func(T) bool) int {
	var count int
	for it := r.Iter(); !it.Eq(r.IterEnd()); {
		if pred(it.Value()) {
			it = r.RemoveAt(it)
			count++
			continue
		}
		it = it.Next()
	}
	return count
}
