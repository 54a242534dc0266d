// SPDX-License-Identifier: GPL-3.0-or-later

// Package mathx contains small numeric and hex helpers.
package mathx

import "cmp"

// Number is the set of types the numeric helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Tolerance is the default tolerance used by [IsApproximatelyZero].
const Tolerance = 0.0001

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// IsApproximatelyZero reports whether |v| is at most [Tolerance].
func IsApproximatelyZero[T ~float32 | ~float64](v T) bool {
	return IsApproximatelyZeroTol(v, Tolerance)
}

// IsApproximatelyZeroTol reports whether |v| is at most tol.
func IsApproximatelyZeroTol[T ~float32 | ~float64](v T, tol T) bool {
	return Abs(v) <= tol
}

// Clamp returns v limited to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Min returns the smallest of a and b.
func Min[T cmp.Ordered](a, b T) T {
	return min(a, b)
}

// Max returns the largest of a and b.
func Max[T cmp.Ordered](a, b T) T {
	return max(a, b)
}
