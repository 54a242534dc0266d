// SPDX-License-Identifier: GPL-3.0-or-later

// Package containers implements contiguous array containers on top of
// the [ranges] vocabulary.
//
// [ArrView] borrows storage owned elsewhere, [StaticArr] owns storage of
// a count fixed at construction, and [DynArr] owns growable storage
// obtained from a [memory.Allocator].
//
// All three embed a [ranges.ArrTrait] or [ranges.MutArrTrait], so they
// satisfy the array range tiers and work with every algorithm in [ranges].
// None of them is safe for concurrent mutation.
package containers
