// SPDX-License-Identifier: GPL-3.0-or-later

// Package ranges provides capability-tiered iterators and ranges.
//
// # Iterator Tiers
//
// A cursor qualifies for a tier when it implements every method of that
// tier. Each tier is a generic interface parameterized by the element type
// T, the iterator's own type I, and the end sentinel type E:
//
//   - [Iter]: read the current element, advance, compare against the end
//   - [FwdIter]: [Iter] plus the multi-pass guarantee
//   - [BidiIter]: [FwdIter] plus stepping backward
//   - [JumpIter]: [BidiIter] plus jumping by an offset and measuring distances
//   - [ArrIter]: [JumpIter] plus contiguous access to the underlying elements
//
// Every tier has a Mut counterpart ([MutIter] through [MutArrIter]) adding
// write-through access. A Mut tier embeds its read tier, so a mutable
// iterator satisfies every algorithm constrained by the read tier.
//
// Iterators are values. Copying an iterator saves its position, and
// advancing returns a new iterator rather than modifying the receiver.
// Reading past the end is not checked by the tiers themselves.
//
// # Range Tiers
//
// A [Range] is a begin iterator paired with an end sentinel. Range tiers
// ([FwdRange], [JumpRange], [ArrRange], ...) are expressed by constraining
// the iterator type, so capability detection happens at compile time:
// [Count] only accepts ranges whose iterators are [JumpIter], [Data] only
// accepts [ArrIter] ranges, and so on.
//
// A range never owns the elements it views. The storage must outlive the
// range and any iterator obtained from it.
//
// # Checked and Unchecked Access
//
// Element access comes in two explicitly named families:
//
//   - checked: [At], [Front], [Back], [MutAt], ... return [ErrIndexOutOfRange]
//     or [ErrEmptyRange] on contract violations
//   - unchecked: [Get] and the trait's Get/MutGet skip the contract check and
//     rely on the Go runtime's own bounds checking
//
// # Adapters
//
// [ArrTrait] and [MutArrTrait] add the whole array range vocabulary on top
// of any type implementing [ArrImpl]. Containers embed them rather than
// reimplementing iteration and access.
package ranges
