// SPDX-License-Identifier: GPL-3.0-or-later

// Package digest contains stateful hash generators producing fixed-size
// digest values.
//
// A [Generator] accumulates bytes through Update and produces a digest
// through Finalize. Digests are arrays, so they are comparable and can be
// used as map keys.
package digest
