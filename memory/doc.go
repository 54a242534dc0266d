// SPDX-License-Identifier: GPL-3.0-or-later

// Package memory contains the allocation and locking primitives used by
// the containers.
//
// An [Allocator] hands out element storage for a container. The
// [DefaultAllocator] delegates to the Go heap. [CountingAllocator],
// [LimitAllocator] and [InstrumentAllocator] wrap another allocator to
// observe or constrain it.
//
// [Mutex] is a non-copyable mutual exclusion lock implementing [Lockable].
package memory
