// SPDX-License-Identifier: GPL-3.0-or-later

// Package atom is the root of a small foundation library for building
// applications on top of generic containers, iterators and logging.
//
// The root package provides fixed-size primitive aliases (e.g., [Int32],
// [Usize], [UChar]), the zero value helpers [NullVal] and [IsNullVal], and
// the empty [Unit] type used where a result carries no information.
//
// # Packages
//
// Iteration and containers:
//   - ranges: iterator and range capability tiers (forward, bidirectional,
//     jump, array), checked accessors, search, mutation and comparison
//     algorithms, plus adapters to [iter.Seq]
//   - containers: [containers.ArrView] (non-owning), [containers.StaticArr]
//     (fixed length) and [containers.DynArr] (growable, allocator backed)
//
// Memory and synchronization:
//   - memory: the [memory.Allocator] interface with default, counting,
//     limiting and Prometheus-instrumented implementations, and the
//     non-copyable [memory.Mutex]
//
// Hashing and identifiers:
//   - digest: MD5, SHA-1 and BLAKE2b-256 digests and streaming generators
//   - uuids: name-based UUIDv3 and UUIDv5 generation over any digest
//     generator, plus random UUIDv4 and time-ordered UUIDv7
//
// Utilities:
//   - mathx: numeric helpers (clamping, approximate zero) and hex digits
//
// Logging:
//   - logging: leveled loggers (console, slog, zap, null), a factory, a
//     YAML-configurable registry with strict, forced and try operations
//
// Application:
//   - engine: events, headless windows, a window manager and the frame
//     loop run by [engine.Application]
//
// The atom command (cmd/atom) exercises these packages from the command line.
//
// # Errors and Panics
//
// Operations that may fail at runtime (allocation, checked element access,
// parsing, registry lookups) return errors wrapping exported sentinels, so
// callers can use [errors.Is]. Programming errors, such as using an iterator
// outside its range, panic.
//
// # Concurrency
//
// Containers and iterators are not safe for concurrent use. Loggers, the
// logger registry, [engine.Event] and [engine.WindowManager] are.
package atom
