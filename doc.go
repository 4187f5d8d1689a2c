// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wake provides type-erased, small-object-optimized wake handles
// for cooperative schedulers in Go.
//
// A suspended computation must be resumable from unrelated code — often
// from an I/O completion or timer thread — without forcing every caller to
// pay for a heap allocation or to commit to one concrete callback type.
// Package wake stores an arbitrary [Notifier] behind a fixed-size inline
// buffer when the value is small, and promotes it to a shared, atomically
// reference-counted allocation when it is not.
//
// # Design Philosophy
//
// wake provides:
//   - A minimal capability interface: [Notifier], one operation, Notify
//   - Type erasure through an operation table generated per concrete type,
//     with allocation-free construction and dispatch
//   - Explicit borrowed/owned ownership states with a release discipline
//     enforced at runtime
//
// # Construction Paths
//
// Three constructors, increasingly permissive:
//
//   - [ByRef]: strict inline. Borrows the caller's value, never copies,
//     never allocates; returns [TooLargeError] when the value exceeds
//     [InlineCapacity]. For callers that must not allocate and want to fail
//     loudly when their size assumption breaks.
//   - [ByClone]: best-effort inline. Same as [ByRef] for small values;
//     oversized values are cloned into a shared allocation instead of
//     failing. The common-case default.
//   - [Boxed]: unconditional promotion. The only path that does not require
//     the value to be duplicable, because duplication of the promoted form
//     is a reference-count increment.
//
// # Handles and Objects
//
// A [Handle] is short-lived: it exists while a computation is being
// suspended, and may borrow caller-owned memory. A scheduler that actually
// suspends converts it with [Handle.Object] into an [Object], which owns
// its storage and is safe to retain indefinitely, duplicate with
// [Object.Clone], and wake with [Object.Notify].
//
// Duplication always dispatches through the payload's own Clone so that
// values with sharing semantics run them; for trivially-duplicable payloads
// the generated operation degenerates to a bitwise copy.
//
// # Ownership Discipline
//
// Go has no scope-exit destruction, so owned storage is released
// explicitly: every [Object], and every owned [Handle], must be released
// exactly once via Release. Releasing twice, or using a value after
// release, is a contract violation and panics. Borrowed handles own
// nothing; discarding one never touches the payload.
//
// # Concurrency
//
// The package is a passive data structure: no operation blocks, suspends,
// or performs I/O, and no internal goroutines exist. Notify may be called
// concurrently with itself and from threads other than the constructing
// one; the promoted path's reference count is atomic, so Clone and Release
// race safely across threads. The only synchronization in the package is
// that counter.
//
// # Inline Capacity
//
// [InlineCapacity] is a versioned configuration constant. It may grow in a
// compatible release but never shrink: growing only widens which payloads
// qualify for the zero-allocation path and never changes observable
// behavior for payloads that already fit.
package wake
