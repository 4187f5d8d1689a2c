// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

// Notifier is the capability this package erases: a value that can be told
// "the thing you were waiting on is ready."
//
// Notify takes no arguments and reports nothing to the erasure layer. It
// must be safe to call multiple times and concurrently with itself, from
// threads other than the one that constructed the handle — scheduler
// wake-ups routinely originate from I/O completion and timer threads.
type Notifier interface {
	Notify()
}

// CloneNotifier is the F-bounded constraint (type T[P T[P]]) for notifiers
// that know how to duplicate themselves: implementations return their own
// concrete type from Clone.
//
// Clone carries the payload's duplication semantics, whatever they are. A
// trivially-copyable notifier returns its receiver; a notifier wrapping a
// shared resource bumps its count. [ByRef] and [ByClone] require this
// constraint because persisting a handle duplicates the payload; [Boxed]
// does not, because duplication of the promoted form is a reference-count
// increment on the box, never a duplication of the payload.
type CloneNotifier[T any] interface {
	Notifier
	Clone() T
}

// Disposer is optionally implemented by notifiers that hold resources
// needing explicit release. When an owned handle or a persisted object is
// released, the stored payload's Dispose hook runs in place, exactly once
// per stored copy. Payloads without the hook are simply dropped.
type Disposer interface {
	Dispose()
}
