// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import "sync/atomic"

// box is the shared heap allocation behind the promoted path. The count
// starts at one for the reference handed to the constructor; duplication
// and release race safely across threads through the atomic counter, the
// only shared mutable state in the package.
type box[T Notifier] struct {
	refs  atomic.Int64
	value T
}

// boxRef is the erased payload for promoted notifiers: a pointer-sized
// descriptor that is always small enough for inline storage and always
// duplicable, whatever the boxed type required. Erasing a boxRef instead of
// the original value is what makes the best-effort and boxed constructors
// total.
type boxRef[T Notifier] struct {
	b *box[T]
}

// newBoxRef moves v into a fresh shared allocation and returns the first
// reference to it.
func newBoxRef[T Notifier](v T) boxRef[T] {
	b := &box[T]{value: v}
	b.refs.Store(1)
	return boxRef[T]{b: b}
}

// Notify forwards to the boxed notifier. The boxed value is never mutated,
// so concurrent wake-ups need no coordination beyond the value's own
// Notify contract.
func (r boxRef[T]) Notify() {
	r.b.value.Notify()
}

// Clone bumps the shared count and copies the descriptor.
func (r boxRef[T]) Clone() boxRef[T] {
	r.b.refs.Add(1)
	return r
}

// Dispose drops one reference. The last reference runs the boxed value's
// own Dispose hook, if it declares one, then clears the slot so the boxed
// value's contents become collectable even if the box allocation itself is
// still pinned somewhere.
func (r boxRef[T]) Dispose() {
	if r.b.refs.Add(-1) != 0 {
		return
	}
	disposePayload(&r.b.value)
	var zero T
	r.b.value = zero
}
