// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

// Object is the persisted form of an erased notifier: an inline buffer
// plus the operation table generated for the payload inside it. Unlike
// [Handle] it has no borrowed state — an Object always owns its storage,
// so a scheduler may retain it indefinitely, hand it to another thread,
// and wake it long after the constructing stack frame is gone.
//
// Objects are created only by [Handle.Object] and [Object.Clone]; both
// dispatch the payload's own duplication, never a raw copy of arbitrary
// bytes. Every Object must be released exactly once via [Object.Release].
//
// Notify and Clone never mutate the copy they are called on and are safe
// to call concurrently, from any thread. Release must be ordered after
// every other use of its copy; distinct copies may be released
// concurrently — on the promoted path they race only on the atomic
// reference count.
type Object struct {
	tbl      opTable
	buf      buffer
	pin      any
	released bool
}

// Object satisfies the capability it stores, so a scheduler can treat
// persisted callbacks as plain notifiers.
var _ Notifier = (*Object)(nil)

// Notify wakes the stored notifier. The stored representation is never
// consumed or mutated; Notify may be called any number of times before
// Release.
func (o *Object) Notify() {
	if o.released {
		panic("wake: object used after release")
	}
	o.tbl.invoke(o.buf.ptr())
}

// Clone duplicates the object. The duplicate is independently owned and
// must itself be released. Duplication dispatches the payload's own Clone:
// a bitwise copy for trivially-duplicable payloads, a reference-count
// increment on the promoted path.
func (o *Object) Clone() Object {
	if o.released {
		panic("wake: object used after release")
	}
	buf, pin := o.tbl.clone(o.buf.ptr())
	return Object{tbl: o.tbl, buf: buf, pin: pin}
}

// Release destroys the stored payload through its operation table.
// Exactly once per object: releasing twice panics, and a dropped object
// that was never released leaks whatever its payload owns.
func (o *Object) Release() {
	if o.released {
		panic("wake: object released twice")
	}
	o.released = true
	o.tbl.destroy(o.buf.ptr())
	o.buf = buffer{}
	o.pin = nil
}
