// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"fmt"
	"unsafe"
)

// TooLargeError reports a payload rejected by the strict inline path.
// It is returned only by [ByRef]; the other constructors promote oversized
// payloads instead of failing.
type TooLargeError struct {
	// Size is the measured payload size in bytes.
	Size int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("wake: payload of %d bytes exceeds the current %d-byte inline capacity",
		e.Size, InlineCapacity)
}

// Handle is a short-lived erased reference to a notifier, held while a
// computation is being suspended. It is in exactly one of two ownership
// states:
//
//   - borrowed: it references caller-owned memory. The caller keeps the
//     original value alive and valid for the handle's lifetime; discarding
//     the handle never touches the payload.
//   - owned: it holds the payload in its own inline buffer and must be
//     released exactly once via [Handle.Release].
//
// A handle is always paired with the operation table generated for the
// type last erased into it — on the promoted path that is the box
// reference type, not the caller's original type. A scheduler that
// actually suspends persists the handle with [Handle.Object]; a handle
// that turns out not to be needed is simply discarded (borrowed) or
// released (owned).
//
// A Handle is single-owner. Its methods must not be called concurrently.
type Handle struct {
	tbl      opTable
	borrowed unsafe.Pointer
	buf      buffer
	pin      any
	owned    bool
	released bool
}

// ByRef is the strict inline path: it erases the value at v by reference,
// producing a borrowed handle. No allocation and no duplication happen —
// duplication is deferred until the scheduler persists the handle — and
// the caller remains responsible for v's lifetime.
//
// Fails with a *[TooLargeError] carrying the measured size when v's type
// does not fit [InlineCapacity]. Callers that cannot tolerate promotion
// use this path and treat the error as a broken size assumption.
func ByRef[T CloneNotifier[T]](v *T) (Handle, error) {
	if size := unsafe.Sizeof(*v); !fitsInline(size, InlineCapacity) {
		return Handle{}, &TooLargeError{Size: int(size)}
	}
	return Handle{tbl: tableFor[T](), borrowed: unsafe.Pointer(v)}, nil
}

// ByClone is the best-effort inline path: identical to [ByRef] for
// payloads that fit, and total for those that do not — an oversized
// payload is cloned once into a shared allocation and erased through the
// promoted path instead of failing.
//
// This is the right default when the payload is expected to be small and
// cheap to clone; the promotion is a rare-case safety net, not an error.
func ByClone[T CloneNotifier[T]](v *T) Handle {
	h, err := ByRef(v)
	if err == nil {
		return h
	}
	return Boxed((*v).Clone())
}

// Boxed unconditionally promotes v into a shared, reference-counted heap
// allocation and returns an owned handle whose buffer holds the
// allocation's pointer-sized reference descriptor. This is the only path
// that does not require v to be duplicable: persisting the handle
// duplicates the descriptor (a count increment), never v itself.
func Boxed[T Notifier](v T) Handle {
	r := newBoxRef(v)
	h := Handle{tbl: tableFor[boxRef[T]](), owned: true, pin: r}
	*(*boxRef[T])(h.buf.ptr()) = r
	return h
}

// Owned reports whether the handle owns its storage. Borrowed handles may
// be discarded freely; owned handles must be released.
func (h *Handle) Owned() bool { return h.owned }

// bytes returns the address of the current payload representation.
func (h *Handle) bytes() unsafe.Pointer {
	if h.owned {
		return h.buf.ptr()
	}
	return h.borrowed
}

// Notify wakes the erased notifier, whatever the ownership state. The
// stored representation is never consumed or mutated, so Notify may be
// called any number of times before the handle is discarded.
func (h *Handle) Notify() {
	if h.released {
		panic("wake: handle used after release")
	}
	h.tbl.invoke(h.bytes())
}

// Object persists the handle into an independently owned [Object]. The
// payload is duplicated through its operation table — this is the deferred
// duplication the constructors promised — so the handle remains valid and
// may be persisted again.
func (h *Handle) Object() Object {
	if h.released {
		panic("wake: handle used after release")
	}
	buf, pin := h.tbl.clone(h.bytes())
	return Object{tbl: h.tbl, buf: buf, pin: pin}
}

// Release discards the handle. For an owned handle this destroys the
// stored payload through its operation table; for a borrowed handle there
// is no ownership to release and the payload is untouched. Releasing twice
// panics.
func (h *Handle) Release() {
	if h.released {
		panic("wake: handle released twice")
	}
	h.released = true
	if !h.owned {
		return
	}
	h.tbl.destroy(h.buf.ptr())
	h.buf = buffer{}
	h.pin = nil
}
