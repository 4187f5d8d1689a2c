// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import "unsafe"

// InlineCapacity is the maximum payload size in bytes that qualifies for
// inline storage. Larger notifiers take the promoted (heap) path.
//
// This constant is versioned configuration: it may grow in a compatible
// release but must never shrink. Growing it only widens which payloads
// avoid allocation; behavior for payloads that already fit is unchanged.
const InlineCapacity = 128

// wordBytes is the size of one buffer word, which is also the maximum
// alignment the Go ABI produces for any type.
const wordBytes = int(unsafe.Sizeof(uint64(0)))

// buffer is the fixed-capacity inline storage for one erased payload.
// A uint64 array rather than a byte array: the word type aligns the buffer
// to 8 bytes, so any payload's alignment requirement is met in place and
// the size check in fitsInline is the whole admission rule.
//
// A buffer holds at most one live payload at a time, and only ever the
// payload its paired operation table was generated for. The collector does
// not trace buffer words; payloads whose representation embeds pointers are
// kept reachable through a pin held next to the buffer (see opTable.clone).
type buffer [InlineCapacity / wordBytes]uint64

// ptr returns the address of the stored payload.
func (b *buffer) ptr() unsafe.Pointer { return unsafe.Pointer(&b[0]) }

// fitsInline reports whether a payload of the given size qualifies for
// inline storage at the given capacity. The capacity is a parameter, not
// the constant, so the boundary rule can be checked at more than one
// capacity; callers pass InlineCapacity.
func fitsInline(size, capacity uintptr) bool {
	return size <= capacity
}
