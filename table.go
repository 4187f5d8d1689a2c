// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"reflect"
	"sync"
	"unsafe"
)

// opTable binds invoke, clone, and destroy to the concrete type last erased
// into a buffer. After generation the table carries no type information; it
// is the only link between raw payload bytes and the logic needed to treat
// them as that type.
//
// A table generated for T must only ever be applied to a buffer or borrowed
// pointer holding an initialized, not-yet-destroyed T. The package upholds
// this by co-creating table and bytes at the construction boundary and
// never separating them afterward.
type opTable struct {
	// invoke calls Notify on the payload at p. Never mutates it.
	invoke func(p unsafe.Pointer)

	// clone duplicates the payload at p through its own Clone and returns
	// the duplicate's raw representation, plus a pin that keeps any
	// pointers embedded in that representation visible to the collector
	// (nil for pointer-free payloads).
	clone func(p unsafe.Pointer) (buffer, any)

	// destroy runs the payload's Dispose hook, if it declares one, against
	// the payload at p. Called exactly once per owned copy.
	destroy func(p unsafe.Pointer)
}

// tableFor generates the operation table for T. Named generic functions
// produce one static funcval per instantiation, so building a table costs
// no allocation no matter how often a type is erased.
func tableFor[T CloneNotifier[T]]() opTable {
	return opTable{
		invoke:  invokeAs[T],
		clone:   cloneAs[T],
		destroy: destroyAs[T],
	}
}

// invokeAs recovers a T at p and notifies it.
func invokeAs[T Notifier](p unsafe.Pointer) {
	(*(*T)(p)).Notify()
}

// cloneAs recovers a T at p, duplicates it through its own Clone, and packs
// the duplicate's bytes into a fresh buffer.
//
// Buffer words are not traced by the collector. When T's representation
// embeds pointers the duplicate is also boxed into the returned pin; the
// bitwise copy in the buffer shares every pointee with the boxed copy, so
// the pin keeps them live for as long as the holder keeps the pin. For
// pointer-shaped T (one pointer word, such as the promoted path's box
// reference) the boxing stores the word directly and does not allocate.
func cloneAs[T CloneNotifier[T]](p unsafe.Pointer) (buffer, any) {
	c := (*(*T)(p)).Clone()
	var buf buffer
	*(*T)(buf.ptr()) = c
	var pin any
	if pointerful[T]() {
		pin = c
	}
	return buf, pin
}

// destroyAs recovers a T at p and runs its Dispose hook, if it declares
// one.
func destroyAs[T any](p unsafe.Pointer) {
	disposePayload((*T)(p))
}

// disposePayload runs v's Dispose hook, if it declares one, preferring the
// pointer method set so in-place hooks see the stored representation. For
// any named non-pointer T the pointer method set already contains every
// method of T, so the value-side check only runs for pointer and interface
// payloads — both direct-interface kinds, so the conversion never
// allocates.
func disposePayload[T any](v *T) {
	if d, ok := any(v).(Disposer); ok {
		d.Dispose()
		return
	}
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface:
		if d, ok := any(*v).(Disposer); ok {
			d.Dispose()
		}
	}
}

// pointerfulTypes memoizes the per-type answer of typeHasPointers.
// Keys are reflect.Type, values are bool.
var pointerfulTypes sync.Map

// pointerful reports whether T's representation embeds pointers the
// collector must be able to see.
func pointerful[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := pointerfulTypes.Load(t); ok {
		return v.(bool)
	}
	v := typeHasPointers(t)
	pointerfulTypes.Store(t, v)
	return v
}

// typeHasPointers walks t's representation. Only kinds whose every byte is
// scalar data report false; anything carrying a pointer word — including
// strings, slices, maps, channels, funcs, and interfaces — reports true.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
