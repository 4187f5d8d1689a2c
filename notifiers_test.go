// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake_test

import (
	"sync/atomic"

	"code.hybscloud.com/wake"
)

// Shared notifier fixtures. Counters are shared between a value and its
// clones, so a single pair of atomics observes the whole copy family.

// counting bumps a shared hit counter; its clone is a bitwise copy.
type counting struct {
	hits *atomic.Int64
}

func (n counting) Notify()         { n.hits.Add(1) }
func (n counting) Clone() counting { return n }

// tracked additionally observes disposal, one Dispose per stored copy.
type tracked struct {
	hits      *atomic.Int64
	disposals *atomic.Int64
}

func (n tracked) Notify()        { n.hits.Add(1) }
func (n tracked) Clone() tracked { return n }
func (n tracked) Dispose()       { n.disposals.Add(1) }

// bigTracked is tracked padded past the inline capacity, forcing the
// promoted path.
type bigTracked struct {
	hits      *atomic.Int64
	disposals *atomic.Int64
	pad       [wake.InlineCapacity]byte
}

func (n bigTracked) Notify()           { n.hits.Add(1) }
func (n bigTracked) Clone() bigTracked { return n }
func (n bigTracked) Dispose()          { n.disposals.Add(1) }

// boxedOnly has no Clone, so it can only take the [wake.Boxed] path.
type boxedOnly struct {
	hits      *atomic.Int64
	disposals *atomic.Int64
}

func (n boxedOnly) Notify()  { n.hits.Add(1) }
func (n boxedOnly) Dispose() { n.disposals.Add(1) }

// fitting is pointer-free and exactly InlineCapacity bytes: the last size
// admitted by the strict path. Hits land on a package-level counter since
// the payload cannot carry a pointer.
type fitting struct {
	pad [wake.InlineCapacity]byte
}

var fittingHits atomic.Int64

func (fitting) Notify()          { fittingHits.Add(1) }
func (f fitting) Clone() fitting { return f }

// overflowing is one byte past the inline capacity.
type overflowing struct {
	pad [wake.InlineCapacity + 1]byte
}

var overflowingHits atomic.Int64

func (overflowing) Notify()              { overflowingHits.Add(1) }
func (o overflowing) Clone() overflowing { return o }

// marker is the zero-size notifier: the whole payload is its type.
type marker struct{}

var (
	markerHits      atomic.Int64
	markerDisposals atomic.Int64
)

func (marker) Notify()       { markerHits.Add(1) }
func (marker) Clone() marker { return marker{} }
func (marker) Dispose()      { markerDisposals.Add(1) }
