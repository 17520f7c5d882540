// SPDX-License-Identifier: MIT
// Package: recursiver/tscale
//
// window.go — ownership modes of a generator's buffers.
//
// A Generator never touches a State directly; it asks a window for the
// live terms/weights slices. Two implementations exist:
//   • borrowedWindow — slices belong to a State; steps write through to it.
//     A State hands out one view per epoch; older views go stale.
//   • ownedWindow    — slices were moved out of a State (or copied from
//     caller input) and belong to the generator alone.
// The stepping code in generator.go is written once against this interface.

package tscale

// window gives a generator mutable access to its terms and read access to
// its weights, and ends that access on release.
type window[T Number] interface {
	// terms returns the live window; callers mutate it in place.
	terms() []T
	// weights returns the weights; callers must not mutate it.
	weights() []T
	// live reports whether the window may still be stepped.
	live() bool
	// release ends access. Idempotent.
	release()
}

// borrowedWindow is a view into a State's buffers, valid only while the
// State's epoch still equals the one it was created with.
type borrowedWindow[T Number] struct {
	state *State[T]
	epoch uint64
}

func (b *borrowedWindow[T]) terms() []T { return b.state.terms }
func (b *borrowedWindow[T]) weights() []T { return b.state.weights }

// live is false once a newer Iter or IntoIter has superseded this view.
func (b *borrowedWindow[T]) live() bool {
	return b.state != nil && b.state.epoch == b.epoch
}

// release hands the State back to its owner. A superseded view leaves
// the State's flags alone.
func (b *borrowedWindow[T]) release() {
	if b.state != nil {
		if b.state.epoch == b.epoch {
			b.state.borrowed = false
		}
		b.state = nil
	}
}

// ownedWindow holds buffers transferred into the generator.
type ownedWindow[T Number] struct {
	t []T
	w []T
}

func (o *ownedWindow[T]) terms() []T { return o.t }
func (o *ownedWindow[T]) weights() []T { return o.w }

func (o *ownedWindow[T]) live() bool { return o.t != nil }

// release drops the buffers so they can be collected.
func (o *ownedWindow[T]) release() {
	o.t, o.w = nil, nil
}
