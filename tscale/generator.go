// SPDX-License-Identifier: MIT
// Package: recursiver/tscale
//
// generator.go — Generator: lazy, finite producer of recurrence values.
//
// Step (C = window length):
//  1. next = Σ_{i=0}^{C-1} terms[i] * weights[C-1-i]   (zero-value start)
//  2. emit = terms[0]
//  3. terms[i] = terms[i+1] for i in 0..C-2
//  4. terms[C-1] = next
//  5. remaining--
//  6. return emit
//
// Emitting before updating means the first C values are the seed terms.
//
// Complexity: O(C) time per step, no allocations.

package tscale

import (
	"iter"
	"slices"
)

// Generator produces recurrence values on demand until its step budget
// runs out. It is not safe for concurrent use.
type Generator[T Number] struct {
	win       window[T] // nil once exhausted or released
	remaining int
}

// NewGenerator returns a generator that owns copies of terms and weights.
// Same contract as NewWithConfig followed by IntoIter.
//
// Errors:
//   - ErrEmptyWindow, ErrWindowMismatch (see NewWithConfig).
func NewGenerator[T Number](terms, weights []T, opts ...Option) (*Generator[T], error) {
	if err := validateWindow(terms, weights); err != nil {
		return nil, tscaleErrorf(methodNewGenerator, err)
	}
	w := &ownedWindow[T]{t: slices.Clone(terms), w: slices.Clone(weights)}

	return newGenerator[T](w, newGeneratorConfig(opts...)), nil
}

// newGenerator binds a window to a resolved config.
func newGenerator[T Number](w window[T], cfg generatorConfig) *Generator[T] {
	g := &Generator[T]{win: w, remaining: cfg.steps}
	if g.remaining == 0 {
		g.Release()
	}

	return g
}

// Next advances the recurrence by one step and returns the oldest term of
// the window before the step. ok is false once the generator is exhausted;
// it stays false forever after.
func (g *Generator[T]) Next() (v T, ok bool) {
	if g.win == nil || g.remaining <= 0 || !g.win.live() {
		g.Release()

		return v, false
	}
	v = g.step()
	g.remaining--
	if g.remaining == 0 {
		g.Release()
	}

	return v, true
}

// step is the single implementation of the recurrence for both ownership modes.
func (g *Generator[T]) step() T {
	terms, weights := g.win.terms(), g.win.weights()
	c := len(terms)

	var next T
	for i := 0; i < c; i++ {
		next += terms[i] * weights[c-1-i]
	}

	emit := terms[0]
	copy(terms[:c-1], terms[1:])
	terms[c-1] = next

	return emit
}

// Remaining returns how many more values Next will produce.
func (g *Generator[T]) Remaining() int {
	if g.win == nil || !g.win.live() {
		return 0
	}

	return g.remaining
}

// Release stops the generator early and drops owned buffers. Safe to call
// more than once. A borrowed State never needs it to become usable again.
func (g *Generator[T]) Release() {
	if g.win != nil {
		g.win.release()
		g.win = nil
	}
	g.remaining = 0
}

// All returns the remaining values as a single-use sequence.
// Breaking out of a range loop leaves the generator where it stopped.
func (g *Generator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Take returns at most n of the remaining values as a single-use sequence.
// n <= 0 yields nothing and does not step.
func (g *Generator[T]) Take(n int) iter.Seq[T] {
	return Take(g.All(), n)
}

// Collect drains the generator into a slice.
func (g *Generator[T]) Collect() []T {
	return slices.Collect(g.All())
}
