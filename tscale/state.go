// SPDX-License-Identifier: MIT
// Package: recursiver/tscale
//
// state.go — State: the seed window and weights of a recurrence.
//
// Contract:
//   • terms are ascending in time: terms[0] oldest, terms[C-1] newest.
//   • weights are descending in recency: weights[0] pairs with the newest term.
//   • len(terms) == len(weights) == C > 0 for the whole life of the State.
//   • Inputs are stored verbatim. Terms are NEVER reversed: the stepping
//     code in generator.go indexes weights backwards and relies on it.

package tscale

import "slices"

// State holds a recurrence window and its weights.
// The zero value is not usable; build one with Default, New or NewWithConfig.
type State[T Number] struct {
	terms   []T
	weights []T

	consumed bool   // buffers moved out by IntoIter
	epoch    uint64 // bumped by every Iter/IntoIter; only the matching view may step
	borrowed bool   // the current-epoch view is neither exhausted nor released
}

// Default returns a State of window length c with every term and weight
// set to 1.
// Panics if c < MinWindow: a zero-length window is a programming error.
// Complexity: O(c) time, O(c) memory.
func Default[T Number](c int) *State[T] {
	if c < MinWindow {
		tscalePanic(methodDefault, ErrEmptyWindow)
	}
	terms := make([]T, c)
	weights := make([]T, c)
	for i := 0; i < c; i++ {
		terms[i] = one[T]()
		weights[i] = one[T]()
	}

	return &State[T]{terms: terms, weights: weights}
}

// New is shorthand for Default.
func New[T Number](c int) *State[T] {
	return Default[T](c)
}

// NewWithConfig returns a State seeded with terms and weighted by weights.
// Both slices are copied as given; no reordering is applied.
//
// Stage 1 (Validate): len(terms) > 0 and len(terms) == len(weights).
// Stage 2 (Prepare): copy both slices so the caller keeps its own.
// Stage 3 (Finalize): return the State or a wrapped sentinel.
//
// Errors:
//   - ErrEmptyWindow    — len(terms) == 0.
//   - ErrWindowMismatch — len(terms) != len(weights).
//
// Complexity: O(C) time, O(C) memory.
func NewWithConfig[T Number](terms, weights []T) (*State[T], error) {
	// Validate window length and pairing
	if err := validateWindow(terms, weights); err != nil {
		return nil, tscaleErrorf(methodNewWithConfig, err)
	}

	// Copy verbatim: terms oldest-first, weights newest-first
	return &State[T]{
		terms:   slices.Clone(terms),
		weights: slices.Clone(weights),
	}, nil
}

// MustNewWithConfig is like NewWithConfig but panics on error.
// Intended for literals in tests and examples.
func MustNewWithConfig[T Number](terms, weights []T) *State[T] {
	s, err := NewWithConfig(terms, weights)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the window length C, or 0 once the State is consumed.
func (s *State[T]) Len() int {
	return len(s.terms)
}

// Terms returns a copy of the current window, oldest first.
// After a borrowed generator has stepped, this is the advanced window.
func (s *State[T]) Terms() []T {
	return slices.Clone(s.terms)
}

// Weights returns a copy of the weights, newest-term weight first.
func (s *State[T]) Weights() []T {
	return slices.Clone(s.weights)
}

// Consumed reports whether IntoIter has taken the State's buffers.
func (s *State[T]) Consumed() bool {
	return s.consumed
}

// Borrowed reports whether the most recent borrowed generator over s is
// still live, i.e. not exhausted, released or superseded.
func (s *State[T]) Borrowed() bool {
	return s.borrowed
}

// Clone returns an independent copy of s, so the same recurrence can be
// generated again after s has been advanced or consumed elsewhere.
// Panics if s is already consumed.
func (s *State[T]) Clone() *State[T] {
	if s.consumed {
		tscalePanic(methodClone, ErrConsumed)
	}

	return &State[T]{
		terms:   slices.Clone(s.terms),
		weights: slices.Clone(s.weights),
	}
}

// Iter returns a generator that BORROWS s: every step rewrites s's window
// in place, and s stays usable whenever the generator is dropped.
// Only the most recent view may step: calling Iter or IntoIter again
// retires any earlier borrowed generator, which then reports exhaustion.
//
// Panics with ErrConsumed if s was consumed, ErrEmptyWindow if s is the
// zero value.
func (s *State[T]) Iter(opts ...Option) *Generator[T] {
	s.mustBeFree(methodIter)
	s.epoch++
	s.borrowed = true

	return newGenerator[T](&borrowedWindow[T]{state: s, epoch: s.epoch}, newGeneratorConfig(opts...))
}

// IntoIter returns a generator that OWNS s's buffers. s is consumed:
// any later Iter, IntoIter or Clone on it panics, and any borrowed
// generator over s reports exhaustion.
//
// Panics with ErrConsumed if s was consumed, ErrEmptyWindow if s is the
// zero value.
func (s *State[T]) IntoIter(opts ...Option) *Generator[T] {
	s.mustBeFree(methodIntoIter)
	w := &ownedWindow[T]{t: s.terms, w: s.weights}
	s.terms, s.weights = nil, nil
	s.consumed = true
	s.epoch++
	s.borrowed = false

	return newGenerator[T](w, newGeneratorConfig(opts...))
}

// mustBeFree panics unless s can hand out its buffers.
func (s *State[T]) mustBeFree(method string) {
	if s.consumed {
		tscalePanic(method, ErrConsumed)
	}
	if len(s.terms) < MinWindow {
		tscalePanic(method, ErrEmptyWindow)
	}
}

// validateWindow checks the C > 0 and equal-length invariants.
func validateWindow[T Number](terms, weights []T) error {
	if len(terms) < MinWindow {
		return ErrEmptyWindow
	}
	if len(terms) != len(weights) {
		return ErrWindowMismatch
	}

	return nil
}
