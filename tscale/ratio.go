// SPDX-License-Identifier: MIT
// Package: recursiver/tscale
//
// ratio.go — successive-term ratios of a sequence.
//
// For input a₀, a₁, a₂, ... the output is 0, a₁/a₀, a₂/a₁, ...
// The leading zero value is a sentinel for the position with no
// predecessor. Output length always equals input length.
//
// Division follows Go semantics for T: floats give ±Inf/NaN on a zero
// divisor, integer division by zero panics at run time. Neither is caught.

package tscale

import "iter"

// Ratios maps seq to the ratio of each term to the one before it,
// emitting the zero value of T first.
// Complexity: O(1) per element, O(1) memory.
func Ratios[T Number](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			prev    T
			hasPrev bool
		)
		for t := range seq {
			var out T
			if hasPrev {
				out = t / prev
			}
			prev, hasPrev = t, true
			if !yield(out) {
				return
			}
		}
	}
}

// Take yields at most n values of seq. n <= 0 yields nothing and never
// pulls from seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// RateWithData builds a consuming generator over copies of terms and
// weights, draws the first count values and returns their Ratios.
// At most the generator's step budget (see WithSteps) values are drawn.
// The returned sequence is single-use.
//
// Errors:
//   - ErrNegativeCount                    — count < 0.
//   - ErrEmptyWindow, ErrWindowMismatch   — see NewWithConfig.
func RateWithData[T Number](count int, terms, weights []T, opts ...Option) (iter.Seq[T], error) {
	if count < 0 {
		return nil, tscaleErrorf(methodRateWithData, ErrNegativeCount)
	}
	s, err := NewWithConfig(terms, weights)
	if err != nil {
		return nil, tscaleErrorf(methodRateWithData, err)
	}

	return Ratios(s.IntoIter(opts...).Take(count)), nil
}
