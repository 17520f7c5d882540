// SPDX-License-Identifier: MIT
// Package: recursiver/tscale
//
// errors.go — sentinel errors for the tscale package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Returned errors carry method context via %w (see tscaleErrorf).
//   • Caller DATA problems are returned as errors.
//   • Caller PROGRAMMING problems (Default(0), WithSteps(-1), reuse of a
//     consumed State, iterating a zero-value State) panic with the sentinel.
//   • Exhaustion is not an error: Next reports ok=false, ranges just end.

package tscale

import (
	"errors"
	"fmt"
)

// ErrEmptyWindow indicates a window of length 0 was supplied, or a
// zero-value State was iterated (surfaces as a panic there).
var ErrEmptyWindow = errors.New("tscale: window length must be > 0")

// ErrWindowMismatch indicates terms and weights have different lengths.
var ErrWindowMismatch = errors.New("tscale: terms and weights length mismatch")

// ErrNegativeCount indicates a negative number of values was requested.
var ErrNegativeCount = errors.New("tscale: count must be >= 0")

// ErrConsumed indicates a State was used after IntoIter transferred its buffers.
// Surfaces as a panic.
var ErrConsumed = errors.New("tscale: state already consumed")

// tscaleErrorf wraps err with the method name: "<method>: <err>".
func tscaleErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// tscalePanic raises a programmer-error panic carrying the sentinel.
// The panic value is an error so recover() callers can use errors.Is.
func tscalePanic(method string, err error) {
	panic(tscaleErrorf(method, err))
}
