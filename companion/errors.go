// SPDX-License-Identifier: MIT
// Package companion: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with "%s: %w"
// context) and never panic on caller input.

package companion

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested dimensions are not positive.
	ErrBadShape = errors.New("companion: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("companion: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("companion: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("companion: matrix is not square")

	// ErrEmptyWeights indicates a recurrence with no weights (C == 0).
	ErrEmptyWeights = errors.New("companion: weights must be non-empty")

	// ErrNegativeIndex indicates a negative term index or power.
	ErrNegativeIndex = errors.New("companion: index must be >= 0")

	// ErrBadTolerance indicates tol <= 0 or maxIter <= 0.
	ErrBadTolerance = errors.New("companion: tolerance and maxIter must be > 0")

	// ErrNoConvergence indicates power iteration did not settle within maxIter,
	// typically because the dominant roots are complex or tied in magnitude
	// (e.g. x² = 1 with roots ±1).
	ErrNoConvergence = errors.New("companion: dominant ratio did not converge")
)

// companionErrorf prefixes err with the operation name.
func companionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
