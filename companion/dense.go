// SPDX-License-Identifier: MIT
// Package companion: Dense, a small row-major float64 matrix.
//
// Storage is a flat slice of r*c elements; element (i,j) lives at i*c+j.
// Public indexers validate and return ErrOutOfRange instead of panicking;
// the arithmetic below works on the flat slice directly.

package companion

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int       // rows, columns
	data []float64 // len == r*c
}

// NewDense creates an r×c zero matrix.
//
// Stage 1 (Validate): rows > 0 and cols > 0.
// Stage 2 (Allocate): one contiguous row-major backing slice.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Reject empty or negative shapes
	if rows <= 0 || cols <= 0 {
		return nil, companionErrorf("NewDense", ErrBadShape)
	}

	// Zero-filled storage, element (i,j) at i*cols+j
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, companionErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col).
func (m *Dense) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", op, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Mul returns a·b.
//
// Stage 1 (Validate): inner dimensions agree.
// Stage 2 (Execute): i-k-j loop order so the inner loop walks rows of b
// and out contiguously; zero entries of a are skipped.
// Stage 3 (Finalize): return the new matrix; a and b are untouched.
//
// Errors: ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r·k·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var i, k, j int
	var aik float64
	// Iterate each row i of a
	for i = 0; i < a.r; i++ {
		// Iterate each column k of a (row k of b)
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue // companion matrices are mostly zeros
			}
			// Accumulate aik·b[k][j] into out[i][j]
			for j = 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// MulVec returns m·x.
//
// Stage 1 (Validate): len(x) == m.Cols().
// Stage 2 (Execute): one dot product per row into a fresh slice.
//
// Errors: ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r·c).
func MulVec(m *Dense, x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("MulVec: len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	// Iterate each row i of m
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		// Dot row i with x
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Pow returns m^k by binary exponentiation; m^0 is the identity.
// Errors: ErrNonSquare, ErrNegativeIndex.
// Complexity: O(n³·log k).
func Pow(m *Dense, k int) (*Dense, error) {
	if m.r != m.c {
		return nil, companionErrorf("Pow", ErrNonSquare)
	}
	if k < 0 {
		return nil, companionErrorf("Pow", ErrNegativeIndex)
	}
	result, err := Identity(m.r)
	if err != nil {
		return nil, companionErrorf("Pow", err)
	}
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, companionErrorf("Pow", err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, companionErrorf("Pow", err)
			}
		}
	}

	return result, nil
}
