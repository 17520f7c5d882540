// SPDX-License-Identifier: MIT
// Package companion: Build, NthTerm and DominantRatio.
//
// Conventions match tscale exactly:
//   • terms ascending in time (terms[0] oldest),
//   • weights descending in recency (weights[0] pairs with the newest term),
//   • draw index n is 0-based, so NthTerm(terms, weights, i) == terms[i]
//     for i < C.

package companion

import (
	"fmt"
	"math"
)

// Build returns the C×C companion matrix of weights.
// Row i < C-1 shifts the window (M[i][i+1] = 1); the last row computes
// the next term (M[C-1][j] = weights[C-1-j]).
// Errors: ErrEmptyWeights.
// Complexity: O(C²) time and memory.
func Build(weights []float64) (*Dense, error) {
	c := len(weights)
	if c == 0 {
		return nil, companionErrorf("Build", ErrEmptyWeights)
	}
	m, err := NewDense(c, c)
	if err != nil {
		return nil, companionErrorf("Build", err)
	}
	for i := 0; i < c-1; i++ {
		m.data[i*c+i+1] = 1
	}
	last := (c - 1) * c
	for j := 0; j < c; j++ {
		m.data[last+j] = weights[c-1-j]
	}

	return m, nil
}

// NthTerm returns the value a tscale generator seeded with terms and
// weights emits at 0-based draw n, without stepping n times.
// The generator's step budget does not apply here.
//
// Errors: ErrEmptyWeights, ErrDimensionMismatch (len(terms) != len(weights)),
// ErrNegativeIndex.
// Complexity: O(C³·log n).
func NthTerm(terms, weights []float64, n int) (float64, error) {
	if len(weights) == 0 {
		return 0, companionErrorf("NthTerm", ErrEmptyWeights)
	}
	if len(terms) != len(weights) {
		return 0, fmt.Errorf("NthTerm: len(terms)=%d, len(weights)=%d: %w",
			len(terms), len(weights), ErrDimensionMismatch)
	}
	if n < 0 {
		return 0, companionErrorf("NthTerm", ErrNegativeIndex)
	}
	if n < len(terms) {
		return terms[n], nil // seeds come out untouched
	}

	m, err := Build(weights)
	if err != nil {
		return 0, companionErrorf("NthTerm", err)
	}
	p, err := Pow(m, n)
	if err != nil {
		return 0, companionErrorf("NthTerm", err)
	}
	window, err := MulVec(p, terms)
	if err != nil {
		return 0, companionErrorf("NthTerm", err)
	}

	return window[0], nil
}

// DominantRatio estimates the limit of successive-term ratios of the
// recurrence, i.e. the eigenvalue of largest magnitude of its companion
// matrix, by power iteration.
//
// Stage 1 (Validate): tol > 0, maxIter > 0, weights non-empty.
// Stage 2 (Iterate): start from the impulse window [0,…,0,1], which has a
// component along every eigenvector of a companion matrix. Each round
// computes w = M·v and the Rayleigh estimate λ = (w·v)/(v·v).
// Stage 3 (Finalize): accept λ once the residual max|wᵢ − λ·vᵢ| is at
// most tol·max(1, |λ|); otherwise normalize v = w/‖w‖∞ and repeat.
//
// A nilpotent recurrence (all weights zero) returns 0. Tied dominant
// magnitudes (±r, complex pairs) keep the residual large and surface as
// ErrNoConvergence.
//
// Errors: ErrEmptyWeights, ErrBadTolerance, ErrNoConvergence.
// Complexity: O(maxIter·C²).
func DominantRatio(weights []float64, tol float64, maxIter int) (float64, error) {
	if tol <= 0 || maxIter <= 0 {
		return 0, companionErrorf("DominantRatio", ErrBadTolerance)
	}
	m, err := Build(weights)
	if err != nil {
		return 0, companionErrorf("DominantRatio", err)
	}

	c := len(weights)
	v := make([]float64, c)
	v[c-1] = 1 // impulse: the default tscale seed

	var (
		lambda, resid, norm float64
		wv, vv              float64
		w                   []float64
	)
	for iter := 0; iter < maxIter; iter++ {
		if w, err = MulVec(m, v); err != nil {
			return 0, companionErrorf("DominantRatio", err)
		}

		norm = math.Abs(w[argMaxAbs(w)])
		if norm == 0 {
			return 0, nil
		}
		if math.IsInf(norm, 0) || math.IsNaN(norm) {
			break
		}

		// Rayleigh quotient along v
		wv, vv = 0, 0
		for i := range v {
			wv += w[i] * v[i]
			vv += v[i] * v[i]
		}
		lambda = wv / vv

		// Residual of the eigen-equation M·v = λ·v
		resid = 0
		for i := range v {
			resid = math.Max(resid, math.Abs(w[i]-lambda*v[i]))
		}
		if resid <= tol*math.Max(1, math.Abs(lambda)) {
			return lambda, nil
		}

		for i := range w {
			w[i] /= norm
		}
		v = w
	}

	return 0, fmt.Errorf("DominantRatio: last estimate %g after %d iterations: %w", lambda, maxIter, ErrNoConvergence)
}

// argMaxAbs returns the index of the element with the largest magnitude.
func argMaxAbs(x []float64) int {
	best := 0
	for i := 1; i < len(x); i++ {
		if math.Abs(x[i]) > math.Abs(x[best]) {
			best = i
		}
	}

	return best
}
