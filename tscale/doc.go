// Package tscale computes linear-recurrence sequences from a fixed-size
// window of seed terms and a matching set of weights, and derives the
// sequence of successive-term ratios from them.
//
// 🚀 What is a recurrence here?
//
//	Given a window of C terms t₀..t_{C-1} (oldest first) and C weights
//	w₀..w_{C-1} (w₀ applies to the NEWEST term), the next term is
//
//	    next = Σ tᵢ · w_{C-1-i}
//
//	The window then slides by one: the oldest term leaves, next enters.
//	Fibonacci is the C=2 case with terms [0,1] and weights [1,1].
//
// ✨ Key features:
//   - Generic over integer, float and complex scalars (see Number).
//   - Lazy, pull-based generator with a bounded step budget (WithSteps).
//   - Two ownership modes over one stepping algorithm:
//     Iter borrows the State (state stays usable, window advances in place),
//     IntoIter consumes it (state is spent, generator owns the buffers).
//   - Ratios / RateWithData: aₙ₊₁ / aₙ with a zero sentinel in front.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/recursiver/tscale"
//
//	rates, err := tscale.RateWithData(50, []float64{0, 1}, []float64{1, 1})
//	if err != nil {
//	  // ErrEmptyWindow / ErrWindowMismatch / ErrNegativeCount
//	}
//	for r := range rates {
//	  fmt.Println(r) // 0, +Inf, 1, 2, 1.5, ... → 1.618034
//	}
//
// Emission order:
//
//	The generator returns the OLDEST window term before sliding, so the
//	first C values drawn are exactly the seed terms, in order. Only the
//	(C+1)-th value onward is computed by the recurrence.
//
// Errors & panics:
//
//   - Caller data (slices of different length, empty slices, negative
//     counts) is reported with sentinel errors; use errors.Is.
//   - Programmer errors panic: Default(c<=0), WithSteps(n<0), reuse of a
//     consumed State, and iterating a zero-value State.
//   - A State hands out one live borrowed view at a time: a new Iter
//     retires the previous borrowed generator, which then reports
//     exhaustion. Dropping a borrowed generator never locks the State.
//   - Numeric edge cases (overflow, NaN, division by zero) are NOT detected;
//     they propagate exactly as the scalar type defines.
//
// Complexity:
//
//   - Time:   O(C) per step.
//   - Memory: O(C) per State / Generator; no per-step allocations.
//
// The package is single-threaded by contract: a State and its generators
// must not be shared between goroutines without external synchronization.
package tscale
