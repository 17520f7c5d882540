// Package companion views a linear recurrence as a matrix, so questions
// that would take many generator steps can be answered directly.
//
// For weights w (w₀ pairs with the newest term, as in tscale) the C×C
// companion matrix M advances an ascending window by one step:
//
//	        ┌ 0  1  0  …  0 ┐
//	        │ 0  0  1  …  0 │
//	    M = │ …           … │        M · [t₀ … t_{C-1}]ᵀ = [t₁ … t_C]ᵀ
//	        │ 0  0  0  …  1 │
//	        └ w_{C-1} … w₀  ┘
//
// What it gives you:
//   - NthTerm: the value tscale would emit at draw n, via M^n in
//     O(C³·log n) instead of O(C·n).
//   - DominantRatio: the limit of tscale.Ratios for generic seeds, i.e. the
//     dominant root of the characteristic polynomial, by power iteration
//     (φ ≈ 1.618034 for Fibonacci weights).
//
// Only float64 is supported; use tscale directly for exact integer or
// complex sequences.
//
// Errors are sentinels (see errors.go); match them with errors.Is.
package companion
