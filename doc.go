// Package recursiver computes linear-recurrence sequences and the ratios
// between their successive terms.
//
// 🚀 What is recursiver?
//
//	A small, generic, zero-I/O library for sequences of the form
//
//	    a(n) = w₀·a(n-1) + w₁·a(n-2) + … + w_{C-1}·a(n-C)
//
//	driven from a window of C seed terms. Fibonacci, Lucas, Pell,
//	Tribonacci and friends are all special cases.
//
// ✨ Packages:
//
//	tscale/    — State (seeds + weights), Generator (lazy, bounded, borrowing
//	             or consuming), Ratios / RateWithData (aₙ₊₁ / aₙ).
//	companion/ — companion-matrix view: NthTerm jump-ahead, DominantRatio limit.
//	presets/   — ready-made States for classic recurrences.
//	examples/  — runnable demo: Fibonacci ratio → golden ratio.
//
// Quick example:
//
//	rates, _ := tscale.RateWithData(50, []float64{0, 1}, []float64{1, 1})
//	for r := range rates {
//	  fmt.Println(r) // …, 1.618034
//	}
//
//	go get github.com/katalvlaran/recursiver
package recursiver
