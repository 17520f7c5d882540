// Package presets builds tscale States for well-known integer recurrences,
// so callers do not have to get the seed order and weight order right by hand.
//
// Every preset follows the tscale conventions:
//   - seeds ascending in time (oldest first),
//   - weights descending in recency (first weight → newest term).
//
// Available recurrences:
//
//	Fibonacci   a(n) = a(n-1) + a(n-2)          0, 1, 1, 2, 3, 5, …
//	Lucas       a(n) = a(n-1) + a(n-2)          2, 1, 3, 4, 7, 11, …
//	Pell        a(n) = 2a(n-1) + a(n-2)         0, 1, 2, 5, 12, 29, …
//	Jacobsthal  a(n) = a(n-1) + 2a(n-2)         0, 1, 1, 3, 5, 11, …
//	Tribonacci  a(n) = a(n-1) + a(n-2) + a(n-3) 0, 0, 1, 1, 2, 4, …
//	Padovan     a(n) = a(n-2) + a(n-3)          1, 1, 1, 2, 2, 3, …
//	Perrin      a(n) = a(n-2) + a(n-3)          3, 0, 2, 3, 2, 5, …
//
// Usage:
//
//	s := presets.Fibonacci[float64]()
//	g := s.IntoIter(tscale.WithSteps(20))
//
//	s, err := presets.ByName[int64]("pell")
//	if errors.Is(err, presets.ErrUnknownPreset) { … }
package presets
