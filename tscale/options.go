// SPDX-License-Identifier: MIT
// Package: recursiver/tscale
//
// options.go — functional options for generators.
//
// Contract:
//   • Options are functional (type Option func(*generatorConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     stepping itself never panics.
//   • No hidden globals: the step budget flows through generatorConfig.

package tscale

// Option customizes a generator before its first step.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// WithSteps sets the step budget: the generator yields at most n values.
// n == 0 produces an already exhausted generator.
// Panics if n < 0.
// Complexity: O(1) time, O(1) space.
func WithSteps(n int) Option {
	if n < 0 {
		tscalePanic(methodWithSteps, ErrNegativeCount)
	}
	return func(c *generatorConfig) {
		c.steps = n
	}
}
