// SPDX-License-Identifier: MIT
// Package: recursiver/tscale
//
// config.go — resolved generator configuration and its defaults.
//
// Deterministic defaults:
//   • steps = DefaultSteps (10000)

package tscale

// generatorConfig aggregates all generator knobs.
// Passed by value; callers never see it.
type generatorConfig struct {
	steps int // remaining-step budget, >= 0
}

// newGeneratorConfig starts from defaults and applies opts in order
// (last wins). Nil options are skipped.
// Complexity: O(len(opts)) time, O(1) space.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		steps: DefaultSteps,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
