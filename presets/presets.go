// SPDX-License-Identifier: MIT
// Package: recursiver/presets
//
// presets.go — canonical recurrences as tscale States.
//
// Contract:
//   - Every constructor returns a fresh State; callers may consume it.
//   - Seeds/weights are stored as int64 and converted to T on build.
//   - ByName is case-insensitive and returns only ErrUnknownPreset.

package presets

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/recursiver/tscale"
	"golang.org/x/exp/constraints"
)

// Real is the scalar set presets can be built for. Complex types are
// excluded because Go cannot convert an int64 variable to them.
type Real interface {
	constraints.Integer | constraints.Float
}

// Canonical preset names accepted by ByName.
const (
	NameFibonacci  = "fibonacci"
	NameLucas      = "lucas"
	NamePell       = "pell"
	NameJacobsthal = "jacobsthal"
	NameTribonacci = "tribonacci"
	NamePadovan    = "padovan"
	NamePerrin     = "perrin"
)

const methodByName = "ByName"

// ErrUnknownPreset indicates ByName was given a name not in Names().
var ErrUnknownPreset = errors.New("presets: unknown recurrence")

// Recurrence describes one preset.
type Recurrence struct {
	Name    string  // canonical lower-case name
	Formula string  // human-readable rule
	Terms   []int64 // seeds, oldest first
	Weights []int64 // weights, newest-term weight first
}

// registry holds every preset by canonical name.
var registry = map[string]Recurrence{
	NameFibonacci:  {NameFibonacci, "a(n) = a(n-1) + a(n-2)", []int64{0, 1}, []int64{1, 1}},
	NameLucas:      {NameLucas, "a(n) = a(n-1) + a(n-2)", []int64{2, 1}, []int64{1, 1}},
	NamePell:       {NamePell, "a(n) = 2a(n-1) + a(n-2)", []int64{0, 1}, []int64{2, 1}},
	NameJacobsthal: {NameJacobsthal, "a(n) = a(n-1) + 2a(n-2)", []int64{0, 1}, []int64{1, 2}},
	NameTribonacci: {NameTribonacci, "a(n) = a(n-1) + a(n-2) + a(n-3)", []int64{0, 0, 1}, []int64{1, 1, 1}},
	NamePadovan:    {NamePadovan, "a(n) = a(n-2) + a(n-3)", []int64{1, 1, 1}, []int64{0, 1, 1}},
	NamePerrin:     {NamePerrin, "a(n) = a(n-2) + a(n-3)", []int64{3, 0, 2}, []int64{0, 1, 1}},
}

// Fibonacci returns the Fibonacci recurrence seeded with 0, 1.
func Fibonacci[T Real]() *tscale.State[T] { return build[T](registry[NameFibonacci]) }

// Lucas returns the Lucas recurrence seeded with 2, 1.
func Lucas[T Real]() *tscale.State[T] { return build[T](registry[NameLucas]) }

// Pell returns the Pell recurrence seeded with 0, 1.
func Pell[T Real]() *tscale.State[T] { return build[T](registry[NamePell]) }

// Jacobsthal returns the Jacobsthal recurrence seeded with 0, 1.
func Jacobsthal[T Real]() *tscale.State[T] { return build[T](registry[NameJacobsthal]) }

// Tribonacci returns the Tribonacci recurrence seeded with 0, 0, 1.
func Tribonacci[T Real]() *tscale.State[T] { return build[T](registry[NameTribonacci]) }

// Padovan returns the Padovan recurrence seeded with 1, 1, 1.
func Padovan[T Real]() *tscale.State[T] { return build[T](registry[NamePadovan]) }

// Perrin returns the Perrin recurrence seeded with 3, 0, 2.
func Perrin[T Real]() *tscale.State[T] { return build[T](registry[NamePerrin]) }

// ByName returns a fresh State for the named preset (case-insensitive).
func ByName[T Real](name string) (*tscale.State[T], error) {
	r, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%s(%q): %w", methodByName, name, ErrUnknownPreset)
	}

	return build[T](r), nil
}

// Lookup returns a copy of the preset description for name.
func Lookup(name string) (Recurrence, bool) {
	r, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Recurrence{}, false
	}
	r.Terms = slices.Clone(r.Terms)
	r.Weights = slices.Clone(r.Weights)

	return r, true
}

// Names returns all preset names in ascending order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// build converts r to T. Registry entries always satisfy the window
// invariants, so MustNewWithConfig cannot fire.
func build[T Real](r Recurrence) *tscale.State[T] {
	terms := make([]T, len(r.Terms))
	weights := make([]T, len(r.Weights))
	for i := range r.Terms {
		terms[i] = T(r.Terms[i])
		weights[i] = T(r.Weights[i])
	}

	return tscale.MustNewWithConfig(terms, weights)
}
