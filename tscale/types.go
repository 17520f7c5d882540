// SPDX-License-Identifier: MIT
// Package: recursiver/tscale
//
// types.go — scalar constraint and shared constants.

package tscale

import "golang.org/x/exp/constraints"

// Number is the set of scalar types a recurrence can run over.
// Every member supports +, *, / and has the zero value as additive identity
// and T(1) as multiplicative identity.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// DefaultSteps is the step budget of a generator when WithSteps is not given.
const DefaultSteps = 10000

// MinWindow is the smallest valid window length C.
const MinWindow = 1

// Method names used to prefix wrapped errors and panic messages.
const (
	methodDefault       = "Default"
	methodNewWithConfig = "NewWithConfig"
	methodNewGenerator  = "NewGenerator"
	methodIter          = "Iter"
	methodIntoIter      = "IntoIter"
	methodClone         = "Clone"
	methodRateWithData  = "RateWithData"
	methodWithSteps     = "WithSteps"
)

// one returns the multiplicative identity of T.
func one[T Number]() T {
	return T(1)
}
