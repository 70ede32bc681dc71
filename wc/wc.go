// Copyright 2026 The pep-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package wc provides the public API for the built-in worst-case
// analyses of first-order methods on L-QG⁺ convex functions.
//
// Example:
//
//	r, err := wc.ConjugateGradient(1, 12, 1)
//	// r.WorstCase ≈ 0.038461, r.Theory = 1/26
package wc

import (
	"github.com/pep-go/pep/internal/wc"
)

// Result pairs the solved worst-case value with the closed-form
// theoretical bound.
type Result = wc.Result

// ConjugateGradient analyzes the conjugate gradient method with exact
// span searches after n steps.
func ConjugateGradient(l float64, n int, verbose int) (Result, error) {
	return wc.ConjugateGradient(l, n, verbose)
}

// GradientDescentDecreasing analyzes gradient descent with decreasing
// step sizes after n steps.
func GradientDescentDecreasing(l float64, n int, verbose int) (Result, error) {
	return wc.GradientDescentDecreasing(l, n, verbose)
}

// HeavyBall analyzes the heavy-ball momentum method after n steps.
func HeavyBall(l float64, n int, verbose int) (Result, error) {
	return wc.HeavyBall(l, n, verbose)
}

// StepSequence returns u_0..u_n of the decreasing-step recurrence used
// by GradientDescentDecreasing.
func StepSequence(n int) []float64 {
	return wc.StepSequence(n)
}
