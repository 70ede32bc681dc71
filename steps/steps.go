// Copyright 2026 The pep-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package steps provides the public API for primitive algorithm steps.
package steps

import (
	"github.com/pep-go/pep/internal/algebra"
	"github.com/pep-go/pep/internal/funcs"
	"github.com/pep-go/pep/internal/steps"
)

// ExactLinesearchStep models an exact minimization of f over the
// affine span x0 + span(directions), relaxed to its first-order
// optimality conditions. Returns the new iterate, its subgradient and
// its function value.
func ExactLinesearchStep(x0 *algebra.Point, f *funcs.Function, directions []*algebra.Point) (*algebra.Point, *algebra.Point, *algebra.Expression) {
	return steps.ExactLinesearchStep(x0, f, directions)
}
