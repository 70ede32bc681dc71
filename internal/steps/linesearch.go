// Package steps implements primitive algorithm steps used by the
// worst-case analyses: operations that cannot be written as plain
// point arithmetic and instead introduce new points constrained by
// their optimality conditions.
package steps

import (
	"github.com/pep-go/pep/internal/algebra"
	"github.com/pep-go/pep/internal/funcs"
)

// ExactLinesearchStep models an exact minimization of f over the
// affine span x0 + span(directions).
//
// The search itself is relaxed to its first-order optimality
// conditions: the new iterate x satisfies ⟨g(x), x - x0⟩ = 0 and
// ⟨g(x), d⟩ = 0 for every search direction d. These equalities are
// registered as constraints on f; the relaxation is standard for
// span-search methods in performance estimation.
//
// Returns the new iterate, its subgradient and its function value.
func ExactLinesearchStep(x0 *algebra.Point, f *funcs.Function, directions []*algebra.Point) (*algebra.Point, *algebra.Point, *algebra.Expression) {
	x := f.Space().Leaf()
	g, fx := f.Oracle(x)

	f.AddConstraint(g.Dot(x.Sub(x0)).EqualToConst(0))
	for _, d := range directions {
		f.AddConstraint(g.Dot(d).EqualToConst(0))
	}

	return x, g, fx
}
