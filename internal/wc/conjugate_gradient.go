package wc

import (
	"github.com/pep-go/pep/internal/algebra"
	"github.com/pep-go/pep/internal/funcs"
	"github.com/pep-go/pep/internal/pep"
	"github.com/pep-go/pep/internal/steps"
)

// ConjugateGradient computes the worst case of the conjugate gradient
// method with exact span searches after n steps on L-QG⁺ convex
// functions:
//
//	x_{t+1} = x_t - Σ_{i≤t} γ_i ∇f(x_i)
//
// with the γ_i minimizing f over the span of all previous subgradients
// and displacements. The tight theoretical bound is L/(2(n+1)).
func ConjugateGradient(l float64, n int, verbose int) (Result, error) {
	problem := pep.New()
	f := problem.DeclareFunction(funcs.ConvexQG{L: l})

	xs := f.StationaryPoint()
	fs := f.Value(xs)

	x0 := problem.SetInitialPoint()
	problem.SetInitialCondition(x0.Sub(xs).NormSq().LessEqualConst(1))

	xNew := x0
	g0, fx := f.Oracle(x0)
	span := []*algebra.Point{g0}
	for i := 0; i < n; i++ {
		xOld := xNew
		var gx *algebra.Point
		xNew, gx, fx = steps.ExactLinesearchStep(xNew, f, span)
		span = append(span, gx, xOld.Sub(xNew))
	}

	problem.SetPerformanceMetric(fx.Sub(fs))

	tau, err := problem.Solve(verbose)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		WorstCase: tau,
		Theory:    l / (2 * float64(n+1)),
	}
	report(verbose, "the conjugate gradient method", r)
	return r, nil
}
