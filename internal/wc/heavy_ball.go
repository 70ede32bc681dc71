package wc

import (
	"github.com/pep-go/pep/internal/funcs"
	"github.com/pep-go/pep/internal/pep"
)

// HeavyBall computes the worst case of the heavy-ball (Polyak
// momentum) method after n steps on L-QG⁺ convex functions:
//
//	x_{t+1} = x_t - α_t ∇f(x_t) + β_t (x_t - x_{t-1})
//
// with α_t = 1/(L(t+2)) and β_t = t/(t+2). The tight theoretical
// bound is L/(2(n+1)).
func HeavyBall(l float64, n int, verbose int) (Result, error) {
	problem := pep.New()
	f := problem.DeclareFunction(funcs.ConvexQG{L: l})

	xs := f.StationaryPoint()
	fs := f.Value(xs)

	x0 := problem.SetInitialPoint()
	f.Value(x0)
	problem.SetInitialCondition(x0.Sub(xs).NormSq().LessEqualConst(1))

	xNew, xOld := x0, x0
	for t := 0; t < n; t++ {
		alpha := 1 / (l * float64(t+2))
		beta := float64(t) / float64(t+2)
		xNext := xNew.Sub(f.Gradient(xNew).Scale(alpha)).Add(xNew.Sub(xOld).Scale(beta))
		xOld, xNew = xNew, xNext
	}

	problem.SetPerformanceMetric(f.Value(xNew).Sub(fs))

	tau, err := problem.Solve(verbose)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		WorstCase: tau,
		Theory:    l / (2 * float64(n+1)),
	}
	report(verbose, "the heavy-ball method", r)
	return r, nil
}
