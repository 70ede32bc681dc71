package wc

import (
	"math"

	"github.com/pep-go/pep/internal/funcs"
	"github.com/pep-go/pep/internal/pep"
)

// StepSequence returns u_0..u_n of the decreasing-step recurrence
//
//	u_0 = 1,  u_t = u_{t-1}/2 + sqrt((u_{t-1}/2)² + 2)
//
// which drives the step sizes γ_t = 1/(L·u_{t+1}). The sequence grows
// monotonically, u_t ~ 2√t.
func StepSequence(n int) []float64 {
	u := make([]float64, n+1)
	u[0] = 1
	for t := 1; t <= n; t++ {
		half := u[t-1] / 2
		u[t] = half + math.Sqrt(half*half+2)
	}
	return u
}

// GradientDescentDecreasing computes the worst case of gradient
// descent with decreasing step sizes after n steps on L-QG⁺ convex
// functions:
//
//	x_{t+1} = x_t - γ_t ∇f(x_t),  γ_t = 1/(L·u_{t+1})
//
// The conjectured tight bound is L/(2·u_n).
func GradientDescentDecreasing(l float64, n int, verbose int) (Result, error) {
	problem := pep.New()
	f := problem.DeclareFunction(funcs.ConvexQG{L: l})

	xs := f.StationaryPoint()
	fs := f.Value(xs)

	x := problem.SetInitialPoint()
	problem.SetInitialCondition(x.Sub(xs).NormSq().LessEqualConst(1))

	g, fx := f.Oracle(x)
	u := 1.0
	for t := 0; t < n; t++ {
		half := u / 2
		u = half + math.Sqrt(half*half+2)
		gamma := 1 / (l * u)
		x = x.Sub(g.Scale(gamma))
		g, fx = f.Oracle(x)
	}

	problem.SetPerformanceMetric(fx.Sub(fs))

	tau, err := problem.Solve(verbose)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		WorstCase: tau,
		Theory:    l / (2 * u),
	}
	report(verbose, "gradient descent with decreasing step sizes", r)
	return r, nil
}
