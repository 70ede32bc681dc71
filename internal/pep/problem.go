// Package pep implements the performance-estimation problem harness:
// it collects declared functions, initial conditions and performance
// metrics, compiles the interpolation constraints into a semidefinite
// program and returns the tight worst-case value.
package pep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/pep-go/pep/internal/algebra"
	"github.com/pep-go/pep/internal/funcs"
	"github.com/pep-go/pep/internal/sdp"
)

// Verbosity levels accepted by Solve.
//
//	-1  silent
//	 0  caller-level output only
//	 1  adds harness setup and status lines
//	 2  adds solver iteration progress
const (
	Silent = -1
	Quiet  = 0
	Info   = 1
	Debug  = 2
)

// Problem is one performance-estimation instance. It owns the leaf
// basis, the declared functions and the problem-level constraints.
//
// Usage follows a strict phase order: declare and unroll first (every
// oracle call appends to the function logs), then Solve. Constraint
// generation reads the finished logs exactly once, inside Solve.
type Problem struct {
	space     *algebra.Space
	functions []*funcs.Function
	initConds []*algebra.Constraint
	metrics   []*algebra.Expression

	solution *sdp.Solution
}

// New returns an empty problem.
func New() *Problem {
	return &Problem{space: algebra.NewSpace()}
}

// DeclareFunction declares a function of the given class and attaches
// it to the problem.
func (p *Problem) DeclareFunction(class funcs.Class, opts ...funcs.Option) *funcs.Function {
	f := funcs.NewFunction(p.space, class, opts...)
	p.functions = append(p.functions, f)
	return f
}

// SetInitialPoint returns the starting point of the algorithm under
// analysis, as a fresh leaf.
func (p *Problem) SetInitialPoint() *algebra.Point {
	return p.space.Leaf()
}

// SetInitialCondition registers a constraint on the initial point,
// typically ‖x0 - x⋆‖² ≤ 1.
func (p *Problem) SetInitialCondition(c *algebra.Constraint) {
	p.initConds = append(p.initConds, c)
}

// SetPerformanceMetric registers one element of the performance
// measure. The measure is the minimum over all registered elements.
func (p *Problem) SetPerformanceMetric(e *algebra.Expression) {
	p.metrics = append(p.metrics, e)
}

// Solve generates the interpolation constraints from the final log
// snapshots, compiles the semidefinite program and solves it,
// returning the worst-case value.
func (p *Problem) Solve(verbose int) (float64, error) {
	d := p.space.Dim()
	if verbose >= Info {
		fmt.Printf("(pep) setting up the problem: size of the main PSD matrix: %dx%d\n", d, d)
		fmt.Printf("(pep) setting up the problem: performance measure is the minimum of %d element(s)\n", len(p.metrics))
		fmt.Printf("(pep) setting up the problem: initial conditions (%d constraint(s) added)\n", len(p.initConds))
		fmt.Printf("(pep) setting up the problem: interpolation conditions for %d function(s)\n", len(p.functions))
	}

	var constraints []*algebra.Constraint
	constraints = append(constraints, p.initConds...)
	for i, f := range p.functions {
		interp := f.InterpolationConstraints()
		if verbose >= Info {
			fmt.Printf("\t\t function %d : %d constraint(s) added\n", i+1, len(interp))
		}
		constraints = append(constraints, interp...)
		constraints = append(constraints, f.Constraints()...)
	}

	prog, err := sdp.Compile(d, p.space.Scalars(), p.metrics, constraints)
	if err != nil {
		return 0, fmt.Errorf("pep: %w", err)
	}

	if verbose >= Info {
		fmt.Println("(pep) compiling cone program")
		fmt.Println("(pep) calling SDP solver")
	}
	sol, err := prog.Solve(sdp.Options{ShowProgress: verbose >= Debug})
	if err != nil {
		return 0, fmt.Errorf("pep: %w", err)
	}
	p.solution = sol

	if verbose >= Info {
		fmt.Printf("(pep) solver status: optimal; optimal value: %v\n", sol.Tau)
	}
	return sol.Tau, nil
}

// Solution returns the solver output of the last successful Solve, or
// nil before one.
func (p *Problem) Solution() *sdp.Solution {
	return p.solution
}

// WorstCasePoints factors the solved Gram matrix into concrete leaf
// coordinates (rows of the returned matrix), materializing a
// worst-case instance. Requires a prior successful Solve.
func (p *Problem) WorstCasePoints(tol float64) (*mat.Dense, error) {
	if p.solution == nil {
		return nil, fmt.Errorf("pep: no solution available; call Solve first")
	}
	v, ok := sdp.FactorGram(p.solution.Gram, tol)
	if !ok {
		return nil, fmt.Errorf("pep: solved Gram matrix is not positive semidefinite within tolerance %g", tol)
	}
	return v, nil
}
