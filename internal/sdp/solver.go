package sdp

import (
	"fmt"

	"github.com/hrautila/cvx"
	"github.com/hrautila/cvx/sets"
	"github.com/hrautila/matrix"
	"gonum.org/v1/gonum/mat"
)

// Options configures the numerical solve.
type Options struct {
	// ShowProgress turns on the solver's own iteration log.
	ShowProgress bool
	// MaxIter caps interior-point iterations; 0 keeps the solver default.
	MaxIter int
}

// Solution is the optimal point of a solved Program.
type Solution struct {
	// Tau is the worst-case value: the optimum of the hypograph
	// variable t.
	Tau float64
	// Gram is the optimal Gram matrix of leaf vectors.
	Gram *mat.SymDense
	// Values holds the optimal leaf function values, indexed by leaf
	// scalar id.
	Values []float64
}

// Solve assembles the cone program and hands it to cvx.ConeLp.
//
// Layout: the linear cone carries one row per hypograph bound and one
// per inequality constraint; equalities go into (A, b); one PSD block
// of order Dim() ties the Gram variables to the cone through
// s_(r,c) = x_{g(r,c)}.
func (p *Program) Solve(opts Options) (*Solution, error) {
	nvars := p.NumVars()
	nl := p.NumInequalities()
	nsd := p.dim * p.dim

	G := matrix.FloatZeros(nl+nsd, nvars)
	h := matrix.FloatZeros(nl+nsd, 1)

	setRow := func(r int, coeffs []float64, rhs float64) {
		for col, c := range coeffs {
			if c != 0 {
				G.SetAt(r, col, c)
			}
		}
		h.SetAt(r, 0, rhs)
	}

	r := 0
	for _, metric := range p.metrics {
		coeffs, rhs := p.hypographRow(metric)
		setRow(r, coeffs, rhs)
		r++
	}
	for _, c := range p.ineqs {
		coeffs, rhs := p.row(c.Expr())
		setRow(r, coeffs, rhs)
		r++
	}

	// PSD block: s = -Gx must reproduce the Gram matrix, column-major.
	for col := 0; col < p.dim; col++ {
		for row := 0; row < p.dim; row++ {
			G.SetAt(nl+col*p.dim+row, p.gramIndex(row, col), -1)
		}
	}

	var A, b *matrix.FloatMatrix
	if len(p.eqs) > 0 {
		A = matrix.FloatZeros(len(p.eqs), nvars)
		b = matrix.FloatZeros(len(p.eqs), 1)
		for i, c := range p.eqs {
			coeffs, rhs := p.row(c.Expr())
			for col, v := range coeffs {
				if v != 0 {
					A.SetAt(i, col, v)
				}
			}
			b.SetAt(i, 0, rhs)
		}
	}

	// Maximize t.
	c := matrix.FloatZeros(nvars, 1)
	c.SetAt(p.tIndex(), 0, -1)

	dims := sets.DSetNew("l", "q", "s")
	dims.Set("l", []int{nl})
	dims.Set("s", []int{p.dim})

	var solopts cvx.SolverOptions
	solopts.ShowProgress = opts.ShowProgress
	if opts.MaxIter > 0 {
		solopts.MaxIter = opts.MaxIter
	}

	sol, err := cvx.ConeLp(c, G, h, A, b, dims, &solopts, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("sdp: cone LP solve failed: %w", err)
	}
	if sol == nil {
		return nil, fmt.Errorf("sdp: solver returned no solution")
	}
	if sol.Status != cvx.Optimal {
		return nil, fmt.Errorf("sdp: solver did not reach an optimal point (status %v)", sol.Status)
	}

	return p.extract(sol), nil
}

func (p *Program) extract(sol *cvx.Solution) *Solution {
	x := sol.Result.At("x")[0].FloatArray()

	gram := mat.NewSymDense(p.dim, nil)
	for i := 0; i < p.dim; i++ {
		for j := i; j < p.dim; j++ {
			gram.SetSym(i, j, x[p.gramIndex(i, j)])
		}
	}

	values := make([]float64, p.scalars)
	for id := range values {
		values[id] = x[p.valueIndex(id)]
	}

	return &Solution{
		Tau:    x[p.tIndex()],
		Gram:   gram,
		Values: values,
	}
}
