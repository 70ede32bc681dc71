// Package sdp compiles a performance-estimation problem into a cone
// program and solves it through the cvx cone LP solver.
//
// The unknowns of the program are the entries of the Gram matrix of
// leaf vectors (one variable per entry of the upper triangle), the
// leaf function values, and a hypograph variable t bounding the
// performance measure from below. The worst case is the maximum of t
// subject to t ≤ metric_k for every registered metric, the problem's
// linear constraints, and positive semidefiniteness of the Gram
// matrix.
package sdp

import (
	"fmt"

	"github.com/pep-go/pep/internal/algebra"
)

// Program is a compiled cone program in the standard form
//
//	minimize    c'x
//	subject to  G x + s = h,  s ∈ (nonnegative orthant) × (PSD cone)
//	            A x = b
//
// with x = (gram entries, function values, t).
type Program struct {
	dim     int // order of the Gram matrix
	scalars int // number of leaf value variables

	ineqs   []*algebra.Constraint
	eqs     []*algebra.Constraint
	metrics []*algebra.Expression
}

// Compile splits the constraint set by relation and fixes the variable
// layout. dim and scalars are the basis counts of the problem's Space
// at compile time; metrics must be non-empty.
func Compile(dim, scalars int, metrics []*algebra.Expression, constraints []*algebra.Constraint) (*Program, error) {
	if len(metrics) == 0 {
		return nil, fmt.Errorf("sdp: no performance metric registered")
	}
	p := &Program{dim: dim, scalars: scalars, metrics: metrics}
	for _, c := range constraints {
		switch c.Relation() {
		case algebra.EqualZero:
			p.eqs = append(p.eqs, c)
		default:
			p.ineqs = append(p.ineqs, c)
		}
	}
	return p, nil
}

// Dim returns the order of the PSD block.
func (p *Program) Dim() int {
	return p.dim
}

// NumVars returns the total number of scalar unknowns.
func (p *Program) NumVars() int {
	return p.numGram() + p.scalars + 1
}

// NumInequalities returns the number of linear-cone rows, including
// the hypograph rows t ≤ metric_k.
func (p *Program) NumInequalities() int {
	return len(p.metrics) + len(p.ineqs)
}

// NumEqualities returns the number of equality rows.
func (p *Program) NumEqualities() int {
	return len(p.eqs)
}

func (p *Program) numGram() int {
	return p.dim * (p.dim + 1) / 2
}

// gramIndex maps the upper-triangle entry (i, j), i ≤ j, to its
// variable column.
func (p *Program) gramIndex(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return i*p.dim - i*(i-1)/2 + (j - i)
}

func (p *Program) valueIndex(id int) int {
	return p.numGram() + id
}

func (p *Program) tIndex() int {
	return p.numGram() + p.scalars
}

// row writes the linear part of expr into a dense coefficient row and
// returns the right-hand side that moves the constant term across the
// comparison (expr ≤ 0 becomes lin·x ≤ -offset).
func (p *Program) row(expr *algebra.Expression) ([]float64, float64) {
	coeffs := make([]float64, p.NumVars())
	expr.Gram(func(k algebra.GramKey, c float64) {
		coeffs[p.gramIndex(k.I, k.J)] += c
	})
	expr.Values(func(id int, c float64) {
		coeffs[p.valueIndex(id)] += c
	})
	return coeffs, -expr.Offset()
}

// hypographRow builds the row for t ≤ metric.
func (p *Program) hypographRow(metric *algebra.Expression) ([]float64, float64) {
	coeffs, rhs := p.row(metric.Scale(-1))
	coeffs[p.tIndex()] = 1
	return coeffs, rhs
}
