package funcs

import (
	"fmt"

	"github.com/pep-go/pep/internal/algebra"
)

// ConvexQG is the class of convex functions with a quadratic-growth
// upper bound: convex f with f(x) - f⋆ ≤ (L/2)‖x - x⋆‖² relative to
// the minimizer x⋆.
//
// Interpolation of a sample set {(x_k, g_k, f_k)} by such a function
// is characterized by two families of inequalities (Goujaud, Taylor,
// Dieuleveut, 2022, Theorem 2.6):
//
//	f⋆ - f_j ≥ ⟨g_j, x⋆ - x_j⟩ + ‖g_j‖²/(2L)   for the minimizer against every other sample
//	f_i - f_j ≥ ⟨g_j, x_i - x_j⟩               for every ordered pair of samples
type ConvexQG struct {
	// L is the quadratic upper bound parameter.
	L float64
}

func init() {
	Register("convex-qg", func(params map[string]float64) (Class, error) {
		l, ok := params["L"]
		if !ok {
			return nil, fmt.Errorf("funcs: convex-qg requires parameter L")
		}
		return ConvexQG{L: l}, nil
	})
}

// Name implements Class.
func (ConvexQG) Name() string {
	return "convex-qg"
}

// InterpolationConstraints implements Class.
//
// Both loops run over ordered pairs: the subgradient inequality is
// directional, so (i, j) and (j, i) are independent cuts. The plain
// convexity family deliberately restates the weaker form of the
// one-sided family for stationary pairs; the redundant constraints
// are harmless to the solver.
func (c ConvexQG) InterpolationConstraints(points, stationary []Triple) []*algebra.Constraint {
	out := make([]*algebra.Constraint, 0, len(stationary)*(len(points)-1)+len(points)*(len(points)-1))

	for _, pi := range stationary {
		for _, pj := range points {
			if pi.ID == pj.ID {
				continue
			}
			// f_i - f_j ≥ ⟨g_j, x_i - x_j⟩ + ‖g_j‖²/(2L)
			rhs := pj.G.Dot(pi.X.Sub(pj.X)).Add(pj.G.NormSq().Scale(1 / (2 * c.L)))
			out = append(out, pi.F.Sub(pj.F).GreaterEqual(rhs))
		}
	}

	for _, pi := range points {
		for _, pj := range points {
			if pi.ID == pj.ID {
				continue
			}
			// f_i - f_j ≥ ⟨g_j, x_i - x_j⟩
			out = append(out, pi.F.Sub(pj.F).GreaterEqual(pj.G.Dot(pi.X.Sub(pj.X))))
		}
	}

	return out
}
