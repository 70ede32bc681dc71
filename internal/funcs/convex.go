package funcs

import (
	"github.com/pep-go/pep/internal/algebra"
)

// Convex is the class of closed convex functions, characterized by the
// subgradient inequality between every ordered pair of samples.
type Convex struct{}

func init() {
	Register("convex", func(map[string]float64) (Class, error) {
		return Convex{}, nil
	})
}

// Name implements Class.
func (Convex) Name() string {
	return "convex"
}

// InterpolationConstraints implements Class.
func (Convex) InterpolationConstraints(points, _ []Triple) []*algebra.Constraint {
	out := make([]*algebra.Constraint, 0, len(points)*(len(points)-1))
	for _, pi := range points {
		for _, pj := range points {
			if pi.ID == pj.ID {
				continue
			}
			out = append(out, pi.F.Sub(pj.F).GreaterEqual(pj.G.Dot(pi.X.Sub(pj.X))))
		}
	}
	return out
}
