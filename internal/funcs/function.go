// Package funcs implements function classes for performance-estimation
// problems: the oracle bookkeeping shared by all classes and the
// per-class interpolation-constraint generators.
package funcs

import (
	"github.com/pep-go/pep/internal/algebra"
)

// Triple is one recorded oracle sample: a location, the subgradient
// returned there, and the function value. ID is the append index in
// the owning function's log and is the triple's identity for pairwise
// constraint generation.
type Triple struct {
	X  *algebra.Point
	G  *algebra.Point
	F  *algebra.Expression
	ID int
}

// Function owns the append-only log of oracle samples for one declared
// function, the sub-list of stationary samples, and any extra
// constraints registered against it (e.g. by primitive steps).
//
// The log grows only during algorithm unrolling; interpolation
// constraints are generated from a snapshot of the finished log.
type Function struct {
	space         *algebra.Space
	class         Class
	reuseGradient bool

	points      []Triple
	stationary  []Triple
	constraints []*algebra.Constraint
}

// Option configures a Function at declaration time.
type Option func(*Function)

// WithReuseGradient makes repeated oracle queries at an
// already-evaluated point return the stored subgradient instead of
// creating a new one.
func WithReuseGradient() Option {
	return func(f *Function) { f.reuseGradient = true }
}

// NewFunction declares a function of the given class over the given
// basis space. Callers normally go through Problem.DeclareFunction.
func NewFunction(space *algebra.Space, class Class, opts ...Option) *Function {
	f := &Function{space: space, class: class}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Space returns the basis space the function allocates leaves from.
func (f *Function) Space() *algebra.Space {
	return f.space
}

// Class returns the function class declared for f.
func (f *Function) Class() Class {
	return f.class
}

func (f *Function) lookup(x *algebra.Point) (Triple, bool) {
	for _, t := range f.points {
		if t.X.Equal(x) {
			return t, true
		}
	}
	return Triple{}, false
}

func (f *Function) append(x, g *algebra.Point, fx *algebra.Expression) Triple {
	t := Triple{X: x, G: g, F: fx, ID: len(f.points)}
	f.points = append(f.points, t)
	return t
}

// Oracle evaluates f at x, returning a subgradient and the function
// value. Every call appends a sample to the log, except that with
// WithReuseGradient a repeated query at a known point returns the
// stored sample. Without gradient reuse a fresh subgradient leaf is
// created per call; the function value at a given point stays unique.
func (f *Function) Oracle(x *algebra.Point) (*algebra.Point, *algebra.Expression) {
	prev, ok := f.lookup(x)
	if ok && f.reuseGradient {
		return prev.G, prev.F
	}

	g := f.space.Leaf()
	var fx *algebra.Expression
	if ok {
		fx = prev.F
	} else {
		fx = f.space.Scalar()
	}
	t := f.append(x, g, fx)
	return t.G, t.F
}

// Gradient returns a subgradient of f at x, with Oracle semantics.
func (f *Function) Gradient(x *algebra.Point) *algebra.Point {
	g, _ := f.Oracle(x)
	return g
}

// Value returns the function value of f at x. If x was already
// evaluated the stored value is returned without growing the log.
func (f *Function) Value(x *algebra.Point) *algebra.Expression {
	if prev, ok := f.lookup(x); ok {
		return prev.F
	}
	_, fx := f.Oracle(x)
	return fx
}

// StationaryPoint materializes the minimizer of f: a fresh leaf point
// with zero subgradient and a fresh value leaf f⋆. The sample is
// appended to both the log and the stationary sub-list.
func (f *Function) StationaryPoint() *algebra.Point {
	x := f.space.Leaf()
	t := f.append(x, algebra.ZeroPoint(), f.space.Scalar())
	f.stationary = append(f.stationary, t)
	return x
}

// AddConstraint registers an extra constraint against f, to be handed
// to the problem harness alongside the interpolation constraints.
func (f *Function) AddConstraint(c *algebra.Constraint) {
	f.constraints = append(f.constraints, c)
}

// Points returns the recorded sample log. The slice is the function's
// own backing store; callers must treat it as a read-only snapshot.
func (f *Function) Points() []Triple {
	return f.points
}

// StationaryPoints returns the recorded stationary samples.
func (f *Function) StationaryPoints() []Triple {
	return f.stationary
}

// Constraints returns the constraints registered with AddConstraint.
func (f *Function) Constraints() []*algebra.Constraint {
	return f.constraints
}

// InterpolationConstraints invokes the class generator on the current
// log snapshot. The generator is pure: calling it twice on an
// unchanged log yields identical constraint sets.
func (f *Function) InterpolationConstraints() []*algebra.Constraint {
	return f.class.InterpolationConstraints(f.points, f.stationary)
}
