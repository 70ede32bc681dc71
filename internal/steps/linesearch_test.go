package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pep-go/pep/internal/algebra"
	"github.com/pep-go/pep/internal/funcs"
)

func TestExactLinesearchStep(t *testing.T) {
	space := algebra.NewSpace()
	f := funcs.NewFunction(space, funcs.ConvexQG{L: 1})

	x0 := space.Leaf()
	g0, _ := f.Oracle(x0)
	span := []*algebra.Point{g0}

	x, g, fx := ExactLinesearchStep(x0, f, span)

	// The step creates a fresh iterate and evaluates the oracle there.
	require.Len(t, f.Points(), 2)
	assert.False(t, x.Equal(x0))
	assert.True(t, f.Points()[1].G.Equal(g))
	assert.True(t, f.Points()[1].F.Equal(fx))

	// One orthogonality constraint against the displacement plus one
	// per direction, all equalities.
	cs := f.Constraints()
	require.Len(t, cs, 1+len(span))
	for _, c := range cs {
		assert.Equal(t, algebra.EqualZero, c.Relation())
	}

	// ⟨g, x - x0⟩ = 0 is the first registered constraint.
	assert.True(t, cs[0].Expr().Equal(g.Dot(x.Sub(x0))))
	// ⟨g, g0⟩ = 0 follows.
	assert.True(t, cs[1].Expr().Equal(g.Dot(g0)))
}

func TestExactLinesearchStep_GrowingSpan(t *testing.T) {
	space := algebra.NewSpace()
	f := funcs.NewFunction(space, funcs.ConvexQG{L: 1})

	x0 := space.Leaf()
	g0, _ := f.Oracle(x0)
	span := []*algebra.Point{g0}

	// Two chained steps, span growing by [g, x_old - x_new] each time,
	// as the conjugate-gradient unroller does.
	xNew := x0
	total := 0
	for i := 0; i < 2; i++ {
		xOld := xNew
		var g *algebra.Point
		xNew, g, _ = ExactLinesearchStep(xNew, f, span)
		span = append(span, g, xOld.Sub(xNew))
		total += 1 + (1 + 2*i)
	}

	assert.Len(t, f.Constraints(), total)
	assert.Len(t, span, 5)
}
