package funcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pep-go/pep/internal/algebra"
)

func TestFunction_OracleAppendsTriples(t *testing.T) {
	space := algebra.NewSpace()
	f := NewFunction(space, ConvexQG{L: 1})

	x := space.Leaf()
	g1, f1 := f.Oracle(x)
	require.Len(t, f.Points(), 1)

	// A second query at the same point creates a fresh subgradient but
	// keeps the function value unique.
	g2, f2 := f.Oracle(x)
	require.Len(t, f.Points(), 2)
	assert.False(t, g1.Equal(g2))
	assert.True(t, f1.Equal(f2))

	// Triple IDs are append indices.
	assert.Equal(t, 0, f.Points()[0].ID)
	assert.Equal(t, 1, f.Points()[1].ID)
}

func TestFunction_ReuseGradient(t *testing.T) {
	space := algebra.NewSpace()
	f := NewFunction(space, ConvexQG{L: 1}, WithReuseGradient())

	x := space.Leaf()
	g1, f1 := f.Oracle(x)
	g2, f2 := f.Oracle(x)

	assert.True(t, g1.Equal(g2))
	assert.True(t, f1.Equal(f2))
	assert.Len(t, f.Points(), 1, "repeated query must not grow the log")
}

func TestFunction_ValueAndGradient(t *testing.T) {
	space := algebra.NewSpace()
	f := NewFunction(space, ConvexQG{L: 1})

	x := space.Leaf()
	fx := f.Value(x)
	require.Len(t, f.Points(), 1)

	// Value at a known point reuses the stored sample.
	assert.True(t, fx.Equal(f.Value(x)))
	assert.Len(t, f.Points(), 1)

	// Gradient is an oracle call: it appends.
	g := f.Gradient(x)
	assert.False(t, g.IsZero())
	assert.Len(t, f.Points(), 2)
}

func TestFunction_StationaryPoint(t *testing.T) {
	space := algebra.NewSpace()
	f := NewFunction(space, ConvexQG{L: 1})

	xs := f.StationaryPoint()
	require.Len(t, f.StationaryPoints(), 1)
	require.Len(t, f.Points(), 1)

	star := f.StationaryPoints()[0]
	assert.True(t, star.X.Equal(xs))
	assert.True(t, star.G.IsZero(), "minimizer subgradient must be the zero vector")

	// Value at the minimizer reuses f⋆ instead of re-evaluating.
	fs := f.Value(xs)
	assert.True(t, fs.Equal(star.F))
	assert.Len(t, f.Points(), 1)
}

func TestFunction_AddConstraint(t *testing.T) {
	space := algebra.NewSpace()
	f := NewFunction(space, ConvexQG{L: 1})

	x := space.Leaf()
	g, _ := f.Oracle(x)
	f.AddConstraint(g.Dot(x).EqualToConst(0))

	require.Len(t, f.Constraints(), 1)
	assert.Equal(t, algebra.EqualZero, f.Constraints()[0].Relation())
}
