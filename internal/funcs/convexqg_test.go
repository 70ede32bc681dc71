package funcs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pep-go/pep/internal/algebra"
)

// sampleFunction declares a ConvexQG function, records its minimizer
// and k additional oracle samples at fresh points, and returns it.
func sampleFunction(t *testing.T, l float64, k int) *Function {
	t.Helper()
	space := algebra.NewSpace()
	f := NewFunction(space, ConvexQG{L: l})
	f.StationaryPoint()
	for i := 0; i < k; i++ {
		f.Oracle(space.Leaf())
	}
	return f
}

func TestConvexQG_ConstraintCount(t *testing.T) {
	tests := []struct {
		k int // non-stationary samples
	}{
		{k: 1},
		{k: 2},
		{k: 5},
		{k: 13},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("k=%d", tt.k), func(t *testing.T) {
			f := sampleFunction(t, 1, tt.k)
			cs := f.InterpolationConstraints()

			p := tt.k + 1 // samples including the minimizer
			want := 1*(p-1) + p*(p-1)
			assert.Len(t, cs, want)
		})
	}
}

func TestConvexQG_OrderedPairsAreDistinct(t *testing.T) {
	// Two samples, no stationary point: rule 2 must emit two distinct
	// directional constraints, not one.
	space := algebra.NewSpace()
	f := NewFunction(space, ConvexQG{L: 1})
	f.Oracle(space.Leaf())
	f.Oracle(space.Leaf())

	cs := f.InterpolationConstraints()
	require.Len(t, cs, 2)
	assert.False(t, cs[0].Equal(cs[1]))
}

func TestConvexQG_OneSidedOnlyFromMinimizer(t *testing.T) {
	const l = 2.0
	f := sampleFunction(t, l, 3)
	cs := f.InterpolationConstraints()

	points := f.Points()
	star := f.StationaryPoints()[0]

	// The first |P|-1 constraints are the one-sided family. Each must
	// have the minimizer value on the left (coefficient -1 after
	// normalization to ≤ 0) and carry the quadratic correction of the
	// right-hand sample's subgradient, scaled by 1/(2L).
	oneSided := cs[:len(points)-1]
	require.Len(t, oneSided, 3)
	for idx, c := range oneSided {
		pj := points[idx+1] // samples after the minimizer, in order
		expr := c.Expr()

		assert.InDelta(t, -1, exprValueCoeff(expr, star.F), 1e-12,
			"minimizer value must be the left operand")
		assert.InDelta(t, 1, exprValueCoeff(expr, pj.F), 1e-12)

		// ‖g_j‖²/(2L) appears on the diagonal of g_j's leaf.
		gSq := pj.G.NormSq()
		var diag float64
		gSq.Gram(func(k algebra.GramKey, _ float64) {
			diag = expr.GramCoeff(k.I, k.J)
		})
		assert.InDelta(t, 1/(2*l), diag, 1e-12)
	}

	// The minimizer never appears as the right operand of a quadratic
	// correction: its subgradient is the zero vector, so ‖g⋆‖² has no
	// Gram terms at all.
	assert.True(t, star.G.NormSq().Equal(algebra.Const(0)))
}

func TestConvexQG_Idempotent(t *testing.T) {
	f := sampleFunction(t, 1, 4)

	first := f.InterpolationConstraints()
	second := f.InterpolationConstraints()

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "constraint %d differs between runs", i)
	}
}

func TestConvex_RuleTwoOnly(t *testing.T) {
	space := algebra.NewSpace()
	f := NewFunction(space, Convex{})
	f.StationaryPoint()
	f.Oracle(space.Leaf())
	f.Oracle(space.Leaf())

	// Plain convexity: ordered pairs only, no one-sided family.
	cs := f.InterpolationConstraints()
	assert.Len(t, cs, 3*2)
}

func TestRegistry(t *testing.T) {
	c, err := New("convex-qg", map[string]float64{"L": 3})
	require.NoError(t, err)
	qg, ok := c.(ConvexQG)
	require.True(t, ok)
	assert.Equal(t, 3.0, qg.L)

	_, err = New("convex-qg", nil)
	assert.Error(t, err, "missing L must be rejected")

	_, err = New("no-such-class", nil)
	assert.Error(t, err)

	assert.Contains(t, Classes(), "convex")
	assert.Contains(t, Classes(), "convex-qg")
}

// exprValueCoeff reads the coefficient a value expression's single
// leaf variable has inside expr.
func exprValueCoeff(expr, value *algebra.Expression) float64 {
	var coeff float64
	value.Values(func(id int, _ float64) {
		coeff = expr.ValueCoeff(id)
	})
	return coeff
}
