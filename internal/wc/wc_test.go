package wc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestStepSequence(t *testing.T) {
	u := StepSequence(20)

	require.Len(t, u, 21)
	assert.Equal(t, 1.0, u[0])
	// u_1 = 1/2 + sqrt(1/4 + 2) = 2 exactly.
	assert.True(t, scalar.EqualWithinAbs(u[1], 2, 1e-12))

	// Monotonic growth.
	for i := 1; i < len(u); i++ {
		assert.Greater(t, u[i], u[i-1], "u must grow at t=%d", i)
	}

	// u_t ~ 2*sqrt(t) for large t.
	assert.InEpsilon(t, 2*math.Sqrt(20), u[20], 0.15)
}

func TestConjugateGradient_MatchesTheory(t *testing.T) {
	const (
		l = 1.0
		n = 12
	)

	r, err := ConjugateGradient(l, n, -1)
	require.NoError(t, err)

	assert.InDelta(t, l/(2*float64(n+1)), r.Theory, 1e-12)
	assert.InEpsilon(t, r.Theory, r.WorstCase, 2e-3)
}

func TestHeavyBall_MatchesTheory(t *testing.T) {
	const (
		l = 1.0
		n = 5
	)

	r, err := HeavyBall(l, n, -1)
	require.NoError(t, err)

	assert.InDelta(t, l/(2*float64(n+1)), r.Theory, 1e-12)
	assert.InEpsilon(t, r.Theory, r.WorstCase, 1e-3)
}

func TestGradientDescentDecreasing_MatchesConjecture(t *testing.T) {
	const (
		l = 1.0
		n = 6
	)

	r, err := GradientDescentDecreasing(l, n, -1)
	require.NoError(t, err)

	u := StepSequence(n)
	assert.InDelta(t, l/(2*u[n]), r.Theory, 1e-12)
	assert.InEpsilon(t, r.Theory, r.WorstCase, 1e-3)
}

func TestGradientDescentDecreasing_ZeroSteps(t *testing.T) {
	// With no iterations the guarantee degenerates to the class bound
	// f(x0) - f⋆ ≤ (L/2)‖x0 - x⋆‖².
	r, err := GradientDescentDecreasing(1, 0, -1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.Theory, 1e-12)
	assert.InEpsilon(t, 0.5, r.WorstCase, 1e-3)
}
