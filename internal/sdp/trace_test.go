package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFactorGram_Reconstructs(t *testing.T) {
	g := mat.NewSymDense(2, []float64{
		2, 1,
		1, 2,
	})

	v, ok := FactorGram(g, 1e-9)
	require.True(t, ok)

	var got mat.Dense
	got.Mul(v, v.T())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, g.At(i, j), got.At(i, j), 1e-10)
		}
	}
}

func TestFactorGram_ClipsRoundoff(t *testing.T) {
	// Rank-one matrix with a tiny negative eigenvalue perturbation,
	// the shape interior-point Gram solutions come back in.
	g := mat.NewSymDense(2, []float64{
		1, 1,
		1, 1 - 1e-12,
	})

	_, ok := FactorGram(g, 1e-8)
	assert.True(t, ok)
}

func TestFactorGram_RejectsIndefinite(t *testing.T) {
	g := mat.NewSymDense(2, []float64{
		1, 2,
		2, 1,
	})

	_, ok := FactorGram(g, 1e-8)
	assert.False(t, ok)
}
