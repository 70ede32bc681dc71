package sdp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FactorGram factors a solved Gram matrix as G = V·Vᵀ and returns V,
// whose rows are concrete coordinates for the leaf vectors of the
// worst-case instance. Interior-point solutions carry small negative
// eigenvalues; anything above -tol is clipped to zero, anything below
// reports failure through the second return value.
func FactorGram(g *mat.SymDense, tol float64) (*mat.Dense, bool) {
	var eig mat.EigenSym
	if !eig.Factorize(g, true) {
		return nil, false
	}

	n := g.SymmetricDim()
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	v := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		lambda := vals[j]
		if lambda < -tol {
			return nil, false
		}
		if lambda < 0 {
			lambda = 0
		}
		s := math.Sqrt(lambda)
		for i := 0; i < n; i++ {
			v.Set(i, j, s*vecs.At(i, j))
		}
	}
	return v, true
}
