// Package algebra implements the symbolic point and expression algebra
// underlying performance-estimation problems.
//
// Abstract vectors (iterates, subgradients) are linear combinations of
// leaf basis vectors; scalars (function values, inner products) are
// affine combinations of leaf value variables and Gram entries
// ⟨e_i, e_j⟩. Nothing here is numeric: the algebra only records
// coefficients, and the SDP compiler decides what the leaves mean.
package algebra

// Space allocates the leaf basis of one problem instance.
//
// Every Problem owns exactly one Space. Leaf vectors index the rows and
// columns of the Gram matrix of the eventual semidefinite program; leaf
// scalars index the function-value unknowns. Allocation order is the
// only identity a leaf has.
type Space struct {
	vectors int
	scalars int
}

// NewSpace returns an empty basis registry.
func NewSpace() *Space {
	return &Space{}
}

// Leaf allocates a fresh leaf vector and returns it as a Point.
func (s *Space) Leaf() *Point {
	id := s.vectors
	s.vectors++
	return &Point{coeffs: map[int]float64{id: 1}}
}

// Scalar allocates a fresh leaf value variable and returns it as an
// Expression.
func (s *Space) Scalar() *Expression {
	id := s.scalars
	s.scalars++
	return &Expression{values: map[int]float64{id: 1}}
}

// Dim returns the number of leaf vectors allocated so far. This is the
// order of the Gram matrix.
func (s *Space) Dim() int {
	return s.vectors
}

// Scalars returns the number of leaf value variables allocated so far.
func (s *Space) Scalars() int {
	return s.scalars
}
