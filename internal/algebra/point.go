package algebra

// Point is an abstract vector: a linear combination of leaf basis
// vectors. Points are immutable; every operation returns a new Point.
//
// The zero Point (empty combination) represents the zero vector and is
// used as the subgradient at a stationary point.
type Point struct {
	coeffs map[int]float64
}

// ZeroPoint returns the zero vector.
func ZeroPoint() *Point {
	return &Point{coeffs: map[int]float64{}}
}

func (p *Point) clone() *Point {
	out := make(map[int]float64, len(p.coeffs))
	for id, c := range p.coeffs {
		out[id] = c
	}
	return &Point{coeffs: out}
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	out := p.clone()
	for id, c := range q.coeffs {
		out.coeffs[id] += c
		if out.coeffs[id] == 0 {
			delete(out.coeffs, id)
		}
	}
	return out
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point {
	return p.Add(q.Scale(-1))
}

// Scale returns a*p.
func (p *Point) Scale(a float64) *Point {
	if a == 0 {
		return ZeroPoint()
	}
	out := make(map[int]float64, len(p.coeffs))
	for id, c := range p.coeffs {
		out[id] = a * c
	}
	return &Point{coeffs: out}
}

// Dot returns the inner product ⟨p, q⟩ as an Expression over Gram
// entries.
func (p *Point) Dot(q *Point) *Expression {
	gram := make(map[GramKey]float64)
	for i, ci := range p.coeffs {
		for j, cj := range q.coeffs {
			gram[gramKey(i, j)] += ci * cj
		}
	}
	for k, c := range gram {
		if c == 0 {
			delete(gram, k)
		}
	}
	return &Expression{gram: gram}
}

// NormSq returns ‖p‖² = ⟨p, p⟩.
func (p *Point) NormSq() *Expression {
	return p.Dot(p)
}

// IsZero reports whether p is the zero vector.
func (p *Point) IsZero() bool {
	return len(p.coeffs) == 0
}

// Equal reports whether p and q have identical decompositions over the
// leaf basis.
func (p *Point) Equal(q *Point) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for id, c := range p.coeffs {
		if q.coeffs[id] != c {
			return false
		}
	}
	return true
}
