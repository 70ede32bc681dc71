package algebra

// GramKey identifies one entry ⟨e_i, e_j⟩ of the Gram matrix of leaf
// vectors. Keys are normalized so that I <= J.
type GramKey struct {
	I, J int
}

func gramKey(i, j int) GramKey {
	if i > j {
		i, j = j, i
	}
	return GramKey{I: i, J: j}
}

// Expression is an abstract scalar: an affine combination of leaf
// value variables and Gram entries, plus a constant offset.
// Expressions are immutable; every operation returns a new Expression.
type Expression struct {
	values map[int]float64
	gram   map[GramKey]float64
	offset float64
}

// Const returns the constant expression c.
func Const(c float64) *Expression {
	return &Expression{offset: c}
}

func (e *Expression) clone() *Expression {
	out := &Expression{
		values: make(map[int]float64, len(e.values)),
		gram:   make(map[GramKey]float64, len(e.gram)),
		offset: e.offset,
	}
	for id, c := range e.values {
		out.values[id] = c
	}
	for k, c := range e.gram {
		out.gram[k] = c
	}
	return out
}

// Add returns e + o.
func (e *Expression) Add(o *Expression) *Expression {
	out := e.clone()
	for id, c := range o.values {
		out.values[id] += c
		if out.values[id] == 0 {
			delete(out.values, id)
		}
	}
	for k, c := range o.gram {
		out.gram[k] += c
		if out.gram[k] == 0 {
			delete(out.gram, k)
		}
	}
	out.offset += o.offset
	return out
}

// Sub returns e - o.
func (e *Expression) Sub(o *Expression) *Expression {
	return e.Add(o.Scale(-1))
}

// Scale returns a*e.
func (e *Expression) Scale(a float64) *Expression {
	if a == 0 {
		return Const(0)
	}
	out := &Expression{
		values: make(map[int]float64, len(e.values)),
		gram:   make(map[GramKey]float64, len(e.gram)),
		offset: a * e.offset,
	}
	for id, c := range e.values {
		out.values[id] = a * c
	}
	for k, c := range e.gram {
		out.gram[k] = a * c
	}
	return out
}

// AddConst returns e + c.
func (e *Expression) AddConst(c float64) *Expression {
	out := e.clone()
	out.offset += c
	return out
}

// Offset returns the constant term of e.
func (e *Expression) Offset() float64 {
	return e.offset
}

// ValueCoeff returns the coefficient of leaf value variable id.
func (e *Expression) ValueCoeff(id int) float64 {
	return e.values[id]
}

// GramCoeff returns the coefficient of Gram entry ⟨e_i, e_j⟩.
func (e *Expression) GramCoeff(i, j int) float64 {
	return e.gram[gramKey(i, j)]
}

// Values iterates over the non-zero value-variable coefficients.
func (e *Expression) Values(f func(id int, coeff float64)) {
	for id, c := range e.values {
		f(id, c)
	}
}

// Gram iterates over the non-zero Gram-entry coefficients.
func (e *Expression) Gram(f func(k GramKey, coeff float64)) {
	for k, c := range e.gram {
		f(k, c)
	}
}

// Equal reports whether e and o are the same affine combination.
func (e *Expression) Equal(o *Expression) bool {
	if e.offset != o.offset || len(e.values) != len(o.values) || len(e.gram) != len(o.gram) {
		return false
	}
	for id, c := range e.values {
		if o.values[id] != c {
			return false
		}
	}
	for k, c := range e.gram {
		if o.gram[k] != c {
			return false
		}
	}
	return true
}
