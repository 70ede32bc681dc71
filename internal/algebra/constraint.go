package algebra

// Relation is the comparison sense of a Constraint.
type Relation int

const (
	// LessEqualZero states expr ≤ 0.
	LessEqualZero Relation = iota
	// EqualZero states expr = 0.
	EqualZero
)

// Constraint is a scalar inequality or equality, normalized to compare
// an Expression against zero. Constraints are directional: the
// constraint built from (a, b) is distinct from the one built from
// (b, a) even when they are algebraically equivalent.
type Constraint struct {
	expr *Expression
	rel  Relation
}

// Expr returns the normalized left-hand side (compared against zero).
func (c *Constraint) Expr() *Expression {
	return c.expr
}

// Relation returns the comparison sense.
func (c *Constraint) Relation() Relation {
	return c.rel
}

// Equal reports whether two constraints have the same sense and the
// same normalized left-hand side.
func (c *Constraint) Equal(o *Constraint) bool {
	return c.rel == o.rel && c.expr.Equal(o.expr)
}

// LessEqual returns the constraint e ≤ o.
func (e *Expression) LessEqual(o *Expression) *Constraint {
	return &Constraint{expr: e.Sub(o), rel: LessEqualZero}
}

// GreaterEqual returns the constraint e ≥ o.
func (e *Expression) GreaterEqual(o *Expression) *Constraint {
	return &Constraint{expr: o.Sub(e), rel: LessEqualZero}
}

// EqualTo returns the constraint e = o.
func (e *Expression) EqualTo(o *Expression) *Constraint {
	return &Constraint{expr: e.Sub(o), rel: EqualZero}
}

// LessEqualConst returns the constraint e ≤ c.
func (e *Expression) LessEqualConst(c float64) *Constraint {
	return &Constraint{expr: e.AddConst(-c), rel: LessEqualZero}
}

// EqualToConst returns the constraint e = c.
func (e *Expression) EqualToConst(c float64) *Constraint {
	return &Constraint{expr: e.AddConst(-c), rel: EqualZero}
}
