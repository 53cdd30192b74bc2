package expr

import "math/big"

// NewMatrix builds a rows x cols matrix from row-major elements.
func NewMatrix(rows, cols int, elements []Expr) *Matrix {
	if len(elements) != rows*cols {
		panic("expr: matrix shape does not match element count")
	}
	return &Matrix{Rows: rows, Cols: cols, Elements: elements}
}

func (m *Matrix) At(row, col int) Expr {
	return m.Elements[row*m.Cols+col]
}

// Negate negates every element: numeric leaves directly, anything else
// wrapped in a Negation node for a later rewrite to resolve.
func (m *Matrix) Negate() *Matrix {
	out := make([]Expr, len(m.Elements))
	for idx, el := range m.Elements {
		out[idx] = negateElement(el)
	}
	return &Matrix{Rows: m.Rows, Cols: m.Cols, Elements: out}
}

func negateElement(e Expr) Expr {
	switch n := e.(type) {
	case *Integer:
		return &Integer{Value: new(big.Int).Neg(n.Value)}
	case *Rational:
		return &Rational{Value: new(big.Rat).Neg(n.Value), Repr: n.Repr}
	case *Complex:
		return &Complex{Value: n.Value.Neg(), Repr: n.Repr}
	default:
		return &Unary{Op: OpNegate, Operand: e}
	}
}
