package expr

import (
	"math/big"

	"savant/number"
)

// Expr is an immutable expression tree. Trees double as syntax and as
// results: a fully evaluated value is just an expression that no
// rewrite step can change. Nodes are never mutated after construction,
// so rewrites may freely share unchanged subtrees.
type Expr interface {
	exprNode()
	String() string
}

type Variable struct {
	Name string
}

func (v *Variable) exprNode() {}

// Call is an unresolved function application. The evaluator leaves
// calls untouched; they survive as symbolic residuals.
type Call struct {
	Name string
	Args []Expr
}

func (c *Call) exprNode() {}

type Integer struct {
	Value *big.Int
}

func (n *Integer) exprNode() {}

// Rational carries a rendering hint alongside its exact value: 1/2 and
// 0.5 denote the same number but remember how they were written.
type Rational struct {
	Value *big.Rat
	Repr  Representation
}

func (n *Rational) exprNode() {}

type Complex struct {
	Value number.Complex
	Repr  Representation
}

func (n *Complex) exprNode() {}

type Boolean struct {
	Value bool
}

func (b *Boolean) exprNode() {}

type Vector struct {
	Elements []Expr
}

func (v *Vector) exprNode() {}

// Matrix is a rectangular container of expressions in row-major order.
type Matrix struct {
	Rows     int
	Cols     int
	Elements []Expr
}

func (m *Matrix) exprNode() {}

type Unary struct {
	Op      UnaryOp
	Operand Expr
}

func (u *Unary) exprNode() {}

type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (b *Binary) exprNode() {}

func NewInt(n int64) *Integer {
	return &Integer{Value: big.NewInt(n)}
}

func NewRational(num, den int64, repr Representation) *Rational {
	return &Rational{Value: big.NewRat(num, den), Repr: repr}
}

func NewBool(v bool) *Boolean {
	return &Boolean{Value: v}
}
