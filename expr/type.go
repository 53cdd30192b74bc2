package expr

import "savant/number"

// Kind is the coarse classification the evaluator dispatches on.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindMatrix
	KindArithmetic
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindMatrix:
		return "Matrix"
	}
	return "Arithmetic"
}

// Type pairs a Kind with the payload the evaluator needs: the exact
// value and hint for numbers, the literal value for booleans.
type Type struct {
	Kind  Kind
	Num   number.Complex
	Repr  Representation
	Bool  bool
	Known bool
}

// TypeOf classifies an expression. Integer, Rational and Complex nodes
// collapse into KindNumber carrying their exact value; boolean literals
// are known booleans while boolean-valued operator nodes are unknown
// ones; everything still unresolved is KindArithmetic. Classification
// is recomputed after every rewrite, never cached.
func TypeOf(e Expr) Type {
	switch n := e.(type) {
	case *Integer:
		return Type{Kind: KindNumber, Num: number.FromInt(n.Value), Repr: Fraction}
	case *Rational:
		return Type{Kind: KindNumber, Num: number.FromRat(n.Value), Repr: n.Repr}
	case *Complex:
		return Type{Kind: KindNumber, Num: n.Value, Repr: n.Repr}
	case *Boolean:
		return Type{Kind: KindBoolean, Bool: n.Value, Known: true}
	case *Matrix:
		return Type{Kind: KindMatrix}
	case *Unary:
		if n.Op == OpNot {
			return Type{Kind: KindBoolean}
		}
	case *Binary:
		if n.Op.IsComparison() || n.Op.IsLogical() {
			return Type{Kind: KindBoolean}
		}
	}
	return Type{Kind: KindArithmetic}
}
