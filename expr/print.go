package expr

import (
	"math/big"
	"strings"

	"savant/number"
)

// Rendering precedence levels, loosest to tightest. A child whose own
// level is below what its position requires gets parentheses, so every
// rendering re-parses to an equivalent tree.
const (
	precOr = iota + 1
	precAnd
	precCompare
	precAddSub
	precMulDiv
	precUnary
	precPower
	precAtom
)

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

func (v *Variable) String() string { return v.Name }

func (c *Call) String() string {
	parts := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		parts = append(parts, arg.String())
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (n *Integer) String() string { return n.Value.String() }

func (n *Rational) String() string { return ratString(n.Value, n.Repr) }

func (n *Complex) String() string {
	re, im := n.Value.Re, n.Value.Im
	if im.Sign() == 0 {
		return ratString(re, n.Repr)
	}
	if re.Sign() == 0 {
		return imaginaryString(im, n.Repr)
	}
	if im.Sign() < 0 {
		return ratString(re, n.Repr) + " - " + imaginaryString(new(big.Rat).Neg(im), n.Repr)
	}
	return ratString(re, n.Repr) + " + " + imaginaryString(im, n.Repr)
}

func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (v *Vector) String() string {
	parts := make([]string, 0, len(v.Elements))
	for _, el := range v.Elements {
		parts = append(parts, el.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (m *Matrix) String() string {
	rows := make([]string, 0, m.Rows)
	for r := 0; r < m.Rows; r++ {
		cols := make([]string, 0, m.Cols)
		for c := 0; c < m.Cols; c++ {
			cols = append(cols, m.At(r, c).String())
		}
		rows = append(rows, "["+strings.Join(cols, ", ")+"]")
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

func (u *Unary) String() string {
	return u.Op.Symbol() + render(u.Operand, precPower)
}

func (b *Binary) String() string {
	level := opPrec(b.Op)
	leftMin, rightMin := level, level+1
	switch {
	case b.Op == OpPower:
		// right-associative, base parses as a primary
		leftMin, rightMin = precAtom, precUnary
	case b.Op.IsComparison():
		// non-associative, both sides parse at add/sub level
		leftMin, rightMin = level+1, level+1
	}
	return render(b.Left, leftMin) + " " + b.Op.Symbol() + " " + render(b.Right, rightMin)
}

func render(e Expr, min int) string {
	if renderPrec(e) < min {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// renderPrec is the precedence of the loosest operator appearing in a
// node's textual form. Numeric leaves are not always atoms: -7 reads as
// a negation and 1/2 as a quotient.
func renderPrec(e Expr) int {
	switch n := e.(type) {
	case *Integer:
		if n.Value.Sign() < 0 {
			return precUnary
		}
		return precAtom
	case *Rational:
		return ratPrec(n.Value, n.Repr)
	case *Complex:
		return complexPrec(n)
	case *Unary:
		return precUnary
	case *Binary:
		return opPrec(n.Op)
	}
	return precAtom
}

func opPrec(op BinaryOp) int {
	switch {
	case op == OpOr:
		return precOr
	case op == OpAnd:
		return precAnd
	case op.IsComparison():
		return precCompare
	case op == OpSum || op == OpDifference:
		return precAddSub
	case op == OpPower:
		return precPower
	}
	return precMulDiv
}

// ratString renders a rational per its hint: Decimal-hinted values with
// a finite decimal expansion print as exact decimals, everything else
// as num/den.
func ratString(r *big.Rat, repr Representation) string {
	if repr == Decimal {
		if s, ok := number.DecimalString(r); ok {
			return s
		}
	}
	return r.RatString()
}

func ratPrec(r *big.Rat, repr Representation) int {
	if repr == Decimal {
		if _, ok := number.DecimalString(r); ok {
			if r.Sign() < 0 {
				return precUnary
			}
			return precAtom
		}
	}
	if r.IsInt() {
		if r.Sign() < 0 {
			return precUnary
		}
		return precAtom
	}
	return precMulDiv
}

func imaginaryString(im *big.Rat, repr Representation) string {
	if im.Cmp(ratOne) == 0 {
		return "i"
	}
	if im.Cmp(ratMinusOne) == 0 {
		return "-i"
	}
	return ratString(im, repr) + "*i"
}

func complexPrec(n *Complex) int {
	re, im := n.Value.Re, n.Value.Im
	if im.Sign() == 0 {
		return ratPrec(re, n.Repr)
	}
	if re.Sign() != 0 {
		return precAddSub
	}
	if im.Cmp(ratOne) == 0 {
		return precAtom
	}
	if im.Cmp(ratMinusOne) == 0 {
		return precUnary
	}
	return precMulDiv
}
