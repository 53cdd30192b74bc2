package expr

// Equal reports deep structural equality. Numeric leaves compare by
// exact value, and representation hints participate: a Fraction-hinted
// and a Decimal-hinted rational are different trees even when their
// values coincide. The fixed-point driver relies on this to detect
// convergence.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Call:
		y, ok := b.(*Call)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for idx := range x.Args {
			if !Equal(x.Args[idx], y.Args[idx]) {
				return false
			}
		}
		return true
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.Value.Cmp(y.Value) == 0
	case *Rational:
		y, ok := b.(*Rational)
		return ok && x.Repr == y.Repr && x.Value.Cmp(y.Value) == 0
	case *Complex:
		y, ok := b.(*Complex)
		return ok && x.Repr == y.Repr && x.Value.Equal(y.Value)
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *Vector:
		y, ok := b.(*Vector)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for idx := range x.Elements {
			if !Equal(x.Elements[idx], y.Elements[idx]) {
				return false
			}
		}
		return true
	case *Matrix:
		y, ok := b.(*Matrix)
		if !ok || x.Rows != y.Rows || x.Cols != y.Cols {
			return false
		}
		for idx := range x.Elements {
			if !Equal(x.Elements[idx], y.Elements[idx]) {
				return false
			}
		}
		return true
	case *Unary:
		y, ok := b.(*Unary)
		return ok && x.Op == y.Op && Equal(x.Operand, y.Operand)
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}
