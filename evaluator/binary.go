package evaluator

import "savant/expr"

// ---------- Operand rules ----------

// class is a bitmask over the four type kinds, used by the operand
// rule tables below.
type class uint8

const (
	classNumber class = 1 << iota
	classBoolean
	classMatrix
	classArithmetic
)

func classOf(t expr.Type) class {
	switch t.Kind {
	case expr.KindNumber:
		return classNumber
	case expr.KindBoolean:
		return classBoolean
	case expr.KindMatrix:
		return classMatrix
	default:
		return classArithmetic
	}
}

// invalidRules lists operand kinds an operator group is never defined
// for. The left operand is checked before the right.
var invalidRules = []struct {
	applies func(expr.BinaryOp) bool
	rejects class
}{
	{expr.BinaryOp.IsArithmetic, classBoolean},
	{expr.BinaryOp.IsOrdering, classBoolean | classMatrix},
	{expr.BinaryOp.IsLogical, classNumber | classMatrix | classArithmetic},
}

// incompatibleRules lists pairs of operand kinds that cannot be
// combined under an operator group even though each is valid on its
// own. Pairs match in either order.
var incompatibleRules = []struct {
	applies func(expr.BinaryOp) bool
	a, b    class
}{
	{additionOrEquality, classNumber, classMatrix},
	{expr.BinaryOp.IsEquality, classBoolean, classNumber | classMatrix},
}

func additionOrEquality(op expr.BinaryOp) bool {
	return op == expr.OpSum || op == expr.OpDifference || op.IsEquality()
}

// ---------- Binary step ----------

// stepBinary performs one rewrite step on a binary operator node.
// Both operands are stepped first, left before right; operand errors
// cite the operands as written.
func stepBinary(b *expr.Binary, ctx map[string]expr.Expr) (expr.Expr, error) {
	left, err := step(b.Left, ctx)
	if err != nil {
		return nil, err
	}
	right, err := step(b.Right, ctx)
	if err != nil {
		return nil, err
	}

	lt := expr.TypeOf(left)
	rt := expr.TypeOf(right)
	lc := classOf(lt)
	rc := classOf(rt)

	for _, rule := range invalidRules {
		if !rule.applies(b.Op) {
			continue
		}
		if lc&rule.rejects != 0 {
			return nil, &InvalidOperandError{Expression: b, Operand: b.Left}
		}
		if rc&rule.rejects != 0 {
			return nil, &InvalidOperandError{Expression: b, Operand: b.Right}
		}
	}

	for _, rule := range incompatibleRules {
		if !rule.applies(b.Op) {
			continue
		}
		if (lc&rule.a != 0 && rc&rule.b != 0) || (lc&rule.b != 0 && rc&rule.a != 0) {
			return nil, &IncompatibleOperandsError{Expression: b, OperandA: b.Left, OperandB: b.Right}
		}
	}

	if lt.Kind == expr.KindNumber && rt.Kind == expr.KindNumber {
		return numericBinary(b, left, right, lt, rt)
	}

	if lt.Kind == expr.KindBoolean && lt.Known && rt.Kind == expr.KindBoolean && rt.Known {
		if result, ok := booleanBinary(b.Op, lt.Bool, rt.Bool); ok {
			return result, nil
		}
	}

	// Neither side fully resolved; rebuild over the stepped operands
	// and wait for more context.
	return &expr.Binary{Op: b.Op, Left: left, Right: right}, nil
}

// numericBinary applies an operator to two fully numeric operands.
// b carries the original operands for error reporting; left and right
// are their stepped forms, kept for operators that stay symbolic.
func numericBinary(b *expr.Binary, left, right expr.Expr, lt, rt expr.Type) (expr.Expr, error) {
	x, y := lt.Num, rt.Num
	repr := lt.Repr.Merge(rt.Repr)

	switch b.Op {
	case expr.OpSum:
		return &expr.Complex{Value: x.Add(y), Repr: repr}, nil
	case expr.OpDifference:
		return &expr.Complex{Value: x.Sub(y), Repr: repr}, nil
	case expr.OpProduct:
		return &expr.Complex{Value: x.Mul(y), Repr: repr}, nil

	case expr.OpQuotient, expr.OpRemainder:
		if y.IsZero() {
			return nil, &DivisionByZeroError{Expression: b, Dividend: b.Left, Divisor: b.Right}
		}
		if b.Op == expr.OpQuotient {
			return &expr.Complex{Value: x.Div(y), Repr: repr}, nil
		}
		return &expr.Complex{Value: x.Rem(y), Repr: repr}, nil

	case expr.OpPower:
		if x.IsZero() && y.IsZero() {
			return nil, &ZeroToThePowerOfZeroError{Expression: b, Base: b.Left, Exponent: b.Right}
		}
		if n, ok := y.Int64(); ok {
			if result, ok := x.PowInt(n); ok {
				return &expr.Complex{Value: result, Repr: repr}, nil
			}
		}
		// Exponent not an exact machine integer, or a negative power
		// of zero; the node stays symbolic rather than approximate.
		return &expr.Binary{Op: b.Op, Left: left, Right: right}, nil

	case expr.OpEqual:
		return &expr.Boolean{Value: x.Equal(y)}, nil
	case expr.OpNotEqual:
		return &expr.Boolean{Value: !x.Equal(y)}, nil

	case expr.OpLessThan, expr.OpLessOrEqual, expr.OpGreaterThan, expr.OpGreaterOrEqual:
		if !x.IsReal() {
			return nil, &InvalidOperandError{Expression: b, Operand: b.Left}
		}
		if !y.IsReal() {
			return nil, &InvalidOperandError{Expression: b, Operand: b.Right}
		}
		return &expr.Boolean{Value: ordered(b.Op, x.Re.Cmp(y.Re))}, nil
	}

	// Logical operators never reach this arm; the rules above reject
	// numeric operands for them.
	return &expr.Binary{Op: b.Op, Left: left, Right: right}, nil
}

func ordered(op expr.BinaryOp, cmp int) bool {
	switch op {
	case expr.OpLessThan:
		return cmp < 0
	case expr.OpLessOrEqual:
		return cmp <= 0
	case expr.OpGreaterThan:
		return cmp > 0
	default:
		return cmp >= 0
	}
}

func booleanBinary(op expr.BinaryOp, a, b bool) (expr.Expr, bool) {
	switch op {
	case expr.OpEqual:
		return &expr.Boolean{Value: a == b}, true
	case expr.OpNotEqual:
		return &expr.Boolean{Value: a != b}, true
	case expr.OpAnd:
		return &expr.Boolean{Value: a && b}, true
	case expr.OpOr:
		return &expr.Boolean{Value: a || b}, true
	}
	return nil, false
}
