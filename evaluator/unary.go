package evaluator

import "savant/expr"

// stepUnary performs one rewrite step on a unary operator node. The
// operand is stepped first; errors cite the operand as written, not
// its stepped form.
func stepUnary(u *expr.Unary, ctx map[string]expr.Expr) (expr.Expr, error) {
	operand, err := step(u.Operand, ctx)
	if err != nil {
		return nil, err
	}

	t := expr.TypeOf(operand)

	switch u.Op {
	case expr.OpNegate:
		switch t.Kind {
		case expr.KindBoolean:
			return nil, &InvalidOperandError{Expression: u, Operand: u.Operand}
		case expr.KindNumber:
			return &expr.Complex{Value: t.Num.Neg(), Repr: t.Repr}, nil
		case expr.KindMatrix:
			return operand.(*expr.Matrix).Negate(), nil
		}

	case expr.OpNot:
		switch t.Kind {
		case expr.KindBoolean:
			if t.Known {
				return &expr.Boolean{Value: !t.Bool}, nil
			}
		default:
			return nil, &InvalidOperandError{Expression: u, Operand: u.Operand}
		}
	}

	// The operand may resolve on a later pass.
	return &expr.Unary{Op: u.Op, Operand: operand}, nil
}
