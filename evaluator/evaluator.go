// Package evaluator rewrites expression trees to a canonical normal
// form using exact arithmetic.
//
// Evaluation repeats single rewrite passes over the whole tree until
// it stops changing. Each pass reduces operators whose operands have
// resolved to concrete numbers or booleans, substitutes bound
// variables, and demotes numeric nodes to their simplest exact type.
// Subexpressions that cannot be reduced yet, such as unbound
// variables or non-integer exponents, are left in place, so a result
// may still be symbolic.
package evaluator

import (
	"math/big"

	"savant/expr"
	"savant/number"
)

// Evaluate rewrites e to normal form and returns the result. bindings
// maps variable names to expressions substituted for them; the
// imaginary unit `i` is bound by default and may be overridden. The
// first operand error aborts the whole call.
func Evaluate(e expr.Expr, bindings map[string]expr.Expr) (expr.Expr, error) {
	ctx := make(map[string]expr.Expr, len(bindings)+1)
	ctx["i"] = &expr.Complex{Value: number.I(), Repr: expr.Fraction}
	for name, bound := range bindings {
		ctx[name] = bound
	}

	cur := e
	for {
		next, err := step(cur, ctx)
		if err != nil {
			return nil, err
		}
		if expr.Equal(next, cur) {
			return next, nil
		}
		cur = next
	}
}

// step performs one rewrite pass over the whole tree.
func step(e expr.Expr, ctx map[string]expr.Expr) (expr.Expr, error) {
	switch n := e.(type) {
	case *expr.Variable:
		if bound, ok := ctx[n.Name]; ok {
			return step(bound, ctx)
		}
		return n, nil

	case *expr.Call, *expr.Vector, *expr.Matrix:
		// Argument and element evaluation is not implemented; these
		// pass through unchanged.
		return e, nil

	case *expr.Integer, *expr.Boolean:
		return e, nil

	case *expr.Rational:
		if n.Value.IsInt() {
			return &expr.Integer{Value: new(big.Int).Set(n.Value.Num())}, nil
		}
		return n, nil

	case *expr.Complex:
		if n.Value.IsReal() {
			return &expr.Rational{Value: new(big.Rat).Set(n.Value.Re), Repr: n.Repr}, nil
		}
		return n, nil

	case *expr.Unary:
		return stepUnary(n, ctx)

	case *expr.Binary:
		return stepBinary(n, ctx)
	}
	return e, nil
}
