package evaluator

import (
	"fmt"

	"savant/expr"
)

// InvalidOperandError reports an operand whose type the operator is
// not defined for, such as negating a boolean or ordering a complex
// number. Operand is the offending subexpression as written, before
// any rewriting.
type InvalidOperandError struct {
	Expression expr.Expr
	Operand    expr.Expr
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("Invalid operand %q in %q", e.Operand, e.Expression)
}

// IncompatibleOperandsError reports two operands that cannot be
// combined under the operator even though each is valid on its own,
// such as adding a number to a matrix.
type IncompatibleOperandsError struct {
	Expression expr.Expr
	OperandA   expr.Expr
	OperandB   expr.Expr
}

func (e *IncompatibleOperandsError) Error() string {
	return fmt.Sprintf("Incompatible operands %q and %q in %q", e.OperandA, e.OperandB, e.Expression)
}

// DivisionByZeroError reports a divisor that evaluated to exactly
// zero under `/` or `%`.
type DivisionByZeroError struct {
	Expression expr.Expr
	Dividend   expr.Expr
	Divisor    expr.Expr
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("Division by zero in %q (divisor %q)", e.Expression, e.Divisor)
}

// ZeroToThePowerOfZeroError reports a power whose base and exponent
// both evaluated to exactly zero.
type ZeroToThePowerOfZeroError struct {
	Expression expr.Expr
	Base       expr.Expr
	Exponent   expr.Expr
}

func (e *ZeroToThePowerOfZeroError) Error() string {
	return fmt.Sprintf("Zero to the power of zero in %q", e.Expression)
}
