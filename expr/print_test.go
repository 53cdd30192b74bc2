package expr

import (
	"math/big"
	"testing"

	"savant/number"
)

func ratLit(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		t.Fatalf("bad rational literal %q", s)
	}
	return r
}

func complexNode(t *testing.T, re, im string, repr Representation) *Complex {
	t.Helper()
	return &Complex{
		Value: number.Complex{Re: ratLit(t, re), Im: ratLit(t, im)},
		Repr:  repr,
	}
}

func TestLeafStrings(t *testing.T) {
	tests := []struct {
		e    Expr
		want string
	}{
		{&Variable{Name: "x"}, "x"},
		{NewInt(42), "42"},
		{NewInt(-7), "-7"},
		{NewRational(1, 2, Fraction), "1/2"},
		{NewRational(-1, 2, Fraction), "-1/2"},
		{NewRational(1, 4, Decimal), "0.25"},
		{NewRational(1, 16, Decimal), "0.0625"},
		{NewRational(1, 3, Decimal), "1/3"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{&Call{Name: "f", Args: []Expr{NewInt(1), &Variable{Name: "x"}}}, "f(1, x)"},
		{&Vector{Elements: []Expr{NewInt(1), NewInt(2)}}, "[1, 2]"},
		{&Vector{}, "[]"},
	}

	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestComplexStrings(t *testing.T) {
	tests := []struct {
		re, im string
		repr   Representation
		want   string
	}{
		{"0", "1", Fraction, "i"},
		{"0", "-1", Fraction, "-i"},
		{"0", "2", Fraction, "2*i"},
		{"0", "-3/4", Fraction, "-3/4*i"},
		{"1", "1", Fraction, "1 + i"},
		{"1", "-1", Fraction, "1 - i"},
		{"1/2", "3/4", Fraction, "1/2 + 3/4*i"},
		{"-1", "-2", Fraction, "-1 - 2*i"},
		{"0", "1/4", Decimal, "0.25*i"},
		{"5", "0", Fraction, "5"},
	}

	for _, tt := range tests {
		got := complexNode(t, tt.re, tt.im, tt.repr).String()
		if got != tt.want {
			t.Fatalf("(%s, %s) String() = %q, want %q", tt.re, tt.im, got, tt.want)
		}
	}
}

func TestMatrixString(t *testing.T) {
	m := NewMatrix(2, 2, []Expr{NewInt(1), NewInt(2), NewInt(3), NewInt(4)})
	if got, want := m.String(), "[[1, 2], [3, 4]]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestOperatorStrings(t *testing.T) {
	x := &Variable{Name: "x"}
	y := &Variable{Name: "y"}

	tests := []struct {
		e    Expr
		want string
	}{
		{&Unary{Op: OpNegate, Operand: NewInt(2)}, "-2"},
		{&Unary{Op: OpNegate, Operand: &Unary{Op: OpNegate, Operand: NewInt(1)}}, "-(-1)"},
		{&Unary{Op: OpNot, Operand: NewBool(true)}, "!true"},
		{&Unary{Op: OpNegate, Operand: &Binary{Op: OpSum, Left: NewInt(1), Right: NewInt(2)}}, "-(1 + 2)"},
		{&Unary{Op: OpNegate, Operand: &Binary{Op: OpPower, Left: NewInt(2), Right: NewInt(4)}}, "-2 ^ 4"},

		{&Binary{Op: OpSum, Left: NewInt(1), Right: &Binary{Op: OpProduct, Left: NewInt(2), Right: NewInt(3)}}, "1 + 2 * 3"},
		{&Binary{Op: OpProduct, Left: &Binary{Op: OpSum, Left: NewInt(1), Right: NewInt(2)}, Right: NewInt(3)}, "(1 + 2) * 3"},
		{&Binary{Op: OpDifference, Left: &Binary{Op: OpDifference, Left: NewInt(1), Right: NewInt(2)}, Right: NewInt(3)}, "1 - 2 - 3"},
		{&Binary{Op: OpDifference, Left: NewInt(1), Right: &Binary{Op: OpDifference, Left: NewInt(2), Right: NewInt(3)}}, "1 - (2 - 3)"},

		{&Binary{Op: OpPower, Left: NewInt(2), Right: &Binary{Op: OpPower, Left: NewInt(3), Right: NewInt(4)}}, "2 ^ 3 ^ 4"},
		{&Binary{Op: OpPower, Left: &Binary{Op: OpPower, Left: NewInt(2), Right: NewInt(3)}, Right: NewInt(4)}, "(2 ^ 3) ^ 4"},
		{&Binary{Op: OpPower, Left: NewInt(-2), Right: NewInt(4)}, "(-2) ^ 4"},
		{&Binary{Op: OpPower, Left: NewInt(2), Right: NewInt(-3)}, "2 ^ -3"},
		{&Binary{Op: OpPower, Left: NewRational(1, 2, Fraction), Right: NewInt(4)}, "(1/2) ^ 4"},
		{&Binary{Op: OpPower, Left: NewRational(1, 4, Decimal), Right: NewInt(2)}, "0.25 ^ 2"},

		{&Binary{Op: OpQuotient, Left: NewInt(1), Right: &Binary{Op: OpProduct, Left: NewInt(2), Right: NewInt(3)}}, "1 / (2 * 3)"},
		{&Binary{Op: OpRemainder, Left: NewRational(3, 4, Decimal), Right: NewRational(1, 3, Fraction)}, "0.75 % (1/3)"},

		{&Binary{Op: OpLessThan, Left: x, Right: NewInt(2)}, "x < 2"},
		{&Binary{Op: OpEqual, Left: &Binary{Op: OpLessThan, Left: NewInt(1), Right: NewInt(2)}, Right: NewBool(true)}, "(1 < 2) == true"},
		{&Binary{Op: OpAnd, Left: NewBool(true), Right: &Binary{Op: OpOr, Left: x, Right: y}}, "true && (x || y)"},
		{&Binary{Op: OpOr, Left: &Binary{Op: OpOr, Left: x, Right: y}, Right: NewBool(false)}, "x || y || false"},
		{&Binary{Op: OpAnd, Left: &Binary{Op: OpEqual, Left: x, Right: NewInt(1)}, Right: NewBool(true)}, "x == 1 && true"},

		{&Binary{Op: OpProduct, Left: NewInt(2), Right: complexNode(t, "1", "1", Fraction)}, "2 * (1 + i)"},
		{&Binary{Op: OpSum, Left: complexNode(t, "0", "1", Fraction), Right: NewInt(1)}, "i + 1"},
	}

	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}
