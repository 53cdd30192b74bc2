package parser

import (
	"math/big"
	"testing"

	"savant/expr"
	"savant/lexer"
)

func parse(t *testing.T, input string) expr.Expr {
	t.Helper()
	e, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	return e
}

func checkTree(t *testing.T, input string, want expr.Expr) {
	t.Helper()
	got := parse(t, input)
	if !expr.Equal(got, want) {
		t.Fatalf("Parse(%q) = %s, want %s", input, got, want)
	}
}

func TestLiterals(t *testing.T) {
	checkTree(t, "42", expr.NewInt(42))
	checkTree(t, "0.5", expr.NewRational(1, 2, expr.Decimal))
	checkTree(t, "2.25", expr.NewRational(9, 4, expr.Decimal))
	checkTree(t, "true", expr.NewBool(true))
	checkTree(t, "false", expr.NewBool(false))
	checkTree(t, "x", &expr.Variable{Name: "x"})
	checkTree(t, "i", &expr.Variable{Name: "i"})

	big1 := new(big.Int)
	big1.SetString("123456789987654321", 10)
	checkTree(t, "123456789987654321", &expr.Integer{Value: big1})
}

func TestPrecedence(t *testing.T) {
	x := func() expr.Expr { return &expr.Variable{Name: "x"} }

	checkTree(t, "1 + 2 * 3", &expr.Binary{
		Op:    expr.OpSum,
		Left:  expr.NewInt(1),
		Right: &expr.Binary{Op: expr.OpProduct, Left: expr.NewInt(2), Right: expr.NewInt(3)},
	})
	checkTree(t, "(1 + 2) * 3", &expr.Binary{
		Op:    expr.OpProduct,
		Left:  &expr.Binary{Op: expr.OpSum, Left: expr.NewInt(1), Right: expr.NewInt(2)},
		Right: expr.NewInt(3),
	})
	checkTree(t, "1 - 2 - 3", &expr.Binary{
		Op:    expr.OpDifference,
		Left:  &expr.Binary{Op: expr.OpDifference, Left: expr.NewInt(1), Right: expr.NewInt(2)},
		Right: expr.NewInt(3),
	})
	checkTree(t, "1 / 2 % 3", &expr.Binary{
		Op:    expr.OpRemainder,
		Left:  &expr.Binary{Op: expr.OpQuotient, Left: expr.NewInt(1), Right: expr.NewInt(2)},
		Right: expr.NewInt(3),
	})

	// The power operator is right-associative and binds tighter than
	// unary minus.
	checkTree(t, "2 ^ 3 ^ 4", &expr.Binary{
		Op:    expr.OpPower,
		Left:  expr.NewInt(2),
		Right: &expr.Binary{Op: expr.OpPower, Left: expr.NewInt(3), Right: expr.NewInt(4)},
	})
	checkTree(t, "-2 ^ 4", &expr.Unary{
		Op:      expr.OpNegate,
		Operand: &expr.Binary{Op: expr.OpPower, Left: expr.NewInt(2), Right: expr.NewInt(4)},
	})
	checkTree(t, "(-2) ^ 4", &expr.Binary{
		Op:    expr.OpPower,
		Left:  &expr.Unary{Op: expr.OpNegate, Operand: expr.NewInt(2)},
		Right: expr.NewInt(4),
	})
	checkTree(t, "2 ^ -3", &expr.Binary{
		Op:    expr.OpPower,
		Left:  expr.NewInt(2),
		Right: &expr.Unary{Op: expr.OpNegate, Operand: expr.NewInt(3)},
	})

	checkTree(t, "x || x && x", &expr.Binary{
		Op:    expr.OpOr,
		Left:  x(),
		Right: &expr.Binary{Op: expr.OpAnd, Left: x(), Right: x()},
	})
	checkTree(t, "!x && x", &expr.Binary{
		Op:    expr.OpAnd,
		Left:  &expr.Unary{Op: expr.OpNot, Operand: x()},
		Right: x(),
	})
	checkTree(t, "x + 1 < 2 * 3", &expr.Binary{
		Op:    expr.OpLessThan,
		Left:  &expr.Binary{Op: expr.OpSum, Left: x(), Right: expr.NewInt(1)},
		Right: &expr.Binary{Op: expr.OpProduct, Left: expr.NewInt(2), Right: expr.NewInt(3)},
	})
}

func TestComparisonIsNonAssociative(t *testing.T) {
	if _, err := Parse("1 < 2 == true"); err == nil {
		t.Fatal("expected chained comparison to fail")
	}
	if _, err := Parse("(1 < 2) == true"); err != nil {
		t.Fatalf("parenthesized form should parse: %v", err)
	}
}

func TestCalls(t *testing.T) {
	checkTree(t, "f()", &expr.Call{Name: "f", Args: []expr.Expr{}})
	checkTree(t, "f(1, x)", &expr.Call{
		Name: "f",
		Args: []expr.Expr{expr.NewInt(1), &expr.Variable{Name: "x"}},
	})
	checkTree(t, "f(g(1))", &expr.Call{
		Name: "f",
		Args: []expr.Expr{&expr.Call{Name: "g", Args: []expr.Expr{expr.NewInt(1)}}},
	})
}

func TestBracketLists(t *testing.T) {
	checkTree(t, "[]", &expr.Vector{Elements: []expr.Expr{}})
	checkTree(t, "[1, 2]", &expr.Vector{Elements: []expr.Expr{expr.NewInt(1), expr.NewInt(2)}})

	// Rows of one shared length become a matrix.
	checkTree(t, "[[1, 2], [3, 4]]", expr.NewMatrix(2, 2, []expr.Expr{
		expr.NewInt(1), expr.NewInt(2), expr.NewInt(3), expr.NewInt(4),
	}))
	checkTree(t, "[[1, 2]]", expr.NewMatrix(1, 2, []expr.Expr{
		expr.NewInt(1), expr.NewInt(2),
	}))

	// Ragged rows stay a vector of vectors.
	checkTree(t, "[[1, 2], [3]]", &expr.Vector{Elements: []expr.Expr{
		&expr.Vector{Elements: []expr.Expr{expr.NewInt(1), expr.NewInt(2)}},
		&expr.Vector{Elements: []expr.Expr{expr.NewInt(3)}},
	}})
	checkTree(t, "[[], []]", &expr.Vector{Elements: []expr.Expr{
		&expr.Vector{Elements: []expr.Expr{}},
		&expr.Vector{Elements: []expr.Expr{}},
	}})
	checkTree(t, "[[1, 2], x]", &expr.Vector{Elements: []expr.Expr{
		&expr.Vector{Elements: []expr.Expr{expr.NewInt(1), expr.NewInt(2)}},
		&expr.Variable{Name: "x"},
	}})
}

func TestParseLine(t *testing.T) {
	line, err := New(lexer.New("x = 1 + 2")).ParseLine()
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if line.Name != "x" {
		t.Fatalf("Name = %q, want x", line.Name)
	}
	want := &expr.Binary{Op: expr.OpSum, Left: expr.NewInt(1), Right: expr.NewInt(2)}
	if !expr.Equal(line.Value, want) {
		t.Fatalf("Value = %s, want %s", line.Value, want)
	}

	// A comparison is not an assignment.
	line, err = New(lexer.New("x == 1")).ParseLine()
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if line.Name != "" {
		t.Fatalf("Name = %q, want empty", line.Name)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"1 +",
		"(1 + 2",
		")",
		"f(1,",
		"[1, 2",
		"= 1",
		"x = ",
		"1 2",
		"x = 1 = 2",
		"@",
	}

	for _, input := range bad {
		if _, err := Parse(input); err == nil {
			t.Fatalf("Parse(%q) unexpectedly succeeded", input)
		}
	}

	// Assignment forms fail through ParseLine as well.
	for _, input := range []string{"= 1", "x = ", "x = 1 = 2"} {
		if _, err := New(lexer.New(input)).ParseLine(); err == nil {
			t.Fatalf("ParseLine(%q) unexpectedly succeeded", input)
		}
	}
}

func TestErrorPositions(t *testing.T) {
	_, err := Parse("1 + )")
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Line != 1 || perr.Col != 5 {
		t.Fatalf("error at %d:%d, want 1:5", perr.Line, perr.Col)
	}

	_, err = Parse("1 +")
	perr, ok = err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Line != 0 {
		t.Fatalf("end-of-input error should carry no position, got line %d", perr.Line)
	}
}

func TestRenderingRoundTrips(t *testing.T) {
	inputs := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"1 - 2 - 3",
		"1 - (2 - 3)",
		"2 ^ 3 ^ 4",
		"(2 ^ 3) ^ 4",
		"(-2) ^ 4",
		"-2 ^ 4",
		"1 / (2 * 3)",
		"x || x && x",
		"!x",
		"x == 1 && true",
		"[1, 2]",
		"[[1, 2], [3, 4]]",
		"f(x, 1 / 2)",
		"0.25 ^ 2",
		"x < 2",
	}

	for _, input := range inputs {
		e := parse(t, input)
		if got := e.String(); got != input {
			t.Fatalf("Parse(%q).String() = %q", input, got)
		}
		again := parse(t, e.String())
		if !expr.Equal(again, e) {
			t.Fatalf("%q did not survive a render round trip", input)
		}
	}
}
