package expr

type UnaryOp int

const (
	OpNegate UnaryOp = iota
	OpNot
)

func (op UnaryOp) Symbol() string {
	if op == OpNot {
		return "!"
	}
	return "-"
}

// BinaryOp identifies one of the fourteen binary operators.
type BinaryOp int

const (
	OpSum BinaryOp = iota
	OpDifference
	OpProduct
	OpQuotient
	OpRemainder
	OpPower
	OpEqual
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpAnd
	OpOr
)

func (op BinaryOp) Symbol() string {
	switch op {
	case OpSum:
		return "+"
	case OpDifference:
		return "-"
	case OpProduct:
		return "*"
	case OpQuotient:
		return "/"
	case OpRemainder:
		return "%"
	case OpPower:
		return "^"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLessThan:
		return "<"
	case OpLessOrEqual:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterOrEqual:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	}
	return "?"
}

// IsArithmetic reports the numeric operators + - * / % ^.
func (op BinaryOp) IsArithmetic() bool {
	switch op {
	case OpSum, OpDifference, OpProduct, OpQuotient, OpRemainder, OpPower:
		return true
	}
	return false
}

// IsOrdering reports < <= > >=.
func (op BinaryOp) IsOrdering() bool {
	switch op {
	case OpLessThan, OpLessOrEqual, OpGreaterThan, OpGreaterOrEqual:
		return true
	}
	return false
}

// IsEquality reports == and !=.
func (op BinaryOp) IsEquality() bool {
	return op == OpEqual || op == OpNotEqual
}

// IsComparison reports every boolean-valued comparison operator.
func (op BinaryOp) IsComparison() bool {
	return op.IsOrdering() || op.IsEquality()
}

// IsLogical reports && and ||.
func (op BinaryOp) IsLogical() bool {
	return op == OpAnd || op == OpOr
}
