package parser

import (
	"fmt"
	"math/big"

	"savant/expr"
	"savant/lexer"
)

type Parser struct {
	lx   *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func New(lx *lexer.Lexer) *Parser {
	p := &Parser{lx: lx}
	p.cur = lx.NextToken()
	p.peek = lx.NextToken()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lx.NextToken()
}

// Error is a parse failure at a specific input position. Line and
// Col are zero when the input ended before the expected token.
type Error struct {
	Line int
	Col  int
	Msg  string
	Got  string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s at end of input", e.Msg)
	}
	return fmt.Sprintf("%s at %d:%d (got %s)", e.Msg, e.Line, e.Col, e.Got)
}

// Line is one calculator input line: a bare expression, or a binding
// when Name is nonempty.
type Line struct {
	Name  string
	Value expr.Expr
}

// Parse reads a single expression from input.
func Parse(input string) (expr.Expr, error) {
	return New(lexer.New(input)).ParseExpression()
}

// ParseExpression parses the whole input as one expression.
func (p *Parser) ParseExpression() (expr.Expr, error) {
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, p.errAt(p.cur, "Unexpected input after expression")
	}
	return e, nil
}

// ParseLine parses `name = expression` or a bare expression.
func (p *Parser) ParseLine() (Line, error) {
	if p.cur.Type == lexer.IDENT && p.peek.Type == lexer.ASSIGN {
		name := p.cur.Lexeme
		p.next() // to '='
		p.next() // to expression
		value, err := p.parseExpr()
		if err != nil {
			return Line{}, err
		}
		if p.cur.Type != lexer.EOF {
			return Line{}, p.errAt(p.cur, "Unexpected input after expression")
		}
		return Line{Name: name, Value: value}, nil
	}

	value, err := p.ParseExpression()
	if err != nil {
		return Line{}, err
	}
	return Line{Value: value}, nil
}

// expr = or
func (p *Parser) parseExpr() (expr.Expr, error) { return p.parseOr() }

// or = and ( "||" and )*
func (p *Parser) parseOr() (expr.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.OROR {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: expr.OpOr, Left: left, Right: right}
	}
	return left, nil
}

// and = comparison ( "&&" comparison )*
func (p *Parser) parseAnd() (expr.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.ANDAND {
		p.next()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: expr.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

// comparison = addsub ( (==|!=|<|>|<=|>=) addsub )?
func (p *Parser) parseComparison() (expr.Expr, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	if op, ok := compareOp(p.cur.Type); ok {
		p.next()
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		return &expr.Binary{Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

func compareOp(t lexer.TokenType) (expr.BinaryOp, bool) {
	switch t {
	case lexer.EQ:
		return expr.OpEqual, true
	case lexer.NEQ:
		return expr.OpNotEqual, true
	case lexer.LT:
		return expr.OpLessThan, true
	case lexer.LTE:
		return expr.OpLessOrEqual, true
	case lexer.GT:
		return expr.OpGreaterThan, true
	case lexer.GTE:
		return expr.OpGreaterOrEqual, true
	}
	return 0, false
}

// addsub = muldiv ( ("+"|"-") muldiv )*
func (p *Parser) parseAddSub() (expr.Expr, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op := expr.OpSum
		if p.cur.Type == lexer.MINUS {
			op = expr.OpDifference
		}
		p.next()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// muldiv = unary ( ("*"|"/"|"%") unary )*
func (p *Parser) parseMulDiv() (expr.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op expr.BinaryOp
		switch p.cur.Type {
		case lexer.STAR:
			op = expr.OpProduct
		case lexer.SLASH:
			op = expr.OpQuotient
		case lexer.PERCENT:
			op = expr.OpRemainder
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: op, Left: left, Right: right}
	}
}

// unary = ("-" | "!") unary | power
func (p *Parser) parseUnary() (expr.Expr, error) {
	if p.cur.Type == lexer.MINUS || p.cur.Type == lexer.BANG {
		op := expr.OpNegate
		if p.cur.Type == lexer.BANG {
			op = expr.OpNot
		}
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &expr.Unary{Op: op, Operand: operand}, nil
	}
	return p.parsePower()
}

// power = primary ( "^" unary )?
// Right-associative, and binds tighter than unary minus: -2 ^ 4
// negates the power.
func (p *Parser) parsePower() (expr.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.CARET {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &expr.Binary{Op: expr.OpPower, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parsePrimary() (expr.Expr, error) {
	switch p.cur.Type {
	case lexer.INT:
		tok := p.cur
		p.next()
		value, ok := new(big.Int).SetString(tok.Lexeme, 10)
		if !ok {
			return nil, p.errAt(tok, "Invalid integer literal")
		}
		return &expr.Integer{Value: value}, nil

	case lexer.DECIMAL:
		tok := p.cur
		p.next()
		value, ok := new(big.Rat).SetString(tok.Lexeme)
		if !ok {
			return nil, p.errAt(tok, "Invalid decimal literal")
		}
		return &expr.Rational{Value: value, Repr: expr.Decimal}, nil

	case lexer.TRUE:
		p.next()
		return &expr.Boolean{Value: true}, nil

	case lexer.FALSE:
		p.next()
		return &expr.Boolean{Value: false}, nil

	case lexer.IDENT:
		name := p.cur.Lexeme
		p.next()

		if p.cur.Type == lexer.LPAREN {
			args := []expr.Expr{}
			p.next()
			if p.cur.Type != lexer.RPAREN {
				for {
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)

					if p.cur.Type == lexer.COMMA {
						p.next()
						continue
					}
					if p.cur.Type == lexer.RPAREN {
						break
					}
					return nil, p.errAt(p.cur, "Expected ',' or ')' in call arguments")
				}
			}
			p.next()
			return &expr.Call{Name: name, Args: args}, nil
		}

		return &expr.Variable{Name: name}, nil

	case lexer.LPAREN:
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.RPAREN {
			return nil, p.errAt(p.cur, "Expected ')'")
		}
		p.next()
		return e, nil

	case lexer.LBRACKET:
		return p.parseBracketList()

	default:
		return nil, p.errAt(p.cur, "Expected an expression")
	}
}

// bracketList = "[" [ expr ("," expr)* ] "]"
// A list whose elements are all nonempty bracket lists of one common
// length reads as a matrix; anything else is a vector.
func (p *Parser) parseBracketList() (expr.Expr, error) {
	p.next()

	elems := []expr.Expr{}
	if p.cur.Type == lexer.RBRACKET {
		p.next()
		return &expr.Vector{Elements: elems}, nil
	}

	for {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		if p.cur.Type == lexer.RBRACKET {
			p.next()
			break
		}
		return nil, p.errAt(p.cur, "Expected ',' or ']' in list")
	}

	if m, ok := matrixFromRows(elems); ok {
		return m, nil
	}
	return &expr.Vector{Elements: elems}, nil
}

func matrixFromRows(elems []expr.Expr) (*expr.Matrix, bool) {
	cols := 0
	rows := make([]*expr.Vector, 0, len(elems))
	for idx, el := range elems {
		v, ok := el.(*expr.Vector)
		if !ok || len(v.Elements) == 0 {
			return nil, false
		}
		if idx == 0 {
			cols = len(v.Elements)
		} else if len(v.Elements) != cols {
			return nil, false
		}
		rows = append(rows, v)
	}
	flat := make([]expr.Expr, 0, len(rows)*cols)
	for _, row := range rows {
		flat = append(flat, row.Elements...)
	}
	return expr.NewMatrix(len(rows), cols, flat), true
}

func (p *Parser) errAt(tok lexer.Token, msg string) error {
	if tok.Type == lexer.EOF {
		return &Error{Msg: msg}
	}
	return &Error{Line: tok.Line, Col: tok.Col, Msg: msg, Got: string(tok.Type)}
}
