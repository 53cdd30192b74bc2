package lexer

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT   TokenType = "IDENT"
	INT     TokenType = "INT"
	DECIMAL TokenType = "DECIMAL"

	TRUE  TokenType = "TRUE"
	FALSE TokenType = "FALSE"

	ASSIGN  TokenType = "ASSIGN"
	PLUS    TokenType = "PLUS"
	MINUS   TokenType = "MINUS"
	STAR    TokenType = "STAR"
	SLASH   TokenType = "SLASH"
	PERCENT TokenType = "PERCENT"
	CARET   TokenType = "CARET"
	BANG    TokenType = "BANG"

	EQ  TokenType = "EQ"
	NEQ TokenType = "NEQ"
	LT  TokenType = "LT"
	GT  TokenType = "GT"
	LTE TokenType = "LTE"
	GTE TokenType = "GTE"

	ANDAND TokenType = "ANDAND"
	OROR   TokenType = "OROR"

	LPAREN   TokenType = "LPAREN"
	RPAREN   TokenType = "RPAREN"
	LBRACKET TokenType = "LBRACKET"
	RBRACKET TokenType = "RBRACKET"

	COMMA TokenType = "COMMA"
)

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

func (t Token) String() string {
	switch t.Type {
	case IDENT, INT, DECIMAL, ILLEGAL:
		return fmt.Sprintf("%s(%s) @ %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
	default:
		return fmt.Sprintf("%s @ %d:%d", t.Type, t.Line, t.Col)
	}
}

func LookupIdent(ident string) TokenType {
	switch ident {
	case "true":
		return TRUE
	case "false":
		return FALSE
	default:
		return IDENT
	}
}
