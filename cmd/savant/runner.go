package main

import (
	"fmt"
	"sort"

	"savant/evaluator"
	"savant/expr"
	"savant/lexer"
	"savant/parser"
)

// session holds the variable bindings accumulated over one run.
// Assignments store the evaluated result, not the written expression.
type session struct {
	bindings map[string]expr.Expr
}

func newSession() *session {
	return &session{bindings: map[string]expr.Expr{}}
}

// runLine parses and evaluates one input line. An assignment binds
// the result and echoes it; a bare expression just prints.
func (s *session) runLine(src string) error {
	// Blank and comment-only lines are skipped.
	if lexer.New(src).NextToken().Type == lexer.EOF {
		return nil
	}

	line, err := parser.New(lexer.New(src)).ParseLine()
	if err != nil {
		return err
	}

	result, err := evaluator.Evaluate(line.Value, s.bindings)
	if err != nil {
		return err
	}

	if line.Name != "" {
		s.bindings[line.Name] = result
		fmt.Printf("%s = %s\n", line.Name, result)
		return nil
	}

	fmt.Println(result)
	return nil
}

func (s *session) reset() {
	s.bindings = map[string]expr.Expr{}
}

// names returns the bound variable names in sorted order.
func (s *session) names() []string {
	names := make([]string, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
