package parser

import (
	"fmt"

	"github.com/loto-lang/loto/common"
	"github.com/loto-lang/loto/frontend/lexer"
)

// SyntaxError is returned the first time a required token is missing or
// mismatched.
type SyntaxError struct {
	Expected      lexer.Kind
	ExpectedValue string // "" when any value of Expected would do
	Actual        lexer.Token
	// Msg replaces the expected/actual wording when set.
	Msg string
}

func (e *SyntaxError) Error() string {
	line := lexer.Line(e.Actual)
	if e.Msg != "" {
		return fmt.Sprintf("%s at line %d", e.Msg, line)
	}
	expected := e.Expected.String()
	if e.ExpectedValue != "" {
		expected += fmt.Sprintf(" %q", e.ExpectedValue)
	}
	return fmt.Sprintf("expected %s but got %s at line %d", expected, lexer.Describe(e.Actual), line)
}

func (e *SyntaxError) Span() common.Span {
	return e.Actual.Span()
}

func (p *parser) fail(kind lexer.Kind, value string) {
	panic(&SyntaxError{Expected: kind, ExpectedValue: value, Actual: p.Token})
}

func (p *parser) failMsg(msg string) {
	panic(&SyntaxError{Actual: p.Token, Msg: msg})
}
