package parser

import (
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

func isBinaryOp(t lexer.Token) bool {
	punct, ok := t.(lexer.TokPunct)
	if !ok {
		return false
	}
	switch punct.Punct {
	case lexer.PunctPlus, lexer.PunctMinus, lexer.PunctAsterisk, lexer.PunctSlash:
		return true
	}
	return punct.Punct.IsOperator()
}

// parseBinaryRest builds `left op rest` where rest is parsed recursively,
// so every operator chain groups to the right: `a - b - c` is `a - (b - c)`.
// Operators share a single precedence level.
func (p *parser) parseBinaryRest(left ast.Expr) ast.Expr {
	if !isBinaryOp(p.Token) {
		return left
	}
	op := p.Token.String()
	p.advance()
	right := p.parseExpr()
	return ast.NewBinaryExpression(left, op, right, SpanFrom(left.Span(), right.Span()))
}
