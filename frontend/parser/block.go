package parser

import (
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

// parseIndented consumes the newline that opens a block and, when the next
// line is indented, calls parse once per entry until the matching dedent.
// The closing keyword is left for the caller.
func (p *parser) parseIndented(parse func()) {
	p.expectNewline()
	p.skipNewlines()
	if !lexer.IsIndent(p.Token) {
		return
	}
	p.advance()
	for {
		p.skipNewlines()
		if lexer.IsDedent(p.Token) {
			p.advance()
			return
		}
		if lexer.IsEOF(p.Token) {
			p.fail(lexer.KindDedent, "")
		}
		parse()
	}
}

// parseBody parses an indented statement list.
func (p *parser) parseBody() []ast.Stmt {
	var stmts []ast.Stmt
	p.depth++
	p.parseIndented(func() {
		stmts = append(stmts, p.parseStmt())
	})
	p.depth--
	return stmts
}
