package parser

import (
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

// parseClass parses property declarations (`name : type`) and methods in
// source order. Anything else ends the member list.
func (p *parser) parseClass() *ast.ClassDeclaration {
	spanStart := p.span()
	p.expect("class")
	name := p.expectIdent()
	p.expectNewline()
	p.skipNewlines()

	var properties []ast.Property
	var methods []*ast.FunctionDeclaration

	if lexer.IsIndent(p.Token) {
		p.advance()
	members:
		for {
			p.skipNewlines()
			_, isIdent := p.Token.(lexer.TokIdent)
			switch {
			case isIdent && p.peek().Is(":"):
				prop := ast.Property{Name: p.expectIdent().Raw}
				p.expect(":")
				prop.Type = p.expectIdent().Raw
				p.expectNewline()
				properties = append(properties, prop)
			case p.Token.Is("def"):
				methods = append(methods, p.parseFunction())
			default:
				break members
			}
		}
		p.expectDedent()
	}

	p.skipNewlines()
	p.expect("end")
	span := SpanFrom(spanStart, p.prevSpan())
	p.expectNewline()

	return ast.NewClassDeclaration(name.Raw, properties, methods, span)
}
