package parser

import (
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

// parseFunction parses `def name[(params)][: type]` and its body.
func (p *parser) parseFunction() *ast.FunctionDeclaration {
	spanStart := p.span()
	p.expect("def")

	name := p.parseFunctionName()

	var params []ast.Param
	if p.tryConsume("(") {
		p.parseCommaSeparatedDelimited(")", func(p *parser) {
			param := ast.Param{Name: p.expectIdent().Raw}
			if p.tryConsume(":") {
				param.Type = p.expectIdent().Raw
			}
			params = append(params, param)
		})
	}

	var returnType string
	if p.tryConsume(":") {
		returnType = p.expectIdent().Raw
	}

	p.funcDepth++
	body := p.parseBody()
	p.funcDepth--

	// single-expression sugar; string-led statements are returns already
	if len(body) == 1 {
		if call, ok := body[0].(*ast.CallExpression); ok {
			body[0] = ast.NewReturnStatement(call, call.Span())
		}
	}

	p.skipNewlines()
	p.expect("end")
	span := SpanFrom(spanStart, p.prevSpan())
	p.expectNewline()

	return ast.NewFunctionDeclaration(name, params, returnType, body, span)
}

// parseFunctionName also accepts the `construct` and `print` keywords.
func (p *parser) parseFunctionName() string {
	if kw, ok := p.Token.(lexer.TokKeyword); ok {
		switch kw.Keyword {
		case lexer.KwConstruct, lexer.KwPrint:
			p.advance()
			return kw.String()
		}
	}
	return p.expectIdent().Raw
}
