package parser

import (
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

func (p *parser) parseExpr() ast.Expr {
	return p.parseBinaryRest(p.parseOperand())
}

// parseOperand parses everything but a trailing binary operator.
func (p *parser) parseOperand() ast.Expr {
	spanStart := p.span()

	switch t := p.Token.(type) {
	case lexer.TokString:
		p.advance()
		return ast.NewStringLiteral(t.Raw, t.Span())
	case lexer.TokInterpolatedString:
		p.advance()
		return ast.NewInterpolatedString(t.Raw, t.Span())
	case lexer.TokNumber:
		p.advance()
		return ast.NewNumberLiteral(t.Raw, t.Span())
	case lexer.TokIdent:
		p.advance()
		if p.Token.Is("(") {
			args := p.parseArgs()
			call := ast.NewCallExpression(t.Raw, args, SpanFrom(spanStart, p.prevSpan()))
			return p.parseAccessChain(call)
		}
		return p.parseAccessChain(ast.NewIdentifier(t.Raw, t.Span()))
	case lexer.TokInstanceVar:
		p.advance()
		if p.Token.Is("(") {
			args := p.parseArgs()
			call := ast.NewInstanceMethodCall(t.Name(), args, SpanFrom(spanStart, p.prevSpan()))
			return p.parseAccessChain(call)
		}
		return p.parseAccessChain(ast.NewInstanceVar(t.Name(), t.Span()))
	case lexer.TokKeyword:
		switch t.Keyword {
		case lexer.KwTrue, lexer.KwFalse:
			p.advance()
			return ast.NewBooleanLiteral(t.Keyword == lexer.KwTrue, t.Span())
		case lexer.KwNull:
			p.advance()
			return ast.NewNullLiteral(t.Span())
		case lexer.KwNew:
			return p.parseNew()
		}
	case lexer.TokPunct:
		switch t.Punct {
		case lexer.PunctOpenParen:
			p.advance()
			inner := p.parseExpr()
			p.expect(")")
			if bin, ok := inner.(*ast.BinaryExpression); ok {
				bin.Grouped = true
			}
			return inner
		case lexer.PunctMinus:
			num, ok := p.peek().(lexer.TokNumber)
			if ok && num.Span().LineStart == t.Span().LineEnd && num.Span().ColumnStart == t.Span().ColumnEnd+1 {
				p.advance()
				p.advance()
				return ast.NewNumberLiteral("-"+num.Raw, SpanFrom(spanStart, num.Span()))
			}
		}
	}

	p.failMsg("unexpected " + lexer.Describe(p.Token) + " in expression")
	panic("unreachable")
}

// parseAccessChain folds `.name` and `.name(args)` suffixes onto base.
func (p *parser) parseAccessChain(base ast.Expr) ast.Expr {
	spanStart := base.Span()
	var props []string

	flush := func() {
		if len(props) == 0 {
			return
		}
		span := SpanFrom(spanStart, p.prevSpan())
		if iv, ok := base.(*ast.InstanceVar); ok {
			base = ast.NewInstanceVarAccess(iv.Name, props, span)
		} else {
			base = ast.NewPropertyAccess(base, props, span)
		}
		props = nil
	}

	for p.tryConsume(".") {
		name := p.expectName()
		if p.Token.Is("(") {
			flush()
			args := p.parseArgs()
			base = ast.NewMethodCall(base, name, args, SpanFrom(spanStart, p.prevSpan()))
			continue
		}
		props = append(props, name)
	}
	flush()

	return base
}

func (p *parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	p.expect("(")
	p.parseCommaSeparatedDelimited(")", func(p *parser) {
		args = append(args, p.parseExpr())
	})
	return args
}

func (p *parser) parseNew() ast.Expr {
	spanStart := p.span()
	p.expect("new")
	class := p.expectIdent()
	var args []ast.Expr
	if p.Token.Is("(") {
		args = p.parseArgs()
	}
	return ast.NewNewExpression(class.Raw, args, SpanFrom(spanStart, p.prevSpan()))
}
