package parser

import (
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

func (p *parser) parseStmt() ast.Stmt {
	switch t := p.Token.(type) {
	case lexer.TokKeyword:
		switch t.Keyword {
		case lexer.KwDef:
			return p.parseFunction()
		case lexer.KwClass:
			return p.parseClass()
		case lexer.KwComponent:
			if p.depth > 0 {
				p.failMsg("component declarations are only allowed at top level")
			}
			return p.parseComponent()
		case lexer.KwPrint:
			return p.parsePrint()
		case lexer.KwReturn:
			return p.parseReturn()
		case lexer.KwIf:
			return p.parseIf()
		}
		p.failMsg("unexpected keyword \"" + t.String() + "\"")
	case lexer.TokIdent:
		return p.parseIdentStmt(t)
	case lexer.TokInstanceVar:
		return p.parseInstanceVarStmt(t)
	case lexer.TokString, lexer.TokInterpolatedString:
		// a bare string is the value of the enclosing function
		spanStart := p.span()
		value := p.parseExpr()
		p.expectNewline()
		return ast.NewReturnStatement(value, SpanFrom(spanStart, value.Span()))
	}
	p.failMsg("unexpected " + lexer.Describe(p.Token))
	panic("unreachable")
}

func (p *parser) parseIdentStmt(ident lexer.TokIdent) ast.Stmt {
	spanStart := p.span()
	next := p.peek()

	switch {
	case next.Is("="):
		p.advance()
		p.advance()
		value := p.parseExpr()
		p.expectNewline()
		return ast.NewAssignment(ident.Raw, value, SpanFrom(spanStart, value.Span()))

	case next.Is("."), next.Is("("):
		target := p.parseOperand()
		if p.Token.Is("=") {
			access, ok := target.(*ast.PropertyAccess)
			if !ok {
				p.failMsg("cannot assign to " + target.Kind())
			}
			p.advance()
			value := p.parseExpr()
			p.expectNewline()
			return ast.NewPropertyAssignment(access, value, SpanFrom(spanStart, value.Span()))
		}
		if p.funcDepth > 0 && isBinaryOp(p.Token) {
			return p.finishImplicitReturn(target)
		}
		p.expectNewline()
		stmt, ok := target.(ast.Stmt)
		if !ok {
			p.failMsg(target.Kind() + " is not a statement")
		}
		return stmt
	}

	if p.funcDepth > 0 {
		return p.finishImplicitReturn(p.parseOperand())
	}

	// parenthesis-free call
	p.advance()
	p.expectNewline()
	return ast.NewCallExpression(ident.Raw, nil, spanStart)
}

// finishImplicitReturn wraps the rest of an expression statement in a
// return, given its already parsed left operand.
func (p *parser) finishImplicitReturn(left ast.Expr) ast.Stmt {
	value := p.parseBinaryRest(left)
	p.expectNewline()
	return ast.NewReturnStatement(value, value.Span())
}

func (p *parser) parseInstanceVarStmt(iv lexer.TokInstanceVar) ast.Stmt {
	spanStart := p.span()

	if p.peek().Is("=") {
		p.advance()
		p.advance()
		value := p.parseExpr()
		p.expectNewline()
		return ast.NewInstanceVarAssignment(iv.Name(), value, SpanFrom(spanStart, value.Span()))
	}

	if !p.peek().Is("(") && !p.peek().Is(".") {
		p.advance()
		p.fail(lexer.KindSymbol, "=")
	}

	target := p.parseOperand()
	switch target := target.(type) {
	case *ast.InstanceMethodCall, *ast.MethodCall:
		p.expectNewline()
		return target.(ast.Stmt)
	case *ast.InstanceVarAccess:
		p.expect("=")
		value := p.parseExpr()
		p.expectNewline()
		access := ast.NewPropertyAccess(ast.NewInstanceVar(target.Name, spanStart), target.Properties, target.Span())
		return ast.NewPropertyAssignment(access, value, SpanFrom(spanStart, value.Span()))
	}
	p.fail(lexer.KindSymbol, "=")
	panic("unreachable")
}

func (p *parser) parsePrint() ast.Stmt {
	spanStart := p.span()
	p.expect("print")
	value := p.parseExpr()
	p.expectNewline()
	return ast.NewPrintStatement(value, SpanFrom(spanStart, value.Span()))
}

func (p *parser) parseReturn() ast.Stmt {
	spanStart := p.span()
	p.expect("return")
	if lexer.IsNewline(p.Token) || lexer.IsEOF(p.Token) {
		p.expectNewline()
		return ast.NewReturnStatement(nil, spanStart)
	}
	value := p.parseExpr()
	p.expectNewline()
	return ast.NewReturnStatement(value, SpanFrom(spanStart, value.Span()))
}

// parseIf parses an if/elsif/else chain closed by a single `end`.
func (p *parser) parseIf() ast.Stmt {
	spanStart := p.span()
	p.expect("if")
	cond := p.parseExpr()
	then := p.parseBody()

	var elsifs []ast.ElsifBlock
	var els []ast.Stmt
	hasElse := false
	for {
		p.skipNewlines()
		if p.tryConsume("elsif") {
			c := p.parseExpr()
			elsifs = append(elsifs, ast.ElsifBlock{Condition: c, Body: p.parseBody()})
			continue
		}
		if p.tryConsume("else") {
			hasElse = true
			els = p.parseBody()
			p.skipNewlines()
		}
		break
	}

	p.expect("end")
	span := SpanFrom(spanStart, p.prevSpan())
	p.expectNewline()
	return ast.NewIfStatement(cond, then, elsifs, els, hasElse, span)
}
