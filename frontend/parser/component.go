package parser

import (
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

// parseComponent parses the props, state, method, render and style
// sub-blocks in any order.
func (p *parser) parseComponent() *ast.ComponentDeclaration {
	spanStart := p.span()
	p.expect("component")
	name := p.expectIdent()
	comp := ast.NewComponentDeclaration(name.Raw, spanStart)

	p.parseIndented(func() {
		kw, _ := p.Token.(lexer.TokKeyword)
		switch kw.Keyword {
		case lexer.KwProps:
			comp.Props = append(comp.Props, p.parseProps()...)
		case lexer.KwState:
			comp.State = append(comp.State, p.parseState()...)
		case lexer.KwDef:
			comp.Methods = append(comp.Methods, p.parseFunction())
		case lexer.KwRender:
			if comp.Render != nil {
				p.failMsg("duplicate render block in component " + name.Raw)
			}
			comp.Render = p.parseRender()
		case lexer.KwStyle:
			if comp.Style != nil {
				p.failMsg("duplicate style block in component " + name.Raw)
			}
			comp.Style = p.parseStyle()
		default:
			p.failMsg("expected props, state, def, render or style but got " + lexer.Describe(p.Token))
		}
	})

	p.skipNewlines()
	p.expect("end")
	comp.SetSpan(SpanFrom(spanStart, p.prevSpan()))
	p.expectNewline()

	return comp
}

// parseTypedEntry reads `name : type [= value]`.
func (p *parser) parseTypedEntry() (name, typ string, value ast.Expr, span Span) {
	spanStart := p.span()
	name = p.expectIdent().Raw
	p.expect(":")
	typ = p.expectIdent().Raw
	if p.tryConsume("=") {
		value = p.parseExpr()
	}
	span = SpanFrom(spanStart, p.prevSpan())
	p.expectNewline()
	return
}

func (p *parser) parseProps() []*ast.PropDeclaration {
	p.expect("props")
	var props []*ast.PropDeclaration
	p.parseIndented(func() {
		name, typ, def, span := p.parseTypedEntry()
		props = append(props, ast.NewPropDeclaration(name, typ, def, span))
	})
	p.expectEnd()
	return props
}

func (p *parser) parseState() []*ast.StateDeclaration {
	p.expect("state")
	var state []*ast.StateDeclaration
	p.parseIndented(func() {
		name, typ, init, span := p.parseTypedEntry()
		state = append(state, ast.NewStateDeclaration(name, typ, init, span))
	})
	p.expectEnd()
	return state
}
