package parser

import (
	"strings"

	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

func (p *parser) parseRender() *ast.RenderBlock {
	spanStart := p.span()
	p.expect("render")
	elements := p.parseElementBlock()
	p.skipNewlines()
	p.expect("end")
	span := SpanFrom(spanStart, p.prevSpan())
	p.expectNewline()
	return ast.NewRenderBlock(elements, span)
}

// parseElementBlock parses the element lines of an indented block, if any.
func (p *parser) parseElementBlock() []*ast.JSXElement {
	var elements []*ast.JSXElement
	p.parseIndented(func() {
		elements = append(elements, p.parseElement())
	})
	return elements
}

// parseElement parses `Tag[.class]*[(attrs)] [content]` and its children.
func (p *parser) parseElement() *ast.JSXElement {
	spanStart := p.span()
	tag := p.expectIdent()

	var classes []string
	for p.Token.Is(".") && p.adjacent() {
		p.advance()
		classes = append(classes, p.parseDashedName())
	}

	var attrs []ast.JSXAttribute
	if p.Token.Is("(") && p.adjacent() {
		attrs = p.parseAttributes()
	}

	children := p.parseInlineContent()
	span := SpanFrom(spanStart, p.prevSpan())
	for _, child := range p.parseElementBlock() {
		children = append(children, child)
	}

	return ast.NewJSXElement(tag.Raw, strings.Join(classes, " "), attrs, children, span)
}

// parseAttributes parses `(name=value ...)`, separated by spaces or commas.
func (p *parser) parseAttributes() []ast.JSXAttribute {
	var attrs []ast.JSXAttribute
	p.expect("(")
	for !p.Token.Is(")") {
		name := p.parseAttributeName()
		p.expect("=")
		attrs = append(attrs, ast.JSXAttribute{Name: name, Value: p.parseExpr()})
		p.tryConsume(",")
	}
	p.expect(")")
	return attrs
}

// parseAttributeName reads `word[:word]` with optional dashed parts, e.g.
// `on:press` or `aria-label`.
func (p *parser) parseAttributeName() string {
	name := p.parseDashedName()
	if p.Token.Is(":") && p.adjacent() {
		p.advance()
		name += ":" + p.parseDashedName()
	}
	return name
}

// parseInlineContent turns the rest of the line into text and
// interpolation children. Adjacent words join with single spaces into one
// text node; interpolations always stand alone.
func (p *parser) parseInlineContent() []ast.JSXNode {
	var children []ast.JSXNode
	var words []string
	var textSpan Span

	flush := func() {
		if len(words) > 0 {
			children = append(children, ast.NewJSXText(strings.Join(words, " "), textSpan))
			words = nil
		}
	}

	for !lexer.IsNewline(p.Token) && !lexer.IsEOF(p.Token) {
		tok := p.Token
		if interp, ok := tok.(lexer.TokJSXInterpolation); ok {
			flush()
			children = append(children, ast.NewJSXInterpolation(interp.Raw, interp.Span()))
		} else {
			if len(words) == 0 {
				textSpan = tok.Span()
			} else {
				textSpan = SpanFrom(textSpan, tok.Span())
			}
			words = append(words, tok.String())
		}
		p.advance()
	}
	flush()

	return children
}
