package parser

import "github.com/loto-lang/loto/frontend/ast"

// parseStyle parses selector rules, each followed by an indented list of
// `property : value` declarations.
func (p *parser) parseStyle() *ast.StyleBlock {
	spanStart := p.span()
	p.expect("style")

	var rules []ast.StyleRule
	p.parseIndented(func() {
		rules = append(rules, p.parseStyleRule())
	})

	p.skipNewlines()
	p.expect("end")
	span := SpanFrom(spanStart, p.prevSpan())
	p.expectNewline()
	return ast.NewStyleBlock(rules, span)
}

func (p *parser) parseStyleRule() ast.StyleRule {
	p.tryConsume(".")
	rule := ast.StyleRule{Selector: p.parseDashedName()}
	p.parseIndented(func() {
		prop := p.parseDashedName()
		p.expect(":")
		value := p.parseExpr()
		p.expectNewline()
		rule.Declarations = append(rule.Declarations, ast.StyleDeclaration{Property: prop, Value: value})
	})
	return rule
}
