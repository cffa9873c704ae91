package ast

import "github.com/loto-lang/loto/common"

type StyleDeclaration struct {
	Property string // source spelling, e.g. `background-color`
	Value    Expr
}

type StyleRule struct {
	Selector     string // without the leading `.`
	Declarations []StyleDeclaration
}

type StyleBlock struct {
	Rules []StyleRule
	spanned
}

func NewStyleBlock(rules []StyleRule, span common.Span) *StyleBlock {
	return &StyleBlock{Rules: rules, spanned: spanned{span}}
}

func (s *StyleBlock) Kind() string { return "StyleBlock" }
