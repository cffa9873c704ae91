package ast

import "github.com/loto-lang/loto/common"

type RenderBlock struct {
	Elements []*JSXElement
	spanned
}

func NewRenderBlock(elements []*JSXElement, span common.Span) *RenderBlock {
	return &RenderBlock{Elements: elements, spanned: spanned{span}}
}

func (r *RenderBlock) Kind() string { return "RenderBlock" }

// JSXAttribute is `name=value`; Name keeps the source spelling, e.g. `on:press`.
type JSXAttribute struct {
	Name  string
	Value Expr
}

type JSXElement struct {
	Tag        string
	ClassName  string // "" when absent
	Attributes []JSXAttribute
	Children   []JSXNode
	spanned
}

func NewJSXElement(tag, className string, attributes []JSXAttribute, children []JSXNode, span common.Span) *JSXElement {
	return &JSXElement{
		Tag:        tag,
		ClassName:  className,
		Attributes: attributes,
		Children:   children,
		spanned:    spanned{span},
	}
}

func (e *JSXElement) Kind() string { return "JSXElement" }
func (e *JSXElement) isJSXNode()   {}

// IsInline reports whether every child is text or an interpolation.
func (e *JSXElement) IsInline() bool {
	for _, c := range e.Children {
		if _, ok := c.(*JSXElement); ok {
			return false
		}
	}
	return true
}

type JSXText struct {
	Value string
	spanned
}

func NewJSXText(value string, span common.Span) *JSXText {
	return &JSXText{Value: value, spanned: spanned{span}}
}

func (t *JSXText) Kind() string { return "JSXText" }
func (t *JSXText) isJSXNode()   {}

// JSXInterpolation keeps the raw text between `{{` and `}}`.
type JSXInterpolation struct {
	Raw string
	spanned
}

func NewJSXInterpolation(raw string, span common.Span) *JSXInterpolation {
	return &JSXInterpolation{Raw: raw, spanned: spanned{span}}
}

func (i *JSXInterpolation) Kind() string { return "JSXInterpolation" }
func (i *JSXInterpolation) isJSXNode()   {}
func (i *JSXInterpolation) isExpr()      {}
