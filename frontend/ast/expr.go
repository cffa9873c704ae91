package ast

import (
	"strings"

	"github.com/loto-lang/loto/common"
)

/* Literals */

// StringLiteral holds the text between the quotes.
type StringLiteral struct {
	Value string
	spanned
}

func NewStringLiteral(value string, span common.Span) *StringLiteral {
	return &StringLiteral{Value: value, spanned: spanned{span}}
}

func (s *StringLiteral) Kind() string { return "StringLiteral" }
func (s *StringLiteral) isExpr()      {}
func (s *StringLiteral) isStmt()      {}

// InterpolatedString keeps the raw template with its `#{...}` spans.
type InterpolatedString struct {
	Raw string
	spanned
}

func NewInterpolatedString(raw string, span common.Span) *InterpolatedString {
	return &InterpolatedString{Raw: raw, spanned: spanned{span}}
}

func (s *InterpolatedString) Kind() string { return "InterpolatedString" }
func (s *InterpolatedString) isExpr()      {}
func (s *InterpolatedString) isStmt()      {}

type NumberLiteral struct {
	Raw string
	spanned
}

func NewNumberLiteral(raw string, span common.Span) *NumberLiteral {
	return &NumberLiteral{Raw: raw, spanned: spanned{span}}
}

func (n *NumberLiteral) Kind() string { return "NumberLiteral" }
func (n *NumberLiteral) isExpr()      {}

type BooleanLiteral struct {
	Value bool
	spanned
}

func NewBooleanLiteral(value bool, span common.Span) *BooleanLiteral {
	return &BooleanLiteral{Value: value, spanned: spanned{span}}
}

func (b *BooleanLiteral) Kind() string { return "BooleanLiteral" }
func (b *BooleanLiteral) isExpr()      {}

type NullLiteral struct {
	spanned
}

func NewNullLiteral(span common.Span) *NullLiteral {
	return &NullLiteral{spanned: spanned{span}}
}

func (n *NullLiteral) Kind() string { return "NullLiteral" }
func (n *NullLiteral) isExpr()      {}

/* Names */

type Identifier struct {
	Name string
	spanned
}

func NewIdentifier(name string, span common.Span) *Identifier {
	return &Identifier{Name: name, spanned: spanned{span}}
}

func (i *Identifier) Kind() string { return "Identifier" }
func (i *Identifier) isExpr()      {}

// InstanceVar is `@name`; Name has no sigil.
type InstanceVar struct {
	Name string
	spanned
}

func NewInstanceVar(name string, span common.Span) *InstanceVar {
	return &InstanceVar{Name: name, spanned: spanned{span}}
}

func (i *InstanceVar) Kind() string { return "InstanceVar" }
func (i *InstanceVar) isExpr()      {}

// InstanceVarAccess is `@name.a.b`.
type InstanceVarAccess struct {
	Name       string
	Properties []string
	spanned
}

func NewInstanceVarAccess(name string, properties []string, span common.Span) *InstanceVarAccess {
	return &InstanceVarAccess{Name: name, Properties: properties, spanned: spanned{span}}
}

func (i *InstanceVarAccess) Kind() string { return "InstanceVarAccess" }
func (i *InstanceVarAccess) isExpr()      {}

// PropertyAccess is `object.a.b`. It may stand alone as a statement.
type PropertyAccess struct {
	Object     Expr
	Properties []string
	spanned
}

func NewPropertyAccess(object Expr, properties []string, span common.Span) *PropertyAccess {
	return &PropertyAccess{Object: object, Properties: properties, spanned: spanned{span}}
}

func (p *PropertyAccess) Kind() string { return "PropertyAccess" }
func (p *PropertyAccess) isExpr()      {}
func (p *PropertyAccess) isStmt()      {}

// Path renders the dotted chain without the object.
func (p *PropertyAccess) Path() string {
	return strings.Join(p.Properties, ".")
}

/* Calls */

type NewExpression struct {
	ClassName string
	Args      []Expr
	spanned
}

func NewNewExpression(className string, args []Expr, span common.Span) *NewExpression {
	return &NewExpression{ClassName: className, Args: args, spanned: spanned{span}}
}

func (n *NewExpression) Kind() string { return "NewExpression" }
func (n *NewExpression) isExpr()      {}

// CallExpression is `callee(args)`, also used as a statement.
type CallExpression struct {
	Callee string
	Args   []Expr
	spanned
}

func NewCallExpression(callee string, args []Expr, span common.Span) *CallExpression {
	return &CallExpression{Callee: callee, Args: args, spanned: spanned{span}}
}

func (c *CallExpression) Kind() string { return "CallExpression" }
func (c *CallExpression) isExpr()      {}
func (c *CallExpression) isStmt()      {}

// MethodCall is `object.method(args)`, where Object may itself be a chain.
type MethodCall struct {
	Object Expr
	Method string
	Args   []Expr
	spanned
}

func NewMethodCall(object Expr, method string, args []Expr, span common.Span) *MethodCall {
	return &MethodCall{Object: object, Method: method, Args: args, spanned: spanned{span}}
}

func (m *MethodCall) Kind() string { return "MethodCall" }
func (m *MethodCall) isExpr()      {}
func (m *MethodCall) isStmt()      {}

// InstanceMethodCall is `@method(args)`.
type InstanceMethodCall struct {
	Method string
	Args   []Expr
	spanned
}

func NewInstanceMethodCall(method string, args []Expr, span common.Span) *InstanceMethodCall {
	return &InstanceMethodCall{Method: method, Args: args, spanned: spanned{span}}
}

func (m *InstanceMethodCall) Kind() string { return "InstanceMethodCall" }
func (m *InstanceMethodCall) isExpr()      {}
func (m *InstanceMethodCall) isStmt()      {}

/* Binary */

type BinaryExpression struct {
	Left     Expr
	Operator string
	Right    Expr
	// Grouped is set when the source wrapped the expression in parentheses.
	Grouped bool
	spanned
}

func NewBinaryExpression(left Expr, op string, right Expr, span common.Span) *BinaryExpression {
	return &BinaryExpression{Left: left, Operator: op, Right: right, spanned: spanned{span}}
}

func (b *BinaryExpression) Kind() string { return "BinaryExpression" }
func (b *BinaryExpression) isExpr()      {}
