// Package ast defines the syntax tree produced by the parser.
//
// Every node kind is a distinct Go type behind one of three sealed
// interfaces: Stmt, Expr and JSXNode. Literal values keep their source text.
package ast

import "github.com/loto-lang/loto/common"

type Node interface {
	// Kind is the node kind name, e.g. "FunctionDeclaration".
	Kind() string
	Span() common.Span
}

type Stmt interface {
	Node
	isStmt()
}

type Expr interface {
	Node
	isExpr()
}

// JSXNode is a child of a JSXElement.
type JSXNode interface {
	Node
	isJSXNode()
}

type spanned struct {
	span common.Span
}

func (s spanned) Span() common.Span {
	return s.span
}

// Program is the root; Body holds top-level declarations and statements in
// source order.
type Program struct {
	Body []Stmt
	Code string
}

func (p *Program) Kind() string { return "Program" }

func (p *Program) Span() common.Span {
	if len(p.Body) == 0 {
		return common.SpanDefault()
	}
	return common.SpanFrom(p.Body[0].Span(), p.Body[len(p.Body)-1].Span())
}

// Walk calls fn for n and every node below it, depth first. Returning false
// from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, fn)
	}
}

// Children lists the direct descendants of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil {
				out = append(out, c)
			}
		}
	}
	addStmts := func(stmts []Stmt) {
		for _, s := range stmts {
			add(s)
		}
	}
	addExprs := func(exprs []Expr) {
		for _, e := range exprs {
			add(e)
		}
	}

	switch n := n.(type) {
	case *Program:
		addStmts(n.Body)
	case *FunctionDeclaration:
		addStmts(n.Body)
	case *ClassDeclaration:
		for _, m := range n.Methods {
			add(m)
		}
	case *ComponentDeclaration:
		for _, p := range n.Props {
			add(p)
		}
		for _, s := range n.State {
			add(s)
		}
		for _, m := range n.Methods {
			add(m)
		}
		if n.Render != nil {
			add(n.Render)
		}
		if n.Style != nil {
			add(n.Style)
		}
	case *PropDeclaration:
		if n.Default != nil {
			add(n.Default)
		}
	case *StateDeclaration:
		if n.Initial != nil {
			add(n.Initial)
		}
	case *Assignment:
		add(n.Value)
	case *PropertyAssignment:
		add(n.Target, n.Value)
	case *InstanceVarAssignment:
		add(n.Value)
	case *PrintStatement:
		add(n.Value)
	case *ReturnStatement:
		if n.Value != nil {
			add(n.Value)
		}
	case *IfStatement:
		add(n.Condition)
		addStmts(n.Then)
		for _, b := range n.Elsifs {
			add(b.Condition)
			addStmts(b.Body)
		}
		addStmts(n.Else)
	case *NewExpression:
		addExprs(n.Args)
	case *PropertyAccess:
		add(n.Object)
	case *CallExpression:
		addExprs(n.Args)
	case *MethodCall:
		add(n.Object)
		addExprs(n.Args)
	case *InstanceMethodCall:
		addExprs(n.Args)
	case *BinaryExpression:
		add(n.Left, n.Right)
	case *RenderBlock:
		for _, e := range n.Elements {
			add(e)
		}
	case *JSXElement:
		for _, a := range n.Attributes {
			add(a.Value)
		}
		for _, c := range n.Children {
			add(c)
		}
	case *StyleBlock:
		for _, r := range n.Rules {
			for _, d := range r.Declarations {
				add(d.Value)
			}
		}
	}
	return out
}
