package ast

import "github.com/loto-lang/loto/common"

/* Assignment */

type Assignment struct {
	Name  string
	Value Expr
	spanned
}

func NewAssignment(name string, value Expr, span common.Span) *Assignment {
	return &Assignment{Name: name, Value: value, spanned: spanned{span}}
}

func (a *Assignment) Kind() string { return "Assignment" }
func (a *Assignment) isStmt()      {}

/* PropertyAssignment */

// PropertyAssignment is `a.b.c = value`.
type PropertyAssignment struct {
	Target *PropertyAccess
	Value  Expr
	spanned
}

func NewPropertyAssignment(target *PropertyAccess, value Expr, span common.Span) *PropertyAssignment {
	return &PropertyAssignment{Target: target, Value: value, spanned: spanned{span}}
}

func (a *PropertyAssignment) Kind() string { return "PropertyAssignment" }
func (a *PropertyAssignment) isStmt()      {}

/* InstanceVarAssignment */

// InstanceVarAssignment is `@name = value`; Name has no sigil.
type InstanceVarAssignment struct {
	Name  string
	Value Expr
	spanned
}

func NewInstanceVarAssignment(name string, value Expr, span common.Span) *InstanceVarAssignment {
	return &InstanceVarAssignment{Name: name, Value: value, spanned: spanned{span}}
}

func (a *InstanceVarAssignment) Kind() string { return "InstanceVarAssignment" }
func (a *InstanceVarAssignment) isStmt()      {}

/* Print */

type PrintStatement struct {
	Value Expr
	spanned
}

func NewPrintStatement(value Expr, span common.Span) *PrintStatement {
	return &PrintStatement{Value: value, spanned: spanned{span}}
}

func (p *PrintStatement) Kind() string { return "PrintStatement" }
func (p *PrintStatement) isStmt()      {}

/* Return */

type ReturnStatement struct {
	Value Expr // nil for a bare return
	spanned
}

func NewReturnStatement(value Expr, span common.Span) *ReturnStatement {
	return &ReturnStatement{Value: value, spanned: spanned{span}}
}

func (r *ReturnStatement) Kind() string { return "ReturnStatement" }
func (r *ReturnStatement) isStmt()      {}

/* If */

type ElsifBlock struct {
	Condition Expr
	Body      []Stmt
}

type IfStatement struct {
	Condition Expr
	Then      []Stmt
	Elsifs    []ElsifBlock
	Else      []Stmt
	HasElse   bool
	spanned
}

func NewIfStatement(cond Expr, then []Stmt, elsifs []ElsifBlock, els []Stmt, hasElse bool, span common.Span) *IfStatement {
	return &IfStatement{
		Condition: cond,
		Then:      then,
		Elsifs:    elsifs,
		Else:      els,
		HasElse:   hasElse,
		spanned:   spanned{span},
	}
}

func (i *IfStatement) Kind() string { return "IfStatement" }
func (i *IfStatement) isStmt()      {}
