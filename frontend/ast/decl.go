package ast

import "github.com/loto-lang/loto/common"

/* Function */

type Param struct {
	Name string
	Type string // "" when unannotated
}

type FunctionDeclaration struct {
	Name       string
	Params     []Param
	ReturnType string // "" when unannotated
	Body       []Stmt
	spanned
}

func NewFunctionDeclaration(name string, params []Param, returnType string, body []Stmt, span common.Span) *FunctionDeclaration {
	return &FunctionDeclaration{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		spanned:    spanned{span},
	}
}

func (f *FunctionDeclaration) Kind() string { return "FunctionDeclaration" }
func (f *FunctionDeclaration) isStmt()      {}

// IsConstructor reports whether f is a class initializer.
func (f *FunctionDeclaration) IsConstructor() bool {
	return f.Name == "construct"
}

/* Class */

type Property struct {
	Name string
	Type string
}

type ClassDeclaration struct {
	Name       string
	Properties []Property
	Methods    []*FunctionDeclaration
	spanned
}

func NewClassDeclaration(name string, properties []Property, methods []*FunctionDeclaration, span common.Span) *ClassDeclaration {
	return &ClassDeclaration{
		Name:       name,
		Properties: properties,
		Methods:    methods,
		spanned:    spanned{span},
	}
}

func (c *ClassDeclaration) Kind() string { return "ClassDeclaration" }
func (c *ClassDeclaration) isStmt()      {}

// Constructor returns the `construct` method, or nil.
func (c *ClassDeclaration) Constructor() *FunctionDeclaration {
	for _, m := range c.Methods {
		if m.IsConstructor() {
			return m
		}
	}
	return nil
}

/* Component */

type ComponentDeclaration struct {
	Name    string
	Props   []*PropDeclaration
	State   []*StateDeclaration
	Methods []*FunctionDeclaration
	Render  *RenderBlock // nil when absent
	Style   *StyleBlock  // nil when absent
	spanned
}

func NewComponentDeclaration(name string, span common.Span) *ComponentDeclaration {
	return &ComponentDeclaration{Name: name, spanned: spanned{span}}
}

func (c *ComponentDeclaration) Kind() string { return "ComponentDeclaration" }
func (c *ComponentDeclaration) isStmt()      {}

// SetSpan is used once the closing `end` is known.
func (c *ComponentDeclaration) SetSpan(span common.Span) {
	c.span = span
}

// StateNames is the set of declared state entries.
func (c *ComponentDeclaration) StateNames() map[string]struct{} {
	names := make(map[string]struct{}, len(c.State))
	for _, s := range c.State {
		names[s.Name] = struct{}{}
	}
	return names
}

type PropDeclaration struct {
	Name    string
	Type    string
	Default Expr // nil when absent
	spanned
}

func NewPropDeclaration(name, typ string, def Expr, span common.Span) *PropDeclaration {
	return &PropDeclaration{Name: name, Type: typ, Default: def, spanned: spanned{span}}
}

func (p *PropDeclaration) Kind() string { return "PropDeclaration" }

type StateDeclaration struct {
	Name    string
	Type    string
	Initial Expr // nil when absent
	spanned
}

func NewStateDeclaration(name, typ string, initial Expr, span common.Span) *StateDeclaration {
	return &StateDeclaration{Name: name, Type: typ, Initial: initial, spanned: spanned{span}}
}

func (s *StateDeclaration) Kind() string { return "StateDeclaration" }
