package codegen

import (
	"strings"

	"github.com/loto-lang/loto/frontend/ast"
)

func paramList(params []ast.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// functionScope opens a body scope where the parameters are already
// declared.
func functionScope(parent *scope, params []ast.Param) *scope {
	sc := newScope(parent)
	for _, p := range params {
		sc.declare(p.Name)
	}
	return sc
}

func (cg *Codegen) genFunction(fn *ast.FunctionDeclaration, indent int, sc *scope) {
	cg.ln(indent, "function %s(%s) {", fn.Name, paramList(fn.Params))
	cg.genStmts(fn.Body, indent+1, functionScope(sc, fn.Params))
	cg.ln(indent, "}")
	cg.blank()
}
