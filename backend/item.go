package codegen

import "github.com/loto-lang/loto/frontend/ast"

// genItem emits one top-level declaration or statement.
func (cg *Codegen) genItem(stmt ast.Stmt, sc *scope) {
	switch it := stmt.(type) {
	case *ast.ComponentDeclaration:
		cg.genComponent(it)
	default:
		cg.genStmt(stmt, 0, sc)
	}
}
