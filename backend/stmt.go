package codegen

import (
	"github.com/loto-lang/loto/frontend/ast"
)

func (cg *Codegen) genStmts(stmts []ast.Stmt, indent int, sc *scope) {
	for _, stmt := range stmts {
		cg.genStmt(stmt, indent, sc)
	}
}

func (cg *Codegen) genStmt(stmt ast.Stmt, indent int, sc *scope) {
	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		cg.genFunction(s, indent, sc)
	case *ast.Assignment:
		value := cg.genExpr(s.Value, sc)
		if sc.isDeclared(s.Name) {
			cg.ln(indent, "%s = %s;", s.Name, value)
		} else {
			sc.declare(s.Name)
			cg.ln(indent, "let %s = %s;", s.Name, value)
		}
	case *ast.PropertyAssignment:
		cg.ln(indent, "%s = %s;", cg.genExpr(s.Target, sc), cg.genExpr(s.Value, sc))
	case *ast.InstanceVarAssignment:
		value := cg.genExpr(s.Value, sc)
		if sc.isState(s.Name) {
			cg.ln(indent, "%s(%s);", setterName(s.Name), value)
		} else {
			cg.ln(indent, "this.%s = %s;", s.Name, value)
		}
	case *ast.PrintStatement:
		cg.ln(indent, "print(%s);", cg.genExpr(s.Value, sc))
	case *ast.ReturnStatement:
		if s.Value == nil {
			cg.ln(indent, "return;")
		} else {
			cg.ln(indent, "return %s;", cg.genExpr(s.Value, sc))
		}
	case *ast.IfStatement:
		cg.genIf(s, indent, sc)
	case *ast.CallExpression:
		cg.ln(indent, "%s;", cg.genExpr(s, sc))
	case *ast.MethodCall:
		cg.ln(indent, "%s;", cg.genExpr(s, sc))
	case *ast.InstanceMethodCall:
		cg.ln(indent, "%s;", cg.genExpr(s, sc))
	case *ast.PropertyAccess:
		cg.ln(indent, "%s;", cg.genExpr(s, sc))
	case *ast.ClassDeclaration:
		cg.genClass(s, indent)
	default:
		unknown(stmt)
	}
}

func (cg *Codegen) genIf(s *ast.IfStatement, indent int, sc *scope) {
	cg.ln(indent, "if (%s) {", cg.genExpr(s.Condition, sc))
	cg.genStmts(s.Then, indent+1, newScope(sc))
	for _, b := range s.Elsifs {
		cg.ln(indent, "} else if (%s) {", cg.genExpr(b.Condition, sc))
		cg.genStmts(b.Body, indent+1, newScope(sc))
	}
	if s.HasElse {
		cg.ln(indent, "} else {")
		cg.genStmts(s.Else, indent+1, newScope(sc))
	}
	cg.ln(indent, "}")
}
