package codegen

import "github.com/loto-lang/loto/frontend/ast"

// genClass emits the `construct` method as the constructor, then the other
// methods in declaration order. Property declarations carry no code.
func (cg *Codegen) genClass(class *ast.ClassDeclaration, indent int) {
	cg.ln(indent, "class %s {", class.Name)

	first := true
	member := func(header string, fn *ast.FunctionDeclaration) {
		if !first {
			cg.blank()
		}
		first = false
		cg.ln(indent+1, "%s(%s) {", header, paramList(fn.Params))
		cg.genStmts(fn.Body, indent+2, functionScope(nil, fn.Params))
		cg.ln(indent+1, "}")
	}

	if ctor := class.Constructor(); ctor != nil {
		member("constructor", ctor)
	}
	for _, m := range class.Methods {
		if m.IsConstructor() {
			continue
		}
		member(m.Name, m)
	}

	cg.ln(indent, "}")
	cg.blank()
}
