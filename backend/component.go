package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/loto-lang/loto/frontend/ast"
)

// genComponent lowers a component to a function component: props become a
// destructured parameter, state entries become useState cells and methods
// become local arrow functions.
func (cg *Codegen) genComponent(comp *ast.ComponentDeclaration) {
	sc := newScope(nil)
	sc.component = true
	sc.state = comp.StateNames()
	sc.methods = make(map[string]struct{}, len(comp.Methods))
	for _, m := range comp.Methods {
		sc.methods[m.Name] = struct{}{}
	}
	for _, p := range comp.Props {
		sc.declare(p.Name)
	}

	cg.ln(0, "function %s(%s) {", comp.Name, cg.propsParam(comp.Props, sc))

	for _, s := range comp.State {
		init := "null"
		if s.Initial != nil {
			init = cg.genExpr(s.Initial, sc)
		}
		cg.ln(1, "const [%s, %s] = useState(%s);", s.Name, setterName(s.Name), init)
	}
	if len(comp.State) > 0 {
		cg.blank()
	}

	for _, m := range comp.Methods {
		cg.ln(1, "const %s = (%s) => {", m.Name, paramList(m.Params))
		cg.genStmts(m.Body, 2, functionScope(sc, m.Params))
		cg.ln(1, "};")
		cg.blank()
	}

	cg.genRender(comp.Render, 1, sc)
	cg.ln(0, "}")
	cg.blank()

	if comp.Style != nil {
		cg.genStyles(comp.Style, cg.stylesName(comp))
		cg.blank()
	}

	if cg.components == 0 {
		cg.ln(0, "export default %s;", comp.Name)
	} else {
		cg.ln(0, "export { %s };", comp.Name)
	}
	cg.components++
	cg.blank()
}

// propsParam renders `{ a = 1, b }`, or nothing when there are no props.
func (cg *Codegen) propsParam(props []*ast.PropDeclaration, sc *scope) string {
	if len(props) == 0 {
		return ""
	}
	parts := make([]string, len(props))
	for i, p := range props {
		if p.Default != nil {
			parts[i] = p.Name + " = " + cg.genExpr(p.Default, sc)
		} else {
			parts[i] = p.Name
		}
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// setterName is the update function paired with a state cell: count ->
// setCount.
func setterName(name string) string {
	return "set" + capitalize(name)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
