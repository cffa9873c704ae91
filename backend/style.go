package codegen

import (
	"strings"

	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

// stylesName is `styles`, or `<component>Styles` when several components
// in the program declare styles.
func (cg *Codegen) stylesName(comp *ast.ComponentDeclaration) string {
	if cg.styledComponents > 1 {
		return lowerFirst(comp.Name) + "Styles"
	}
	return "styles"
}

// genStyles emits one object literal per selector with camel-cased
// properties.
func (cg *Codegen) genStyles(style *ast.StyleBlock, name string) {
	sc := newScope(nil)
	cg.ln(0, "const %s = {", name)
	for _, rule := range style.Rules {
		cg.ln(1, "%s: {", objectKey(rule.Selector))
		for _, decl := range rule.Declarations {
			cg.ln(2, "%s: %s,", objectKey(camelCase(decl.Property)), cg.genExpr(decl.Value, sc))
		}
		cg.ln(1, "},")
	}
	cg.ln(0, "};")
}

// camelCase turns `background-color` into `backgroundColor`.
func camelCase(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		parts[i] = capitalize(parts[i])
	}
	return strings.Join(parts, "")
}

// objectKey quotes keys that are not plain identifiers.
func objectKey(key string) string {
	if lexer.IsValidIdent(key) {
		return key
	}
	return jsString(key)
}
