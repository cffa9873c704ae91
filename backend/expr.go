package codegen

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/loto-lang/loto/frontend/ast"
)

func (cg *Codegen) genExpr(expr ast.Expr, sc *scope) string {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return jsString(e.Value)
	case *ast.InterpolatedString:
		return genInterpolatedString(e.Raw, sc)
	case *ast.NumberLiteral:
		return e.Raw
	case *ast.BooleanLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *ast.NullLiteral:
		return "null"
	case *ast.Identifier:
		return e.Name
	case *ast.NewExpression:
		return "new " + e.ClassName + "(" + cg.genArgs(e.Args, sc) + ")"
	case *ast.PropertyAccess:
		return cg.genExpr(e.Object, sc) + "." + e.Path()
	case *ast.CallExpression:
		return e.Callee + "(" + cg.genArgs(e.Args, sc) + ")"
	case *ast.MethodCall:
		return cg.genExpr(e.Object, sc) + "." + e.Method + "(" + cg.genArgs(e.Args, sc) + ")"
	case *ast.InstanceVar:
		return instanceVar(e.Name, sc)
	case *ast.InstanceVarAccess:
		return instanceVar(e.Name, sc) + "." + strings.Join(e.Properties, ".")
	case *ast.InstanceMethodCall:
		return instanceMethod(e.Method, sc) + "(" + cg.genArgs(e.Args, sc) + ")"
	case *ast.BinaryExpression:
		code := cg.genExpr(e.Left, sc) + " " + e.Operator + " " + cg.genExpr(e.Right, sc)
		if e.Grouped {
			return "(" + code + ")"
		}
		return code
	case *ast.JSXInterpolation:
		return stripSigils(e.Raw)
	}
	unknown(expr)
	panic("unreachable")
}

func (cg *Codegen) genArgs(args []ast.Expr, sc *scope) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = cg.genExpr(arg, sc)
	}
	return strings.Join(parts, ", ")
}

// instanceVar resolves @name: a state cell or method in a component is its
// local binding, anything else is a field on the receiver.
func instanceVar(name string, sc *scope) string {
	if sc.isState(name) || sc.isMethod(name) {
		return name
	}
	return "this." + name
}

// instanceMethod resolves @name(...): component methods are local
// closures, class methods live on the receiver.
func instanceMethod(name string, sc *scope) string {
	if sc.component {
		return name
	}
	return "this." + name
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		panic(err) // strings always encode
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
