package codegen

import (
	"strings"

	"github.com/loto-lang/loto/frontend/ast"
)

// eventPrefix marks attributes that bind an event handler.
const eventPrefix = "on:"

func (cg *Codegen) genRender(render *ast.RenderBlock, indent int, sc *scope) {
	if render == nil || len(render.Elements) == 0 {
		cg.ln(indent, "return null;")
		return
	}

	cg.ln(indent, "return (")
	if len(render.Elements) == 1 {
		cg.genElement(render.Elements[0], indent+1, sc)
	} else {
		cg.ln(indent+1, "<>")
		for _, el := range render.Elements {
			cg.genElement(el, indent+2, sc)
		}
		cg.ln(indent+1, "</>")
	}
	cg.ln(indent, ");")
}

// genElement writes an element on one line when all its children are
// inline content and as an indented block otherwise.
func (cg *Codegen) genElement(el *ast.JSXElement, indent int, sc *scope) {
	open := "<" + el.Tag + cg.genAttributes(el, sc)

	switch {
	case len(el.Children) == 0:
		cg.ln(indent, "%s />", open)
	case el.IsInline():
		var sb strings.Builder
		for _, child := range el.Children {
			sb.WriteString(genInlineChild(child))
		}
		cg.ln(indent, "%s>%s</%s>", open, sb.String(), el.Tag)
	default:
		cg.ln(indent, "%s>", open)
		for _, child := range el.Children {
			if nested, ok := child.(*ast.JSXElement); ok {
				cg.genElement(nested, indent+1, sc)
			} else {
				cg.ln(indent+1, "%s", genInlineChild(child))
			}
		}
		cg.ln(indent, "</%s>", el.Tag)
	}
}

func genInlineChild(child ast.JSXNode) string {
	switch c := child.(type) {
	case *ast.JSXText:
		return escapeJSXText(c.Value)
	case *ast.JSXInterpolation:
		return "{" + stripSigils(c.Raw) + "}"
	}
	unknown(child)
	panic("unreachable")
}

var jsxTextEscaper = strings.NewReplacer("{", "{'{'}", "}", "{'}'}", "<", "&lt;", ">", "&gt;")

func escapeJSXText(s string) string {
	return jsxTextEscaper.Replace(s)
}

// genAttributes renders the attribute list with a leading space. Class
// names from `.class` suffixes and string `class` attributes merge into a
// single className.
func (cg *Codegen) genAttributes(el *ast.JSXElement, sc *scope) string {
	var classes []string
	if el.ClassName != "" {
		classes = append(classes, el.ClassName)
	}
	var attrs []string
	for _, attr := range el.Attributes {
		if attr.Name == "class" {
			if s, ok := attr.Value.(*ast.StringLiteral); ok {
				classes = append(classes, s.Value)
				continue
			}
		}
		attrs = append(attrs, cg.genAttribute(attr, sc))
	}

	var sb strings.Builder
	if len(classes) > 0 {
		sb.WriteString(` className="` + strings.Join(classes, " ") + `"`)
	}
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a)
	}
	return sb.String()
}

func (cg *Codegen) genAttribute(attr ast.JSXAttribute, sc *scope) string {
	name := attributeName(attr.Name)

	if strings.HasPrefix(attr.Name, eventPrefix) {
		if call, ok := attr.Value.(*ast.InstanceMethodCall); ok {
			if len(call.Args) == 0 {
				return name + "={" + call.Method + "}"
			}
			return name + "={() => " + call.Method + "(" + cg.genArgs(call.Args, sc) + ")}"
		}
	}

	if s, ok := attr.Value.(*ast.StringLiteral); ok && !strings.ContainsAny(s.Value, `"{}`) {
		return name + `="` + s.Value + `"`
	}
	return name + "={" + cg.genExpr(attr.Value, sc) + "}"
}

// attributeName maps `on:press` to `onPress` and `class` to `className`.
func attributeName(name string) string {
	if event, ok := strings.CutPrefix(name, eventPrefix); ok {
		return "on" + capitalize(camelCase(event))
	}
	if name == "class" {
		return "className"
	}
	return name
}
