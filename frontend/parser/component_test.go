package parser_test

import (
	"testing"

	"github.com/loto-lang/loto/frontend/ast"
)

func component(t *testing.T, code string) *ast.ComponentDeclaration {
	t.Helper()
	prog := parse(t, code)
	comp, ok := prog.Body[0].(*ast.ComponentDeclaration)
	if !ok {
		t.Fatalf("expected ComponentDeclaration, got %s", prog.Body[0].Kind())
	}
	return comp
}

func TestEmptyPropsAndState(t *testing.T) {
	comp := component(t, "component Test\n  props\n  end\n\n  state\n  end\nend\n")
	if comp.Name != "Test" || len(comp.Props) != 0 || len(comp.State) != 0 {
		t.Errorf("component = %+v", comp)
	}
	if comp.Render != nil || comp.Style != nil {
		t.Error("unexpected render or style block")
	}
}

func TestPropsAndState(t *testing.T) {
	code := `component Counter
  props
    start : number = 0
    label : string = "Click me"
    size : number
  end

  state
    count : number = start
    active : boolean = true
  end
end
`
	comp := component(t, code)
	if len(comp.Props) != 3 {
		t.Fatalf("props = %d", len(comp.Props))
	}
	if p := comp.Props[0]; p.Name != "start" || p.Type != "number" || p.Default.(*ast.NumberLiteral).Raw != "0" {
		t.Errorf("props[0] = %+v", p)
	}
	if p := comp.Props[1]; p.Default.(*ast.StringLiteral).Value != "Click me" {
		t.Errorf("props[1] = %+v", p)
	}
	if comp.Props[2].Default != nil {
		t.Error("props[2] should have no default")
	}

	if s := comp.State[0]; s.Name != "count" || s.Initial.(*ast.Identifier).Name != "start" {
		t.Errorf("state[0] = %+v", s)
	}
	if s := comp.State[1]; s.Type != "boolean" || !s.Initial.(*ast.BooleanLiteral).Value {
		t.Errorf("state[1] = %+v", s)
	}
	if _, ok := comp.StateNames()["count"]; !ok {
		t.Error("StateNames is missing count")
	}
}

func TestMixedOrder(t *testing.T) {
	code := `component Mixed
  def init()
    @ready = true
  end

  props
    enabled : boolean = false
  end

  state
    ready : boolean = false
  end

  def toggle()
    @ready = @ready
  end
end
`
	comp := component(t, code)
	if len(comp.Props) != 1 || len(comp.State) != 1 || len(comp.Methods) != 2 {
		t.Fatalf("component = %+v", comp)
	}
	if comp.Methods[0].Name != "init" || comp.Methods[1].Name != "toggle" {
		t.Errorf("methods out of order: %s, %s", comp.Methods[0].Name, comp.Methods[1].Name)
	}
}

func renderFirst(t *testing.T, line string) *ast.JSXElement {
	t.Helper()
	comp := component(t, "component Test\n  render\n    "+line+"\n  end\nend\n")
	if comp.Render == nil || len(comp.Render.Elements) != 1 {
		t.Fatalf("render = %+v", comp.Render)
	}
	return comp.Render.Elements[0]
}

func childValues(children []ast.JSXNode) []string {
	var out []string
	for _, c := range children {
		switch c := c.(type) {
		case *ast.JSXText:
			out = append(out, "text:"+c.Value)
		case *ast.JSXInterpolation:
			out = append(out, "interp:"+c.Raw)
		case *ast.JSXElement:
			out = append(out, "element:"+c.Tag)
		}
	}
	return out
}

func TestJSXContent(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"punctuation", "Text Hello, world! How are you?", []string{"text:Hello , world ! How are you ?"}},
		{"mixed", "Text Welcome {{@name}}! Today is {{@date}}.", []string{
			"text:Welcome", "interp:@name", "text:! Today is", "interp:@date", "text:.",
		}},
		{"consecutive interpolations", "Text {{@first}}{{@second}}", []string{"interp:@first", "interp:@second"}},
		{"empty", "Text", nil},
		{"spaces", "Text Count : {{@value}} items", []string{"text:Count :", "interp:@value", "text:items"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := renderFirst(t, tt.line)
			got := childValues(el.Children)
			if len(got) != len(tt.want) {
				t.Fatalf("children = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("child %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestElementHeader(t *testing.T) {
	el := renderFirst(t, `Pressable.button.primary(on:press=@increment(), aria-label="add" disabled=false) +`)
	if el.Tag != "Pressable" || el.ClassName != "button primary" {
		t.Errorf("tag/class = %q/%q", el.Tag, el.ClassName)
	}
	if len(el.Attributes) != 3 {
		t.Fatalf("attributes = %+v", el.Attributes)
	}
	if el.Attributes[0].Name != "on:press" {
		t.Errorf("attr 0 = %q", el.Attributes[0].Name)
	}
	if _, ok := el.Attributes[0].Value.(*ast.InstanceMethodCall); !ok {
		t.Errorf("attr 0 value = %s", el.Attributes[0].Value.Kind())
	}
	if el.Attributes[1].Name != "aria-label" || el.Attributes[2].Name != "disabled" {
		t.Errorf("attr names = %q, %q", el.Attributes[1].Name, el.Attributes[2].Name)
	}
	if got := childValues(el.Children); len(got) != 1 || got[0] != "text:+" {
		t.Errorf("children = %q", got)
	}
}

func TestSpacedParenIsText(t *testing.T) {
	el := renderFirst(t, "Text (draft)")
	if len(el.Attributes) != 0 {
		t.Fatalf("attributes = %+v", el.Attributes)
	}
	if got := childValues(el.Children); len(got) != 1 || got[0] != "text:( draft )" {
		t.Errorf("children = %q", got)
	}
}

func TestNestedElements(t *testing.T) {
	code := `component Counter
  render
    View.counter
      Text(class="label") Count : {{@count}}

      Pressable(on:press=@increment())
        Text(class="buttonText") +
  end
end
`
	comp := component(t, code)
	view := comp.Render.Elements[0]
	if view.Tag != "View" || view.ClassName != "counter" || view.IsInline() {
		t.Fatalf("view = %+v", view)
	}
	if got := childValues(view.Children); len(got) != 2 || got[0] != "element:Text" || got[1] != "element:Pressable" {
		t.Fatalf("view children = %q", got)
	}
	text := view.Children[0].(*ast.JSXElement)
	if text.Attributes[0].Name != "class" || len(text.Children) != 2 || !text.IsInline() {
		t.Errorf("text = %+v", text)
	}
	press := view.Children[1].(*ast.JSXElement)
	if len(press.Children) != 1 {
		t.Errorf("pressable children = %d", len(press.Children))
	}
}

func TestStyleBlock(t *testing.T) {
	code := `component Styled
  style
    .counter
      background-color : "#f4f4f4"
      padding : 12
    .buttonText
      font-size : 18
  end
end
`
	comp := component(t, code)
	if comp.Style == nil || len(comp.Style.Rules) != 2 {
		t.Fatalf("style = %+v", comp.Style)
	}
	rule := comp.Style.Rules[0]
	if rule.Selector != "counter" || len(rule.Declarations) != 2 {
		t.Fatalf("rule = %+v", rule)
	}
	if rule.Declarations[0].Property != "background-color" {
		t.Errorf("property = %q", rule.Declarations[0].Property)
	}
	if v := rule.Declarations[0].Value.(*ast.StringLiteral).Value; v != "#f4f4f4" {
		t.Errorf("value = %q", v)
	}
	if comp.Style.Rules[1].Declarations[0].Property != "font-size" {
		t.Errorf("second rule = %+v", comp.Style.Rules[1])
	}
}

func TestDuplicateRender(t *testing.T) {
	_, err := parseErr("component A\n  render\n  end\n  render\n  end\nend\n")
	if err == nil {
		t.Fatal("expected an error for a second render block")
	}
}

func TestUnknownComponentMember(t *testing.T) {
	_, err := parseErr("component A\n  x = 1\nend\n")
	if err == nil {
		t.Fatal("expected an error for an assignment in a component body")
	}
}
