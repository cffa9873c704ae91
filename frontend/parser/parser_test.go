package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
	"github.com/loto-lang/loto/frontend/parser"
)

func parse(t *testing.T, code string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseSource("test.loto", code)
	if err != nil {
		t.Fatalf("ParseSource failed: %v\n%s", err, code)
	}
	return prog
}

func kindsOf[T ast.Node](nodes []T) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.Kind()
	}
	return strings.Join(parts, ",")
}

func TestTopLevel(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "function without parens then bare call",
			code: "def main\n  print \"Hello, world!\"\nend\n\nmain\n",
			want: "FunctionDeclaration,CallExpression",
		},
		{
			name: "call with parens",
			code: "def main()\n  print 1\nend\nmain()\n",
			want: "FunctionDeclaration,CallExpression",
		},
		{
			name: "comments only",
			code: "# Just comments\n# nothing else\n",
			want: "",
		},
		{
			name: "assignments",
			code: "x = 1\nuser.name = \"a\"\n@count = 2\n",
			want: "Assignment,PropertyAssignment,InstanceVarAssignment",
		},
		{
			name: "method call and property access statements",
			code: "counter.increment()\ncounter.value\n",
			want: "MethodCall,PropertyAccess",
		},
		{
			name: "instance method call statement",
			code: "@refresh()\n",
			want: "InstanceMethodCall",
		},
		{
			name: "if chain",
			code: "if x > 1\n  print 1\nelsif x == 1\n  print 2\nelse\n  print 3\nend\n",
			want: "IfStatement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kindsOf(parse(t, tt.code).Body)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunctionDeclaration(t *testing.T) {
	prog := parse(t, "def greet(name : string, times) : void\n  print name\n  print times\nend\n")
	fn, ok := prog.Body[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected FunctionDeclaration, got %s", prog.Body[0].Kind())
	}
	if fn.Name != "greet" || fn.ReturnType != "void" {
		t.Errorf("name/returnType = %q/%q", fn.Name, fn.ReturnType)
	}
	if len(fn.Params) != 2 || fn.Params[0] != (ast.Param{Name: "name", Type: "string"}) || fn.Params[1].Type != "" {
		t.Errorf("params = %+v", fn.Params)
	}
	if got := kindsOf(fn.Body); got != "PrintStatement,PrintStatement" {
		t.Errorf("body = %s", got)
	}
}

func TestImplicitReturns(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		value string
	}{
		{"single call is promoted", "helper(1)", "CallExpression"},
		{"string literal", `"hi"`, "StringLiteral"},
		{"interpolated string", `"Count: #{@value}"`, "InterpolatedString"},
		{"identifier in body", "name", "Identifier"},
		{"binary in body", "a + b", "BinaryExpression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, "def f\n  "+tt.body+"\nend\n")
			fn := prog.Body[0].(*ast.FunctionDeclaration)
			ret, ok := fn.Body[0].(*ast.ReturnStatement)
			if !ok {
				t.Fatalf("expected ReturnStatement, got %s", fn.Body[0].Kind())
			}
			if ret.Value.Kind() != tt.value {
				t.Errorf("return value = %s, want %s", ret.Value.Kind(), tt.value)
			}
		})
	}

	// a call among several statements stays a call
	prog := parse(t, "def f\n  helper()\n  print 1\nend\n")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	if fn.Body[0].Kind() != "CallExpression" {
		t.Errorf("first statement = %s", fn.Body[0].Kind())
	}
}

func TestSpecialFunctionNames(t *testing.T) {
	prog := parse(t, "class A\n  def construct()\n    @x = 1\n  end\n  def print()\n    \"A\"\n  end\nend\n")
	class := prog.Body[0].(*ast.ClassDeclaration)
	if len(class.Methods) != 2 || class.Methods[0].Name != "construct" || class.Methods[1].Name != "print" {
		t.Fatalf("methods = %s", kindsOf(class.Methods))
	}
	if class.Constructor() != class.Methods[0] {
		t.Error("Constructor did not find construct")
	}
}

func TestClassDeclaration(t *testing.T) {
	code := `class Counter
  value : number
  label : string

  def construct()
    @value = 0
  end

  def increment()
    @value = @value + 1
  end
end
`
	class := parse(t, code).Body[0].(*ast.ClassDeclaration)
	if class.Name != "Counter" {
		t.Errorf("name = %q", class.Name)
	}
	want := []ast.Property{{Name: "value", Type: "number"}, {Name: "label", Type: "string"}}
	if len(class.Properties) != 2 || class.Properties[0] != want[0] || class.Properties[1] != want[1] {
		t.Errorf("properties = %+v", class.Properties)
	}
	inc := class.Methods[1].Body[0].(*ast.InstanceVarAssignment)
	bin := inc.Value.(*ast.BinaryExpression)
	if inc.Name != "value" || bin.Operator != "+" {
		t.Errorf("increment = %+v", inc)
	}
	if iv, ok := bin.Left.(*ast.InstanceVar); !ok || iv.Name != "value" {
		t.Errorf("left = %#v", bin.Left)
	}
}

func TestBinaryIsRightAssociative(t *testing.T) {
	prog := parse(t, "x = a - b * c\n")
	bin := prog.Body[0].(*ast.Assignment).Value.(*ast.BinaryExpression)
	if bin.Operator != "-" {
		t.Fatalf("root operator = %q", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("right = %#v", bin.Right)
	}

	prog = parse(t, "x = (a - b) * c\n")
	bin = prog.Body[0].(*ast.Assignment).Value.(*ast.BinaryExpression)
	left, ok := bin.Left.(*ast.BinaryExpression)
	if !ok || bin.Operator != "*" || !left.Grouped || bin.Grouped {
		t.Errorf("grouping lost: %#v", bin)
	}
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		code string
		kind string
	}{
		{`"plain"`, "StringLiteral"},
		{`"a #{b}"`, "InterpolatedString"},
		{"3.5", "NumberLiteral"},
		{"-2", "NumberLiteral"},
		{"true", "BooleanLiteral"},
		{"null", "NullLiteral"},
		{"name", "Identifier"},
		{"new Counter(1, 2)", "NewExpression"},
		{"user.profile.name", "PropertyAccess"},
		{"user.profile.rename(\"x\")", "MethodCall"},
		{"format(a, b)", "CallExpression"},
		{"@value", "InstanceVar"},
		{"@owner.name", "InstanceVarAccess"},
		{"@compute(1)", "InstanceMethodCall"},
		{"a == b", "BinaryExpression"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			prog := parse(t, "x = "+tt.code+"\n")
			value := prog.Body[0].(*ast.Assignment).Value
			if value.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", value.Kind(), tt.kind)
			}
		})
	}
}

func TestMethodCallChain(t *testing.T) {
	prog := parse(t, "x = user.profile.rename(\"x\")\n")
	call := prog.Body[0].(*ast.Assignment).Value.(*ast.MethodCall)
	if call.Method != "rename" || len(call.Args) != 1 {
		t.Errorf("call = %+v", call)
	}
	obj, ok := call.Object.(*ast.PropertyAccess)
	if !ok || obj.Path() != "profile" {
		t.Errorf("object = %#v", call.Object)
	}
	if id, ok := obj.Object.(*ast.Identifier); !ok || id.Name != "user" {
		t.Errorf("root = %#v", obj.Object)
	}
}

func TestIfChain(t *testing.T) {
	prog := parse(t, "if a\n  print 1\nelsif b\n  print 2\nelsif c\n  print 3\nelse\n  print 4\nend\n")
	stmt := prog.Body[0].(*ast.IfStatement)
	if len(stmt.Then) != 1 || len(stmt.Elsifs) != 2 || !stmt.HasElse || len(stmt.Else) != 1 {
		t.Errorf("if = %+v", stmt)
	}

	prog = parse(t, "if a\n  print 1\nend\n")
	if prog.Body[0].(*ast.IfStatement).HasElse {
		t.Error("unexpected else")
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected lexer.Kind
		value    string
		actual   lexer.Kind
	}{
		{"missing end", "def main\n  print 1\n", lexer.KindKeyword, "end", lexer.KindEOF},
		{"missing close paren", "x = f(1\n", lexer.KindSymbol, ")", lexer.KindNewline},
		{"function name", "def 1\nend\n", lexer.KindIdentifier, "", lexer.KindNumber},
		{"stray instance var", "@x == 1\n", lexer.KindSymbol, "=", lexer.KindOperator},
		{"trailing tokens", "main now\n", lexer.KindNewline, "", lexer.KindIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseSource("test.loto", tt.code)
			var synErr *parser.SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("expected *SyntaxError, got %v", err)
			}
			if synErr.Expected != tt.expected || synErr.ExpectedValue != tt.value {
				t.Errorf("expected = %s %q, want %s %q", synErr.Expected, synErr.ExpectedValue, tt.expected, tt.value)
			}
			if synErr.Actual.Kind() != tt.actual {
				t.Errorf("actual = %s, want %s", synErr.Actual.Kind(), tt.actual)
			}
		})
	}
}

func TestUnexpectedKeyword(t *testing.T) {
	_, err := parser.ParseSource("test.loto", "end\n")
	if err == nil || !strings.Contains(err.Error(), `unexpected keyword "end"`) {
		t.Errorf("err = %v", err)
	}
}

func TestLexErrorPassesThrough(t *testing.T) {
	_, err := parser.ParseSource("test.loto", "x = $\n")
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Errorf("expected *LexError, got %v", err)
	}
}

func parseErr(code string) (*ast.Program, error) {
	return parser.ParseSource("test.loto", code)
}
