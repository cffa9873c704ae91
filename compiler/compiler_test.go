package compiler_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	protocol "github.com/gluax-lang/lsp"
	codegen "github.com/loto-lang/loto/backend"
	"github.com/loto-lang/loto/compiler"
	"github.com/loto-lang/loto/frontend/ast"
)

func TestCompileFixtures(t *testing.T) {
	tests := []struct {
		file   string
		module bool
		want   []string
	}{
		{
			file: "hello.loto",
			want: []string{"function main() {\n  print(\"Hello, world!\");\n}\n", "main();\n"},
		},
		{
			file: "wallet.loto",
			want: []string{
				"class Wallet {\n  constructor(start) {\n    this.balance = start;\n  }\n",
				"return `Balance: ${this.balance}`;",
				"let wallet = new Wallet(10);\nwallet.deposit(5);\nprint(wallet);\n",
			},
		},
		{
			file:   "counter.loto",
			module: true,
			want: []string{
				"import React, { useState } from 'react';",
				"function Counter({ start = 0 }) {",
				"export default Counter;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			res, err := compiler.CompileFile(filepath.Join("testdata", tt.file), codegen.DefaultOptions())
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			if !strings.HasPrefix(res.JS, codegen.Banner+"\n\n"+codegen.RuntimeHelpers()) {
				t.Errorf("missing prelude:\n%s", res.JS)
			}
			for _, want := range tt.want {
				if !strings.Contains(res.JS, want) {
					t.Errorf("output is missing %q\n%s", want, res.JS)
				}
			}
			if res.IsModule() != tt.module {
				t.Errorf("IsModule() = %v, want %v", res.IsModule(), tt.module)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	prog, err := compiler.Check("x.loto", "x = 1\nprint x\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Body) != 2 {
		t.Fatalf("got %d statements", len(prog.Body))
	}
	if _, ok := prog.Body[0].(*ast.Assignment); !ok {
		t.Errorf("first statement is %T", prog.Body[0])
	}
}

type bogusStmt struct {
	*ast.PrintStatement
}

func (bogusStmt) Kind() string { return "Bogus" }

func TestClassify(t *testing.T) {
	_, lexErr := compiler.Compile("a.loto", "x = $\n", codegen.DefaultOptions())
	_, syntaxErr := compiler.Compile("b.loto", "def\n", codegen.DefaultOptions())
	_, nonASCIIErr := compiler.Compile("c.loto", "x = a → b\n", codegen.DefaultOptions())
	_, ioErr := compiler.CompileFile(filepath.Join(t.TempDir(), "missing.loto"), codegen.DefaultOptions())

	prog := &ast.Program{Body: []ast.Stmt{bogusStmt{&ast.PrintStatement{}}}}
	_, unknownErr := codegen.Generate(prog, codegen.DefaultOptions())

	tests := []struct {
		name string
		err  error
		want compiler.ErrorKind
	}{
		{"nil", nil, compiler.ErrNone},
		{"lex", lexErr, compiler.ErrLex},
		{"syntax", syntaxErr, compiler.ErrSyntax},
		{"non-ASCII rune", nonASCIIErr, compiler.ErrLex},
		{"unknown node", unknownErr, compiler.ErrUnknownNode},
		{"io", ioErr, compiler.ErrIO},
		{"wrapped", errors.Join(errors.New("ctx"), syntaxErr), compiler.ErrSyntax},
		{"other", errors.New("boom"), compiler.ErrOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compiler.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}

	if !errors.Is(ioErr, os.ErrNotExist) {
		t.Errorf("io error does not unwrap to os.ErrNotExist: %v", ioErr)
	}
}

func TestDiagnostic(t *testing.T) {
	if compiler.Diagnostic(nil) != nil {
		t.Error("nil error produced a diagnostic")
	}

	_, err := compiler.Compile("a.loto", "x = 1\ny = $\n", codegen.DefaultOptions())
	diag := compiler.Diagnostic(err)
	if diag == nil {
		t.Fatal("no diagnostic")
	}
	if diag.Range.Start.Line != 1 {
		t.Errorf("line = %d, want 1 (zero-based)", diag.Range.Start.Line)
	}
	if diag.Severity == nil || *diag.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v", diag.Severity)
	}
	if diag.Message != err.Error() {
		t.Errorf("message = %q", diag.Message)
	}

	plain := compiler.Diagnostic(errors.New("boom"))
	if plain.Range.Start.Line != 0 {
		t.Errorf("unpositioned error landed on line %d", plain.Range.Start.Line)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newProject(t *testing.T, manifest string, sources map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "loto.toml"), manifest)
	for name, content := range sources {
		writeFile(t, filepath.Join(dir, name), content)
	}
	return dir
}

func TestBuildProject(t *testing.T) {
	dir := newProject(t, "name = \"demo\"\nversion = \"0.1.0\"\nbanner = false\n", map[string]string{
		"src/main.loto":      "print \"hi\"\n",
		"src/lib/math.loto":  "def double(n : number)\n  n * 2\nend\n",
		"src/notes.txt":      "not a source\n",
		"other/ignored.loto": "print 1\n",
	})

	proj, err := compiler.LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	outputs, err := proj.Build(context.Background())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("got %d outputs, want 2: %+v", len(outputs), outputs)
	}

	want := map[string]string{
		filepath.Join(dir, "out", "main.js"):        "print(\"hi\");\n",
		filepath.Join(dir, "out", "lib", "math.js"): "return n * 2;",
	}
	for path, snippet := range want {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("missing output: %v", err)
		}
		if !strings.Contains(string(content), snippet) {
			t.Errorf("%s is missing %q\n%s", path, snippet, content)
		}
		if strings.Contains(string(content), codegen.Banner) {
			t.Errorf("%s has a banner although the manifest disables it", path)
		}
	}
}

func TestBuildProjectFailure(t *testing.T) {
	dir := newProject(t, "name = \"demo\"\nversion = \"0.1.0\"\n", map[string]string{
		"src/good.loto": "print 1\n",
		"src/bad.loto":  "def\n",
	})
	proj, err := compiler.LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	_, err = proj.Build(context.Background())
	if compiler.Classify(err) != compiler.ErrSyntax {
		t.Fatalf("err = %v, want a syntax error", err)
	}
	if !strings.HasPrefix(err.Error(), "src/bad.loto: ") {
		t.Errorf("error does not name the file: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(statErr) {
		t.Error("out directory written despite the failure")
	}

	if err := proj.Check(context.Background()); compiler.Classify(err) != compiler.ErrSyntax {
		t.Errorf("Check() = %v, want a syntax error", err)
	}
}

func TestLoadProjectErrors(t *testing.T) {
	if _, err := compiler.LoadProject(t.TempDir()); compiler.Classify(err) != compiler.ErrIO {
		t.Errorf("missing manifest: %v", err)
	}
	dir := newProject(t, "name = \"demo\"\n", nil)
	_, err := compiler.LoadProject(dir)
	if err == nil || !strings.Contains(err.Error(), "failed to load loto.toml") {
		t.Errorf("invalid manifest: %v", err)
	}
}
