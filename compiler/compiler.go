// Package compiler strings the lexer, parser and generator together and
// builds whole projects.
package compiler

import (
	"fmt"
	"os"

	codegen "github.com/loto-lang/loto/backend"
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/parser"
)

const (
	SourceExt = ".loto"
	TargetExt = ".js"
)

// Result is one successful compilation.
type Result struct {
	Source  string
	Program *ast.Program
	JS      string
}

// IsModule reports whether the output uses an ES import and so has to be
// evaluated as a module.
func (r *Result) IsModule() bool {
	module := false
	ast.Walk(r.Program, func(n ast.Node) bool {
		if _, ok := n.(*ast.ComponentDeclaration); ok {
			module = true
		}
		return !module
	})
	return module
}

// Check lexes and parses code without generating anything.
func Check(src, code string) (*ast.Program, error) {
	return parser.ParseSource(src, code)
}

// Compile runs the full pipeline over code. src names the input in spans.
func Compile(src, code string, opts codegen.Options) (*Result, error) {
	prog, err := parser.ParseSource(src, code)
	if err != nil {
		return nil, err
	}
	js, err := codegen.Generate(prog, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Source: src, Program: prog, JS: js}, nil
}

func CompileFile(path string, opts codegen.Options) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return Compile(path, string(content), opts)
}

// IOError wraps a failure to read a source or write a target.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
