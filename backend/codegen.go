// Package codegen lowers a parsed Loto program to JavaScript.
package codegen

import (
	"fmt"
	"strings"

	"github.com/loto-lang/loto/frontend/ast"
)

// indentUnit is one level of output indentation.
const indentUnit = "  "

type bufCtx struct {
	buf strings.Builder
}

// Codegen holds the output of one Generate call. Indentation is passed to
// every emitter explicitly rather than stored here.
type Codegen struct {
	Program *ast.Program
	Options Options

	bufCtx bufCtx

	// components counts components emitted so far; the first one is the
	// default export.
	components int
	// styledComponents is how many components declare a style block.
	styledComponents int
	anyComponent     bool
	anyState         bool
}

func (cg *Codegen) buf() *strings.Builder {
	return &cg.bufCtx.buf
}

func (cg *Codegen) writeIndent(indent int) {
	for range indent {
		cg.writeString(indentUnit)
	}
}

func (cg *Codegen) writef(format string, args ...any) {
	cg.bufCtx.buf.WriteString(fmt.Sprintf(format, args...))
}

func (cg *Codegen) writeByte(b byte) {
	cg.bufCtx.buf.WriteByte(b)
}

func (cg *Codegen) writeString(s string) {
	cg.bufCtx.buf.WriteString(s)
}

// ln writes one line at the given indentation; an empty format writes a
// blank line.
func (cg *Codegen) ln(indent int, format string, args ...any) {
	if format == "" && len(args) == 0 {
		cg.writeByte('\n')
		return
	}
	cg.writeIndent(indent)
	cg.writef(format, args...)
	cg.writeByte('\n')
}

func (cg *Codegen) blank() {
	cg.ln(0, "")
}

// unknown aborts generation for a node kind without an emission rule.
func unknown(n ast.Node) {
	panic(&UnknownNodeError{Kind: n.Kind(), At: n.Span()})
}
