package codegen

import (
	"regexp"
	"strings"

	"github.com/loto-lang/loto/frontend/ast"
)

// Options tunes the generated text.
type Options struct {
	// Banner prepends the `// ---- Loto → JavaScript ----` line.
	Banner bool
}

func DefaultOptions() Options {
	return Options{Banner: true}
}

var redundantNewlinesRegex = regexp.MustCompile(`(\r?\n){3,}`)

func removeRedundantBlankLines(s string) string {
	return redundantNewlinesRegex.ReplaceAllString(s, "$1$1")
}

// Generate renders prog as JavaScript. It does not modify prog, so calling
// it twice yields the same text.
func Generate(prog *ast.Program, opts Options) (code string, err error) {
	cg := Codegen{
		Program: prog,
		Options: opts,
		bufCtx: bufCtx{
			buf: strings.Builder{},
		},
	}
	cg.bufCtx.buf.Grow(1024 * 2)

	defer func() {
		if r := recover(); r != nil {
			unknownErr, ok := r.(*UnknownNodeError)
			if !ok {
				panic(r)
			}
			code, err = "", unknownErr
		}
	}()

	cg.survey()
	headers(&cg)
	reactImport(&cg)

	sc := newScope(nil)
	for _, stmt := range prog.Body {
		cg.genItem(stmt, sc)
	}

	out := removeRedundantBlankLines(cg.buf().String())
	return strings.TrimRight(out, "\n") + "\n", nil
}

// survey collects the program-wide facts the headers and style naming
// depend on before anything is emitted.
func (cg *Codegen) survey() {
	ast.Walk(cg.Program, func(n ast.Node) bool {
		comp, ok := n.(*ast.ComponentDeclaration)
		if !ok {
			return true
		}
		cg.anyComponent = true
		if len(comp.State) > 0 {
			cg.anyState = true
		}
		if comp.Style != nil {
			cg.styledComponents++
		}
		return false
	})
}
