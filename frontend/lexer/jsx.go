package lexer

import (
	"strings"

	"github.com/loto-lang/loto/common"
)

// TokJSXInterpolation is a `{{ ... }}` span. Raw is the trimmed inner text.
type TokJSXInterpolation struct {
	Raw  string
	span common.Span
}

func (t TokJSXInterpolation) isToken() {}

func (t TokJSXInterpolation) Kind() Kind { return KindJSXInterpolation }

func (t TokJSXInterpolation) Span() common.Span {
	return t.span
}

func (t TokJSXInterpolation) Value() string {
	return t.Raw
}

func (t TokJSXInterpolation) String() string {
	return "{{" + t.Raw + "}}"
}

func (t TokJSXInterpolation) Is(_ string) bool {
	return false
}

func (t TokJSXInterpolation) AsString() string {
	return ""
}

func NewTokJSXInterpolation(s string, span common.Span) TokJSXInterpolation {
	return TokJSXInterpolation{Raw: s, span: span}
}

/* Lexing */

// atJSXInterpolation reports whether the cursor sits on `{{` with a closing
// `}}` later on the same line.
func (lx *lexer) atJSXInterpolation() bool {
	if *lx.curChr != '{' {
		return false
	}
	rest := lx.chars.Rest()
	return strings.HasPrefix(rest, "{") && strings.Contains(rest[1:], "}}")
}

func (lx *lexer) jsxInterpolation() Token {
	lx.advance() // {
	lx.advance() // {

	var sb strings.Builder
	for c := lx.curChr; c != nil; c = lx.curChr {
		if *c == '}' {
			if next := lx.chars.Peek(); next != nil && *next == '}' {
				lx.advance()
				lx.advance()
				break
			}
		}
		sb.WriteRune(*c)
		lx.advance()
	}
	return NewTokJSXInterpolation(strings.TrimSpace(sb.String()), lx.currentSpan())
}
