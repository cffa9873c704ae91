package lexer

import (
	"strings"

	"github.com/loto-lang/loto/common"
)

// TokInstanceVar is `@name`. Raw includes the sigil.
type TokInstanceVar struct {
	Raw  string
	span common.Span
}

func (t TokInstanceVar) isToken() {}

func (t TokInstanceVar) Kind() Kind { return KindInstanceVar }

func (t TokInstanceVar) Span() common.Span {
	return t.span
}

func (t TokInstanceVar) Value() string {
	return t.Raw
}

func (t TokInstanceVar) String() string {
	return t.Raw
}

func (t TokInstanceVar) Is(_ string) bool {
	return false
}

func (t TokInstanceVar) AsString() string {
	return ""
}

// Name is the variable name without the sigil.
func (t TokInstanceVar) Name() string {
	return strings.TrimPrefix(t.Raw, "@")
}

func NewTokInstanceVar(s string, span common.Span) TokInstanceVar {
	return TokInstanceVar{Raw: s, span: span}
}

/* Lexing */

func (lx *lexer) instanceVar() (Token, *LexError) {
	lx.advance() // skip '@'

	if c := lx.curChr; c == nil || !isIdentStart(*c) {
		return nil, lx.error("expected identifier after '@'")
	}

	var sb strings.Builder
	sb.WriteRune('@')
	for c := lx.curChr; c != nil && isIdentContinue(*c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}
	return NewTokInstanceVar(sb.String(), lx.currentSpan()), nil
}
