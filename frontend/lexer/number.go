package lexer

import (
	"strings"

	"github.com/loto-lang/loto/common"
)

// TokNumber keeps the literal exactly as written.
type TokNumber struct {
	Raw  string
	span common.Span
}

func (t TokNumber) isToken() {}

func (t TokNumber) Kind() Kind { return KindNumber }

func (t TokNumber) Span() common.Span {
	return t.span
}

func (t TokNumber) Value() string {
	return t.Raw
}

func (t TokNumber) String() string {
	return t.Raw
}

func (t TokNumber) Is(_ string) bool {
	return false
}

func (t TokNumber) AsString() string {
	return ""
}

func NewTokNumber(s string, span common.Span) TokNumber {
	return TokNumber{Raw: s, span: span}
}

/* Lexing */

// number lexes `\d+(\.\d+)?`. A dot not followed by a digit is left for the
// punctuation rule so `1.` lexes as number then symbol.
func (lx *lexer) number() Token {
	var sb strings.Builder
	lx.digits(&sb)
	if c := lx.curChr; c != nil && *c == '.' {
		if next := lx.chars.Peek(); next != nil && isDigit(*next) {
			sb.WriteRune('.')
			lx.advance()
			lx.digits(&sb)
		}
	}
	return NewTokNumber(sb.String(), lx.currentSpan())
}

func (lx *lexer) digits(sb *strings.Builder) {
	for c := lx.curChr; c != nil && isDigit(*c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
