package lexer

import (
	"strings"

	"github.com/loto-lang/loto/common"
)

// TokString is a double-quoted literal. Raw excludes the quotes; there are
// no escape sequences.
type TokString struct {
	Raw  string
	span common.Span
}

func (t TokString) isToken() {}

func (t TokString) Kind() Kind { return KindString }

func (t TokString) Span() common.Span {
	return t.span
}

func (t TokString) Value() string {
	return t.Raw
}

func (t TokString) String() string {
	return "\"" + t.Raw + "\""
}

func (t TokString) Is(_ string) bool {
	return false
}

func (t TokString) AsString() string {
	return ""
}

func NewTokString(s string, span common.Span) TokString {
	return TokString{Raw: s, span: span}
}

// TokInterpolatedString is a string literal containing at least one `#{`.
type TokInterpolatedString struct {
	Raw  string
	span common.Span
}

func (t TokInterpolatedString) isToken() {}

func (t TokInterpolatedString) Kind() Kind { return KindInterpolatedString }

func (t TokInterpolatedString) Span() common.Span {
	return t.span
}

func (t TokInterpolatedString) Value() string {
	return t.Raw
}

func (t TokInterpolatedString) String() string {
	return "\"" + t.Raw + "\""
}

func (t TokInterpolatedString) Is(_ string) bool {
	return false
}

func (t TokInterpolatedString) AsString() string {
	return ""
}

func NewTokInterpolatedString(s string, span common.Span) TokInterpolatedString {
	return TokInterpolatedString{Raw: s, span: span}
}

/* Lexing */

func (lx *lexer) string() (Token, *LexError) {
	lx.advance() // skip opening quote

	var sb strings.Builder
	for {
		c := lx.curChr
		if c == nil {
			return nil, lx.error("unterminated string")
		}
		if *c == '"' {
			lx.advance()
			break
		}
		sb.WriteRune(*c)
		lx.advance()
	}

	raw := sb.String()
	if strings.Contains(raw, "#{") {
		return NewTokInterpolatedString(raw, lx.currentSpan()), nil
	}
	return NewTokString(raw, lx.currentSpan()), nil
}
