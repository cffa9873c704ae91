package lexer

import (
	"strings"

	"github.com/loto-lang/loto/common"
)

type TokIdent struct {
	Raw  string
	span common.Span
}

func (t TokIdent) isToken() {}

func (t TokIdent) Kind() Kind { return KindIdentifier }

func (t TokIdent) Span() common.Span {
	return t.span
}

func (t TokIdent) Value() string {
	return t.Raw
}

func (t TokIdent) String() string {
	return t.Raw
}

func (t TokIdent) Is(_ string) bool {
	return false
}

func (t TokIdent) AsString() string {
	return ""
}

func NewTokIdent(s string, span common.Span) TokIdent {
	return TokIdent{Raw: s, span: span}
}

/* Lexing */

// word lexes an identifier or keyword.
func (lx *lexer) word() Token {
	var sb strings.Builder
	for c := lx.curChr; c != nil && isIdentContinue(*c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}
	raw := sb.String()
	if kw, ok := lookupKeyword(raw); ok {
		return NewTokKeyword(kw, lx.currentSpan())
	}
	return NewTokIdent(raw, lx.currentSpan())
}

// Words are ASCII only; any other rune is a lex error.
func isIdentStart(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || r == '_'
}

func isIdentContinue(r rune) bool {
	if '0' <= r && r <= '9' {
		return true
	}
	return isIdentStart(r)
}

// IsValidIdent reports whether s would lex as a single word.
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
		} else if !isIdentContinue(r) {
			return false
		}
	}
	return true
}
