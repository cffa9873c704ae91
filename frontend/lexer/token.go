package lexer

import (
	"github.com/loto-lang/loto/common"
)

// Kind classifies a token.
type Kind uint8

const (
	_ Kind = iota
	KindKeyword
	KindIdentifier
	KindString
	KindInterpolatedString
	KindNumber
	KindInstanceVar
	KindOperator
	KindSymbol
	KindJSXInterpolation
	KindIndent
	KindDedent
	KindNewline
	KindEOF
)

var kindNames = [...]string{
	KindKeyword:            "keyword",
	KindIdentifier:         "identifier",
	KindString:             "string",
	KindInterpolatedString: "interpolated_string",
	KindNumber:             "number",
	KindInstanceVar:        "instance_var",
	KindOperator:           "operator",
	KindSymbol:             "symbol",
	KindJSXInterpolation:   "jsx_interpolation",
	KindIndent:             "indent",
	KindDedent:             "dedent",
	KindNewline:            "newline",
	KindEOF:                "eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

type Token interface {
	isToken()
	Kind() Kind
	Span() common.Span
	// Value is the raw lexeme, empty for indent/dedent/newline/eof.
	Value() string
	String() string
	Is(string) bool
	// AsString used for keywords and punctuations, to make it easier to switch on tokens for them
	AsString() string
}

// Line is the 1-based source line the token starts on.
func Line(t Token) uint32 {
	return t.Span().LineStart
}

// Describe renders a token for error messages, e.g. `identifier "main"`.
func Describe(t Token) string {
	if v := t.Value(); v != "" {
		return t.Kind().String() + " \"" + v + "\""
	}
	return t.Kind().String()
}

// KindOf is the kind a literal lexeme would be given, used to describe
// expected tokens.
func KindOf(lit string) Kind {
	if IsKeyword(lit) {
		return KindKeyword
	}
	if p, ok := puncts[lit]; ok {
		if p.IsOperator() {
			return KindOperator
		}
		return KindSymbol
	}
	return KindIdentifier
}
