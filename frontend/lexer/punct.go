package lexer

import "github.com/loto-lang/loto/common"

// Punct represents an operator or symbol token.
type Punct int

const (
	_ Punct = iota

	// PunctEqualEqual is `==`
	PunctEqualEqual
	// PunctNotEqual is `!=`
	PunctNotEqual
	// PunctLessThanEqual is `<=`
	PunctLessThanEqual
	// PunctGreaterThanEqual is `>=`
	PunctGreaterThanEqual
	// PunctAndAnd is `&&`
	PunctAndAnd
	// PunctOrOr is `||`
	PunctOrOr
	// PunctLessThan is `<`
	PunctLessThan
	// PunctGreaterThan is `>`
	PunctGreaterThan

	// PunctOpenParen is `(`
	PunctOpenParen
	// PunctCloseParen is `)`
	PunctCloseParen
	// PunctColon is `:`
	PunctColon
	// PunctDot is `.`
	PunctDot
	// PunctEqual is `=`
	PunctEqual
	// PunctOpenBrace is `{`
	PunctOpenBrace
	// PunctCloseBrace is `}`
	PunctCloseBrace
	// PunctOpenBracket is `[`
	PunctOpenBracket
	// PunctCloseBracket is `]`
	PunctCloseBracket
	// PunctComma is `,`
	PunctComma
	// PunctPlus is `+`
	PunctPlus
	// PunctMinus is `-`
	PunctMinus
	// PunctAsterisk is `*`
	PunctAsterisk
	// PunctSlash is `/`
	PunctSlash
	// PunctBang is `!`
	PunctBang
	// PunctQuestion is `?`
	PunctQuestion
	// PunctSemicolon is `;`
	PunctSemicolon
)

var puncts = map[string]Punct{
	"==": PunctEqualEqual,
	"!=": PunctNotEqual,
	"<=": PunctLessThanEqual,
	">=": PunctGreaterThanEqual,
	"&&": PunctAndAnd,
	"||": PunctOrOr,
	"<":  PunctLessThan,
	">":  PunctGreaterThan,
	"(":  PunctOpenParen,
	")":  PunctCloseParen,
	":":  PunctColon,
	".":  PunctDot,
	"=":  PunctEqual,
	"{":  PunctOpenBrace,
	"}":  PunctCloseBrace,
	"[":  PunctOpenBracket,
	"]":  PunctCloseBracket,
	",":  PunctComma,
	"+":  PunctPlus,
	"-":  PunctMinus,
	"*":  PunctAsterisk,
	"/":  PunctSlash,
	"!":  PunctBang,
	"?":  PunctQuestion,
	";":  PunctSemicolon,
}

// multiCharPuncts are tried before single characters.
var multiCharPuncts = []string{"==", "!=", "<=", ">=", "&&", "||"}

var punctNames = func() []string {
	// find the largest enum value so the slice is the right length
	var max Punct
	for _, p := range puncts {
		if p > max {
			max = p
		}
	}
	names := make([]string, max+1)
	for lit, p := range puncts {
		names[p] = lit
	}
	return names
}()

// IsOperator reports whether p lexes with kind operator rather than symbol.
func (p Punct) IsOperator() bool {
	return p >= PunctEqualEqual && p <= PunctGreaterThan
}

type TokPunct struct {
	Punct Punct
	span  common.Span
}

func (t TokPunct) isToken() {}

func (t TokPunct) Kind() Kind {
	if t.Punct.IsOperator() {
		return KindOperator
	}
	return KindSymbol
}

func (t TokPunct) Span() common.Span {
	return t.span
}

func (t TokPunct) Value() string {
	return punctNames[t.Punct]
}

func (t TokPunct) String() string {
	return punctNames[t.Punct]
}

func (t TokPunct) Is(other string) bool {
	p, ok := puncts[other]
	return ok && p == t.Punct
}

func (t TokPunct) AsString() string {
	return t.String()
}

func NewTokPunct(p Punct, span common.Span) TokPunct {
	return TokPunct{Punct: p, span: span}
}

/* Lexing */

// punct lexes the longest operator or symbol at the cursor, or returns nil.
func (lx *lexer) punct() Token {
	c := *lx.curChr
	if next := lx.chars.Peek(); next != nil {
		pair := string([]rune{c, *next})
		for _, m := range multiCharPuncts {
			if pair == m {
				lx.advance()
				lx.advance()
				return NewTokPunct(puncts[m], lx.currentSpan())
			}
		}
	}
	if p, ok := puncts[string(c)]; ok {
		lx.advance()
		return NewTokPunct(p, lx.currentSpan())
	}
	return nil
}
