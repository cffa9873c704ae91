package lexer

import "github.com/loto-lang/loto/common"

// Keyword represents a reserved keyword.
type Keyword int

const (
	_ Keyword = iota
	KwDef
	KwEnd
	KwPrint
	KwIf
	KwElse
	KwElsif
	KwReturn
	KwTrue
	KwFalse
	KwNull
	KwClass
	KwNew
	KwConstruct
	KwComponent
	KwProps
	KwState
	KwRender
	KwStyle
)

// The keyword set is closed.
var keywordTable = map[string]Keyword{
	"def":       KwDef,
	"end":       KwEnd,
	"print":     KwPrint,
	"if":        KwIf,
	"else":      KwElse,
	"elsif":     KwElsif,
	"return":    KwReturn,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
	"class":     KwClass,
	"new":       KwNew,
	"construct": KwConstruct,
	"component": KwComponent,
	"props":     KwProps,
	"state":     KwState,
	"render":    KwRender,
	"style":     KwStyle,
}

var keywordNames = func() []string {
	// find the largest enum value so the slice is the right length
	var max Keyword
	for _, kw := range keywordTable {
		if kw > max {
			max = kw
		}
	}
	names := make([]string, max+1)
	for lit, kw := range keywordTable {
		names[kw] = lit
	}
	return names
}()

func lookupKeyword(lit string) (Keyword, bool) {
	kw, ok := keywordTable[lit]
	return kw, ok
}

// IsKeyword reports whether lit is reserved.
func IsKeyword(lit string) bool {
	_, ok := keywordTable[lit]
	return ok
}

type TokKeyword struct {
	Keyword Keyword
	span    common.Span
}

func (t TokKeyword) isToken() {}

func (t TokKeyword) Kind() Kind { return KindKeyword }

func (t TokKeyword) Span() common.Span {
	return t.span
}

func (t TokKeyword) Value() string {
	return keywordNames[t.Keyword]
}

func (t TokKeyword) String() string {
	return keywordNames[t.Keyword]
}

func (t TokKeyword) Is(other string) bool {
	kw, ok := keywordTable[other]
	return ok && kw == t.Keyword
}

func (t TokKeyword) AsString() string {
	return t.String()
}

func NewTokKeyword(k Keyword, span common.Span) TokKeyword {
	return TokKeyword{Keyword: k, span: span}
}
