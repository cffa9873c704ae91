package lexer

import "github.com/loto-lang/loto/common"

// TokIndent opens a deeper indentation level.
type TokIndent struct {
	span common.Span
}

func (t TokIndent) isToken() {}

func (t TokIndent) Kind() Kind { return KindIndent }

func (t TokIndent) Span() common.Span {
	return t.span
}

func (t TokIndent) Value() string {
	return ""
}

func (t TokIndent) String() string {
	return "<INDENT>"
}

func (t TokIndent) Is(_ string) bool {
	return false
}

func (t TokIndent) AsString() string {
	return ""
}

// TokDedent closes one indentation level.
type TokDedent struct {
	span common.Span
}

func (t TokDedent) isToken() {}

func (t TokDedent) Kind() Kind { return KindDedent }

func (t TokDedent) Span() common.Span {
	return t.span
}

func (t TokDedent) Value() string {
	return ""
}

func (t TokDedent) String() string {
	return "<DEDENT>"
}

func (t TokDedent) Is(_ string) bool {
	return false
}

func (t TokDedent) AsString() string {
	return ""
}

// TokNewline ends every source line.
type TokNewline struct {
	span common.Span
}

func (t TokNewline) isToken() {}

func (t TokNewline) Kind() Kind { return KindNewline }

func (t TokNewline) Span() common.Span {
	return t.span
}

func (t TokNewline) Value() string {
	return ""
}

func (t TokNewline) String() string {
	return "<NEWLINE>"
}

func (t TokNewline) Is(_ string) bool {
	return false
}

func (t TokNewline) AsString() string {
	return ""
}

func IsNewline(t Token) bool {
	_, ok := t.(TokNewline)
	return ok
}

func IsIndent(t Token) bool {
	_, ok := t.(TokIndent)
	return ok
}

func IsDedent(t Token) bool {
	_, ok := t.(TokDedent)
	return ok
}
