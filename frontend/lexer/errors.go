package lexer

import (
	"fmt"

	"github.com/loto-lang/loto/common"
)

// LexError reports an unrecognized character or an inconsistent dedent.
type LexError struct {
	Line   uint32
	Column uint32
	// Char is the offending character, zero for indentation errors.
	Char   rune
	Msg    string
	Source string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
}

func (e *LexError) Span() common.Span {
	return common.Span{
		LineStart:   e.Line,
		LineEnd:     e.Line,
		ColumnStart: e.Column,
		ColumnEnd:   e.Column,
		Source:      e.Source,
	}
}
