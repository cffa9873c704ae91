package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/loto-lang/loto/common"
	"github.com/loto-lang/loto/frontend/lexer/peekable"
)

// commentMarker starts a comment line once leading whitespace is trimmed.
const commentMarker = "#"

// lexer scans one line at a time; indentation is tracked across lines.
type lexer struct {
	src          string // source is the file being scanned
	chars        *peekable.Chars
	curChr       *rune
	line, column uint32
	savedColumn  uint32
	indents      *common.Stack[int]
	tokens       []Token
}

// Lex turns code into tokens. Every line ends with a newline token,
// indentation changes become indent/dedent tokens and the stream always
// finishes with the dedents that close open levels followed by eof.
func Lex(src, code string) ([]Token, error) {
	lx := &lexer{
		src:     src,
		indents: common.NewStack(0),
	}

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lx.line = uint32(i + 1)
		if err := lx.lexLine(line); err != nil {
			return nil, err
		}
	}

	last := lx.span(lx.line, 1, 1)
	for lx.indents.Len() > 1 {
		lx.indents.Pop()
		lx.emit(TokDedent{span: last})
	}
	lx.emit(TokEOF{span: last})

	return lx.tokens, nil
}

func (lx *lexer) emit(t Token) {
	lx.tokens = append(lx.tokens, t)
}

func (lx *lexer) span(line, start, end uint32) common.Span {
	span := common.SpanNew(line, line, start, end)
	span.Source = lx.src
	return span
}

func (lx *lexer) currentSpan() common.Span {
	return lx.span(lx.line, lx.savedColumn, max(lx.column-1, lx.savedColumn))
}

func (lx *lexer) advance() {
	if lx.curChr != nil {
		lx.column++
	}
	lx.curChr = lx.chars.Next()
}

func (lx *lexer) error(msg string) *LexError {
	var chr rune
	if lx.curChr != nil {
		chr = *lx.curChr
	}
	return &LexError{
		Line:   lx.line,
		Column: lx.savedColumn,
		Char:   chr,
		Msg:    msg,
		Source: lx.src,
	}
}

func (lx *lexer) lexLine(line string) *LexError {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
		lx.emit(TokNewline{span: lx.span(lx.line, 1, 1)})
		return nil
	}

	lx.chars = peekable.NewPeekableChars(line)
	lx.curChr = lx.chars.Next()
	lx.column = 1

	width := 0
	for c := lx.curChr; c != nil && unicode.IsSpace(*c); c = lx.curChr {
		width++
		lx.advance()
	}
	if err := lx.indentation(width); err != nil {
		return err
	}

	for {
		lx.skipWs()
		if lx.curChr == nil {
			break
		}
		tok, err := lx.nextToken()
		if err != nil {
			return err
		}
		lx.emit(tok)
	}

	lx.emit(TokNewline{span: lx.span(lx.line, lx.column, lx.column)})
	return nil
}

// indentation compares width with the open levels and emits the matching
// indent or dedent tokens.
func (lx *lexer) indentation(width int) *LexError {
	top, _ := lx.indents.Peek()
	span := lx.span(lx.line, 1, uint32(width)+1)
	switch {
	case width > top:
		lx.indents.Push(width)
		lx.emit(TokIndent{span: span})
	case width < top:
		for width < top {
			lx.indents.Pop()
			lx.emit(TokDedent{span: span})
			top, _ = lx.indents.Peek()
		}
		if width != top {
			return &LexError{
				Line:   lx.line,
				Column: uint32(width) + 1,
				Msg:    fmt.Sprintf("indentation error: width %d matches no enclosing level", width),
				Source: lx.src,
			}
		}
	}
	return nil
}

// skipWs skips whitespace up to the next token.
func (lx *lexer) skipWs() {
	for c := lx.curChr; c != nil && unicode.IsSpace(*c); c = lx.curChr {
		lx.advance()
	}
	lx.savedColumn = lx.column
}

func (lx *lexer) nextToken() (Token, *LexError) {
	c := *lx.curChr

	if lx.atJSXInterpolation() {
		return lx.jsxInterpolation(), nil
	}

	if c == '"' {
		return lx.string()
	}

	if token := lx.punct(); token != nil {
		return token, nil
	}

	switch {
	case c == '@':
		return lx.instanceVar()
	case isIdentStart(c):
		return lx.word(), nil
	case isDigit(c):
		return lx.number(), nil
	}

	return nil, lx.error(fmt.Sprintf("unexpected character '%c'", c))
}
