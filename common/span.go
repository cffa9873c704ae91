package common

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
)

// Span represents a range in a source file.
// Lines and columns are 1-based.
type Span struct {
	LineStart, LineEnd     uint32
	ColumnStart, ColumnEnd uint32
	Source                 string // "" == unknown
}

func adjustN(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	return n - 1
}

func (s Span) ToRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      adjustN(s.LineStart),
			Character: adjustN(s.ColumnStart),
		},
		End: protocol.Position{
			Line:      adjustN(s.LineEnd),
			Character: s.ColumnEnd,
		},
	}
}

// Contains reports whether the zero-based LSP position falls inside the span.
func (s Span) Contains(pos protocol.Position) bool {
	line := pos.Line + 1
	col := pos.Character + 1
	if line < s.LineStart || line > s.LineEnd {
		return false
	}
	if line == s.LineStart && col < s.ColumnStart {
		return false
	}
	if line == s.LineEnd && col > s.ColumnEnd {
		return false
	}
	return true
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d (%s)", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd, s.Source)
}

// SpanDefault is the 1:1 span.
func SpanDefault() Span {
	return Span{LineStart: 1, LineEnd: 1, ColumnStart: 1, ColumnEnd: 1}
}

func SpanNew(lineStart, lineEnd, columnStart, columnEnd uint32) Span {
	return Span{
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		ColumnStart: columnStart,
		ColumnEnd:   columnEnd,
	}
}

// SpanFrom joins the outer bounds of two spans.
func SpanFrom(start, end Span) Span {
	return Span{
		LineStart:   start.LineStart,
		LineEnd:     end.LineEnd,
		ColumnStart: start.ColumnStart,
		ColumnEnd:   end.ColumnEnd,
		Source:      start.Source,
	}
}
