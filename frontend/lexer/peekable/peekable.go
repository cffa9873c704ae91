// Package peekable provides a peekable iterator over a string
package peekable

import (
	"unicode/utf8"
)

// EOF signals that there are no more runes in the iterator.
const EOF rune = 0

// noWidth is the width assigned when there is no next rune.
const noWidth = 0

// Chars is a peekable iterator over a single source line.
// A trailing '\r' left over from CRLF input is dropped.
type Chars struct {
	input   string
	pos     int
	width   int
	next    rune
	hasNext bool
}

// NewPeekableChars creates a new PeekableChars iterator.
func NewPeekableChars(s string) *Chars {
	if n := len(s); n > 0 && s[n-1] == '\r' {
		s = s[:n-1]
	}
	p := &Chars{input: s}
	p.advance()
	return p
}

// advance moves to the next rune (or sets EOF/noWidth).
func (p *Chars) advance() {
	if p.pos >= len(p.input) {
		p.hasNext = false
		p.next = EOF
		p.width = noWidth
		return
	}
	r, w := utf8.DecodeRuneInString(p.input[p.pos:])
	p.next = r
	p.width = w
	p.hasNext = true
}

// Peek returns a copy of the next rune without consuming it.
// It returns nil if there is no next rune.
func (p *Chars) Peek() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	return &r
}

// Next consumes and returns a copy of the next rune.
// It returns nil if there is no next rune.
func (p *Chars) Next() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	p.pos += p.width
	p.advance()
	return &r
}

// Rest returns the unconsumed remainder, starting at the rune Peek would return.
func (p *Chars) Rest() string {
	return p.input[p.pos:]
}

func (p *Chars) Pos() int {
	if !p.hasNext {
		return len(p.input) // EOF position is the end of the input
	}
	return p.pos
}
