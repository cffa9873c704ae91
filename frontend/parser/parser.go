// Package parser builds the syntax tree from the lexer's tokens by
// recursive descent with one token of lookahead.
package parser

import (
	"github.com/loto-lang/loto/common"
	"github.com/loto-lang/loto/frontend/ast"
	"github.com/loto-lang/loto/frontend/lexer"
)

type Span = common.Span

var SpanFrom = common.SpanFrom

// parser is the cursor over one token stream; nothing is shared between
// parses.
type parser struct {
	TokenStream []lexer.Token
	Token       lexer.Token
	Pos         uint32
	// funcDepth is above zero while parsing a function body.
	funcDepth int
	// depth counts the statement blocks enclosing the cursor.
	depth int
}

// ParseSource lexes and parses code; src names the file in spans.
func ParseSource(src, code string) (*ast.Program, error) {
	tokens, err := lexer.Lex(src, code)
	if err != nil {
		return nil, err
	}
	prog, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	prog.Code = code
	return prog, nil
}

// Parse builds a Program from a token stream ending in eof.
func Parse(tkS []lexer.Token) (prog *ast.Program, err error) {
	if len(tkS) == 0 {
		return &ast.Program{}, nil
	}

	p := &parser{
		TokenStream: tkS,
		Token:       tkS[0],
		Pos:         0,
	}

	defer func() {
		if r := recover(); r != nil {
			synErr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			prog, err = nil, synErr
		}
	}()

	prog = &ast.Program{}
	p.skipNewlines()
	for !lexer.IsEOF(p.Token) {
		prog.Body = append(prog.Body, p.parseStmt())
		p.skipNewlines()
	}
	return prog, nil
}

// advance moves the parser forward by one token.
func (p *parser) advance() {
	p.Pos = min(p.Pos+1, uint32(len(p.TokenStream)-1))
	p.Token = p.TokenStream[p.Pos]
}

func (p *parser) peek() lexer.Token {
	return p.peekOffset(+1)
}

// peekOffset returns the token at p.Pos + n, clamped to the stream.
func (p *parser) peekOffset(n int) lexer.Token {
	idx := int(p.Pos) + n
	if idx < 0 {
		idx = 0
	} else if idx >= len(p.TokenStream) {
		idx = len(p.TokenStream) - 1
	}
	return p.TokenStream[idx]
}

func (p *parser) span() Span {
	return p.Token.Span()
}

func (p *parser) prevSpan() Span {
	return p.peekOffset(-1).Span()
}

// adjacent reports whether the current token starts right where the
// previous one ended, with no whitespace in between.
func (p *parser) adjacent() bool {
	prev, cur := p.prevSpan(), p.span()
	return prev.LineEnd == cur.LineStart && prev.ColumnEnd+1 == cur.ColumnStart
}

func (p *parser) tryConsume(lit string) bool {
	if p.Token.Is(lit) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(lit string) {
	if !p.tryConsume(lit) {
		p.fail(lexer.KindOf(lit), lit)
	}
}

func (p *parser) expectIdent() lexer.TokIdent {
	if i, ok := p.Token.(lexer.TokIdent); ok {
		p.advance()
		return i
	}
	p.fail(lexer.KindIdentifier, "")
	panic("unreachable")
}

// expectName accepts an identifier or a keyword, for property and
// attribute names where reserved words are allowed.
func (p *parser) expectName() string {
	switch t := p.Token.(type) {
	case lexer.TokIdent:
		p.advance()
		return t.Raw
	case lexer.TokKeyword:
		p.advance()
		return t.String()
	}
	p.fail(lexer.KindIdentifier, "")
	panic("unreachable")
}

// parseDashedName reads `word(-word)*` with no spaces around the dashes.
func (p *parser) parseDashedName() string {
	name := p.expectName()
	for p.Token.Is("-") && p.adjacent() {
		p.advance()
		name += "-" + p.expectName()
	}
	return name
}

func (p *parser) skipNewlines() {
	for lexer.IsNewline(p.Token) {
		p.advance()
	}
}

// expectNewline ends a line; eof also ends the last one.
func (p *parser) expectNewline() {
	if lexer.IsEOF(p.Token) {
		return
	}
	if !lexer.IsNewline(p.Token) {
		p.fail(lexer.KindNewline, "")
	}
	p.advance()
}

func (p *parser) expectDedent() {
	if !lexer.IsDedent(p.Token) {
		p.fail(lexer.KindDedent, "")
	}
	p.advance()
}

// expectEnd closes a block with `end` on its own line.
func (p *parser) expectEnd() {
	p.skipNewlines()
	p.expect("end")
	p.expectNewline()
}

func (p *parser) parseCommaSeparatedDelimited(closing string, parse func(*parser)) {
	for !p.Token.Is(closing) {
		parse(p)
		if !p.tryConsume(",") {
			break
		}
	}
	p.expect(closing)
}
