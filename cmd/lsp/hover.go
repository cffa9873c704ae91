package lsp

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
	"github.com/loto-lang/loto/frontend/lexer"
)

var keywordDocs = map[lexer.Keyword]string{
	lexer.KwDef:       "Declares a function, or a method inside a class or component.",
	lexer.KwEnd:       "Closes the innermost block.",
	lexer.KwPrint:     "Prints a value through the runtime `print` helper.",
	lexer.KwClass:     "Declares a class. `def construct` becomes its constructor.",
	lexer.KwNew:       "Instantiates a class.",
	lexer.KwConstruct: "Names the class constructor.",
	lexer.KwComponent: "Declares a React function component.",
	lexer.KwProps:     "Lists the component's props with optional defaults.",
	lexer.KwState:     "Lists state variables; each becomes a `useState` hook.",
	lexer.KwRender:    "Describes the element tree the component returns.",
	lexer.KwStyle:     "Declares style rules, emitted as a styles object.",
}

// TokenAt returns the token whose span covers pos. Layout tokens never
// match. Code that does not lex yields nil.
func TokenAt(code string, pos protocol.Position) lexer.Token {
	tokens, err := lexer.Lex("", code)
	if err != nil {
		return nil
	}
	for _, tok := range tokens {
		switch tok.Kind() {
		case lexer.KindNewline, lexer.KindIndent, lexer.KindDedent, lexer.KindEOF:
			continue
		}
		if tok.Span().Contains(pos) {
			return tok
		}
	}
	return nil
}

func hoverText(tok lexer.Token) string {
	content := fmt.Sprintf("```loto\n%s\n```\n", lexer.Describe(tok))
	if kw, ok := tok.(lexer.TokKeyword); ok {
		if doc, ok := keywordDocs[kw.Keyword]; ok {
			content += "\n" + doc + "\n"
		}
	}
	return content
}

func (h *Handler) Hover(p *protocol.HoverParams) (*protocol.Hover, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	tok := TokenAt(h.fileCache[p.TextDocument.URI], p.Position)
	if tok == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  "markdown",
			Value: hoverText(tok),
		},
	}, nil
}
