package compiler

import (
	"errors"

	protocol "github.com/gluax-lang/lsp"
	codegen "github.com/loto-lang/loto/backend"
	"github.com/loto-lang/loto/common"
	"github.com/loto-lang/loto/frontend/lexer"
	"github.com/loto-lang/loto/frontend/parser"
)

type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrLex
	ErrSyntax
	ErrUnknownNode
	ErrIO
	ErrOther
)

var errorKindNames = [...]string{
	ErrNone:        "none",
	ErrLex:         "lex error",
	ErrSyntax:      "syntax error",
	ErrUnknownNode: "unknown node",
	ErrIO:          "i/o error",
	ErrOther:       "error",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "error"
}

// Classify tells which stage produced err. Wrapped errors are unwrapped.
func Classify(err error) ErrorKind {
	var (
		lexErr     *lexer.LexError
		syntaxErr  *parser.SyntaxError
		unknownErr *codegen.UnknownNodeError
		ioErr      *IOError
	)
	switch {
	case err == nil:
		return ErrNone
	case errors.As(err, &lexErr):
		return ErrLex
	case errors.As(err, &syntaxErr):
		return ErrSyntax
	case errors.As(err, &unknownErr):
		return ErrUnknownNode
	case errors.As(err, &ioErr):
		return ErrIO
	}
	return ErrOther
}

type spanned interface {
	Span() common.Span
}

// Diagnostic converts a pipeline error into an editor diagnostic. Errors
// without a position are pinned to the first line.
func Diagnostic(err error) *protocol.Diagnostic {
	if err == nil {
		return nil
	}
	span := common.SpanDefault()
	var sp spanned
	if errors.As(err, &sp) {
		span = sp.Span()
	}
	return common.ErrorDiag(err.Error(), span)
}
