package codegen

import (
	"fmt"

	"github.com/loto-lang/loto/common"
)

// UnknownNodeError means the generator met a node kind it has no rule for.
// The parser never produces one, so this is an internal fault rather than a
// problem with the input.
type UnknownNodeError struct {
	Kind string
	At   common.Span
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("no code generation rule for node kind %s", e.Kind)
}

func (e *UnknownNodeError) Span() common.Span {
	return e.At
}
