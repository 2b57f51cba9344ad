package syntax

import (
	"fmt"

	"github.com/lambdalang/lambda/pkg/ast"
)

// origin is the fixed source name used in every diagnostic; the program
// only ever reads from standard input.
const origin = "STDIN"

// SyntaxError is a single parse diagnostic, anchored at a byte offset
// within the source buffer.
type SyntaxError struct {
	// Span is the offset this error is pinned to. Only Start is used
	// when formatting the message; End exists so callers can build a
	// SyntaxError from any Span without discarding information.
	Span ast.Span
	// Msg is the human-readable message, without the trailing period
	// or the "STDIN:<n>: Syntax error: " prefix.
	Msg string
}

// NewSyntaxError constructs a syntax error pinned at the given span.
func NewSyntaxError(span ast.Span, msg string) *SyntaxError {
	return &SyntaxError{span, msg}
}

// Error renders this diagnostic in the exact wire format tests depend on:
// "STDIN:<offset>: Syntax error: <message>."
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: Syntax error: %s.", origin, e.Span.Start, e.Msg)
}
