package fracture

import (
	"errors"
	"fmt"
)

// Category sentinels for errors.Is. ErrLexical marks problems found while
// scanning tokens; ErrSyntax marks structural problems found while
// assembling the document from tokens.
var (
	ErrLexical = errors.New("lexical error")
	ErrSyntax  = errors.New("syntax error")
)

// Error is the error type returned by all parsing and formatting operations.
// Pos is nil when the error is not tied to a spot in the input.
type Error struct {
	Message string
	Pos     *InputPosition

	kind error
}

func (e *Error) Error() string {
	if e.Pos == nil {
		return e.Message
	}
	return fmt.Sprintf("%s at idx %d (row %d, col %d)", e.Message, e.Pos.Index, e.Pos.Row, e.Pos.Column)
}

// Unwrap exposes the category sentinel, or the wrapped cause, to errors.Is
// and errors.As.
func (e *Error) Unwrap() error { return e.kind }

func newLexicalError(message string, pos InputPosition) *Error {
	p := pos
	return &Error{Message: message, Pos: &p, kind: ErrLexical}
}

func newSyntaxError(message string, pos InputPosition) *Error {
	p := pos
	return &Error{Message: message, Pos: &p, kind: ErrSyntax}
}

func simpleError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func wrapError(cause error, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), kind: cause}
}
