package parser

import (
	"errors"
	"fmt"
)

// ParseError is a syntax error tagged with the source line it was found on.
type ParseError struct {
	Line   int
	Reason string
}

// NewParseError creates a parse error for line.
func NewParseError(line int, reason string) *ParseError {
	return &ParseError{Line: line, Reason: reason}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error line %d : %s", e.Line, e.Reason)
}

// Msg returns a copy of e with context appended to the reason. The
// existing reason text is kept in front.
func (e *ParseError) Msg(context string) *ParseError {
	return &ParseError{
		Line:   e.Line,
		Reason: e.Reason + ", " + context,
	}
}

// withMsg attaches context to err if it is a *ParseError.
func withMsg(err error, context string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Msg(context)
	}
	return err
}
