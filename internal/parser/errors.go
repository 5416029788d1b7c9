package parser

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every error about a malformed pattern.
var ErrSyntax = errors.New("syntax error")

// SyntaxError points at the offending byte offset of the pattern.
type SyntaxError struct {
	Pattern string
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at %d in %q: %s", ErrSyntax, e.Pos, e.Pattern, e.Message)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
