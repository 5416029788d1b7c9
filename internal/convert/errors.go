package convert

import (
	"errors"
	"fmt"

	"regex-transpiler/expr"
)

// ErrUnresolvedReference is returned when a backreference or call points at no group.
var ErrUnresolvedReference = errors.New("unresolved group reference")

// ReferenceError describes the backreference that could not be resolved.
type ReferenceError struct {
	Source string
	Pos    int
	Ref    expr.Reference
}

func (e *ReferenceError) Error() string {
	target := fmt.Sprintf("group %d", e.Ref.Number)
	if e.Ref.Name != "" {
		target = fmt.Sprintf("group %q", e.Ref.Name)
	}

	return fmt.Sprintf("%s at %d: %s: %v", e.Source, e.Pos, target, ErrUnresolvedReference)
}

func (e *ReferenceError) Unwrap() error {
	return ErrUnresolvedReference
}
