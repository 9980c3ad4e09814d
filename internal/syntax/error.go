package syntax

import (
	"fmt"

	"sgstyle/internal/source"
)

// Error reports that a tree is unfit for analysis, pointing at the
// first offending region.
type Error struct {
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d..%d", e.Msg, e.Span.Start, e.Span.End)
}

// Validate checks the precondition every analysis pass relies on: the
// tree contains no error nodes. Returns a *Error for the first one
// found in walk order, nil otherwise.
func Validate(t *Tree) error {
	var firstErr *Error
	Inspect(t, func(id NodeID) bool {
		if firstErr != nil {
			return false
		}
		if t.Kind(id) == KindError {
			firstErr = &Error{Span: t.Span(id), Msg: "source contains a syntax error"}
			return false
		}
		return true
	})
	if firstErr != nil {
		return firstErr
	}
	return nil
}
