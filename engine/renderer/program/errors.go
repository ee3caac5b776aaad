package program

import (
	"fmt"

	"github.com/glintgfx/glint/technique"
)

// LinkError reports a failure to link a vertex and fragment stage into a program.
// Linking fails when the stage interfaces disagree (a fragment input with no matching
// vertex output), when the stages declare conflicting resource bindings, or when the
// vertex attribute contract is violated. Like compile failures, link failures are fatal
// for the technique being registered but never for the process.
type LinkError struct {
	// Technique is the technique the program was being linked for.
	Technique technique.Technique

	// Detail is the human-readable link failure description, naming the offending
	// variable or binding where one is known.
	Detail string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program for technique %q: %s", e.Technique, e.Detail)
}

// newLinkError builds a LinkError with a formatted detail message.
func newLinkError(t technique.Technique, format string, args ...any) *LinkError {
	return &LinkError{
		Technique: t,
		Detail:    fmt.Sprintf(format, args...),
	}
}
