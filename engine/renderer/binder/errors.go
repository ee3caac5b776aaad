package binder

import (
	"fmt"

	"github.com/glintgfx/glint/technique"
)

// BindError reports a failure to bind frame parameters to a technique's uniform
// schema. The most common cause is a required uniform missing from the frame
// parameters; the binder never substitutes a zero value for a required entry.
type BindError struct {
	// Technique is the technique the bind was attempted for.
	Technique technique.Technique

	// MissingName is the uniform name that could not be satisfied.
	MissingName string

	// Detail distinguishes failure causes beyond a plain missing value, such as
	// a value supplied under the right name but the wrong type.
	Detail string
}

func (e *BindError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("bind technique %q: uniform %q: %s", e.Technique, e.MissingName, e.Detail)
	}
	return fmt.Sprintf("bind technique %q: required uniform %q missing from frame parameters", e.Technique, e.MissingName)
}
