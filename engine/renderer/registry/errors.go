package registry

import (
	"fmt"

	"github.com/glintgfx/glint/technique"
)

// UnknownTechniqueError reports a lookup for a technique the registry does not
// know: either a name outside the technique set or a valid technique whose
// registration was never attempted. Distinct from NotCompiledError, which marks
// a technique whose registration was attempted and failed.
type UnknownTechniqueError struct {
	// Technique is the unrecognized technique name.
	Technique technique.Technique
}

func (e *UnknownTechniqueError) Error() string {
	return fmt.Sprintf("unknown technique %q", e.Technique)
}

// NotCompiledError reports a lookup for a technique whose registration was
// attempted and failed, leaving it without a usable program. Cause carries the
// recorded registration failure.
type NotCompiledError struct {
	// Technique is the technique with no usable program.
	Technique technique.Technique

	// Cause is the error from the failed registration.
	Cause error
}

func (e *NotCompiledError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("technique %q has no usable program", e.Technique)
	}
	return fmt.Sprintf("technique %q has no usable program: %v", e.Technique, e.Cause)
}

func (e *NotCompiledError) Unwrap() error {
	return e.Cause
}

// SchemaMismatchError reports a disagreement between a linked program's uniform
// interface and the technique's declared uniform schema, caught at registration
// so that binding never discovers it mid-frame.
type SchemaMismatchError struct {
	// Technique is the technique whose program disagreed with its schema.
	Technique technique.Technique

	// Detail names the missing, unexpected, or misplaced uniform.
	Detail string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("program for technique %q does not match its uniform schema: %s", e.Technique, e.Detail)
}
