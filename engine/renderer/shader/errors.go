package shader

import "fmt"

// CompileError reports a failure to compile a single shader stage. It is fatal
// for the technique being registered but never for the process: callers log the
// diagnostic, record the failure, and keep running.
type CompileError struct {
	// Key is the stage key the compile was invoked with.
	Key string

	// Kind is the stage kind (vertex or fragment).
	Kind StageKind

	// Diagnostic is the human-readable compile failure description, carrying
	// a source line number where one is known.
	Diagnostic string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s stage %q: %s", e.Kind, e.Key, e.Diagnostic)
}

// newCompileError builds a CompileError with a formatted diagnostic.
func newCompileError(key string, kind StageKind, format string, args ...any) *CompileError {
	return &CompileError{
		Key:        key,
		Kind:       kind,
		Diagnostic: fmt.Sprintf(format, args...),
	}
}
