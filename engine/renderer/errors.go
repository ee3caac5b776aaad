package renderer

import (
	"fmt"

	"github.com/glintgfx/glint/technique"
)

// DispatchStateError reports an operation invoked in a dispatch state that does not
// allow it, such as a draw with no uniforms bound. The dispatcher resets to
// DispatchStateIdle after any error, so a failed sequence never leaves a
// half-bound program behind.
type DispatchStateError struct {
	// Op is the operation that was attempted.
	Op string

	// State is the dispatch state the operation was attempted in.
	State DispatchState
}

func (e *DispatchStateError) Error() string {
	return fmt.Sprintf("cannot %s in dispatch state %s", e.Op, e.State)
}

// VertexLayoutError reports a draw whose mesh vertex layout disagrees with the
// bound program's vertex attributes in location or component count. The draw
// is rejected before any GPU work is encoded.
type VertexLayoutError struct {
	// Technique is the technique whose program the mesh was drawn with.
	Technique technique.Technique

	// Detail names the attribute or location that disagreed.
	Detail string
}

func (e *VertexLayoutError) Error() string {
	return fmt.Sprintf("mesh vertex layout does not match program for technique %q: %s", e.Technique, e.Detail)
}
