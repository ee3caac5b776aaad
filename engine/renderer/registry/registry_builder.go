package registry

import (
	"github.com/glintgfx/glint/engine/renderer/program"
	"github.com/glintgfx/glint/technique"
)

// RegistryBuilderOption is a functional option used to configure a Registry during construction.
type RegistryBuilderOption func(*registryImpl)

// WithProgramOptions sets extra link-time pipeline options for a technique, applied
// on top of the registry's built-in defaults every time the technique registers.
//
// Parameters:
//   - t: the technique to configure
//   - opts: the link-time pipeline options to apply for the technique
//
// Returns:
//   - RegistryBuilderOption: a function that sets the technique's program options
func WithProgramOptions(t technique.Technique, opts ...program.ProgramBuilderOption) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.programOptions[t] = append(r.programOptions[t], opts...)
	}
}
