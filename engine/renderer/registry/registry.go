package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/glintgfx/glint/engine/renderer/program"
	"github.com/glintgfx/glint/engine/renderer/shader"
	"github.com/glintgfx/glint/technique"
)

// registryImpl is the implementation of the Registry interface.
// It caches one linked program per technique and records the last registration
// failure for techniques with no usable program.
type registryImpl struct {
	mu *sync.Mutex

	// programs holds the current linked program per technique. Replaced wholesale
	// on re-registration; callers holding the old Program keep a valid value.
	programs map[technique.Technique]program.Program

	// failures records the last registration error per technique so Get can
	// report why a technique has no usable program.
	failures map[technique.Technique]error

	// generations counts registrations per technique. Each successful Register
	// bumps the counter and stamps it on the new program.
	generations map[technique.Technique]uint64

	// programOptions holds extra link-time options applied per technique on top
	// of the built-in defaults.
	programOptions map[technique.Technique][]program.ProgramBuilderOption
}

// Registry defines the interface for the technique program cache. It owns the
// compile-link-validate path for every technique and hands out linked programs
// by technique name. Registration replaces atomically: a failed re-registration
// leaves the previous program untouched and available.
type Registry interface {
	// Register compiles both stage sources, links them into a program for the
	// technique, and validates the linked uniform interface against the
	// technique's declared schema before caching it. On success the new program
	// replaces any previous one under a bumped generation; the previous program
	// value remains valid for callers still holding it. On failure the previous
	// program (if any) stays registered and the failure is recorded.
	//
	// Parameters:
	//   - t: the technique to register a program for
	//   - vertexSource: the raw WGSL vertex stage source
	//   - fragmentSource: the raw WGSL fragment stage source
	//   - opts: extra link-time pipeline options applied after the registry's configured options
	//
	// Returns:
	//   - program.Program: the newly registered program, nil on error
	//   - error: a *shader.CompileError, *program.LinkError, *SchemaMismatchError, or *UnknownTechniqueError describing the failure
	Register(t technique.Technique, vertexSource, fragmentSource string, opts ...program.ProgramBuilderOption) (program.Program, error)

	// RegisterDefaults registers every technique from its embedded stage assets.
	// A failing technique does not stop the others from registering; all failures
	// are joined into the returned error.
	//
	// Returns:
	//   - error: the joined registration failures, nil if every technique registered
	RegisterDefaults() error

	// Get retrieves the current program for a technique.
	//
	// Parameters:
	//   - t: the technique to look up
	//
	// Returns:
	//   - program.Program: the technique's current program, nil on error
	//   - error: an *UnknownTechniqueError for names outside the technique set or
	//     techniques never registered, or a *NotCompiledError carrying the stored
	//     failure when the last registration was attempted and failed
	Get(t technique.Technique) (program.Program, error)

	// Generation returns the current registration generation for a technique,
	// zero if the technique has never registered successfully.
	//
	// Parameters:
	//   - t: the technique to look up
	//
	// Returns:
	//   - uint64: the technique's current generation
	Generation(t technique.Technique) uint64

	// Techniques returns the techniques that currently have a usable program.
	//
	// Returns:
	//   - []technique.Technique: techniques with a registered program, in technique.All order
	Techniques() []technique.Technique

	// Teardown releases every cached program's GPU pipeline and clears the cache.
	// The registry is reusable after Teardown; techniques must be re-registered.
	Teardown()
}

var _ Registry = &registryImpl{}

// defaultProgramOptions holds the built-in link-time pipeline options per technique.
// The transparent techniques blend against the framebuffer and must not write depth.
var defaultProgramOptions = map[technique.Technique][]program.ProgramBuilderOption{
	technique.TechniqueParticleBillboard: {
		program.WithBlendEnabled(true),
		program.WithDepthWriteEnabled(false),
	},
	technique.TechniqueProceduralCheckerboardUV: {
		program.WithBlendEnabled(true),
		program.WithDepthWriteEnabled(false),
	},
	technique.TechniqueLitMesh: {
		program.WithCullMode(wgpu.CullModeBack),
	},
	technique.TechniqueLitMeshWorld: {
		program.WithCullMode(wgpu.CullModeBack),
	},
}

// NewRegistry creates a new Registry with all specified options applied.
//
// Parameters:
//   - opts: a variadic list of RegistryBuilderOption functions to configure the registry
//
// Returns:
//   - Registry: a new Registry instance
func NewRegistry(opts ...RegistryBuilderOption) Registry {
	r := &registryImpl{
		mu:             &sync.Mutex{},
		programs:       make(map[technique.Technique]program.Program),
		failures:       make(map[technique.Technique]error),
		generations:    make(map[technique.Technique]uint64),
		programOptions: make(map[technique.Technique][]program.ProgramBuilderOption),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *registryImpl) Register(t technique.Technique, vertexSource, fragmentSource string, opts ...program.ProgramBuilderOption) (program.Program, error) {
	if !t.Valid() {
		return nil, &UnknownTechniqueError{Technique: t}
	}

	p, err := r.build(t, vertexSource, fragmentSource, opts)
	if err != nil {
		r.mu.Lock()
		r.failures[t] = err
		r.mu.Unlock()
		return nil, err
	}

	r.mu.Lock()
	r.generations[t]++
	p.SetGeneration(r.generations[t])
	r.programs[t] = p
	delete(r.failures, t)
	r.mu.Unlock()

	return p, nil
}

// build runs the compile-link-validate path outside the registry lock.
func (r *registryImpl) build(t technique.Technique, vertexSource, fragmentSource string, opts []program.ProgramBuilderOption) (program.Program, error) {
	vertex, err := shader.CompileStage(fmt.Sprintf("%s_vert", t), shader.StageKindVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	fragment, err := shader.CompileStage(fmt.Sprintf("%s_frag", t), shader.StageKindFragment, fragmentSource)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	linkOpts := append(append([]program.ProgramBuilderOption{}, defaultProgramOptions[t]...), r.programOptions[t]...)
	r.mu.Unlock()
	linkOpts = append(linkOpts, opts...)

	p, err := program.Link(t, vertex, fragment, linkOpts...)
	if err != nil {
		return nil, err
	}

	if err := validateSchema(t, p); err != nil {
		return nil, err
	}
	return p, nil
}

// validateSchema checks the linked program's uniform interface against the
// technique's declared schema: every schema entry must bind at group 0 with its
// binding index equal to its position in the schema, and the program must declare
// no uniforms outside the schema.
func validateSchema(t technique.Technique, p program.Program) error {
	schema := technique.Schema(t)

	for i, entry := range schema {
		loc, ok := p.UniformLocation(entry.Name)
		if !ok {
			return &SchemaMismatchError{
				Technique: t,
				Detail:    fmt.Sprintf("uniform %q is declared in the schema but not in the program", entry.Name),
			}
		}
		if loc.Group != 0 || loc.Binding != i {
			return &SchemaMismatchError{
				Technique: t,
				Detail: fmt.Sprintf("uniform %q must bind at (0, %d), program binds it at (%d, %d)",
					entry.Name, i, loc.Group, loc.Binding),
			}
		}
	}

	names := technique.SchemaNames(t)
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	for _, name := range p.UniformNames() {
		if !known[name] {
			return &SchemaMismatchError{
				Technique: t,
				Detail:    fmt.Sprintf("program declares uniform %q which is not in the schema", name),
			}
		}
	}

	return nil
}

func (r *registryImpl) RegisterDefaults() error {
	var errs []error
	for _, t := range technique.All() {
		vertexSource, err := technique.VertexSource(t)
		if err != nil {
			errs = append(errs, err)
			r.mu.Lock()
			r.failures[t] = err
			r.mu.Unlock()
			continue
		}
		fragmentSource, err := technique.FragmentSource(t)
		if err != nil {
			errs = append(errs, err)
			r.mu.Lock()
			r.failures[t] = err
			r.mu.Unlock()
			continue
		}
		if _, err := r.Register(t, vertexSource, fragmentSource); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *registryImpl) Get(t technique.Technique) (program.Program, error) {
	if !t.Valid() {
		return nil, &UnknownTechniqueError{Technique: t}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.programs[t]; ok {
		return p, nil
	}
	if cause, ok := r.failures[t]; ok {
		return nil, &NotCompiledError{Technique: t, Cause: cause}
	}
	return nil, &UnknownTechniqueError{Technique: t}
}

func (r *registryImpl) Generation(t technique.Technique) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generations[t]
}

func (r *registryImpl) Techniques() []technique.Technique {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]technique.Technique, 0, len(r.programs))
	for _, t := range technique.All() {
		if _, ok := r.programs[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (r *registryImpl) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for t, p := range r.programs {
		if rp := p.RenderPipeline(); rp != nil {
			rp.Release()
		}
		delete(r.programs, t)
	}
	r.failures = make(map[technique.Technique]error)
}
