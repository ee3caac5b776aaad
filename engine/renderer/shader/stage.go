package shader

import (
	"os"

	"github.com/cogentcore/webgpu/wgpu"
)

// StageKind identifies whether a stage is the vertex or the fragment half
// of a technique program.
type StageKind string

const (
	// StageKindVertex is the vertex stage kind, used for vertex processing in render pipelines.
	StageKindVertex StageKind = "vertex"

	// StageKindFragment is the fragment stage kind, paired with a vertex stage at link time.
	StageKindFragment StageKind = "fragment"
)

// stage is the implementation of the Stage interface.
// It holds all of the persistent stage data required for linking and pipeline creation.
type stage struct {
	key                        string
	kind                       StageKind
	source                     string
	entryPoint                 string
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	vertexLayouts              map[int][]wgpu.VertexBufferLayout
	outputs                    []StageVar
	inputs                     []StageVar
	module                     *wgpu.ShaderModuleDescriptor

	pp PreProcessor
}

// Stage defines the interface for a compiled WGSL shader stage. It exposes the stage's
// key, kind, processed source, entry point, bind group layout descriptors, vertex buffer
// layouts, and inter-stage variables needed for link validation and pipeline creation.
type Stage interface {
	// Key retrieves the unique identifier for this stage, used for caching and lookups.
	//
	// Returns:
	//   - string: the stage's unique key
	Key() string

	// Kind returns the kind of the stage (vertex or fragment).
	//
	// Returns:
	//   - StageKind: StageKindVertex or StageKindFragment
	Kind() StageKind

	// Source retrieves the processed WGSL source code with all annotations replaced.
	//
	// Returns:
	//   - string: the processed WGSL source code of the stage
	Source() string

	// EntryPoint returns the entry point function name for this stage.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// BindGroupLayoutDescriptor retrieves the bind group layout descriptor for a specific group index.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the descriptor for the group, or an empty descriptor if not set
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptors retrieves all parsed bind group layout descriptors.
	// These are the CPU-side descriptors extracted from the stage source which the
	// dispatcher uses to create the actual wgpu.BindGroupLayout GPU objects.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName retrieves the variable name for a given group and binding index, if it exists.
	// This is used to build the program's uniform index at link time.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - string: the variable name associated with the group and binding, or an empty string if not found
	BindGroupVarName(group, binding int) string

	// BindGroupFromVarName retrieves the binding index for a given group and variable name, if it exists.
	//
	// Parameters:
	//   - group: the bind group index
	//   - varName: the variable name within the group
	//
	// Returns:
	//   - int: the binding index associated with the variable name, or -1 if not found
	//   - bool: true if the variable name was found, false otherwise
	BindGroupFromVarName(group int, varName string) (int, bool)

	// BindGroupVarNames retrieves all variable names for all bind groups.
	//
	// Returns:
	//   - map[int]map[int]string: variable names keyed by group and binding index
	BindGroupVarNames() map[int]map[int]string

	// VertexLayout retrieves the vertex buffer layout for a specific key.
	// Always nil for fragment stages.
	//
	// Parameters:
	//   - key: the integer key identifying the vertex layout
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the vertex buffer layout associated with the key, or nil if not set
	VertexLayout(key int) []wgpu.VertexBufferLayout

	// VertexLayouts retrieves all vertex buffer layouts associated with this stage.
	//
	// Returns:
	//   - map[int][]wgpu.VertexBufferLayout: a map of keys to their corresponding vertex buffer layouts
	VertexLayouts() map[int][]wgpu.VertexBufferLayout

	// Outputs returns the inter-stage outputs of a vertex stage, sorted by location.
	// Always nil for fragment stages.
	//
	// Returns:
	//   - []StageVar: the user-defined @location outputs of the vertex entry point
	Outputs() []StageVar

	// Inputs returns the stage's inputs, sorted by location. For a vertex stage
	// these are the vertex attributes; for a fragment stage these are the
	// user-defined inter-stage inputs of the fragment entry point.
	//
	// Returns:
	//   - []StageVar: the stage's @location inputs
	Inputs() []StageVar

	// Module returns the wgpu.ShaderModuleDescriptor for this stage, built during compilation.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the processed WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor

	// Annotations returns the pre-processor annotations that were replaced while
	// compiling this stage, in source order.
	//
	// Returns:
	//   - []Annotation: the annotations replaced during compilation
	Annotations() []Annotation
}

var _ Stage = &stage{}

// CompileStage compiles a single WGSL shader stage from source. Compilation runs the
// pre-processor over the source, builds the shader module descriptor, and parses the
// entry point, bind group layouts, and inter-stage variables. Vertex stages additionally
// get vertex buffer layouts and inter-stage outputs parsed; fragment stages get
// inter-stage inputs parsed.
//
// A stage that fails to compile returns a *CompileError carrying the stage key, kind,
// and a diagnostic with a source line number where one is known. Compile failures are
// fatal for the technique being registered but never for the process.
//
// Parameters:
//   - key: a unique identifier for the stage, used for caching and lookups
//   - kind: the stage kind (StageKindVertex or StageKindFragment)
//   - source: the raw WGSL source code, including the version header and any annotations
//
// Returns:
//   - Stage: the compiled stage, nil on error
//   - error: a *CompileError describing the failure, nil on success
func CompileStage(key string, kind StageKind, source string) (Stage, error) {
	if kind != StageKindVertex && kind != StageKindFragment {
		return nil, newCompileError(key, kind, "unknown stage kind")
	}

	s := &stage{
		key:                        key,
		kind:                       kind,
		bindGroupLayoutDescriptors: make(map[int]wgpu.BindGroupLayoutDescriptor),
		bindingVarNames:            make(map[int]map[int]string),
		vertexLayouts:              make(map[int][]wgpu.VertexBufferLayout),
		pp:                         NewPreProcessor(),
	}
	if err := s.parseSource(source); err != nil {
		return nil, err
	}
	return s, nil
}

// CompileStageFromPath compiles a single WGSL shader stage read from a file path.
// See CompileStage for compilation semantics.
//
// Parameters:
//   - key: a unique identifier for the stage, used for caching and lookups
//   - kind: the stage kind (StageKindVertex or StageKindFragment)
//   - path: the file path to read WGSL source from
//
// Returns:
//   - Stage: the compiled stage, nil on error
//   - error: a *CompileError describing the failure, nil on success
func CompileStageFromPath(key string, kind StageKind, path string) (Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newCompileError(key, kind, "read source file %q: %v", path, err)
	}
	return CompileStage(key, kind, string(data))
}

func (s *stage) Key() string {
	return s.key
}

func (s *stage) Kind() StageKind {
	return s.kind
}

func (s *stage) Source() string {
	return s.source
}

func (s *stage) EntryPoint() string {
	return s.entryPoint
}

func (s *stage) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}

func (s *stage) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *stage) BindGroupVarName(group, binding int) string {
	if s.bindingVarNames[group] == nil {
		return ""
	}
	return s.bindingVarNames[group][binding]
}

func (s *stage) BindGroupFromVarName(group int, varName string) (int, bool) {
	if s.bindingVarNames[group] == nil {
		return -1, false
	}
	for binding, name := range s.bindingVarNames[group] {
		if name == varName {
			return binding, true
		}
	}
	return -1, false
}

func (s *stage) BindGroupVarNames() map[int]map[int]string {
	return s.bindingVarNames
}

func (s *stage) VertexLayout(key int) []wgpu.VertexBufferLayout {
	return s.vertexLayouts[key]
}

func (s *stage) VertexLayouts() map[int][]wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *stage) Outputs() []StageVar {
	return s.outputs
}

func (s *stage) Inputs() []StageVar {
	return s.inputs
}

func (s *stage) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *stage) Annotations() []Annotation {
	return s.pp.Annotations()
}

// parseSource pre-processes the WGSL source, builds the shader module descriptor, parses
// the entry point name, and extracts layout metadata appropriate for the stage kind.
// Vertex stages get vertex buffer layouts and inter-stage outputs parsed. Fragment stages
// get inter-stage inputs parsed. Both kinds get bind group layout descriptors parsed with
// the matching stage visibility.
func (s *stage) parseSource(raw string) error {
	processed, err := s.pp.Process(raw)
	if err != nil {
		return newCompileError(s.key, s.kind, "%v", err)
	}
	s.source = processed
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}

	s.entryPoint = parseEntryPoint(s.source, s.kind)
	if s.entryPoint == "" {
		return newCompileError(s.key, s.kind, "no @%s entry point found", s.kind)
	}

	var visibility wgpu.ShaderStage
	switch s.kind {
	case StageKindVertex:
		visibility = wgpu.ShaderStageVertex
		s.vertexLayouts = parseVertexLayouts(s.source)
		s.inputs = parseVertexInputs(s.source)
		s.outputs = parseVertexOutputs(s.source)
	case StageKindFragment:
		visibility = wgpu.ShaderStageFragment
		s.inputs = parseFragmentInputs(s.source)
	}
	s.bindGroupLayoutDescriptors, s.bindingVarNames = parseBindGroupLayouts(s.source, visibility)
	return nil
}
