package program

import (
	"sort"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/glintgfx/glint/engine/renderer/shader"
	"github.com/glintgfx/glint/technique"
)

// AttributeSemantic classifies a vertex attribute by what it carries, derived from
// the attribute's name in the vertex input struct.
type AttributeSemantic string

const (
	// AttributeSemanticPosition is the object-space vertex position. Every technique
	// consumes it at location 0 as vec3<f32>.
	AttributeSemanticPosition AttributeSemantic = "position"

	// AttributeSemanticColor is the per-vertex color at location 1, vec3<f32> or
	// vec4<f32> depending on the technique.
	AttributeSemanticColor AttributeSemantic = "color"

	// AttributeSemanticNormal is the object-space vertex normal at location 2,
	// consumed by the lit techniques.
	AttributeSemanticNormal AttributeSemantic = "normal"

	// AttributeSemanticTexCoord is the texture coordinate at location 2, consumed
	// by the UV checker technique.
	AttributeSemanticTexCoord AttributeSemantic = "texCoord"

	// AttributeSemanticUnknown marks an attribute whose name matched no known
	// semantic. Unknown attributes are carried through but never validated.
	AttributeSemanticUnknown AttributeSemantic = "unknown"
)

// UniformLocation identifies where a named uniform binds within a linked program.
type UniformLocation struct {
	// Group is the bind group index from @group(N).
	Group int

	// Binding is the binding index within the group from @binding(M).
	Binding int
}

// Attribute describes a single vertex attribute of a linked program, including its
// classified semantic.
type Attribute struct {
	// Name is the attribute's field name in the vertex input struct.
	Name string

	// Location is the attribute's @location index.
	Location int

	// TypeName is the attribute's WGSL type name (e.g. "vec3<f32>").
	TypeName string

	// Semantic is the classified meaning of the attribute.
	Semantic AttributeSemantic
}

// programImpl is the implementation of the Program interface.
// It holds the linked stages, the merged binding metadata, the uniform index, and the
// pipeline configuration required to create the GPU render pipeline.
type programImpl struct {
	technique  technique.Technique
	generation uint64

	vertexStage, fragmentStage shader.Stage

	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	uniformIndex               map[string]UniformLocation
	attributes                 []Attribute

	renderPipeline *wgpu.RenderPipeline

	// Pipeline configuration, set with builder options at link time.

	depthTestEnabled    bool
	depthWriteEnabled   bool
	depthBias           int32
	depthBiasSlopeScale float32
	blendEnabled        bool
	cullMode            wgpu.CullMode
	topology            wgpu.PrimitiveTopology
	frontFace           wgpu.FrontFace
	writeMask           wgpu.ColorWriteMask
	blendState          *wgpu.BlendState
}

// Program defines the interface for a linked technique program: a validated vertex and
// fragment stage pair plus the merged bind group layouts, the uniform index built at
// link time, the classified vertex attributes, and the pipeline configuration state
// required for GPU pipeline creation.
type Program interface {
	// Technique returns the technique this program was linked for.
	//
	// Returns:
	//   - technique.Technique: the owning technique
	Technique() technique.Technique

	// Generation returns the registration generation of this program. The registry
	// assigns a new generation every time a technique's program is replaced, so
	// callers holding a stale Program can detect the swap.
	//
	// Returns:
	//   - uint64: the program's generation
	Generation() uint64

	// SetGeneration sets the registration generation of this program.
	//
	// Parameters:
	//   - gen: the generation to set
	SetGeneration(gen uint64)

	// Stage retrieves the stage of the specified kind.
	//
	// Parameters:
	//   - kind: the stage kind to retrieve (vertex or fragment)
	//
	// Returns:
	//   - shader.Stage: the stage of the specified kind, or nil if not set
	Stage(kind shader.StageKind) shader.Stage

	// UniformLocation retrieves the bind group location for a named uniform.
	// The index is built once at link time; lookups never re-parse shader source.
	//
	// Parameters:
	//   - name: the uniform variable name as declared in the WGSL source
	//
	// Returns:
	//   - UniformLocation: the group and binding the uniform binds at
	//   - bool: true if the uniform name exists in this program
	UniformLocation(name string) (UniformLocation, bool)

	// UniformNames returns all uniform names known to this program, sorted by
	// group then binding.
	//
	// Returns:
	//   - []string: the program's uniform names
	UniformNames() []string

	// BindGroupLayoutDescriptors retrieves the merged bind group layout descriptors
	// of both stages, with per-entry visibility covering every stage that declared
	// the binding.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: merged descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// Attributes returns the program's vertex attributes with classified semantics,
	// sorted by location.
	//
	// Returns:
	//   - []Attribute: the program's vertex attributes
	Attributes() []Attribute

	// AttributeBySemantic retrieves the vertex attribute with the given semantic,
	// if the program consumes one.
	//
	// Parameters:
	//   - semantic: the semantic to look up
	//
	// Returns:
	//   - Attribute: the matching attribute
	//   - bool: true if the program has an attribute with the semantic
	AttributeBySemantic(semantic AttributeSemantic) (Attribute, bool)

	// DepthTestEnabled returns whether depth testing is enabled for this program's pipeline.
	//
	// Returns:
	//   - bool: true if depth testing is enabled, false otherwise
	DepthTestEnabled() bool

	// DepthWriteEnabled returns whether depth writing is enabled for this program's pipeline.
	//
	// Returns:
	//   - bool: true if depth writing is enabled, false otherwise
	DepthWriteEnabled() bool

	// DepthBias returns the depth bias value configured for this program's pipeline.
	//
	// Returns:
	//   - int32: the depth bias value
	DepthBias() int32

	// DepthBiasSlopeScale returns the depth bias slope scale configured for this program's pipeline.
	//
	// Returns:
	//   - float32: the depth bias slope scale
	DepthBiasSlopeScale() float32

	// BlendEnabled returns whether blending is enabled for this program's pipeline.
	//
	// Returns:
	//   - bool: true if blending is enabled, false otherwise
	BlendEnabled() bool

	// CullMode returns the cull mode configured for this program's pipeline.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode (e.g., wgpu.CullModeNone, wgpu.CullModeBack)
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this program's pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology (e.g., wgpu.PrimitiveTopologyTriangleList)
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this program's pipeline.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding order (e.g., wgpu.FrontFaceCCW)
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask configured for this program's pipeline.
	//
	// Returns:
	//   - wgpu.ColorWriteMask: the color write mask (e.g., wgpu.ColorWriteMaskAll)
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state configured for this program's pipeline.
	//
	// Returns:
	//   - *wgpu.BlendState: the blend state, used only when blending is enabled
	BlendState() *wgpu.BlendState

	// RenderPipeline returns the underlying GPU render pipeline, nil until the
	// dispatcher backend has created it.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the GPU render pipeline
	RenderPipeline() *wgpu.RenderPipeline

	// SetRenderPipeline sets the underlying GPU render pipeline.
	//
	// Parameters:
	//   - p: the WebGPU render pipeline to set
	SetRenderPipeline(p *wgpu.RenderPipeline)
}

var _ Program = &programImpl{}

// Link validates and links a compiled vertex and fragment stage into a Program for
// the given technique. Linking performs the cross-stage work that single-stage
// compilation cannot:
//
//   - interface validation: every fragment inter-stage input must have a vertex
//     output at the same location with the same type
//   - binding merge: both stages' bind group layouts are merged, with per-entry
//     visibility covering every declaring stage; conflicting declarations at the
//     same group and binding fail the link
//   - uniform index: a name-to-location index over every uniform variable, built
//     once here so later lookups never re-parse shader source
//   - attribute contract: the vertex stage must consume a vec3<f32> position
//     attribute at location 0
//
// A program that fails to link returns a *LinkError naming the offending variable
// or binding. Link failures are fatal for the technique being registered but never
// for the process.
//
// Parameters:
//   - t: the technique the program belongs to
//   - vertex: the compiled vertex stage
//   - fragment: the compiled fragment stage
//   - opts: a variadic list of ProgramBuilderOption functions to configure the pipeline state
//
// Returns:
//   - Program: the linked program, nil on error
//   - error: a *LinkError describing the failure, nil on success
func Link(t technique.Technique, vertex, fragment shader.Stage, opts ...ProgramBuilderOption) (Program, error) {
	if !t.Valid() {
		return nil, newLinkError(t, "unknown technique")
	}
	if vertex == nil || fragment == nil {
		return nil, newLinkError(t, "both a vertex and a fragment stage are required")
	}
	if vertex.Kind() != shader.StageKindVertex {
		return nil, newLinkError(t, "stage %q is not a vertex stage", vertex.Key())
	}
	if fragment.Kind() != shader.StageKindFragment {
		return nil, newLinkError(t, "stage %q is not a fragment stage", fragment.Key())
	}

	if err := validateStageInterface(t, vertex, fragment); err != nil {
		return nil, err
	}

	descriptors, uniformIndex, err := mergeBindings(t, vertex, fragment)
	if err != nil {
		return nil, err
	}

	attributes, err := classifyAttributes(t, vertex)
	if err != nil {
		return nil, err
	}

	p := &programImpl{
		technique:                  t,
		vertexStage:                vertex,
		fragmentStage:              fragment,
		bindGroupLayoutDescriptors: descriptors,
		uniformIndex:               uniformIndex,
		attributes:                 attributes,
		depthTestEnabled:           true,
		depthWriteEnabled:          true,
		blendEnabled:               false,
		cullMode:                   wgpu.CullModeNone,
		topology:                   wgpu.PrimitiveTopologyTriangleList,
		frontFace:                  wgpu.FrontFaceCCW,
		writeMask:                  wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// validateStageInterface checks that every fragment inter-stage input has a matching
// vertex output at the same location with the same type.
func validateStageInterface(t technique.Technique, vertex, fragment shader.Stage) error {
	outputs := make(map[int]shader.StageVar, len(vertex.Outputs()))
	for _, out := range vertex.Outputs() {
		outputs[out.Location] = out
	}

	for _, in := range fragment.Inputs() {
		out, ok := outputs[in.Location]
		if !ok {
			return newLinkError(t, "fragment input %q at location %d has no matching vertex output", in.Name, in.Location)
		}
		if out.TypeName != in.TypeName {
			return newLinkError(t, "fragment input %q at location %d has type %s but vertex output %q has type %s",
				in.Name, in.Location, in.TypeName, out.Name, out.TypeName)
		}
	}
	return nil
}

// mergeBindings merges the bind group layout descriptors of both stages and builds the
// program's uniform index. A binding declared by both stages must agree on variable name
// and buffer type; its merged visibility covers both stages.
func mergeBindings(t technique.Technique, vertex, fragment shader.Stage) (map[int]wgpu.BindGroupLayoutDescriptor, map[string]UniformLocation, error) {
	merged := make(map[int]map[int]wgpu.BindGroupLayoutEntry)
	names := make(map[int]map[int]string)

	for _, s := range []shader.Stage{vertex, fragment} {
		for group, descriptor := range s.BindGroupLayoutDescriptors() {
			if merged[group] == nil {
				merged[group] = make(map[int]wgpu.BindGroupLayoutEntry)
				names[group] = make(map[int]string)
			}
			for _, entry := range descriptor.Entries {
				binding := int(entry.Binding)
				varName := s.BindGroupVarName(group, binding)

				existing, ok := merged[group][binding]
				if !ok {
					merged[group][binding] = entry
					names[group][binding] = varName
					continue
				}

				if names[group][binding] != varName {
					return nil, nil, newLinkError(t, "binding (%d, %d) is declared as %q in one stage and %q in the other",
						group, binding, names[group][binding], varName)
				}
				if existing.Buffer.Type != entry.Buffer.Type {
					return nil, nil, newLinkError(t, "binding (%d, %d) %q has conflicting buffer types across stages",
						group, binding, varName)
				}

				existing.Visibility |= entry.Visibility
				if entry.Buffer.MinBindingSize > existing.Buffer.MinBindingSize {
					existing.Buffer.MinBindingSize = entry.Buffer.MinBindingSize
				}
				merged[group][binding] = existing
			}
		}
	}

	descriptors := make(map[int]wgpu.BindGroupLayoutDescriptor, len(merged))
	uniformIndex := make(map[string]UniformLocation)

	for group, bindings := range merged {
		entries := make([]wgpu.BindGroupLayoutEntry, 0, len(bindings))
		for binding, entry := range bindings {
			entries = append(entries, entry)

			varName := names[group][binding]
			if varName == "" {
				continue
			}
			if prev, exists := uniformIndex[varName]; exists {
				return nil, nil, newLinkError(t, "uniform %q is declared at both (%d, %d) and (%d, %d)",
					varName, prev.Group, prev.Binding, group, binding)
			}
			uniformIndex[varName] = UniformLocation{Group: group, Binding: binding}
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Binding < entries[j].Binding
		})
		descriptors[group] = wgpu.BindGroupLayoutDescriptor{Entries: entries}
	}

	return descriptors, uniformIndex, nil
}

// attributeSemanticNames maps known vertex attribute names to their semantics.
var attributeSemanticNames = map[string]AttributeSemantic{
	"position": AttributeSemanticPosition,
	"color":    AttributeSemanticColor,
	"normal":   AttributeSemanticNormal,
	"texCoord": AttributeSemanticTexCoord,
	"uv":       AttributeSemanticTexCoord,
}

// classifyAttributes classifies the vertex stage's attributes by name and enforces the
// attribute contract: a vec3<f32> position attribute must exist at location 0.
func classifyAttributes(t technique.Technique, vertex shader.Stage) ([]Attribute, error) {
	inputs := vertex.Inputs()
	attributes := make([]Attribute, 0, len(inputs))

	for _, in := range inputs {
		semantic, ok := attributeSemanticNames[in.Name]
		if !ok {
			semantic = AttributeSemanticUnknown
		}
		attributes = append(attributes, Attribute{
			Name:     in.Name,
			Location: in.Location,
			TypeName: in.TypeName,
			Semantic: semantic,
		})
	}

	position, ok := findSemantic(attributes, AttributeSemanticPosition)
	if !ok {
		return nil, newLinkError(t, "vertex stage has no position attribute")
	}
	if position.Location != 0 {
		return nil, newLinkError(t, "position attribute must be at location 0, found at location %d", position.Location)
	}
	if position.TypeName != "vec3<f32>" && position.TypeName != "vec3f" {
		return nil, newLinkError(t, "position attribute must be vec3<f32>, found %s", position.TypeName)
	}

	return attributes, nil
}

// findSemantic returns the first attribute with the given semantic.
func findSemantic(attributes []Attribute, semantic AttributeSemantic) (Attribute, bool) {
	for _, a := range attributes {
		if a.Semantic == semantic {
			return a, true
		}
	}
	return Attribute{}, false
}

func (p *programImpl) Technique() technique.Technique {
	return p.technique
}

func (p *programImpl) Generation() uint64 {
	return p.generation
}

func (p *programImpl) SetGeneration(gen uint64) {
	p.generation = gen
}

func (p *programImpl) Stage(kind shader.StageKind) shader.Stage {
	switch kind {
	case shader.StageKindVertex:
		return p.vertexStage
	case shader.StageKindFragment:
		return p.fragmentStage
	default:
		return nil
	}
}

func (p *programImpl) UniformLocation(name string) (UniformLocation, bool) {
	loc, ok := p.uniformIndex[name]
	return loc, ok
}

func (p *programImpl) UniformNames() []string {
	names := make([]string, 0, len(p.uniformIndex))
	for name := range p.uniformIndex {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := p.uniformIndex[names[i]], p.uniformIndex[names[j]]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Binding < b.Binding
	})
	return names
}

func (p *programImpl) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return p.bindGroupLayoutDescriptors
}

func (p *programImpl) Attributes() []Attribute {
	return p.attributes
}

func (p *programImpl) AttributeBySemantic(semantic AttributeSemantic) (Attribute, bool) {
	return findSemantic(p.attributes, semantic)
}

func (p *programImpl) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *programImpl) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *programImpl) DepthBias() int32 {
	return p.depthBias
}

func (p *programImpl) DepthBiasSlopeScale() float32 {
	return p.depthBiasSlopeScale
}

func (p *programImpl) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *programImpl) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *programImpl) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *programImpl) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *programImpl) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *programImpl) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *programImpl) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *programImpl) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}
