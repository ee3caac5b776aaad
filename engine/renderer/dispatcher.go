package renderer

import (
	"fmt"
	"sort"
	"sync"

	"github.com/glintgfx/glint/engine/renderer/bind_group_provider"
	"github.com/glintgfx/glint/engine/renderer/binder"
	"github.com/glintgfx/glint/engine/renderer/program"
	"github.com/glintgfx/glint/engine/renderer/registry"
	"github.com/glintgfx/glint/engine/window"
	"github.com/glintgfx/glint/technique"
)

// DispatchState tracks where a draw sequence stands between binding a program,
// binding uniforms, and issuing draw calls.
type DispatchState int

const (
	// DispatchStateIdle means no program is bound. The current program slot is empty.
	DispatchStateIdle DispatchState = iota

	// DispatchStateProgramBound means a program occupies the current program slot
	// but no uniforms have been bound for it yet.
	DispatchStateProgramBound

	// DispatchStateUniformsBound means the bound program has a validated uniform
	// set staged and a draw may be issued.
	DispatchStateUniformsBound

	// DispatchStateReadyForDraw means at least one draw has been issued with the
	// current program and uniform set. Further draws, new uniform binds, and new
	// program binds are all valid from here.
	DispatchStateReadyForDraw
)

// String returns a readable name for the dispatch state.
func (s DispatchState) String() string {
	switch s {
	case DispatchStateIdle:
		return "idle"
	case DispatchStateProgramBound:
		return "program_bound"
	case DispatchStateUniformsBound:
		return "uniforms_bound"
	case DispatchStateReadyForDraw:
		return "ready_for_draw"
	default:
		return "unknown"
	}
}

// dispatcherImpl is the implementation of the Dispatcher interface.
type dispatcherImpl struct {
	mu *sync.Mutex

	registry registry.Registry
	binder   binder.UniformBinder

	backendType DispatcherBackendType
	backend     DispatcherBackend

	// Draw sequence state. The current program slot has one owner: BindProgram
	// replaces it, errors and EndFrame clear it.
	state         DispatchState
	current       program.Program
	boundProvider bind_group_provider.BindGroupProvider
	frameActive   bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Dispatcher defines the interface for the technique dispatch system.
//
// This is a high-level API that sequences a frame: bind a technique's program into
// the single current program slot, bind a validated uniform set for a drawable, and
// issue draw calls. The dispatcher enforces the bind-then-draw ordering through an
// explicit state machine and resets to idle on any error, so a failed bind can never
// leak into a draw. Programs come from the Registry; uniform marshalling goes through
// the UniformBinder.
type Dispatcher interface {
	// Registry returns the technique program registry backing this dispatcher.
	//
	// Returns:
	//   - registry.Registry: the program registry
	Registry() registry.Registry

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	// The dispatch state starts each frame at DispatchStateIdle with an empty
	// current program slot. Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// BindProgram looks up the technique's program in the registry and installs it
	// in the current program slot, creating its GPU pipeline on first use. Valid
	// from any state within a frame; the previous program binding is replaced.
	// On error the dispatcher resets to DispatchStateIdle with an empty slot.
	//
	// Parameters:
	//   - t: the technique whose program to bind
	//
	// Returns:
	//   - error: a registry lookup error or pipeline creation error
	BindProgram(t technique.Technique) error

	// BindUniforms validates the frame parameters against the bound program's
	// uniform schema, stages the marshalled writes to the GPU queue, and
	// initializes the provider's bind group against the program's layout on first
	// use. Requires a bound program; techniques with empty schemas still go
	// through BindUniforms to advance the state machine, producing no writes.
	// On error the dispatcher resets to DispatchStateIdle with an empty slot.
	//
	// Parameters:
	//   - provider: the drawable's bind group provider
	//   - params: the per-draw frame parameters
	//
	// Returns:
	//   - error: a *binder.BindError or bind group initialization error
	BindUniforms(provider bind_group_provider.BindGroupProvider, params technique.FrameParameters) error

	// Draw encodes an instanced draw of the mesh provider's buffers using the
	// current program and the most recently bound uniform provider. Requires
	// uniforms to be bound; repeat draws with the same uniform set are valid.
	// Mesh providers that declare a vertex layout are validated against the
	// program's vertex attributes first; a mismatch rejects the draw and resets
	// the dispatcher to idle.
	//
	// Parameters:
	//   - meshProvider: the BindGroupProvider holding vertex and index buffers
	//   - instanceCount: the number of instances to draw
	//
	// Returns:
	//   - error: a *DispatchStateError if no uniform set is bound or no frame is
	//     active, or a *VertexLayoutError if the mesh layout does not match
	Draw(meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32) error

	// Dispatch runs the full draw sequence for one drawable in a single call:
	// it binds the technique's program, binds the validated uniform set on the
	// provider, and draws the provider's mesh buffers. Equivalent to
	// BindProgram, BindUniforms, and Draw in order, stopping at the first
	// error; the state machine rules and error resets of the underlying calls
	// apply unchanged.
	//
	// Parameters:
	//   - t: the technique to draw with
	//   - provider: the drawable's provider carrying both uniform and mesh buffers
	//   - params: the per-draw frame parameters
	//   - instanceCount: the number of instances to draw
	//
	// Returns:
	//   - error: the first error from the bind or draw steps
	Dispatch(t technique.Technique, provider bind_group_provider.BindGroupProvider, params technique.FrameParameters, instanceCount uint32) error

	// State returns the current dispatch state.
	//
	// Returns:
	//   - DispatchState: the current state
	State() DispatchState

	// CurrentProgram returns the program occupying the current program slot,
	// nil when the state is DispatchStateIdle.
	//
	// Returns:
	//   - program.Program: the bound program or nil
	CurrentProgram() program.Program

	// InitMeshBuffers creates GPU vertex and index buffers from raw byte data and stores them
	// on the given BindGroupProvider for later use in draw calls.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created buffers on
	//   - vertexData: the raw vertex data bytes to upload to the GPU
	//   - indexData: the raw index data bytes to upload to the GPU
	//   - indexCount: the number of indices, used for draw calls
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// EndFrame ends the current render pass, submits the command buffer to the GPU,
	// and resets the dispatch state to DispatchStateIdle.
	// Does not present the surface — call Present() after EndFrame to display the frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Teardown releases every registered program's GPU pipeline through the
	// registry and clears the dispatch state.
	Teardown()
}

var _ Dispatcher = &dispatcherImpl{}

// NewDispatcher creates a new Dispatcher instance with the specified backend type and window.
// The window provides the platform-specific surface descriptor for WebGPU surface creation.
//
// Parameters:
//   - backendType: the type of dispatch backend to use (e.g., WGPU)
//   - win: the window whose surface the dispatcher renders to
//   - options: variadic list of DispatcherBuilderOption functions to configure the Dispatcher
//
// Returns:
//   - Dispatcher: a new instance of Dispatcher configured with the specified backend and options
func NewDispatcher(backendType DispatcherBackendType, win window.Window, options ...DispatcherBuilderOption) Dispatcher {
	d := &dispatcherImpl{
		mu:          &sync.Mutex{},
		registry:    registry.NewRegistry(),
		binder:      binder.NewUniformBinder(),
		backendType: backendType,
		state:       DispatchStateIdle,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(d)
	}

	msaa := MSAA4x // default
	if d.pendingMSAA != nil {
		msaa = *d.pendingMSAA
	}

	if d.backend == nil {
		switch backendType {
		case BackendTypeWGPU:
			fallthrough
		default:
			d.backend = newWGPUDispatcherBackend(win.SurfaceDescriptor(), d.forceFallbackAdapter, msaa)
		}

		if d.pendingPresentMode != nil {
			d.backend.SetPresentMode(*d.pendingPresentMode)
		}

		d.backend.ConfigureSurface(win.Width(), win.Height())
	}
	return d
}

func (d *dispatcherImpl) Registry() registry.Registry {
	return d.registry
}

func (d *dispatcherImpl) BeginFrame() error {
	if err := d.backend.BeginFrame(); err != nil {
		return err
	}

	d.mu.Lock()
	d.frameActive = true
	d.reset()
	d.mu.Unlock()
	return nil
}

func (d *dispatcherImpl) BindProgram(t technique.Technique) error {
	p, err := d.registry.Get(t)
	if err != nil {
		d.resetLocked()
		return err
	}

	if p.RenderPipeline() == nil {
		if err := d.backend.CreateProgramPipeline(p); err != nil {
			d.resetLocked()
			return err
		}
	}

	d.mu.Lock()
	d.current = p
	d.boundProvider = nil
	d.state = DispatchStateProgramBound
	d.mu.Unlock()
	return nil
}

func (d *dispatcherImpl) BindUniforms(provider bind_group_provider.BindGroupProvider, params technique.FrameParameters) error {
	d.mu.Lock()
	if d.state == DispatchStateIdle || d.current == nil {
		state := d.state
		d.reset()
		d.mu.Unlock()
		return &DispatchStateError{Op: "bind uniforms", State: state}
	}
	current := d.current
	d.mu.Unlock()

	writes, err := d.binder.Bind(current, provider, params)
	if err != nil {
		d.resetLocked()
		return err
	}

	// Uniforms bind at group 0; techniques without uniforms have no descriptor
	// and no bind group.
	if descriptor, ok := current.BindGroupLayoutDescriptors()[0]; ok && provider.BindGroup() == nil {
		if err := d.backend.InitBindGroup(provider, descriptor); err != nil {
			d.resetLocked()
			return err
		}
	}

	d.backend.WriteBuffers(writes)

	d.mu.Lock()
	d.boundProvider = provider
	d.state = DispatchStateUniformsBound
	d.mu.Unlock()
	return nil
}

func (d *dispatcherImpl) Draw(meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32) error {
	d.mu.Lock()
	if !d.frameActive {
		state := d.state
		d.reset()
		d.mu.Unlock()
		return &DispatchStateError{Op: "draw outside a frame", State: state}
	}
	if d.state != DispatchStateUniformsBound && d.state != DispatchStateReadyForDraw {
		state := d.state
		d.reset()
		d.mu.Unlock()
		return &DispatchStateError{Op: "draw", State: state}
	}
	current := d.current
	boundProvider := d.boundProvider
	d.mu.Unlock()

	if layout := meshProvider.VertexLayout(); len(layout) > 0 {
		if err := validateVertexLayout(current, layout); err != nil {
			d.resetLocked()
			return err
		}
	}

	var bindGroups []bind_group_provider.BindGroupProvider
	if boundProvider != nil && boundProvider.BindGroup() != nil {
		bindGroups = append(bindGroups, boundProvider)
	}

	d.backend.DrawCall(current, meshProvider, instanceCount, bindGroups)

	d.mu.Lock()
	d.state = DispatchStateReadyForDraw
	d.mu.Unlock()
	return nil
}

func (d *dispatcherImpl) Dispatch(t technique.Technique, provider bind_group_provider.BindGroupProvider, params technique.FrameParameters, instanceCount uint32) error {
	if err := d.BindProgram(t); err != nil {
		return err
	}
	if err := d.BindUniforms(provider, params); err != nil {
		return err
	}
	return d.Draw(provider, instanceCount)
}

func (d *dispatcherImpl) State() DispatchState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *dispatcherImpl) CurrentProgram() program.Program {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

func (d *dispatcherImpl) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return d.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount)
}

func (d *dispatcherImpl) EndFrame() {
	d.backend.EndFrame()

	d.mu.Lock()
	d.frameActive = false
	d.reset()
	d.mu.Unlock()
}

func (d *dispatcherImpl) Present() {
	d.backend.Present()
}

func (d *dispatcherImpl) Resize(width, height int) {
	d.backend.ConfigureSurface(width, height)
}

func (d *dispatcherImpl) SetPresentMode(mode PresentMode) {
	d.backend.SetPresentMode(mode)
}

func (d *dispatcherImpl) Teardown() {
	d.mu.Lock()
	d.reset()
	d.mu.Unlock()
	d.registry.Teardown()
}

// attributeComponents maps a WGSL attribute type name to its float32 component
// count, zero for types the layout check does not cover.
func attributeComponents(typeName string) int {
	switch typeName {
	case "f32":
		return 1
	case "vec2<f32>", "vec2f":
		return 2
	case "vec3<f32>", "vec3f":
		return 3
	case "vec4<f32>", "vec4f":
		return 4
	default:
		return 0
	}
}

// validateVertexLayout checks a mesh's declared vertex layout against the
// program's vertex attributes. The pipeline reads the mesh buffer with the
// program's interleaved stride, so the two must agree exactly: every program
// attribute needs a mesh entry at its location with the same component count,
// and the mesh may not carry attributes at locations the program does not
// consume.
func validateVertexLayout(p program.Program, layout []bind_group_provider.VertexLayoutEntry) error {
	byLocation := make(map[int]int, len(layout))
	for _, entry := range layout {
		byLocation[entry.Location] = entry.Components
	}

	for _, attr := range p.Attributes() {
		want := attributeComponents(attr.TypeName)
		if want == 0 {
			continue
		}
		got, ok := byLocation[attr.Location]
		if !ok {
			return &VertexLayoutError{
				Technique: p.Technique(),
				Detail:    fmt.Sprintf("program consumes %s (%s) at location %d but the mesh provides no attribute there", attr.Name, attr.TypeName, attr.Location),
			}
		}
		if got != want {
			return &VertexLayoutError{
				Technique: p.Technique(),
				Detail:    fmt.Sprintf("attribute %s at location %d expects %d components, mesh provides %d", attr.Name, attr.Location, want, got),
			}
		}
		delete(byLocation, attr.Location)
	}

	if len(byLocation) > 0 {
		extras := make([]int, 0, len(byLocation))
		for loc := range byLocation {
			extras = append(extras, loc)
		}
		sort.Ints(extras)
		return &VertexLayoutError{
			Technique: p.Technique(),
			Detail:    fmt.Sprintf("mesh provides attributes at locations %v the program does not consume", extras),
		}
	}
	return nil
}

// reset clears the draw sequence state. Caller must hold d.mu.
func (d *dispatcherImpl) reset() {
	d.state = DispatchStateIdle
	d.current = nil
	d.boundProvider = nil
}

// resetLocked clears the draw sequence state, taking the lock itself.
func (d *dispatcherImpl) resetLocked() {
	d.mu.Lock()
	d.reset()
	d.mu.Unlock()
}
