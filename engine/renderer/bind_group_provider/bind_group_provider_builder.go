package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBindGroupLayout pre-seeds the bind group layout, for providers whose GPU
// resources are created outside the dispatcher's lazy initialization path.
//
// Parameters:
//   - bgl: the bind group layout to use for this provider
//
// Returns:
//   - BindGroupProviderOption: a function that sets the bind group layout for this provider
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = bgl
	}
}

// WithBuffer pre-seeds a uniform buffer at a binding index, for providers whose
// GPU resources are created outside the dispatcher's lazy initialization path.
//
// Parameters:
//   - binding: the binding index for this buffer
//   - buf: the buffer to associate with this binding
//
// Returns:
//   - BindGroupProviderOption: a function that sets the buffer for the binding
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
	}
}

// WithIndexCount sets the index count used for draw calls, for mesh providers
// whose buffers are uploaded directly rather than through InitMeshBuffers.
//
// Parameters:
//   - count: the number of indices to draw
//
// Returns:
//   - BindGroupProviderOption: a function that sets the index count
func WithIndexCount(count int) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexCount = count
	}
}

// WithVertexLayout declares the attribute layout of the provider's vertex
// buffer so the dispatcher can validate it against the bound program's vertex
// attributes before drawing. Providers without a declared layout skip the
// check.
//
// Parameters:
//   - layout: the vertex attributes in buffer order
//
// Returns:
//   - BindGroupProviderOption: a function that sets the vertex layout
func WithVertexLayout(layout []VertexLayoutEntry) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.vertexLayout = layout
	}
}
