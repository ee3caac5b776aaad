package program

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ProgramBuilderOption is a functional option used to configure a Program's pipeline
// state at link time.
type ProgramBuilderOption func(*programImpl)

// WithDepthTestEnabled sets whether depth testing is enabled for this program's pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth testing should be enabled
//
// Returns:
//   - ProgramBuilderOption: a function that sets the depth test enabled state
func WithDepthTestEnabled(enabled bool) ProgramBuilderOption {
	return func(p *programImpl) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether depth writing is enabled for this program's pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth writing should be enabled
//
// Returns:
//   - ProgramBuilderOption: a function that sets the depth write enabled state
func WithDepthWriteEnabled(enabled bool) ProgramBuilderOption {
	return func(p *programImpl) {
		p.depthWriteEnabled = enabled
	}
}

// WithDepthBias sets the depth bias parameters for this program's pipeline.
//
// Parameters:
//   - bias: the constant depth bias to apply
//   - slopeScale: the slope scale depth bias to apply
//
// Returns:
//   - ProgramBuilderOption: a function that sets the depth bias parameters
func WithDepthBias(bias int32, slopeScale float32) ProgramBuilderOption {
	return func(p *programImpl) {
		p.depthBias = bias
		p.depthBiasSlopeScale = slopeScale
	}
}

// WithBlendEnabled sets whether blending is enabled for this program's pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether blending should be enabled
//
// Returns:
//   - ProgramBuilderOption: a function that sets the blend enabled state
func WithBlendEnabled(enabled bool) ProgramBuilderOption {
	return func(p *programImpl) {
		p.blendEnabled = enabled
	}
}

// WithCullMode sets the cull mode for this program's pipeline.
//
// Parameters:
//   - mode: the cull mode to use (e.g., wgpu.CullModeNone, wgpu.CullModeFront, wgpu.CullModeBack)
//
// Returns:
//   - ProgramBuilderOption: a function that sets the cull mode
func WithCullMode(mode wgpu.CullMode) ProgramBuilderOption {
	return func(p *programImpl) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology for this program's pipeline.
//
// Parameters:
//   - topology: the primitive topology to use (e.g., wgpu.PrimitiveTopologyTriangleList)
//
// Returns:
//   - ProgramBuilderOption: a function that sets the primitive topology
func WithTopology(topology wgpu.PrimitiveTopology) ProgramBuilderOption {
	return func(p *programImpl) {
		p.topology = topology
	}
}

// WithFrontFace sets the front face winding order for this program's pipeline.
//
// Parameters:
//   - frontFace: the front face to use (e.g., wgpu.FrontFaceCCW, wgpu.FrontFaceCW)
//
// Returns:
//   - ProgramBuilderOption: a function that sets the front face
func WithFrontFace(frontFace wgpu.FrontFace) ProgramBuilderOption {
	return func(p *programImpl) {
		p.frontFace = frontFace
	}
}

// WithWriteMask sets the color write mask for this program's pipeline.
//
// Parameters:
//   - writeMask: the color write mask to use (e.g., wgpu.ColorWriteMaskAll)
//
// Returns:
//   - ProgramBuilderOption: a function that sets the color write mask
func WithWriteMask(writeMask wgpu.ColorWriteMask) ProgramBuilderOption {
	return func(p *programImpl) {
		p.writeMask = writeMask
	}
}

// WithBlendState sets the blend state for this program's pipeline.
//
// Parameters:
//   - blendState: the blend state to use when blending is enabled
//
// Returns:
//   - ProgramBuilderOption: a function that sets the blend state
func WithBlendState(blendState *wgpu.BlendState) ProgramBuilderOption {
	return func(p *programImpl) {
		p.blendState = blendState
	}
}
