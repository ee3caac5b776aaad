package shader

import "github.com/cogentcore/webgpu/wgpu"

// vertexFormatInfo holds the wgpu vertex format and its byte size for offset calculation
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// wgslTypeLayout holds the byte size and alignment for a WGSL type per the WGSL specification.
// Used to compute MinBindingSize for buffer bindings.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField represents a single field extracted from a WGSL struct during parsing
type parsedField struct {
	name      string
	typeName  string
	location  int
	isBuiltin bool
}

// parsedStruct represents a WGSL struct block extracted during parsing
type parsedStruct struct {
	name   string
	fields []parsedField
}

// StageVar describes one user-defined inter-stage variable: a vertex output or
// a fragment input. Link validation matches vertex outputs against fragment
// inputs by location and type.
type StageVar struct {
	// Name is the struct field name (e.g. "fragNormal").
	Name string

	// Location is the @location index the variable is carried on.
	Location int

	// TypeName is the WGSL type of the variable (e.g. "vec3<f32>").
	TypeName string
}
