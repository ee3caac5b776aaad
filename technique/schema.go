package technique

// UniformType is the WGSL-level type of a uniform schema entry.
type UniformType string

const (
	// UniformTypeMat4 is a 4x4 float matrix (mat4x4<f32>, 64 bytes).
	UniformTypeMat4 UniformType = "mat4x4<f32>"

	// UniformTypeVec3 is a 3-component float vector (vec3<f32>).
	UniformTypeVec3 UniformType = "vec3<f32>"

	// UniformTypeFloat is a single float scalar (f32).
	UniformTypeFloat UniformType = "f32"
)

// UniformEntry describes one named uniform in a technique's schema. The entry
// order within a schema fixes the binding index the uniform resolves to.
type UniformEntry struct {
	// Name is the exact uniform variable name as it appears in the WGSL
	// stage source. Names are a stable contract with shader text; renaming
	// one is a breaking change to the compiled program.
	Name string

	// Type is the WGSL-level type of the uniform.
	Type UniformType

	// Required marks entries that must be present in the frame parameters
	// at bind time. Missing required entries are a bind error; the binder
	// never substitutes a zero value for them.
	Required bool

	// Default holds the fallback value for optional entries, in flat float
	// order (16 elements for mat4, 3 for vec3, 1 for float). Nil for
	// required entries.
	Default []float32
}

// Uniform names as they appear in WGSL stage sources. These are a stable
// contract; the registry rejects programs whose parsed uniforms do not match
// the schema names exactly.
const (
	// UniformTransformationMatrix is the precomposed MVP matrix of the lit
	// mesh technique.
	UniformTransformationMatrix = "transformation_matrix"

	// UniformMVPMatrix is the model-view-projection matrix of the
	// world-space lit variant.
	UniformMVPMatrix = "mvp_matrix"

	// UniformModelMatrix is the model-to-world matrix used for normal
	// rotation in the world-space lit variant.
	UniformModelMatrix = "model_matrix"

	// UniformViewProjectionMatrix is the combined view-projection matrix.
	UniformViewProjectionMatrix = "viewProjectionMatrix"

	// UniformChangingColorMatrix is the caller-animated color modulation
	// matrix, typically a diagonal of per-channel factors.
	UniformChangingColorMatrix = "changingColorMatrix"

	// UniformChangingColor is the dynamic tint of the UV checker technique.
	UniformChangingColor = "ChangingColor"

	// UniformScale is the UV checker cell scale.
	UniformScale = "scale"
)

// identity16 is the flat column-major identity matrix used as the default for
// optional matrix uniforms.
var identity16 = []float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// schemas maps each technique to its ordered uniform schema. The entry index
// is the uniform's binding within bind group 0.
var schemas = map[Technique][]UniformEntry{
	TechniqueFlatColor: {},
	TechniqueLitMesh: {
		{Name: UniformTransformationMatrix, Type: UniformTypeMat4, Required: true},
	},
	TechniqueLitMeshWorld: {
		{Name: UniformMVPMatrix, Type: UniformTypeMat4, Required: true},
		{Name: UniformModelMatrix, Type: UniformTypeMat4, Required: true},
	},
	TechniqueColorModulated: {
		{Name: UniformViewProjectionMatrix, Type: UniformTypeMat4, Required: false, Default: identity16},
		{Name: UniformChangingColorMatrix, Type: UniformTypeMat4, Required: true},
	},
	TechniqueParticleBillboard: {
		{Name: UniformViewProjectionMatrix, Type: UniformTypeMat4, Required: true},
		{Name: UniformChangingColorMatrix, Type: UniformTypeMat4, Required: false, Default: identity16},
	},
	TechniqueProceduralCheckerboardScreen: {},
	TechniqueProceduralCheckerboardUV: {
		{Name: UniformChangingColor, Type: UniformTypeVec3, Required: true},
		{Name: UniformScale, Type: UniformTypeFloat, Required: true},
	},
}

// Schema returns the ordered uniform schema for a technique. The returned
// slice is shared; callers must not modify it. Returns nil for unknown
// techniques.
//
// Parameters:
//   - t: the technique to look up
//
// Returns:
//   - []UniformEntry: the technique's uniform entries in binding order
func Schema(t Technique) []UniformEntry {
	return schemas[t]
}

// SchemaNames returns the uniform names of a technique's schema in binding
// order.
//
// Parameters:
//   - t: the technique to look up
//
// Returns:
//   - []string: the uniform names in binding order
func SchemaNames(t Technique) []string {
	entries := schemas[t]
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
