// package technique enumerates the rendering techniques the engine knows how
// to draw and, for each one, the contract the rest of the renderer builds
// against: the uniform schema the binder validates, the per-draw frame
// parameters callers supply, the GPU-aligned uniform representations, and the
// canonical WGSL stage sources.
package technique

// Technique identifies one rendering method. Each technique maps to exactly
// one shader program and one fixed uniform schema.
type Technique string

const (
	// TechniqueFlatColor passes clip-space positions and per-vertex colors
	// straight through. No uniforms.
	TechniqueFlatColor Technique = "flat_color"

	// TechniqueLitMesh transforms positions by a single precomposed
	// model-view-projection matrix and shades with one fixed directional
	// Lambertian term. Normals are not transformed, so the lighting is only
	// correct for unrotated models.
	TechniqueLitMesh Technique = "lit_mesh"

	// TechniqueLitMeshWorld is the lit variant that takes the
	// model-view-projection and model matrices separately so normals rotate
	// with the model. Normals go through the model matrix's upper-left 3x3,
	// which skews under non-uniform scale.
	TechniqueLitMeshWorld Technique = "lit_mesh_world"

	// TechniqueColorModulated transforms positions by a view-projection
	// matrix and multiplies per-vertex colors by a caller-animated color
	// matrix.
	TechniqueColorModulated Technique = "color_modulated"

	// TechniqueParticleBillboard renders camera-facing particle quads
	// through a view-projection matrix, with alpha blending enabled and an
	// optional color modulation matrix.
	TechniqueParticleBillboard Technique = "particle_billboard"

	// TechniqueProceduralCheckerboardScreen draws a checker pattern derived
	// purely from screen-space fragment coordinates at a fixed cell size of
	// ScreenCheckerScale pixels. No uniforms; changing the cell size
	// requires re-registering the technique.
	TechniqueProceduralCheckerboardScreen Technique = "checker_screen"

	// TechniqueProceduralCheckerboardUV draws a translucent checker pattern
	// from interpolated texture coordinates, tinted by a dynamic color. The
	// output alpha is the fixed constant UVCheckerAlpha.
	TechniqueProceduralCheckerboardUV Technique = "checker_uv"
)

// All returns every technique in registration order.
//
// Returns:
//   - []Technique: all defined techniques
func All() []Technique {
	return []Technique{
		TechniqueFlatColor,
		TechniqueLitMesh,
		TechniqueLitMeshWorld,
		TechniqueColorModulated,
		TechniqueParticleBillboard,
		TechniqueProceduralCheckerboardScreen,
		TechniqueProceduralCheckerboardUV,
	}
}

// Valid reports whether t is one of the defined techniques.
//
// Returns:
//   - bool: true if t is a known technique
func (t Technique) Valid() bool {
	switch t {
	case TechniqueFlatColor, TechniqueLitMesh, TechniqueLitMeshWorld,
		TechniqueColorModulated, TechniqueParticleBillboard,
		TechniqueProceduralCheckerboardScreen, TechniqueProceduralCheckerboardUV:
		return true
	}
	return false
}

// String returns the technique's stable string key.
func (t Technique) String() string {
	return string(t)
}
