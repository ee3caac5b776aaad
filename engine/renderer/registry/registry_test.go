package registry

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/glintgfx/glint/engine/renderer/program"
	"github.com/glintgfx/glint/engine/renderer/shader"
	"github.com/glintgfx/glint/technique"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSources(t *testing.T, tech technique.Technique) (string, string) {
	t.Helper()
	vert, err := technique.VertexSource(tech)
	require.NoError(t, err)
	frag, err := technique.FragmentSource(tech)
	require.NoError(t, err)
	return vert, frag
}

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	vert, frag := defaultSources(t, technique.TechniqueLitMesh)

	p, err := r.Register(technique.TechniqueLitMesh, vert, frag)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, uint64(1), p.Generation())

	got, err := r.Get(technique.TechniqueLitMesh)
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func TestGetUnknownTechnique(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get(technique.Technique("wireframe"))
	var ue *UnknownTechniqueError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, technique.Technique("wireframe"), ue.Technique)
}

func TestRegisterUnknownTechnique(t *testing.T) {
	r := NewRegistry()
	vert, frag := defaultSources(t, technique.TechniqueLitMesh)

	_, err := r.Register(technique.Technique("wireframe"), vert, frag)
	var ue *UnknownTechniqueError
	assert.ErrorAs(t, err, &ue)
}

func TestGetNeverRegistered(t *testing.T) {
	r := NewRegistry()

	// A valid technique with no registration attempt is simply unknown to the
	// registry; NotCompiledError is reserved for attempted registrations.
	_, err := r.Get(technique.TechniqueLitMesh)
	var ue *UnknownTechniqueError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, technique.TechniqueLitMesh, ue.Technique)

	var nce *NotCompiledError
	assert.False(t, errors.As(err, &nce))
}

func TestGetNotCompiledCarriesCause(t *testing.T) {
	r := NewRegistry()
	_, frag := defaultSources(t, technique.TechniqueLitMesh)

	_, err := r.Register(technique.TechniqueLitMesh, "no header at all", frag)
	require.Error(t, err)

	_, err = r.Get(technique.TechniqueLitMesh)
	var nce *NotCompiledError
	require.ErrorAs(t, err, &nce)
	require.NotNil(t, nce.Cause)
	var ce *shader.CompileError
	assert.ErrorAs(t, nce.Cause, &ce)
}

func TestReRegisterBumpsGeneration(t *testing.T) {
	r := NewRegistry()
	vert, frag := defaultSources(t, technique.TechniqueLitMesh)

	p1, err := r.Register(technique.TechniqueLitMesh, vert, frag)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Generation(technique.TechniqueLitMesh))

	p2, err := r.Register(technique.TechniqueLitMesh, vert, frag)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), r.Generation(technique.TechniqueLitMesh))
	assert.Equal(t, uint64(2), p2.Generation())

	// The old program value stays valid for holders.
	assert.Equal(t, uint64(1), p1.Generation())

	got, err := r.Get(technique.TechniqueLitMesh)
	require.NoError(t, err)
	assert.Same(t, p2, got)
}

func TestFailedReRegistrationKeepsPrevious(t *testing.T) {
	r := NewRegistry()
	vert, frag := defaultSources(t, technique.TechniqueLitMesh)

	p1, err := r.Register(technique.TechniqueLitMesh, vert, frag)
	require.NoError(t, err)

	_, err = r.Register(technique.TechniqueLitMesh, "broken", frag)
	require.Error(t, err)

	got, err := r.Get(technique.TechniqueLitMesh)
	require.NoError(t, err)
	assert.Same(t, p1, got)
	assert.Equal(t, uint64(1), r.Generation(technique.TechniqueLitMesh))
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterDefaults())

	assert.Equal(t, technique.All(), r.Techniques())

	for _, tech := range technique.All() {
		p, err := r.Get(tech)
		require.NoError(t, err, "get %s", tech)
		assert.Equal(t, tech, p.Technique())
	}
}

func TestDefaultPipelineOptions(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterDefaults())

	// Transparent techniques blend and leave depth writes off.
	for _, tech := range []technique.Technique{
		technique.TechniqueParticleBillboard,
		technique.TechniqueProceduralCheckerboardUV,
	} {
		p, err := r.Get(tech)
		require.NoError(t, err)
		assert.True(t, p.BlendEnabled(), "%s should blend", tech)
		assert.False(t, p.DepthWriteEnabled(), "%s should not write depth", tech)
	}

	// Lit solids cull back faces.
	for _, tech := range []technique.Technique{
		technique.TechniqueLitMesh,
		technique.TechniqueLitMeshWorld,
	} {
		p, err := r.Get(tech)
		require.NoError(t, err)
		assert.Equal(t, wgpu.CullModeBack, p.CullMode(), "%s should cull back faces", tech)
	}

	// Opaque defaults elsewhere.
	p, err := r.Get(technique.TechniqueFlatColor)
	require.NoError(t, err)
	assert.False(t, p.BlendEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
}

func TestConfiguredProgramOptions(t *testing.T) {
	r := NewRegistry(
		WithProgramOptions(technique.TechniqueFlatColor, program.WithDepthTestEnabled(false)),
	)
	vert, frag := defaultSources(t, technique.TechniqueFlatColor)

	p, err := r.Register(technique.TechniqueFlatColor, vert, frag)
	require.NoError(t, err)
	assert.False(t, p.DepthTestEnabled())
}

func TestCallSiteOptionsOverrideConfigured(t *testing.T) {
	r := NewRegistry(
		WithProgramOptions(technique.TechniqueFlatColor, program.WithCullMode(wgpu.CullModeFront)),
	)
	vert, frag := defaultSources(t, technique.TechniqueFlatColor)

	p, err := r.Register(technique.TechniqueFlatColor, vert, frag, program.WithCullMode(wgpu.CullModeBack))
	require.NoError(t, err)
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
}

func TestSchemaMismatchExtraUniform(t *testing.T) {
	// Flat color declares no uniforms; a vertex stage with one must be rejected.
	badVert := `//!glint wgsl 1

@group(0) @binding(0) var<uniform> sneaky: mat4x4<f32>;

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) color: vec3<f32>,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec3<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = sneaky * vec4<f32>(in.position, 1.0);
    out.color = in.color;
    return out;
}
`
	_, frag := defaultSources(t, technique.TechniqueFlatColor)

	r := NewRegistry()
	_, err := r.Register(technique.TechniqueFlatColor, badVert, frag)
	var sme *SchemaMismatchError
	require.ErrorAs(t, err, &sme)
	assert.Contains(t, sme.Detail, "sneaky")
}

func TestSchemaMismatchMissingUniform(t *testing.T) {
	// Lit mesh requires transformation_matrix; a stage pair without it must be rejected.
	vert, frag := defaultSources(t, technique.TechniqueFlatColor)

	r := NewRegistry()
	_, err := r.Register(technique.TechniqueLitMesh, vert, frag)
	var sme *SchemaMismatchError
	require.ErrorAs(t, err, &sme)
	assert.Contains(t, sme.Detail, "transformation_matrix")
}

func TestTeardownClearsPrograms(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterDefaults())

	r.Teardown()
	assert.Empty(t, r.Techniques())

	// Torn-down techniques read as never registered.
	_, err := r.Get(technique.TechniqueLitMesh)
	var ue *UnknownTechniqueError
	assert.ErrorAs(t, err, &ue)

	// The registry is reusable after Teardown.
	require.NoError(t, r.RegisterDefaults())
	assert.Equal(t, technique.All(), r.Techniques())
}
