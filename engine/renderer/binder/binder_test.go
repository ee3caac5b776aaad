package binder

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/glintgfx/glint/common"
	"github.com/glintgfx/glint/engine/renderer/bind_group_provider"
	"github.com/glintgfx/glint/engine/renderer/program"
	"github.com/glintgfx/glint/engine/renderer/shader"
	"github.com/glintgfx/glint/technique"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkTechnique links a program from a technique's embedded stage sources.
func linkTechnique(t *testing.T, tech technique.Technique) program.Program {
	t.Helper()

	vertSource, err := technique.VertexSource(tech)
	require.NoError(t, err)
	fragSource, err := technique.FragmentSource(tech)
	require.NoError(t, err)

	vert, err := shader.CompileStage(string(tech)+"_vert", shader.StageKindVertex, vertSource)
	require.NoError(t, err)
	frag, err := shader.CompileStage(string(tech)+"_frag", shader.StageKindFragment, fragSource)
	require.NoError(t, err)

	p, err := program.Link(tech, vert, frag)
	require.NoError(t, err)
	return p
}

func identity16() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TestBindRequiredUniform(t *testing.T) {
	b := NewUniformBinder()
	p := linkTechnique(t, technique.TechniqueLitMesh)
	provider := bind_group_provider.NewBindGroupProvider("lit_mesh_uniforms")

	params := technique.NewFrameParameters(
		technique.WithTransformationMatrix(identity16()),
	)

	writes, err := b.Bind(p, provider, params)
	require.NoError(t, err)
	require.Len(t, writes, 1)

	assert.Same(t, provider, writes[0].Provider)
	assert.Equal(t, 0, writes[0].Binding)
	assert.Equal(t, uint64(0), writes[0].Offset)
	assert.Len(t, writes[0].Data, 64)
}

func TestBindWritesFollowSchemaOrder(t *testing.T) {
	b := NewUniformBinder()
	p := linkTechnique(t, technique.TechniqueLitMeshWorld)
	provider := bind_group_provider.NewBindGroupProvider("lit_mesh_world_uniforms")

	params := technique.NewFrameParameters(
		technique.WithMVPMatrix(identity16()),
		technique.WithModelMatrix(identity16()),
	)

	writes, err := b.Bind(p, provider, params)
	require.NoError(t, err)
	require.Len(t, writes, 2)
	assert.Equal(t, 0, writes[0].Binding)
	assert.Equal(t, 1, writes[1].Binding)
}

func TestBindRequiredMissing(t *testing.T) {
	b := NewUniformBinder()
	p := linkTechnique(t, technique.TechniqueLitMeshWorld)
	provider := bind_group_provider.NewBindGroupProvider("lit_mesh_world_uniforms")

	// mvp_matrix present but model_matrix missing: no writes at all.
	params := technique.NewFrameParameters(
		technique.WithMVPMatrix(identity16()),
	)

	writes, err := b.Bind(p, provider, params)
	var be *BindError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, technique.TechniqueLitMeshWorld, be.Technique)
	assert.Equal(t, "model_matrix", be.MissingName)
	assert.Empty(t, be.Detail)
	assert.Nil(t, writes)
}

func TestBindOptionalFallsBackToDefault(t *testing.T) {
	b := NewUniformBinder()
	p := linkTechnique(t, technique.TechniqueColorModulated)
	provider := bind_group_provider.NewBindGroupProvider("color_modulated_uniforms")

	// viewProjectionMatrix is optional and defaults to identity.
	params := technique.NewFrameParameters(
		technique.WithChangingColorMatrix(identity16()),
	)

	writes, err := b.Bind(p, provider, params)
	require.NoError(t, err)
	require.Len(t, writes, 2)

	vp := writes[0].Data
	require.Len(t, vp, 64)
	want := identity16()
	for i := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(vp[i*4 : i*4+4]))
		assert.Equal(t, want[i], got, "element %d", i)
	}
}

func TestBindWrongType(t *testing.T) {
	b := NewUniformBinder()
	p := linkTechnique(t, technique.TechniqueLitMesh)
	provider := bind_group_provider.NewBindGroupProvider("lit_mesh_uniforms")

	// A float under a mat4 name is present but the wrong type.
	params := technique.NewFrameParameters(
		technique.WithFloat("transformation_matrix", 1.0),
	)

	writes, err := b.Bind(p, provider, params)
	var be *BindError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "transformation_matrix", be.MissingName)
	assert.Contains(t, be.Detail, "wrong type")
	assert.Nil(t, writes)
}

func TestBindEmptySchema(t *testing.T) {
	b := NewUniformBinder()

	for _, tech := range []technique.Technique{
		technique.TechniqueFlatColor,
		technique.TechniqueProceduralCheckerboardScreen,
	} {
		p := linkTechnique(t, tech)
		provider := bind_group_provider.NewBindGroupProvider(string(tech) + "_uniforms")

		writes, err := b.Bind(p, provider, technique.NewFrameParameters())
		require.NoError(t, err, "%s", tech)
		assert.Empty(t, writes, "%s", tech)
	}
}

func TestBindMarshalsVec3AndFloat(t *testing.T) {
	b := NewUniformBinder()
	p := linkTechnique(t, technique.TechniqueProceduralCheckerboardUV)
	provider := bind_group_provider.NewBindGroupProvider("checker_uv_uniforms")

	params := technique.NewFrameParameters(
		technique.WithChangingColor(common.Vec3{0.25, 0.5, 0.75}),
		technique.WithScale(8.0),
	)

	writes, err := b.Bind(p, provider, params)
	require.NoError(t, err)
	require.Len(t, writes, 2)

	// vec3 pads to 16 bytes.
	require.Len(t, writes[0].Data, 16)
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(writes[0].Data[0:4])))
	assert.Equal(t, float32(0.75), math.Float32frombits(binary.LittleEndian.Uint32(writes[0].Data[8:12])))
	assert.Equal(t, []byte{0, 0, 0, 0}, writes[0].Data[12:16])

	require.Len(t, writes[1].Data, 4)
	assert.Equal(t, float32(8.0), math.Float32frombits(binary.LittleEndian.Uint32(writes[1].Data)))
}

func TestBindOptionalProvidedValueWins(t *testing.T) {
	b := NewUniformBinder()
	p := linkTechnique(t, technique.TechniqueParticleBillboard)
	provider := bind_group_provider.NewBindGroupProvider("particle_billboard_uniforms")

	var tinted [16]float32
	for i := range tinted {
		tinted[i] = float32(i)
	}
	params := technique.NewFrameParameters(
		technique.WithViewProjectionMatrix(identity16()),
		technique.WithChangingColorMatrix(tinted),
	)

	writes, err := b.Bind(p, provider, params)
	require.NoError(t, err)
	require.Len(t, writes, 2)

	got := math.Float32frombits(binary.LittleEndian.Uint32(writes[1].Data[60:64]))
	assert.Equal(t, float32(15), got)
}
