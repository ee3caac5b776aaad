package technique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaLitMesh(t *testing.T) {
	s := Schema(TechniqueLitMesh)
	require.Len(t, s, 1)
	assert.Equal(t, UniformTransformationMatrix, s[0].Name)
	assert.Equal(t, UniformTypeMat4, s[0].Type)
	assert.True(t, s[0].Required)
	assert.Nil(t, s[0].Default)
}

func TestSchemaLitMeshWorld(t *testing.T) {
	s := Schema(TechniqueLitMeshWorld)
	require.Len(t, s, 2)
	assert.Equal(t, UniformMVPMatrix, s[0].Name)
	assert.Equal(t, UniformModelMatrix, s[1].Name)
	assert.True(t, s[0].Required)
	assert.True(t, s[1].Required)
}

func TestSchemaColorModulated(t *testing.T) {
	s := Schema(TechniqueColorModulated)
	require.Len(t, s, 2)

	// Optional view-projection with identity default, required color matrix.
	assert.Equal(t, UniformViewProjectionMatrix, s[0].Name)
	assert.False(t, s[0].Required)
	require.Len(t, s[0].Default, 16)
	assert.Equal(t, float32(1), s[0].Default[0])
	assert.Equal(t, float32(1), s[0].Default[5])
	assert.Equal(t, float32(0), s[0].Default[1])

	assert.Equal(t, UniformChangingColorMatrix, s[1].Name)
	assert.True(t, s[1].Required)
}

func TestSchemaParticleBillboard(t *testing.T) {
	s := Schema(TechniqueParticleBillboard)
	require.Len(t, s, 2)

	// Required view-projection, optional color matrix defaulting to identity.
	assert.Equal(t, UniformViewProjectionMatrix, s[0].Name)
	assert.True(t, s[0].Required)
	assert.Equal(t, UniformChangingColorMatrix, s[1].Name)
	assert.False(t, s[1].Required)
	require.Len(t, s[1].Default, 16)
	assert.Equal(t, float32(1), s[1].Default[15])
}

func TestSchemaCheckerUV(t *testing.T) {
	s := Schema(TechniqueProceduralCheckerboardUV)
	require.Len(t, s, 2)
	assert.Equal(t, UniformChangingColor, s[0].Name)
	assert.Equal(t, UniformTypeVec3, s[0].Type)
	assert.True(t, s[0].Required)
	assert.Equal(t, UniformScale, s[1].Name)
	assert.Equal(t, UniformTypeFloat, s[1].Type)
	assert.True(t, s[1].Required)
}

func TestSchemaEmptyTechniques(t *testing.T) {
	assert.Empty(t, Schema(TechniqueFlatColor))
	assert.Empty(t, Schema(TechniqueProceduralCheckerboardScreen))
	assert.Empty(t, Schema(Technique("wireframe")))
}

func TestSchemaNames(t *testing.T) {
	assert.Equal(t, []string{UniformMVPMatrix, UniformModelMatrix}, SchemaNames(TechniqueLitMeshWorld))
	assert.Empty(t, SchemaNames(TechniqueFlatColor))
}
