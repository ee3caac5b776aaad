package technique

import (
	"testing"

	"github.com/glintgfx/glint/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameParametersMat4(t *testing.T) {
	var m [16]float32
	m[0], m[5], m[10], m[15] = 1, 2, 3, 4

	fp := NewFrameParameters(WithMat4(UniformMVPMatrix, m))

	got, ok := fp.Mat4(UniformMVPMatrix)
	require.True(t, ok)
	assert.Equal(t, m, got)
	assert.True(t, fp.Has(UniformMVPMatrix))
}

func TestFrameParametersVec3AndFloat(t *testing.T) {
	fp := NewFrameParameters(
		WithChangingColor(common.Vec3{0.1, 0.2, 0.3}),
		WithScale(7.5),
	)

	v, ok := fp.Vec3(UniformChangingColor)
	require.True(t, ok)
	assert.Equal(t, common.Vec3{0.1, 0.2, 0.3}, v)

	f, ok := fp.Float(UniformScale)
	require.True(t, ok)
	assert.Equal(t, float32(7.5), f)
}

func TestFrameParametersMissing(t *testing.T) {
	fp := NewFrameParameters()

	_, ok := fp.Mat4(UniformMVPMatrix)
	assert.False(t, ok)
	_, ok = fp.Vec3(UniformChangingColor)
	assert.False(t, ok)
	_, ok = fp.Float(UniformScale)
	assert.False(t, ok)
	assert.False(t, fp.Has(UniformScale))
}

func TestFrameParametersTypedGetterMiss(t *testing.T) {
	// A name supplied as one type is visible to Has but not to getters of
	// other types.
	fp := NewFrameParameters(WithFloat(UniformScale, 2))

	assert.True(t, fp.Has(UniformScale))
	_, ok := fp.Mat4(UniformScale)
	assert.False(t, ok)
	_, ok = fp.Vec3(UniformScale)
	assert.False(t, ok)
}

func TestFrameParametersNamedHelpers(t *testing.T) {
	var vp, ccm [16]float32
	vp[0] = 5
	ccm[0] = 9

	fp := NewFrameParameters(
		WithViewProjectionMatrix(vp),
		WithChangingColorMatrix(ccm),
	)

	got, ok := fp.Mat4(UniformViewProjectionMatrix)
	require.True(t, ok)
	assert.Equal(t, float32(5), got[0])

	got, ok = fp.Mat4(UniformChangingColorMatrix)
	require.True(t, ok)
	assert.Equal(t, float32(9), got[0])
}
