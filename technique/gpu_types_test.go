package technique

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUMat4UniformLayout(t *testing.T) {
	u := &GPUMat4Uniform{}
	u.M[0] = 1.5
	u.M[15] = -2.0

	assert.Equal(t, 64, u.Size())

	data := u.Marshal()
	require.Len(t, data, 64)
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(data[0:4])))
	assert.Equal(t, float32(-2.0), math.Float32frombits(binary.LittleEndian.Uint32(data[60:64])))
}

func TestGPUVec3UniformPadding(t *testing.T) {
	u := &GPUVec3Uniform{V: [3]float32{1, 2, 3}}

	// vec3<f32> occupies 16 bytes in uniform address space.
	assert.Equal(t, 16, u.Size())

	data := u.Marshal()
	require.Len(t, data, 16)
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(data[8:12])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[12:16]))
}

func TestGPUFloatUniform(t *testing.T) {
	u := &GPUFloatUniform{V: 0.25}
	assert.Equal(t, 4, u.Size())

	data := u.Marshal()
	require.Len(t, data, 4)
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(data)))
}
