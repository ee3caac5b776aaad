package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 9
	}
	Identity(m)

	assert.Equal(t, NewIdentity(), m)
}

func TestDiagonal4(t *testing.T) {
	m := make([]float32, 16)
	Diagonal4(m, 1, 2, 3, 4)

	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(2), m[5])
	assert.Equal(t, float32(3), m[10])
	assert.Equal(t, float32(4), m[15])
	assert.Equal(t, float32(0), m[1])
	assert.Equal(t, float32(0), m[4])
}

func TestMul4Identity(t *testing.T) {
	a := make([]float32, 16)
	for i := range a {
		a[i] = float32(i)
	}
	out := make([]float32, 16)

	Mul4(out, NewIdentity(), a)
	assert.Equal(t, a, out)

	Mul4(out, a, NewIdentity())
	assert.Equal(t, a, out)
}

func TestMul4Aliasing(t *testing.T) {
	a := make([]float32, 16)
	BuildModelMatrix(a, 1, 2, 3, 0, 0, 0, 1, 1, 1)
	want := make([]float32, 16)
	Mul4(want, a, a)

	Mul4(a, a, a)
	assert.Equal(t, want, a)
}

func TestMul4TranslationComposes(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	BuildModelMatrix(a, 1, 2, 3, 0, 0, 0, 1, 1, 1)
	BuildModelMatrix(b, 10, 20, 30, 0, 0, 0, 1, 1, 1)

	out := make([]float32, 16)
	Mul4(out, a, b)

	v := TransformVec4(out, 0, 0, 0, 1)
	assert.InDelta(t, 11, v[0], 1e-5)
	assert.InDelta(t, 22, v[1], 1e-5)
	assert.InDelta(t, 33, v[2], 1e-5)
	assert.InDelta(t, 1, v[3], 1e-5)
}

func TestBuildModelMatrixScaleAndTranslate(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 5, -5, 2, 0, 0, 0, 2, 3, 4)

	v := TransformVec4(m, 1, 1, 1, 1)
	assert.InDelta(t, 7, v[0], 1e-5)
	assert.InDelta(t, -2, v[1], 1e-5)
	assert.InDelta(t, 6, v[2], 1e-5)
}

func TestBuildModelMatrixYawRotation(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, float32(math.Pi/2), 0, 1, 1, 1)

	// A 90 degree yaw maps +X to -Z.
	v := TransformVec4(m, 1, 0, 0, 1)
	assert.InDelta(t, 0, v[0], 1e-6)
	assert.InDelta(t, 0, v[1], 1e-6)
	assert.InDelta(t, -1, v[2], 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, float32(math.Pi/3), 16.0/9.0, 0.1, 100)

	// WebGPU clip space: near maps to depth 0, far to depth 1.
	near := TransformVec4(m, 0, 0, -0.1, 1)
	require.NotZero(t, near[3])
	assert.InDelta(t, 0, near[2]/near[3], 1e-5)

	far := TransformVec4(m, 0, 0, -100, 1)
	require.NotZero(t, far[3])
	assert.InDelta(t, 1, far[2]/far[3], 1e-4)

	// Points in front of the camera have positive clip w.
	assert.Greater(t, near[3], float32(0))
}

func TestLookAtOrigin(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 0, 0, 10, 0, 0, 0, 0, 1, 0)

	// The eye maps to the view-space origin.
	eye := TransformVec4(m, 0, 0, 10, 1)
	assert.InDelta(t, 0, eye[0], 1e-5)
	assert.InDelta(t, 0, eye[1], 1e-5)
	assert.InDelta(t, 0, eye[2], 1e-5)

	// The target lies on the negative view-space Z axis.
	target := TransformVec4(m, 0, 0, 0, 1)
	assert.InDelta(t, 0, target[0], 1e-5)
	assert.InDelta(t, 0, target[1], 1e-5)
	assert.InDelta(t, -10, target[2], 1e-5)
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 100, 200, 300, 0, float32(math.Pi/2), 0, 1, 1, 1)

	d := TransformDirection(m, Vec3{1, 0, 0})
	assert.InDelta(t, 0, d[0], 1e-6)
	assert.InDelta(t, 0, d[1], 1e-6)
	assert.InDelta(t, -1, d[2], 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2}
	b := SliceToBytes(data)
	require.Len(t, b, 8)

	// Little-endian float32(1.0) is 0x3f800000.
	assert.Equal(t, byte(0x80), b[2])
	assert.Equal(t, byte(0x3f), b[3])

	assert.Nil(t, SliceToBytes([]float32(nil)))
}
