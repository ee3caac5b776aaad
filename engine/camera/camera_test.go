package camera

import (
	"math"
	"testing"

	"github.com/glintgfx/glint/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerDefaults(t *testing.T) {
	cc := NewCameraController()

	assert.Equal(t, common.Vec3{0, 0, 0}, cc.Position())
	assert.Equal(t, float32(25.0), cc.MoveSpeed())
	assert.Equal(t, float32(0.003), cc.MouseSensitivity())

	// Default heading looks down -Z.
	d := cc.Direction()
	assert.InDelta(t, 0, d[0], 1e-6)
	assert.InDelta(t, 0, d[1], 1e-6)
	assert.InDelta(t, -1, d[2], 1e-6)
}

func TestControllerTarget(t *testing.T) {
	cc := NewCameraController(WithPosition(common.Vec3{1, 2, 3}))

	target := cc.Target()
	assert.InDelta(t, 1, target[0], 1e-6)
	assert.InDelta(t, 2, target[1], 1e-6)
	assert.InDelta(t, 2, target[2], 1e-6)
}

func TestControllerRotateAppliesSensitivity(t *testing.T) {
	cc := NewCameraController(WithMouseSensitivity(0.01))
	startYaw := cc.Yaw()

	cc.Rotate(100, -50)

	assert.InDelta(t, float64(startYaw)+1.0, float64(cc.Yaw()), 1e-6)
	assert.InDelta(t, 0.5, float64(cc.Pitch()), 1e-6)
}

func TestControllerPitchClamped(t *testing.T) {
	cc := NewCameraController(WithMouseSensitivity(1))

	cc.Rotate(0, -100)
	assert.InDelta(t, math.Pi/2-0.01, float64(cc.Pitch()), 1e-6)

	cc.Rotate(0, 200)
	assert.InDelta(t, -(math.Pi/2-0.01), float64(cc.Pitch()), 1e-6)

	cc.SetPitch(10)
	assert.InDelta(t, math.Pi/2-0.01, float64(cc.Pitch()), 1e-6)
}

func TestControllerMoveForward(t *testing.T) {
	cc := NewCameraController(WithMoveSpeed(10))

	cc.MoveForward(0.5)

	pos := cc.Position()
	assert.InDelta(t, 0, pos[0], 1e-5)
	assert.InDelta(t, 0, pos[1], 1e-5)
	assert.InDelta(t, -5, pos[2], 1e-5)
}

func TestControllerMoveRight(t *testing.T) {
	cc := NewCameraController(WithMoveSpeed(2))

	// Facing -Z, the local right axis is -X.
	cc.MoveRight(1)

	pos := cc.Position()
	assert.InDelta(t, -2, pos[0], 1e-5)
	assert.InDelta(t, 0, pos[1], 1e-5)
	assert.InDelta(t, 0, pos[2], 1e-5)
}

func TestControllerMoveUpIgnoresHeading(t *testing.T) {
	cc := NewCameraController(WithMoveSpeed(4), WithPitch(1.0))

	cc.MoveUp(0.25)

	pos := cc.Position()
	assert.InDelta(t, 0, pos[0], 1e-5)
	assert.InDelta(t, 1, pos[1], 1e-5)
	assert.InDelta(t, 0, pos[2], 1e-5)
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera()

	assert.Equal(t, common.Vec3{0, 1, 0}, cam.Up())
	assert.InDelta(t, math.Pi/4, float64(cam.Fov()), 1e-6)
	assert.Equal(t, float32(1.0), cam.Near())
	assert.Equal(t, float32(100.0), cam.Far())
	assert.Nil(t, cam.Controller())

	// Without a controller the matrices stay identity.
	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	assert.Equal(t, identity, cam.ViewMatrix())
	assert.Equal(t, identity, cam.ViewProjectionMatrix())
}

func TestCameraUpdateFromController(t *testing.T) {
	cc := NewCameraController(WithPosition(common.Vec3{0, 0, 10}))
	cam := NewCamera(WithController(cc), WithAspect(16.0/9.0))

	view := cam.ViewMatrix()

	// The eye maps to the view-space origin.
	eye := common.TransformVec4(view[:], 0, 0, 10, 1)
	assert.InDelta(t, 0, eye[0], 1e-5)
	assert.InDelta(t, 0, eye[1], 1e-5)
	assert.InDelta(t, 0, eye[2], 1e-5)

	// A point ahead of the camera projects inside clip space in front of the eye.
	vp := cam.ViewProjectionMatrix()
	ahead := common.TransformVec4(vp[:], 0, 0, 5, 1)
	require.Greater(t, ahead[3], float32(0))

	// Moving the controller and updating shifts the view.
	cc.SetPosition(common.Vec3{0, 0, 20})
	cam.Update()

	view = cam.ViewMatrix()
	eye = common.TransformVec4(view[:], 0, 0, 20, 1)
	assert.InDelta(t, 0, eye[2], 1e-5)
}

func TestCameraResizeTracksAspect(t *testing.T) {
	cc := NewCameraController()
	cam := NewCamera(WithController(cc), WithAspect(1.0))

	before := cam.ProjectionMatrix()
	cam.SetAspect(2.0)
	after := cam.ProjectionMatrix()

	assert.Equal(t, float32(2.0), cam.Aspect())
	assert.InDelta(t, float64(before[0]/2), float64(after[0]), 1e-6)
	assert.Equal(t, before[5], after[5])
}
