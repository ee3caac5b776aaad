package camera

import (
	"math"
	"sync"

	"github.com/glintgfx/glint/common"
)

// pitchLimit keeps the heading off the world up axis so the view basis stays
// well-conditioned.
const pitchLimit = float32(math.Pi/2) - 0.01

// cameraControllerImpl is the single implementation of CameraController.
// Free-fly control: yaw/pitch define the heading, move methods translate
// along the heading, the local right axis, or world up.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position common.Vec3

	yaw   float32 // Horizontal angle around Y axis
	pitch float32 // Vertical angle from horizontal plane

	moveSpeed        float32
	mouseSensitivity float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new free-fly camera controller with sensible
// defaults (origin position, heading down -Z).
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		position: common.Vec3{0, 0, 0},

		yaw:   float32(-math.Pi / 2), // looking down -Z
		pitch: 0.0,

		moveSpeed:        25.0,
		mouseSensitivity: 0.003,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clampPitch()
	return cc
}

// --- internal helpers ---

// direction derives the unit heading vector from yaw and pitch.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) direction() common.Vec3 {
	cosPitch := float32(math.Cos(float64(cc.pitch)))
	return common.Vec3{
		float32(math.Cos(float64(cc.yaw))) * cosPitch,
		float32(math.Sin(float64(cc.pitch))),
		float32(math.Sin(float64(cc.yaw))) * cosPitch,
	}
}

// rightAxis derives the camera's local right axis from the heading and world
// up. Caller must hold the mutex.
func (cc *cameraControllerImpl) rightAxis() common.Vec3 {
	return common.Vec3{0, 1, 0}.Cross(cc.direction()).Normalized()
}

// clampPitch bounds pitch to (-pitchLimit, pitchLimit).
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clampPitch() {
	cc.pitch = common.Clamp(cc.pitch, -pitchLimit, pitchLimit)
}

// --- CameraController implementation ---

func (cc *cameraControllerImpl) Position() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(pos common.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = pos
}

func (cc *cameraControllerImpl) Direction() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.direction()
}

func (cc *cameraControllerImpl) Target() common.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position.Add(cc.direction())
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}

func (cc *cameraControllerImpl) SetYaw(yaw float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw = yaw
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) SetPitch(pitch float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch = pitch
	cc.clampPitch()
}

func (cc *cameraControllerImpl) Rotate(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw += dx * cc.mouseSensitivity
	cc.pitch -= dy * cc.mouseSensitivity
	cc.clampPitch()
}

func (cc *cameraControllerImpl) MoveForward(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = cc.position.Add(cc.direction().Scaled(delta * cc.moveSpeed))
}

func (cc *cameraControllerImpl) MoveRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = cc.position.Add(cc.rightAxis().Scaled(delta * cc.moveSpeed))
}

func (cc *cameraControllerImpl) MoveUp(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = cc.position.Add(common.Vec3{0, 1, 0}.Scaled(delta * cc.moveSpeed))
}

func (cc *cameraControllerImpl) MoveSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}
