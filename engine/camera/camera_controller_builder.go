package camera

import "github.com/glintgfx/glint/common"

type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the controller's starting world-space position.
//
// Parameters:
//   - pos: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(pos common.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = pos
	}
}

// WithYaw sets the starting horizontal heading angle.
//
// Parameters:
//   - yaw: heading angle in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the yaw
func WithYaw(yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.yaw = yaw
	}
}

// WithPitch sets the starting vertical heading angle.
// The value is clamped after all options are applied.
//
// Parameters:
//   - pitch: vertical angle in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the pitch
func WithPitch(pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitch = pitch
	}
}

// WithMoveSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: move speed multiplier (must be > 0 to have an effect)
//
// Returns:
//   - CameraControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveSpeed = common.Coalesce(speed, cc.moveSpeed)
	}
}

// WithMouseSensitivity sets the mouse rotation sensitivity multiplier.
//
// Parameters:
//   - sensitivity: rotation multiplier (must be > 0 to have an effect)
//
// Returns:
//   - CameraControllerOption: functional option to set the sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = common.Coalesce(sensitivity, cc.mouseSensitivity)
	}
}
