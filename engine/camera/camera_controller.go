package camera

import "github.com/glintgfx/glint/common"

// CameraController defines a free-fly control scheme built on a yaw/pitch
// heading. Controllers own positional state; Camera reads position and target
// from the controller and computes view/projection matrices.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vec3: world-space camera position
	Position() common.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - pos: world-space coordinates
	SetPosition(pos common.Vec3)

	// Direction returns the unit heading vector derived from yaw and pitch.
	//
	// Returns:
	//   - common.Vec3: unit-length view direction
	Direction() common.Vec3

	// Target returns the look-at point, one direction unit ahead of the position.
	//
	// Returns:
	//   - common.Vec3: world-space target position
	Target() common.Vec3

	// Yaw returns the horizontal heading angle around the Y axis.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// SetYaw sets the horizontal heading angle directly.
	//
	// Parameters:
	//   - yaw: new heading angle in radians
	SetYaw(yaw float32)

	// Pitch returns the vertical heading angle from the horizontal plane.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// SetPitch sets the vertical heading angle, clamped just short of
	// straight up/down so the view basis never degenerates.
	//
	// Parameters:
	//   - pitch: new vertical angle in radians
	SetPitch(pitch float32)

	// Rotate applies mouse-delta rotation scaled by MouseSensitivity.
	// Positive dx turns right, positive dy looks up. Pitch is clamped.
	//
	// Parameters:
	//   - dx: horizontal mouse delta
	//   - dy: vertical mouse delta
	Rotate(dx, dy float32)

	// MoveForward translates along the current heading.
	// Positive delta moves forward, negative moves backward.
	//
	// Parameters:
	//   - delta: move amount scaled by MoveSpeed
	MoveForward(delta float32)

	// MoveRight translates along the camera's local right axis.
	// Positive delta strafes right, negative strafes left.
	//
	// Parameters:
	//   - delta: move amount scaled by MoveSpeed
	MoveRight(delta float32)

	// MoveUp translates along the world up axis.
	// Positive delta moves up, negative moves down.
	//
	// Parameters:
	//   - delta: move amount scaled by MoveSpeed
	MoveUp(delta float32)

	// MoveSpeed returns the translation speed in world units per second.
	//
	// Returns:
	//   - float32: multiplier for move input
	MoveSpeed() float32

	// MouseSensitivity returns the mouse rotation sensitivity multiplier.
	//
	// Returns:
	//   - float32: multiplier for mouse movement
	MouseSensitivity() float32
}
