package camera

import "github.com/go-gl/mathgl/mgl32"

// MoveDirection enumerates the translations accepted by CameraController.Move.
type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// String returns the direction name, or "unknown" for values outside the enumeration.
func (d MoveDirection) String() string {
	switch d {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	default:
		return "unknown"
	}
}

// CameraController owns the free-flying camera pose (position, target and the front/right/up basis).
// The Camera reads the controller's view matrix each tick and combines it with its projection.
//
// Manual control drives the pose through Move and Rotate, where front is authoritative.
// Scripted control drives it through SetPosition and SetTarget, where front is re-derived from target.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the last explicit or derived look-at point.
	// In manual mode the target is only refreshed by MoveRight.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Front returns the unit viewing direction.
	//
	// Returns:
	//   - mgl32.Vec3: forward vector
	Front() mgl32.Vec3

	// Right returns the unit right vector.
	//
	// Returns:
	//   - mgl32.Vec3: right vector
	Right() mgl32.Vec3

	// Up returns the camera up vector used by the view matrix.
	//
	// Returns:
	//   - mgl32.Vec3: up vector
	Up() mgl32.Vec3

	// Degenerate reports whether the last basis recompute was skipped because its inputs were degenerate
	// (target equal to position, or front parallel to up).
	//
	// Returns:
	//   - bool: true if the previous front/right were kept
	Degenerate() bool

	// ViewMatrix returns a right-handed look-at matrix from position along front. It does not mutate the pose.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// SetPosition moves the camera and re-aims it at the current target.
	// Front becomes normalize(target - position) and right normalize(cross(front, up)); up is unchanged.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl32.Vec3)

	// SetTarget sets the look-at point and re-derives front and right like SetPosition.
	//
	// Parameters:
	//   - t: world-space target
	SetTarget(t mgl32.Vec3)

	// Move translates the camera by speed in the given direction.
	// Forward/Backward follow ±front, Left/Right follow ∓/± right and Up/Down follow world ±Y.
	// MoveRight additionally sets target = position + front; MoveLeft leaves target untouched.
	// Unknown directions are ignored.
	//
	// Parameters:
	//   - direction: the direction to move
	//   - speed: distance in world units
	Move(direction MoveDirection, speed float32)

	// Rotate overwrites the orientation from absolute pitch and yaw in degrees.
	// Repeated calls with the same angles give the same basis; callers accumulate the angles.
	// Right and up are re-derived from the world up axis, never the previous up.
	//
	// Parameters:
	//   - pitch: rotation about X in degrees
	//   - yaw: rotation about Y in degrees
	Rotate(pitch, yaw float32)
}
