package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial camera position.
//
// Parameters:
//   - p: world-space position
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(p mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = p
	}
}

// WithTarget sets the initial look-at point.
//
// Parameters:
//   - t: world-space target
//
// Returns:
//   - CameraControllerOption: functional option to set the target position
func WithTarget(t mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = t
	}
}

// WithUp sets the initial up vector. It is stored as given.
//
// Parameters:
//   - up: the up vector, typically (0, 1, 0)
//
// Returns:
//   - CameraControllerOption: functional option to set the up vector
func WithUp(up mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.up = up
	}
}
