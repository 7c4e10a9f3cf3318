package camera

import (
	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// It is not safe for concurrent use; the engine mutates it from one thread only.
type cameraControllerImpl struct {
	position mgl32.Vec3
	target   mgl32.Vec3

	// Orientation basis. front drives the view matrix.
	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	degenerate bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a camera controller looking from position toward target.
// Defaults match the viewer's starting pose: position (0, 3, 10), target (0, 0, -10), up (0, 1, 0).
// Up is stored as given and is not re-orthogonalized against front.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		position: mgl32.Vec3{0, 3, 10},
		target:   mgl32.Vec3{0, 0, -10},
		up:       common.WorldUp,
		front:    mgl32.Vec3{0, 0, -1},
		right:    mgl32.Vec3{1, 0, 0},
	}

	for _, option := range options {
		option(cc)
	}

	cc.aim()
	return cc
}

// --- internal helpers ---

// aim re-derives front from target and position, then right from front and up.
// Degenerate inputs keep the previous vectors and set the degenerate flag.
func (cc *cameraControllerImpl) aim() {
	cc.degenerate = false

	front, ok := common.Normalize(cc.target.Sub(cc.position))
	if !ok {
		cc.degenerate = true
		return
	}
	cc.front = front

	right, ok := common.RightOf(cc.front, cc.up)
	if !ok {
		cc.degenerate = true
		return
	}
	cc.right = right
}

// --- CameraController implementation ---

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	return cc.position
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	return cc.target
}

func (cc *cameraControllerImpl) Front() mgl32.Vec3 {
	return cc.front
}

func (cc *cameraControllerImpl) Right() mgl32.Vec3 {
	return cc.right
}

func (cc *cameraControllerImpl) Up() mgl32.Vec3 {
	return cc.up
}

func (cc *cameraControllerImpl) Degenerate() bool {
	return cc.degenerate
}

func (cc *cameraControllerImpl) ViewMatrix() mgl32.Mat4 {
	return common.LookAt(cc.position, cc.front, cc.up)
}

func (cc *cameraControllerImpl) SetPosition(p mgl32.Vec3) {
	cc.position = p
	cc.aim()
}

func (cc *cameraControllerImpl) SetTarget(t mgl32.Vec3) {
	cc.target = t
	cc.aim()
}

func (cc *cameraControllerImpl) Move(direction MoveDirection, speed float32) {
	switch direction {
	case MoveForward:
		cc.position = cc.position.Add(cc.front.Mul(speed))
	case MoveBackward:
		cc.position = cc.position.Sub(cc.front.Mul(speed))
	case MoveLeft:
		cc.position = cc.position.Sub(cc.right.Mul(speed))
	case MoveRight:
		cc.position = cc.position.Add(cc.right.Mul(speed))
		// only the right strafe refreshes the target; left does not
		cc.target = cc.position.Add(cc.front)
	case MoveUp:
		cc.position = cc.position.Add(mgl32.Vec3{0, speed, 0})
	case MoveDown:
		cc.position = cc.position.Sub(mgl32.Vec3{0, speed, 0})
	}
}

func (cc *cameraControllerImpl) Rotate(pitch, yaw float32) {
	cc.degenerate = false
	cc.front = common.FrontFromAngles(pitch, yaw)

	right, ok := common.RightOf(cc.front, common.WorldUp)
	if !ok {
		// looking straight up or down; keep the previous right and up
		cc.degenerate = true
		return
	}
	cc.right = right
	if up, ok := common.UpOf(cc.right, cc.front); ok {
		cc.up = up
	}
}
