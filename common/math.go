package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DegenerateEpsilon is the length below which a vector is treated as zero by Normalize.
const DegenerateEpsilon = 1e-6

// WorldUp is the fixed world up axis used when deriving a camera basis from pitch/yaw angles.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Normalize returns v scaled to unit length.
// If v is shorter than DegenerateEpsilon the input is returned unchanged together with false,
// so callers can keep their previous value instead of propagating NaN.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the unit vector, or v when degenerate
//   - bool: false if v was too short to normalize
func Normalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := math32.Sqrt(v.Dot(v))
	if l < DegenerateEpsilon {
		return v, false
	}
	inv := 1 / l
	return mgl32.Vec3{v[0] * inv, v[1] * inv, v[2] * inv}, true
}

// FrontFromAngles derives a unit forward vector from pitch and yaw given in degrees.
// The result is (cos(pitch)*cos(yaw), sin(pitch), cos(pitch)*sin(yaw)); yaw -90 with pitch 0 looks down -Z.
//
// Parameters:
//   - pitchDeg: rotation around the X axis in degrees
//   - yawDeg: rotation around the Y axis in degrees
//
// Returns:
//   - mgl32.Vec3: the normalized forward vector
func FrontFromAngles(pitchDeg, yawDeg float32) mgl32.Vec3 {
	p := mgl32.DegToRad(pitchDeg)
	y := mgl32.DegToRad(yawDeg)
	cp := math32.Cos(p)
	front, _ := Normalize(mgl32.Vec3{
		cp * math32.Cos(y),
		math32.Sin(p),
		cp * math32.Sin(y),
	})
	return front
}

// RightOf returns normalize(cross(front, up)).
//
// Parameters:
//   - front: the forward vector
//   - up: the reference up vector
//
// Returns:
//   - mgl32.Vec3: the right vector
//   - bool: false if front and up are parallel (or either is zero)
func RightOf(front, up mgl32.Vec3) (mgl32.Vec3, bool) {
	return Normalize(front.Cross(up))
}

// UpOf returns normalize(cross(right, front)).
//
// Parameters:
//   - right: the right vector
//   - front: the forward vector
//
// Returns:
//   - mgl32.Vec3: the up vector
//   - bool: false if the inputs are parallel
func UpOf(right, front mgl32.Vec3) (mgl32.Vec3, bool) {
	return Normalize(right.Cross(front))
}

// LookAt creates a right-handed view matrix for a camera at eye looking along front.
// The matrix maps eye to the origin and front to -Z.
//
// Parameters:
//   - eye: camera position in world space
//   - front: viewing direction
//   - up: up vector defining camera roll
//
// Returns:
//   - mgl32.Mat4: the view matrix (column-major)
func LookAt(eye, front, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, eye.Add(front), up)
}

// Perspective creates an OpenGL-style perspective projection matrix.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovY, aspect, near, far)
}

// YawMatrix builds a rotation about world +Y from an absolute angle in degrees.
func YawMatrix(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
}

// NormalMatrix returns the upper 3x3 of the inverse-transpose of view*model,
// used to transform normals into view space.
//
// Parameters:
//   - view: the view matrix
//   - model: the object's model matrix
//
// Returns:
//   - mgl32.Mat3: the normal matrix; zero if view*model is singular
func NormalMatrix(view, model mgl32.Mat4) mgl32.Mat3 {
	return view.Mul4(model).Inv().Transpose().Mat3()
}
