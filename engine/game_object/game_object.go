package game_object

import (
	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	name    string
	enabled bool
	model   mgl32.Mat4
}

// GameObject is a manipulable scene entity whose placement is a single accumulated 4x4 model matrix.
// Relative operations compose onto the existing matrix (model = model * op), matching how the viewer
// nudges objects a little every tick a key is held. There is no reset; drift accumulates over long sessions.
type GameObject interface {
	// Name returns the object's display name.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Enabled returns whether this object is submitted to the render sink.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// ModelMatrix returns the accumulated model matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix (column-major)
	ModelMatrix() mgl32.Mat4

	// Position returns the translation column of the model matrix.
	//
	// Returns:
	//   - mgl32.Vec3: the object's origin in world space
	Position() mgl32.Vec3

	// Translate composes a translation in the object's local frame.
	//
	// Parameters:
	//   - offset: local-space translation
	Translate(offset mgl32.Vec3)

	// Scale composes a uniform scale.
	//
	// Parameters:
	//   - factor: scale factor, e.g. 0.99 to shrink by one percent
	Scale(factor float32)

	// SetYaw replaces the whole model matrix with a rotation about world Y.
	// Any previous translation and scale are discarded.
	//
	// Parameters:
	//   - deg: absolute angle in degrees
	SetYaw(deg float32)

	// SetTranslation replaces the whole model matrix with a translation.
	//
	// Parameters:
	//   - p: world-space position
	SetTranslation(p mgl32.Vec3)

	// SetEnabled sets whether the object is submitted to the render sink.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled object with an identity model matrix.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	g := &gameObject{
		enabled: true,
		model:   mgl32.Ident4(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	return g.model
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.model.Col(3).Vec3()
}

func (g *gameObject) Translate(offset mgl32.Vec3) {
	g.model = g.model.Mul4(mgl32.Translate3D(offset[0], offset[1], offset[2]))
}

func (g *gameObject) Scale(factor float32) {
	g.model = g.model.Mul4(mgl32.Scale3D(factor, factor, factor))
}

func (g *gameObject) SetYaw(deg float32) {
	g.model = common.YawMatrix(deg)
}

func (g *gameObject) SetTranslation(p mgl32.Vec3) {
	g.model = mgl32.Translate3D(p[0], p[1], p[2])
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled = enabled
}
