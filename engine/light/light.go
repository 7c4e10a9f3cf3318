package light

import (
	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Used for the scene's sun. Affects all fragments uniformly with no distance attenuation.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position.
	// Used for the lamp carried by the character. Attenuates with distance up to its range.
	LightTypePoint
)

// String returns the type name.
func (t LightType) String() string {
	switch t {
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	default:
		return "unknown"
	}
}

// State is a value copy of a light, as handed to the render sink.
type State struct {
	Type LightType
	// Position is meaningless for directional lights.
	Position mgl32.Vec3
	// Direction points toward the light and is meaningless for point lights.
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	// Range is meaningless for directional lights.
	Range   float32
	Enabled bool
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType  LightType
	position   mgl32.Vec3
	direction  mgl32.Vec3
	color      mgl32.Vec3
	intensity  float32
	lightRange float32
	enabled    bool
}

// Light defines the interface for a light source in the scene.
//
// Both light types share this interface; type-specific properties return
// their stored values but are ignored by the shading they do not apply to.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional or point)
	Type() LightType

	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: position
	Position() mgl32.Vec3

	// Direction returns the normalized direction toward the light.
	//
	// Returns:
	//   - mgl32.Vec3: normalized direction
	Direction() mgl32.Vec3

	Color() mgl32.Vec3
	Intensity() float32
	Range() float32
	Enabled() bool

	// State returns a value copy of every property.
	//
	// Returns:
	//   - State: the light's current state
	State() State

	SetPosition(p mgl32.Vec3)

	// SetDirection sets the direction toward the light. Zero vectors are ignored.
	//
	// Parameters:
	//   - d: direction (will be normalized)
	SetDirection(d mgl32.Vec3)

	SetColor(c mgl32.Vec3)
	SetIntensity(intensity float32)
	SetRange(lightRange float32)
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type. Defaults are a white, enabled light of
// intensity 1 and range 10, pointing straight up.
//
// Parameters:
//   - lightType: the kind of light to create (directional or point)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:  lightType,
		direction:  common.WorldUp,
		color:      mgl32.Vec3{1, 1, 1},
		intensity:  1.0,
		lightRange: 10.0,
		enabled:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) State() State {
	return State{
		Type:      l.lightType,
		Position:  l.position,
		Direction: l.direction,
		Color:     l.color,
		Intensity: l.intensity,
		Range:     l.lightRange,
		Enabled:   l.enabled,
	}
}

func (l *lightImpl) SetPosition(p mgl32.Vec3) {
	l.position = p
}

func (l *lightImpl) SetDirection(d mgl32.Vec3) {
	if n, ok := common.Normalize(d); ok {
		l.direction = n
	}
}

func (l *lightImpl) SetColor(c mgl32.Vec3) {
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetRange(lightRange float32) {
	l.lightRange = lightRange
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
