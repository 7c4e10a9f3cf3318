// Package frame defines the per-tick output handed to the render sink.
// Shader upload, mesh drawing and skybox rendering live behind the Sink interface.
package frame

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// PolygonMode selects how the render sink rasterizes polygons.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

// String returns the mode name.
func (m PolygonMode) String() string {
	switch m {
	case PolygonFill:
		return "fill"
	case PolygonLine:
		return "line"
	case PolygonPoint:
		return "point"
	default:
		return fmt.Sprintf("PolygonMode(%d)", int(m))
	}
}

// Frame is a value snapshot of everything the render sink needs for one tick.
type Frame struct {
	// Tick is the number of completed simulation ticks, starting at 1.
	Tick uint64

	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
	CameraPosition mgl32.Vec3

	World       mgl32.Mat4
	Character   mgl32.Mat4
	Streetlight mgl32.Mat4
	Boat        mgl32.Mat4

	// Normal is the inverse-transpose of View * Character, upper 3x3.
	Normal mgl32.Mat3

	PolygonMode PolygonMode
	// Smooth enables polygon smoothing and alpha blending for this frame only.
	Smooth bool

	// Sun is the directional light; it is always on.
	Sun light.State
	// Lamp is the point light carried by the character. LightActive and LightPosition mirror it.
	Lamp          light.State
	LightActive   bool
	LightPosition mgl32.Vec3
	FogActive     bool

	Presenting          bool
	PresentationElapsed float64
}

// Sink consumes one Frame per tick.
type Sink interface {
	// Consume receives the frame for the current tick. Implementations must not retain references
	// expecting later mutation; Frame is a plain value.
	//
	// Parameters:
	//   - f: the frame to render
	Consume(f Frame)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(f Frame)

// Consume calls fn(f).
func (fn SinkFunc) Consume(f Frame) {
	fn(f)
}
