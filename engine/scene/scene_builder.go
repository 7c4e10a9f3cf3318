package scene

import (
	"log"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/presentation"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *sceneImpl)

// WithCamera sets the camera the scene drives. A camera without a controller gets a default one.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.camera = cam
	}
}

// WithTracker sets the held-key tracker.
//
// Parameters:
//   - tracker: the tracker to read each tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTracker(tracker *input.Tracker) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.tracker = tracker
	}
}

// WithMouseLook sets the cursor accumulator.
//
// Parameters:
//   - mouse: the mouse look to consume each tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMouseLook(mouse *input.MouseLook) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.mouse = mouse
	}
}

// WithPresentation sets the scripted tour.
//
// Parameters:
//   - p: the presentation to step each tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPresentation(p *presentation.Presentation) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.presentation = p
	}
}

// WithSun sets the directional light.
//
// Parameters:
//   - sun: the light to report in every frame
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSun(sun light.Light) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.sun = sun
	}
}

// WithLamp sets the point light carried by the character. Its enabled flag is the starting state of
// the light toggle.
//
// Parameters:
//   - lamp: the light to move and switch each tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLamp(lamp light.Light) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.lamp = lamp
	}
}

// WithCameraSpeed sets the distance the camera moves per tick a movement key is held.
// Non-positive values are ignored.
//
// Parameters:
//   - speed: world units per tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCameraSpeed(speed float32) SceneBuilderOption {
	return func(s *sceneImpl) {
		if speed > 0 {
			s.cameraSpeed = speed
		}
	}
}

// WithTurnStep sets the yaw change in degrees per tick Q, E or B is held.
// Non-positive values are ignored.
//
// Parameters:
//   - deg: degrees per tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTurnStep(deg float32) SceneBuilderOption {
	return func(s *sceneImpl) {
		if deg > 0 {
			s.turnStep = deg
		}
	}
}

// WithTranslateStep sets the character translation per tick an arrow, N or M key is held.
// Non-positive values are ignored.
//
// Parameters:
//   - step: local units per tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTranslateStep(step float32) SceneBuilderOption {
	return func(s *sceneImpl) {
		if step > 0 {
			s.translateStep = step
		}
	}
}

// WithScaleStep sets the fractional scale change per tick K or L is held.
// K scales by 1-step and L by 1+step. Values outside (0, 1) are ignored.
//
// Parameters:
//   - step: fraction per tick, e.g. 0.01
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithScaleStep(step float32) SceneBuilderOption {
	return func(s *sceneImpl) {
		if step > 0 && step < 1 {
			s.scaleStep = step
		}
	}
}

// WithSplitYaw gives the world (Q/E) and the character (B) separate yaw accumulators.
// By default they share one angle.
//
// Parameters:
//   - split: true for separate accumulators
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSplitYaw(split bool) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.splitYaw = split
	}
}

// WithPresentationToggle sets how the presentation key flips the tour.
//
// Parameters:
//   - mode: ToggleEdge or ToggleLevel
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPresentationToggle(mode ToggleMode) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.toggleMode = mode
	}
}

// WithLogger sets the logger for toggle and camera messages. It is also handed to the default presentation.
//
// Parameters:
//   - logger: destination logger; nil keeps the default
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger *log.Logger) SceneBuilderOption {
	return func(s *sceneImpl) {
		if logger != nil {
			s.logger = logger
		}
	}
}
