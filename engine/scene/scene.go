package scene

import (
	"fmt"
	"log"
	"strings"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/frame"
	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/presentation"
	"github.com/go-gl/mathgl/mgl32"
)

// ToggleMode selects how the presentation key flips the tour on and off.
type ToggleMode int

const (
	// ToggleEdge flips once per press, through the tracker's debounce latch.
	ToggleEdge ToggleMode = iota
	// ToggleLevel flips on every tick the key is held, so a long press oscillates.
	ToggleLevel
)

// String returns the mode name as used in configuration files.
func (m ToggleMode) String() string {
	switch m {
	case ToggleEdge:
		return "edge"
	case ToggleLevel:
		return "level"
	default:
		return fmt.Sprintf("ToggleMode(%d)", int(m))
	}
}

// ParseToggleMode converts a configuration string into a ToggleMode.
//
// Parameters:
//   - s: "edge" or "level", case-insensitive
//
// Returns:
//   - ToggleMode: the parsed mode
//   - error: non-nil if s names no mode
func ParseToggleMode(s string) (ToggleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge", "":
		return ToggleEdge, nil
	case "level":
		return ToggleLevel, nil
	default:
		return ToggleEdge, fmt.Errorf("unknown toggle mode %q", s)
	}
}

// Scene is the whole mutable state of the viewer and the per-tick resolver that advances it.
// Input callbacks write into Input() and MouseLook(); Tick() reads them in a fixed order and
// returns the frame for the render sink. A Scene has a single mutator and is not safe for
// concurrent use.
type Scene interface {
	// Tick applies one iteration of input and presentation to the scene.
	//
	// Returns:
	//   - frame.Frame: the snapshot to hand to the render sink
	Tick() frame.Frame

	// LastFrame returns the frame produced by the most recent Tick, or the zero Frame before the first.
	//
	// Returns:
	//   - frame.Frame: the last frame
	LastFrame() frame.Frame

	// Ticks returns the number of completed ticks.
	//
	// Returns:
	//   - uint64: tick count
	Ticks() uint64

	// Input returns the held-key tracker written by key callbacks.
	//
	// Returns:
	//   - *input.Tracker: the tracker
	Input() *input.Tracker

	// MouseLook returns the cursor accumulator written by cursor callbacks.
	//
	// Returns:
	//   - *input.MouseLook: the mouse look
	MouseLook() *input.MouseLook

	// Camera returns the lens whose controller the scene drives.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Presentation returns the scripted tour.
	//
	// Returns:
	//   - *presentation.Presentation: the tour
	Presentation() *presentation.Presentation

	World() game_object.GameObject
	Character() game_object.GameObject
	Streetlight() game_object.GameObject
	Boat() game_object.GameObject

	// Sun returns the directional light.
	Sun() light.Light
	// Lamp returns the point light that follows the character and is switched by the light toggle.
	Lamp() light.Light

	// Angles returns the yaw accumulators in degrees. Without split yaw both values are the shared angle.
	//
	// Returns:
	//   - world: the angle last applied by Q/E
	//   - character: the angle last applied by B
	Angles() (world, character float32)

	PolygonMode() frame.PolygonMode
	Smooth() bool
	LightActive() bool
	FogActive() bool
}

type sceneImpl struct {
	camera       camera.Camera
	tracker      *input.Tracker
	mouse        *input.MouseLook
	presentation *presentation.Presentation
	logger       *log.Logger

	world       game_object.GameObject
	character   game_object.GameObject
	streetlight game_object.GameObject
	boat        game_object.GameObject

	sun  light.Light
	lamp light.Light

	cameraSpeed   float32
	turnStep      float32
	translateStep float32
	scaleStep     float32
	splitYaw      bool
	toggleMode    ToggleMode

	angle          float32
	characterAngle float32

	polygonMode frame.PolygonMode
	smooth      bool
	lightActive bool
	fogActive   bool

	degenerate bool
	ticks      uint64
	last       frame.Frame
}

var _ Scene = &sceneImpl{}

// NewScene creates a Scene with the viewer's default bindings and speeds: camera speed 0.05,
// 1 degree turns, 0.1 unit translations and 1 percent scale steps. The camera starts at (0, 3, 10)
// looking toward (0, 0, -10) unless a camera is supplied. The default sun is white and shines from
// (0, 1, 1); the default lamp is white and starts switched off.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		logger:        log.Default(),
		cameraSpeed:   0.05,
		turnStep:      1,
		translateStep: 0.1,
		scaleStep:     0.01,
		toggleMode:    ToggleEdge,
		polygonMode:   frame.PolygonFill,
		world:         game_object.NewGameObject(game_object.WithName("world")),
		character:     game_object.NewGameObject(game_object.WithName("character")),
		streetlight:   game_object.NewGameObject(game_object.WithName("streetlight")),
		boat:          game_object.NewGameObject(game_object.WithName("boat")),
	}
	for _, option := range options {
		option(s)
	}

	if s.camera == nil {
		s.camera = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	} else if s.camera.Controller() == nil {
		s.camera.SetController(camera.NewCameraController())
	}
	if s.tracker == nil {
		s.tracker = input.NewTracker()
	}
	if s.mouse == nil {
		s.mouse = input.NewMouseLook()
	}
	if s.presentation == nil {
		s.presentation = presentation.NewPresentation(presentation.WithLogger(s.logger))
	}
	if s.sun == nil {
		s.sun = light.NewLight(light.LightTypeDirectional, light.WithDirection(mgl32.Vec3{0, 1, 1}))
	}
	if s.lamp == nil {
		s.lamp = light.NewLight(light.LightTypePoint, light.WithEnabled(false))
	}
	s.lightActive = s.lamp.Enabled()
	return s
}

func (s *sceneImpl) Tick() frame.Frame {
	ctrl := s.camera.Controller()

	if pitch, yaw, changed := s.mouse.Consume(); changed {
		ctrl.Rotate(pitch, yaw)
	}

	s.moveCamera(ctrl)
	s.turnWorld()
	s.moveCharacter()
	s.selectRaster()
	s.applyToggles()

	s.presentation.Step(ctrl, s.boat)

	if d := ctrl.Degenerate(); d != s.degenerate {
		if d {
			s.logger.Printf("[Scene] camera basis degenerate at position %v target %v; keeping previous basis", ctrl.Position(), ctrl.Target())
		}
		s.degenerate = d
	}

	s.lamp.SetEnabled(s.lightActive)
	s.lamp.SetPosition(s.character.Position())

	s.ticks++
	s.camera.Update()
	s.last = s.buildFrame()
	return s.last
}

// moveCamera applies the held camera keys in a fixed order: up, down, forward, backward, left, right.
func (s *sceneImpl) moveCamera(ctrl camera.CameraController) {
	bindings := [...]struct {
		key int
		dir camera.MoveDirection
	}{
		{common.KeyLeftShift, camera.MoveUp},
		{common.KeyTab, camera.MoveDown},
		{common.KeyW, camera.MoveForward},
		{common.KeyS, camera.MoveBackward},
		{common.KeyA, camera.MoveLeft},
		{common.KeyD, camera.MoveRight},
	}
	for _, b := range bindings {
		if s.tracker.IsHeld(b.key) {
			ctrl.Move(b.dir, s.cameraSpeed)
		}
	}
}

// turnWorld rebuilds the world matrix from the yaw angle whenever Q or E is held.
func (s *sceneImpl) turnWorld() {
	if s.tracker.IsHeld(common.KeyQ) {
		s.angle -= s.turnStep
		s.world.SetYaw(s.angle)
	}
	if s.tracker.IsHeld(common.KeyE) {
		s.angle += s.turnStep
		s.world.SetYaw(s.angle)
	}
}

func (s *sceneImpl) moveCharacter() {
	step := s.translateStep
	nudges := [...]struct {
		key    int
		offset mgl32.Vec3
	}{
		{common.KeyUp, mgl32.Vec3{0, 0, step}},
		{common.KeyDown, mgl32.Vec3{0, 0, -step}},
		{common.KeyLeft, mgl32.Vec3{-step, 0, 0}},
		{common.KeyRight, mgl32.Vec3{step, 0, 0}},
		{common.KeyN, mgl32.Vec3{0, step, 0}},
		{common.KeyM, mgl32.Vec3{0, -step, 0}},
	}
	for _, n := range nudges {
		if s.tracker.IsHeld(n.key) {
			s.character.Translate(n.offset)
		}
	}

	// B rebuilds the character from the angle alone; earlier translation and scale are lost.
	if s.tracker.IsHeld(common.KeyB) {
		if s.splitYaw {
			s.characterAngle -= s.turnStep
			s.character.SetYaw(s.characterAngle)
		} else {
			s.angle -= s.turnStep
			s.character.SetYaw(s.angle)
		}
	}

	if s.tracker.IsHeld(common.KeyK) {
		s.character.Scale(1 - s.scaleStep)
	}
	if s.tracker.IsHeld(common.KeyL) {
		s.character.Scale(1 + s.scaleStep)
	}
}

// selectRaster applies the polygon-mode keys and the level-triggered smooth key.
// With several mode keys held the highest-numbered one wins.
func (s *sceneImpl) selectRaster() {
	if s.tracker.IsHeld(common.Key1) {
		s.polygonMode = frame.PolygonFill
	}
	if s.tracker.IsHeld(common.Key2) {
		s.polygonMode = frame.PolygonLine
	}
	if s.tracker.IsHeld(common.Key3) {
		s.polygonMode = frame.PolygonPoint
	}
	s.smooth = s.tracker.IsHeld(common.Key4)
}

func (s *sceneImpl) applyToggles() {
	if s.tracker.TryConsumeToggle(input.ToggleLight, common.KeyZ) {
		s.lightActive = !s.lightActive
		s.logger.Printf("[Scene] point light %s", onOff(s.lightActive))
	}
	if s.tracker.TryConsumeToggle(input.ToggleFog, common.KeyX) {
		s.fogActive = !s.fogActive
		s.logger.Printf("[Scene] fog %s", onOff(s.fogActive))
	}

	var flip bool
	switch s.toggleMode {
	case ToggleLevel:
		flip = s.tracker.IsHeld(common.KeySpace)
	default:
		flip = s.tracker.TryConsumeToggle(input.TogglePresentation, common.KeySpace)
	}
	if flip {
		s.presentation.Toggle()
	}
}

func (s *sceneImpl) buildFrame() frame.Frame {
	ctrl := s.camera.Controller()
	view := s.camera.ViewMatrix()
	character := s.character.ModelMatrix()

	return frame.Frame{
		Tick:                s.ticks,
		View:                view,
		Projection:          s.camera.ProjectionMatrix(),
		ViewProjection:      s.camera.ViewProjectionMatrix(),
		CameraPosition:      ctrl.Position(),
		World:               s.world.ModelMatrix(),
		Character:           character,
		Streetlight:         s.streetlight.ModelMatrix(),
		Boat:                s.boat.ModelMatrix(),
		Normal:              common.NormalMatrix(view, character),
		PolygonMode:         s.polygonMode,
		Smooth:              s.smooth,
		Sun:                 s.sun.State(),
		Lamp:                s.lamp.State(),
		LightActive:         s.lamp.Enabled(),
		LightPosition:       s.lamp.Position(),
		FogActive:           s.fogActive,
		Presenting:          s.presentation.Active(),
		PresentationElapsed: s.presentation.Elapsed(),
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (s *sceneImpl) LastFrame() frame.Frame {
	return s.last
}

func (s *sceneImpl) Ticks() uint64 {
	return s.ticks
}

func (s *sceneImpl) Input() *input.Tracker {
	return s.tracker
}

func (s *sceneImpl) MouseLook() *input.MouseLook {
	return s.mouse
}

func (s *sceneImpl) Camera() camera.Camera {
	return s.camera
}

func (s *sceneImpl) Presentation() *presentation.Presentation {
	return s.presentation
}

func (s *sceneImpl) World() game_object.GameObject {
	return s.world
}

func (s *sceneImpl) Character() game_object.GameObject {
	return s.character
}

func (s *sceneImpl) Streetlight() game_object.GameObject {
	return s.streetlight
}

func (s *sceneImpl) Boat() game_object.GameObject {
	return s.boat
}

func (s *sceneImpl) Sun() light.Light {
	return s.sun
}

func (s *sceneImpl) Lamp() light.Light {
	return s.lamp
}

func (s *sceneImpl) Angles() (world, character float32) {
	if s.splitYaw {
		return s.angle, s.characterAngle
	}
	return s.angle, s.angle
}

func (s *sceneImpl) PolygonMode() frame.PolygonMode {
	return s.polygonMode
}

func (s *sceneImpl) Smooth() bool {
	return s.smooth
}

func (s *sceneImpl) LightActive() bool {
	return s.lightActive
}

func (s *sceneImpl) FogActive() bool {
	return s.fogActive
}
