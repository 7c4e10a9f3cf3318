// Package config loads viewer settings from YAML and turns them into builder options.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/presentation"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when Load is given an empty path, relative to the working directory.
const DefaultPath = "config/viewer.yaml"

const defaultTitle = "oxy-viewer"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of viewer settings. Vectors are written as three-element sequences.
type Config struct {
	Window       WindowConfig       `yaml:"window"`
	Engine       EngineConfig       `yaml:"engine"`
	Camera       CameraConfig       `yaml:"camera"`
	Mouse        MouseConfig        `yaml:"mouse"`
	Scene        SceneConfig        `yaml:"scene"`
	Lighting     LightingConfig     `yaml:"lighting"`
	Presentation PresentationConfig `yaml:"presentation"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type EngineConfig struct {
	// TickRate caps ticks per second; 0 runs uncapped.
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`
}

type CameraConfig struct {
	Position mgl32.Vec3 `yaml:"position"`
	Target   mgl32.Vec3 `yaml:"target"`
	Up       mgl32.Vec3 `yaml:"up"`
	// Speed is the distance moved per tick a movement key is held.
	Speed float32 `yaml:"speed"`
	// Fov is the vertical field of view in degrees.
	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type MouseConfig struct {
	Sensitivity float32 `yaml:"sensitivity"`
	PitchLimit  float32 `yaml:"pitch_limit"`
	Yaw         float32 `yaml:"yaw"`
	Pitch       float32 `yaml:"pitch"`
}

type SceneConfig struct {
	TurnStep      float32 `yaml:"turn_step"`
	TranslateStep float32 `yaml:"translate_step"`
	ScaleStep     float32 `yaml:"scale_step"`
	SplitYaw      bool    `yaml:"split_yaw"`
	// PresentationToggle is "edge" or "level".
	PresentationToggle string `yaml:"presentation_toggle"`
}

type LightingConfig struct {
	// SunDirection points toward the directional light.
	SunDirection mgl32.Vec3 `yaml:"sun_direction"`
	SunColor     mgl32.Vec3 `yaml:"sun_color"`
	LampColor    mgl32.Vec3 `yaml:"lamp_color"`
	LampRange    float32    `yaml:"lamp_range"`
	// LampOn is the starting state of the light toggle.
	LampOn bool `yaml:"lamp_on"`
}

type PresentationConfig struct {
	Step           float64    `yaml:"step"`
	Boundary       float64    `yaml:"boundary"`
	BoatRadius     float32    `yaml:"boat_radius"`
	BoatOffset     mgl32.Vec3 `yaml:"boat_offset"`
	ChaseOffset    mgl32.Vec3 `yaml:"chase_offset"`
	OrbitRadiusX   float32    `yaml:"orbit_radius_x"`
	OrbitRadiusZ   float32    `yaml:"orbit_radius_z"`
	OrbitHeight    float32    `yaml:"orbit_height"`
	OverviewTarget mgl32.Vec3 `yaml:"overview_target"`
}

// Default returns the viewer's built-in settings.
func Default() Config {
	path := presentation.DefaultPath()
	return Config{
		Window: WindowConfig{
			Title:  defaultTitle,
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Camera: CameraConfig{
			Position: mgl32.Vec3{0, 3, 10},
			Target:   mgl32.Vec3{0, 0, -10},
			Up:       common.WorldUp,
			Speed:    0.05,
			Fov:      45,
			Near:     0.1,
			Far:      1000,
		},
		Mouse: MouseConfig{
			Sensitivity: 0.3,
			PitchLimit:  88,
			Yaw:         -90,
			Pitch:       0,
		},
		Scene: SceneConfig{
			TurnStep:           1,
			TranslateStep:      0.1,
			ScaleStep:          0.01,
			PresentationToggle: scene.ToggleEdge.String(),
		},
		Lighting: LightingConfig{
			SunDirection: mgl32.Vec3{0, 1, 1},
			SunColor:     mgl32.Vec3{1, 1, 1},
			LampColor:    mgl32.Vec3{1, 1, 1},
			LampRange:    10,
		},
		Presentation: PresentationConfig{
			Step:           path.Step,
			Boundary:       path.Boundary,
			BoatRadius:     path.BoatRadius,
			BoatOffset:     path.BoatOffset,
			ChaseOffset:    path.ChaseOffset,
			OrbitRadiusX:   path.OrbitRadiusX,
			OrbitRadiusZ:   path.OrbitRadiusZ,
			OrbitHeight:    path.OrbitHeight,
			OverviewTarget: path.OverviewTarget,
		},
	}
}

// Load reads a YAML file over Default(). A missing file is not an error and yields Default().
//
// Parameters:
//   - path: file to read; empty means DefaultPath
//
// Returns:
//   - Config: the merged and validated settings
//   - error: wrapped read, parse or validation error
func Load(path string) (Config, error) {
	path = common.Coalesce(path, DefaultPath)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	log.Printf("[Config] loaded %s", path)
	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result. Keys not present keep their defaults.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: the merged settings
//   - error: decode or validation error
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML, e.g. to write out a starter file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every value the viewer cannot run with. All problems are reported together,
// each wrapping ErrInvalid.
//
// Returns:
//   - error: nil if the config is usable
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0, "window.width must be positive, got %d", c.Window.Width)
	check(c.Window.Height > 0, "window.height must be positive, got %d", c.Window.Height)
	check(c.Engine.TickRate >= 0, "engine.tick_rate must not be negative, got %g", c.Engine.TickRate)

	check(c.Camera.Speed > 0, "camera.speed must be positive, got %g", c.Camera.Speed)
	check(c.Camera.Fov > 0 && c.Camera.Fov < 180, "camera.fov must be in (0, 180), got %g", c.Camera.Fov)
	check(c.Camera.Near > 0, "camera.near must be positive, got %g", c.Camera.Near)
	check(c.Camera.Far > c.Camera.Near, "camera.far must exceed camera.near, got %g", c.Camera.Far)
	_, upOK := common.Normalize(c.Camera.Up)
	check(upOK, "camera.up must be non-zero")

	check(c.Mouse.Sensitivity > 0, "mouse.sensitivity must be positive, got %g", c.Mouse.Sensitivity)
	check(c.Mouse.PitchLimit > 0 && c.Mouse.PitchLimit < 90, "mouse.pitch_limit must be in (0, 90), got %g", c.Mouse.PitchLimit)

	check(c.Scene.TurnStep > 0, "scene.turn_step must be positive, got %g", c.Scene.TurnStep)
	check(c.Scene.TranslateStep > 0, "scene.translate_step must be positive, got %g", c.Scene.TranslateStep)
	check(c.Scene.ScaleStep > 0 && c.Scene.ScaleStep < 1, "scene.scale_step must be in (0, 1), got %g", c.Scene.ScaleStep)
	if _, err := scene.ParseToggleMode(c.Scene.PresentationToggle); err != nil {
		errs = append(errs, fmt.Errorf("%w: scene.presentation_toggle: %v", ErrInvalid, err))
	}

	_, sunOK := common.Normalize(c.Lighting.SunDirection)
	check(sunOK, "lighting.sun_direction must be non-zero")
	check(c.Lighting.LampRange > 0, "lighting.lamp_range must be positive, got %g", c.Lighting.LampRange)

	check(c.Presentation.Step > 0, "presentation.step must be positive, got %g", c.Presentation.Step)
	check(c.Presentation.Boundary > 0, "presentation.boundary must be positive, got %g", c.Presentation.Boundary)

	return errors.Join(errs...)
}

// Title returns the window title, falling back to the default for an empty value.
func (c Config) Title() string {
	return common.Coalesce(c.Window.Title, defaultTitle)
}

// ControllerOptions returns the camera controller's starting pose.
func (c Config) ControllerOptions() []camera.CameraControllerOption {
	return []camera.CameraControllerOption{
		camera.WithPosition(c.Camera.Position),
		camera.WithTarget(c.Camera.Target),
		camera.WithUp(c.Camera.Up),
	}
}

// CameraOptions returns the lens settings plus a controller built from ControllerOptions.
// The aspect ratio follows the configured window size.
func (c Config) CameraOptions() []camera.CameraBuilderOption {
	opts := []camera.CameraBuilderOption{
		camera.WithFov(mgl32.DegToRad(c.Camera.Fov)),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
		camera.WithController(camera.NewCameraController(c.ControllerOptions()...)),
	}
	if c.Window.Width > 0 && c.Window.Height > 0 {
		opts = append(opts, camera.WithAspect(float32(c.Window.Width)/float32(c.Window.Height)))
	}
	return opts
}

// MouseLookOptions returns the cursor accumulator settings.
func (c Config) MouseLookOptions() []input.MouseLookOption {
	return []input.MouseLookOption{
		input.WithSensitivity(c.Mouse.Sensitivity),
		input.WithPitchLimit(c.Mouse.PitchLimit),
		input.WithInitialAngles(c.Mouse.Pitch, c.Mouse.Yaw),
	}
}

// Sun returns the directional light.
func (c Config) Sun() light.Light {
	return light.NewLight(light.LightTypeDirectional,
		light.WithDirection(c.Lighting.SunDirection),
		light.WithColor(c.Lighting.SunColor),
	)
}

// Lamp returns the point light carried by the character.
func (c Config) Lamp() light.Light {
	return light.NewLight(light.LightTypePoint,
		light.WithColor(c.Lighting.LampColor),
		light.WithRange(c.Lighting.LampRange),
		light.WithEnabled(c.Lighting.LampOn),
	)
}

// Path returns the tour constants.
func (c Config) Path() presentation.Path {
	p := c.Presentation
	return presentation.Path{
		Step:           p.Step,
		Boundary:       p.Boundary,
		BoatRadius:     p.BoatRadius,
		BoatOffset:     p.BoatOffset,
		ChaseOffset:    p.ChaseOffset,
		OrbitRadiusX:   p.OrbitRadiusX,
		OrbitRadiusZ:   p.OrbitRadiusZ,
		OrbitHeight:    p.OrbitHeight,
		OverviewTarget: p.OverviewTarget,
	}
}

// PresentationOptions returns the tour settings.
//
// Parameters:
//   - logger: logger for tour messages; nil keeps the default
func (c Config) PresentationOptions(logger *log.Logger) []presentation.PresentationOption {
	return []presentation.PresentationOption{
		presentation.WithPath(c.Path()),
		presentation.WithLogger(logger),
	}
}

// SceneOptions returns a complete scene setup: camera, mouse look, presentation, lights and the per-tick steps.
// Call Validate first; an unknown toggle mode falls back to edge-triggered.
//
// Parameters:
//   - logger: logger for the scene and its presentation; nil keeps the default
func (c Config) SceneOptions(logger *log.Logger) []scene.SceneBuilderOption {
	mode, _ := scene.ParseToggleMode(c.Scene.PresentationToggle)
	return []scene.SceneBuilderOption{
		scene.WithLogger(logger),
		scene.WithCamera(camera.NewCamera(c.CameraOptions()...)),
		scene.WithMouseLook(input.NewMouseLook(c.MouseLookOptions()...)),
		scene.WithPresentation(presentation.NewPresentation(c.PresentationOptions(logger)...)),
		scene.WithSun(c.Sun()),
		scene.WithLamp(c.Lamp()),
		scene.WithCameraSpeed(c.Camera.Speed),
		scene.WithTurnStep(c.Scene.TurnStep),
		scene.WithTranslateStep(c.Scene.TranslateStep),
		scene.WithScaleStep(c.Scene.ScaleStep),
		scene.WithSplitYaw(c.Scene.SplitYaw),
		scene.WithPresentationToggle(mode),
	}
}
