// Package presentation drives the scripted camera tour that overrides manual control while active.
//
// The tour is a fixed-step simulation: every tick while active advances elapsed time by a constant step,
// independent of wall-clock frame time, so playback speed follows the tick rate.
package presentation

import (
	"log"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Phase identifies which leg of the tour a given elapsed time falls into.
type Phase int

const (
	// PhaseInactive is reported while the presentation is switched off.
	PhaseInactive Phase = iota
	// PhaseChase follows the boat around its ellipse.
	PhaseChase
	// PhaseOverview orbits the whole scene while the boat stays where it stopped.
	PhaseOverview
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseChase:
		return "chase"
	case PhaseOverview:
		return "overview"
	default:
		return "inactive"
	}
}

// CameraTarget is the part of a camera the tour writes to.
type CameraTarget interface {
	SetPosition(p mgl32.Vec3)
	SetTarget(t mgl32.Vec3)
}

// Placeable is the part of the boat the tour writes to.
type Placeable interface {
	SetTranslation(p mgl32.Vec3)
}

// Path holds the constants of the two-phase tour.
type Path struct {
	// Step is the elapsed-time increment applied per active tick.
	Step float64
	// Boundary is the elapsed time at which the chase phase hands over to the overview phase.
	Boundary float64

	// BoatRadius is the radius of the boat's circuit.
	BoatRadius float32
	// BoatOffset is the centre of the boat's circuit.
	BoatOffset mgl32.Vec3
	// ChaseOffset is added to the boat position to place the chase camera.
	ChaseOffset mgl32.Vec3

	// OrbitRadiusX and OrbitRadiusZ are the semi-axes of the overview orbit.
	OrbitRadiusX float32
	OrbitRadiusZ float32
	// OrbitHeight is the fixed Y of the overview camera.
	OrbitHeight float32
	// OverviewTarget is the fixed look-at point of the overview camera.
	OverviewTarget mgl32.Vec3
}

// DefaultPath returns the viewer's tour: a 3-unit circle centred on (2, 0, 0) for 5 time units,
// then a 13x8 orbit at height 7 looking at (1, 3, 4).
//
// Returns:
//   - Path: the default tour constants
func DefaultPath() Path {
	return Path{
		Step:           0.005,
		Boundary:       5.0,
		BoatRadius:     3.0,
		BoatOffset:     mgl32.Vec3{2, 0, 0},
		ChaseOffset:    mgl32.Vec3{0, 3, 10},
		OrbitRadiusX:   13,
		OrbitRadiusZ:   8,
		OrbitHeight:    7,
		OverviewTarget: mgl32.Vec3{1, 3, 4},
	}
}

// Pose is the closed-form state of the tour at one elapsed time.
type Pose struct {
	Phase Phase

	CameraPosition mgl32.Vec3
	CameraTarget   mgl32.Vec3

	// BoatPosition is only meaningful when BoatValid is true (chase phase).
	BoatPosition mgl32.Vec3
	BoatValid    bool
}

// Sample evaluates the tour at an elapsed time. It is a pure function of its inputs.
// The phase switch is a plain threshold (elapsed < Boundary is chase), so crossing it jumps the camera.
//
// Parameters:
//   - elapsed: elapsed presentation time, >= 0
//
// Returns:
//   - Pose: camera and boat placement at that time
func (p Path) Sample(elapsed float64) Pose {
	if elapsed < p.Boundary {
		t := float32(elapsed)
		boat := mgl32.Vec3{
			p.BoatRadius*math32.Sin(t) + p.BoatOffset[0],
			p.BoatOffset[1],
			p.BoatRadius*math32.Cos(t) + p.BoatOffset[2],
		}
		return Pose{
			Phase:          PhaseChase,
			CameraPosition: boat.Add(p.ChaseOffset),
			CameraTarget:   boat,
			BoatPosition:   boat,
			BoatValid:      true,
		}
	}

	t := float32(elapsed - p.Boundary)
	return Pose{
		Phase: PhaseOverview,
		CameraPosition: mgl32.Vec3{
			p.OrbitRadiusX * math32.Sin(t),
			p.OrbitHeight,
			p.OrbitRadiusZ * math32.Cos(t),
		},
		CameraTarget: p.OverviewTarget,
	}
}

// Presentation is the on/off state machine around a Path.
// Elapsed time is derived from an integer tick counter so that N ticks always give exactly N*Step.
type Presentation struct {
	path   Path
	logger *log.Logger

	active    bool
	ticks     uint64
	lastPhase Phase
}

// NewPresentation creates an inactive presentation using DefaultPath unless overridden.
//
// Parameters:
//   - options: functional options to configure the presentation
//
// Returns:
//   - *Presentation: the new presentation
func NewPresentation(options ...PresentationOption) *Presentation {
	p := &Presentation{
		path:   DefaultPath(),
		logger: log.Default(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Path returns the tour constants.
func (p *Presentation) Path() Path {
	return p.path
}

// Active reports whether the tour currently overrides the camera.
func (p *Presentation) Active() bool {
	return p.active
}

// Ticks returns the number of steps taken since the last (re)activation.
func (p *Presentation) Ticks() uint64 {
	return p.ticks
}

// Elapsed returns the presentation time since the last (re)activation.
//
// Returns:
//   - float64: ticks * step
func (p *Presentation) Elapsed() float64 {
	return float64(p.ticks) * p.path.Step
}

// Phase returns the phase of the last applied step, or PhaseInactive.
func (p *Presentation) Phase() Phase {
	if !p.active {
		return PhaseInactive
	}
	return p.lastPhase
}

// Toggle flips the active flag and resets elapsed time, in both directions.
//
// Returns:
//   - bool: the new active state
func (p *Presentation) Toggle() bool {
	if p.active {
		p.Deactivate()
	} else {
		p.Activate()
	}
	return p.active
}

// Activate starts (or restarts) the tour from elapsed time 0.
func (p *Presentation) Activate() {
	p.active = true
	p.ticks = 0
	p.lastPhase = PhaseInactive
	p.logger.Printf("[Presentation] started")
}

// Deactivate stops the tour and returns control to manual input. The camera keeps its last tour pose.
func (p *Presentation) Deactivate() {
	p.active = false
	p.ticks = 0
	p.lastPhase = PhaseInactive
	p.logger.Printf("[Presentation] stopped")
}

// Step advances the tour by one tick and writes the resulting pose.
// It does nothing while inactive. Elapsed time is incremented before sampling, so the first active
// tick samples at one step rather than zero. The boat is only written during the chase phase.
//
// Parameters:
//   - cam: receives SetPosition then SetTarget
//   - boat: receives SetTranslation during the chase phase; may be nil
//
// Returns:
//   - bool: true if a pose was applied
func (p *Presentation) Step(cam CameraTarget, boat Placeable) bool {
	if !p.active {
		return false
	}
	p.ticks++

	pose := p.path.Sample(p.Elapsed())
	if pose.Phase != p.lastPhase {
		p.logger.Printf("[Presentation] phase %s at t=%.3f", pose.Phase, p.Elapsed())
		p.lastPhase = pose.Phase
	}

	if pose.BoatValid && boat != nil {
		boat.SetTranslation(pose.BoatPosition)
	}
	cam.SetPosition(pose.CameraPosition)
	cam.SetTarget(pose.CameraTarget)
	return true
}
