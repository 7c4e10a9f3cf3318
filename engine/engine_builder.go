package engine

import (
	"log"

	"github.com/Carmen-Shannon/oxy-viewer/engine/frame"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler sets a custom profiler instead of the default one-second reporter.
//
// Parameters:
//   - p: the profiler to tick
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate caps the tick rate in ticks per second.
// The presentation advances a fixed step per tick, so this also sets its playback speed.
// Values <= 0 uncap the loop. Defaults to 60.
//
// Parameters:
//   - fps: maximum ticks per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickInterval = tickInterval(fps)
	}
}

// WithWindow sets the window that supplies input and drives the loop.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the scene advanced each tick.
//
// Parameters:
//   - s: the Scene to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithSink sets the consumer of each tick's frame.
//
// Parameters:
//   - sink: the render sink
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSink(sink frame.Sink) EngineBuilderOption {
	return func(e *engine) {
		e.sink = sink
	}
}

// WithLogger sets the logger used by the engine and its default scene and profiler.
//
// Parameters:
//   - logger: destination logger; nil keeps the default
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *log.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
