package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/frame"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
)

// engine implements the Engine interface.
// Everything runs on the window thread: input callbacks fire during message polling and the
// update callback advances the scene once per loop iteration.
type engine struct {
	window window.Window
	scene  scene.Scene
	sink   frame.Sink
	logger *log.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickInterval time.Duration // minimum time per tick; 0 = uncapped
	lastTick     time.Time
	sleep        func(time.Duration)

	quitOnce sync.Once // Ensures the window is only closed once
}

// Engine is the main entry point for the viewer.
// It owns the tick loop and connects the window's input events to the scene.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene advanced each tick.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate caps the number of ticks per second.
	//
	// Parameters:
	//   - fps: maximum ticks per second (0 = uncapped)
	SetTickRate(fps float64)

	// SetSink sets the consumer of each tick's frame.
	//
	// Parameters:
	//   - sink: the render sink (or nil to discard frames)
	SetSink(sink frame.Sink)

	// Step runs one tick: profiler, scene tick, then the sink. It does not sleep.
	//
	// Returns:
	//   - frame.Frame: the frame handed to the sink
	Step() frame.Frame

	// Run starts the main loop (blocks until the window closes).
	Run()

	// Quit closes the window, which ends Run after the current iteration.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A default scene is created when none is supplied. When a window is supplied its key, cursor,
// focus and resize callbacks are wired to the scene.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger:       log.Default(),
		tickInterval: time.Second / 60,
		sleep:        time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.scene == nil {
		e.scene = scene.NewScene(scene.WithLogger(e.logger))
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}
	if e.window != nil {
		e.wireWindow()
	}

	return e
}

// wireWindow routes window events into the scene's input state and camera lens.
func (e *engine) wireWindow() {
	tracker := e.scene.Input()
	e.window.SetKeyDownCallback(func(keyCode int) {
		tracker.SetHeld(keyCode, true)
	})
	e.window.SetKeyUpCallback(func(keyCode int) {
		tracker.SetHeld(keyCode, false)
	})
	e.window.SetCursorCallback(e.scene.MouseLook().CursorMoved)
	e.window.SetFocusCallback(func(focused bool) {
		if !focused {
			tracker.Reset()
		}
	})
	e.window.SetResizeCallback(func(width, height int) {
		if height > 0 {
			e.scene.Camera().SetAspect(float32(width) / float32(height))
		}
	})
	if w, h := e.window.Width(), e.window.Height(); h > 0 {
		e.scene.Camera().SetAspect(float32(w) / float32(h))
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Run() {
	if e.window == nil {
		e.logger.Printf("[Engine] no window configured, nothing to run")
		return
	}
	e.lastTick = time.Now()
	e.window.SetUpdateCallback(e.update)
	e.window.ProcessMessages()
	e.Quit()
}

// Quit closes the window.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.window == nil {
			return
		}
		if err := e.window.Close(); err != nil {
			e.logger.Printf("[Engine] close window: %v", err)
		}
	})
}

// update is the window's per-iteration callback: one tick, then the tick-rate cap.
func (e *engine) update() {
	e.Step()

	if e.tickInterval > 0 {
		elapsed := time.Since(e.lastTick)
		if remaining := e.tickInterval - elapsed; remaining > 0 {
			e.sleep(remaining)
		}
	}
	e.lastTick = time.Now()
}

func (e *engine) Step() frame.Frame {
	if e.profilingEnabled {
		e.profiler.Tick()
	}

	f := e.scene.Tick()
	if e.sink != nil {
		e.sink.Consume(f)
	}
	return f
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate caps the tick rate. Pass 0 to uncap.
func (e *engine) SetTickRate(fps float64) {
	e.tickInterval = tickInterval(fps)
}

func (e *engine) SetSink(sink frame.Sink) {
	e.sink = sink
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
