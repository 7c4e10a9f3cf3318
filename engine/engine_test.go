package engine

import (
	"bytes"
	"io"
	"log"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/frame"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs a fixed number of loop iterations and lets tests fire input events.
type fakeWindow struct {
	width, height int
	iterations    int
	beforeUpdate  func(i int)
	closes        int
	closed        bool

	onUpdate  func()
	onResize  func(width, height int)
	onKeyDown func(keyCode int)
	onKeyUp   func(keyCode int)
	onCursor  func(x, y float64)
	onFocus   func(focused bool)
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(cb func())                 { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode int))      { w.onKeyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(keyCode int))        { w.onKeyUp = cb }
func (w *fakeWindow) SetCursorCallback(cb func(x, y float64))      { w.onCursor = cb }
func (w *fakeWindow) SetFocusCallback(cb func(focused bool))       { w.onFocus = cb }
func (w *fakeWindow) IsRunning() bool                              { return !w.closed }
func (w *fakeWindow) Width() int                                   { return w.width }
func (w *fakeWindow) Height() int                                  { return w.height }

func (w *fakeWindow) Close() error {
	if !w.closed {
		w.closes++
	}
	w.closed = true
	return nil
}

func (w *fakeWindow) ProcessMessages() {
	for i := 0; i < w.iterations && w.IsRunning(); i++ {
		if w.beforeUpdate != nil {
			w.beforeUpdate(i)
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestWindowEventsReachScene(t *testing.T) {
	w := &fakeWindow{width: 800, height: 400}
	e := NewEngine(WithWindow(w), WithLogger(quietLogger()))
	s := e.Scene()

	assert.InDelta(t, 2.0, float64(s.Camera().Aspect()), 1e-6)

	w.onKeyDown(common.KeyW)
	assert.True(t, s.Input().IsHeld(common.KeyW))
	w.onKeyUp(common.KeyW)
	assert.False(t, s.Input().IsHeld(common.KeyW))

	w.onKeyDown(common.KeyA)
	w.onFocus(false)
	assert.False(t, s.Input().IsHeld(common.KeyA))

	w.onResize(300, 300)
	assert.InDelta(t, 1.0, float64(s.Camera().Aspect()), 1e-6)
	w.onResize(300, 0)
	assert.InDelta(t, 1.0, float64(s.Camera().Aspect()), 1e-6)

	w.onCursor(10, 10)
	w.onCursor(20, 10)
	pitch, yaw := s.MouseLook().Angles()
	assert.Equal(t, float32(0), pitch)
	assert.InDelta(t, -87, yaw, 1e-5)
}

func TestRunTicksOncePerIteration(t *testing.T) {
	var frames []frame.Frame
	w := &fakeWindow{width: 640, height: 480, iterations: 5}
	w.beforeUpdate = func(i int) {
		if i == 2 {
			w.onKeyDown(common.KeyZ)
		}
	}

	e := NewEngine(
		WithWindow(w),
		WithLogger(quietLogger()),
		WithTickRate(0),
		WithSink(frame.SinkFunc(func(f frame.Frame) { frames = append(frames, f) })),
	)
	e.Run()

	require.Len(t, frames, 5)
	for i, f := range frames {
		assert.Equal(t, uint64(i+1), f.Tick)
		assert.Equal(t, i >= 2, f.LightActive, "tick %d", f.Tick)
	}
	assert.Equal(t, 1, w.closes)

	e.Quit()
	assert.Equal(t, 1, w.closes)
}

func TestQuitFromSinkStopsLoop(t *testing.T) {
	w := &fakeWindow{width: 640, height: 480, iterations: 100}
	var e Engine
	ticks := 0
	e = NewEngine(
		WithWindow(w),
		WithLogger(quietLogger()),
		WithTickRate(0),
		WithSink(frame.SinkFunc(func(f frame.Frame) {
			ticks++
			if f.Tick == 3 {
				e.Quit()
			}
		})),
	)
	e.Run()

	assert.Equal(t, 3, ticks)
	assert.Equal(t, 1, w.closes)
}

func TestTickRateCapSleeps(t *testing.T) {
	w := &fakeWindow{width: 640, height: 480, iterations: 3}
	e := NewEngine(WithWindow(w), WithLogger(quietLogger()), WithTickRate(10)).(*engine)

	var slept []time.Duration
	e.sleep = func(d time.Duration) { slept = append(slept, d) }
	e.Run()

	require.Len(t, slept, 3)
	for _, d := range slept {
		assert.LessOrEqual(t, d, 100*time.Millisecond)
		assert.Greater(t, d, time.Duration(0))
	}

	e.SetTickRate(0)
	assert.Zero(t, e.tickInterval)
	e.SetTickRate(50)
	assert.Equal(t, 20*time.Millisecond, e.tickInterval)
}

func TestStepWithoutWindow(t *testing.T) {
	s := scene.NewScene(scene.WithLogger(quietLogger()))
	e := NewEngine(WithScene(s), WithLogger(quietLogger()))
	assert.Nil(t, e.Window())
	assert.Same(t, s, e.Scene())

	s.Input().SetHeld(common.KeySpace, true)
	f := e.Step()
	assert.True(t, f.Presenting)

	var sunk int
	e.SetSink(frame.SinkFunc(func(frame.Frame) { sunk++ }))
	e.Step()
	assert.Equal(t, 1, sunk)
}

func TestRunWithoutWindowLogs(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(WithLogger(log.New(&buf, "", 0)))
	e.Run()
	e.Quit()
	assert.Contains(t, buf.String(), "[Engine] no window configured")
}

func TestProfilerToggle(t *testing.T) {
	e := NewEngine(WithLogger(quietLogger()), WithProfiling(true)).(*engine)
	assert.True(t, e.profilingEnabled)
	e.DisableProfiler()
	assert.False(t, e.profilingEnabled)
	e.EnableProfiler()
	e.Step()
	assert.True(t, e.profilingEnabled)
}
