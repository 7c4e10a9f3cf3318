package scene

import (
	"bytes"
	"io"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/frame"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/presentation"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() SceneBuilderOption {
	return WithLogger(log.New(io.Discard, "", 0))
}

func tickN(s Scene, n int) frame.Frame {
	var f frame.Frame
	for i := 0; i < n; i++ {
		f = s.Tick()
	}
	return f
}

func assertVec3InDelta(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v vs %v", i, expected, actual)
	}
}

func TestLightToggleDebouncedAcrossHeldTicks(t *testing.T) {
	var buf bytes.Buffer
	s := NewScene(WithLogger(log.New(&buf, "", 0)))

	s.Input().SetHeld(common.KeyZ, true)
	f := tickN(s, 10)
	assert.True(t, s.LightActive())
	assert.True(t, f.LightActive)
	assert.Equal(t, 1, strings.Count(buf.String(), "[Scene] point light on"))

	s.Input().SetHeld(common.KeyZ, false)
	s.Tick()
	assert.True(t, s.LightActive())

	s.Input().SetHeld(common.KeyZ, true)
	s.Tick()
	assert.False(t, s.LightActive())
	assert.Contains(t, buf.String(), "[Scene] point light off")
}

func TestFogToggleIndependentOfLight(t *testing.T) {
	s := NewScene(quiet())

	s.Input().SetHeld(common.KeyX, true)
	s.Input().SetHeld(common.KeyZ, true)
	tickN(s, 3)
	assert.True(t, s.FogActive())
	assert.True(t, s.LightActive())

	s.Input().SetHeld(common.KeyZ, false)
	s.Tick()
	s.Input().SetHeld(common.KeyZ, true)
	f := s.Tick()
	assert.True(t, f.FogActive)
	assert.False(t, f.LightActive)
}

func TestCameraMovementCombined(t *testing.T) {
	s := NewScene(quiet())
	ctrl := s.Camera().Controller()
	p0, front, right := ctrl.Position(), ctrl.Front(), ctrl.Right()

	s.Input().SetHeld(common.KeyW, true)
	s.Input().SetHeld(common.KeyD, true)
	f := s.Tick()

	expected := p0.Add(front.Mul(0.05)).Add(right.Mul(0.05))
	assertVec3InDelta(t, expected, ctrl.Position(), 1e-6)
	assertVec3InDelta(t, expected, f.CameraPosition, 1e-6)
	assertVec3InDelta(t, expected.Add(front), ctrl.Target(), 1e-6)
}

func TestCameraUpDownKeys(t *testing.T) {
	s := NewScene(quiet(), WithCameraSpeed(0.5))
	ctrl := s.Camera().Controller()
	p0 := ctrl.Position()

	s.Input().SetHeld(common.KeyLeftShift, true)
	tickN(s, 2)
	assertVec3InDelta(t, p0.Add(mgl32.Vec3{0, 1, 0}), ctrl.Position(), 1e-6)

	s.Input().SetHeld(common.KeyLeftShift, false)
	s.Input().SetHeld(common.KeyTab, true)
	tickN(s, 2)
	assertVec3InDelta(t, p0, ctrl.Position(), 1e-6)
}

func TestSharedAngle(t *testing.T) {
	s := NewScene(quiet())

	s.Input().SetHeld(common.KeyE, true)
	tickN(s, 3)
	s.Input().SetHeld(common.KeyE, false)
	world, character := s.Angles()
	assert.Equal(t, float32(3), world)
	assert.Equal(t, float32(3), character)
	assert.True(t, s.World().ModelMatrix().ApproxEqualThreshold(common.YawMatrix(3), 1e-6))

	s.Input().SetHeld(common.KeyB, true)
	s.Tick()
	world, _ = s.Angles()
	assert.Equal(t, float32(2), world)
	assert.True(t, s.Character().ModelMatrix().ApproxEqualThreshold(common.YawMatrix(2), 1e-6))
	// the world matrix is only rebuilt while Q or E is held
	assert.True(t, s.World().ModelMatrix().ApproxEqualThreshold(common.YawMatrix(3), 1e-6))
}

func TestSplitYaw(t *testing.T) {
	s := NewScene(quiet(), WithSplitYaw(true))

	s.Input().SetHeld(common.KeyE, true)
	tickN(s, 3)
	s.Input().SetHeld(common.KeyE, false)
	s.Input().SetHeld(common.KeyB, true)
	s.Tick()

	world, character := s.Angles()
	assert.Equal(t, float32(3), world)
	assert.Equal(t, float32(-1), character)
	assert.True(t, s.Character().ModelMatrix().ApproxEqualThreshold(common.YawMatrix(-1), 1e-6))
}

func TestQAndECancel(t *testing.T) {
	s := NewScene(quiet())
	s.Input().SetHeld(common.KeyQ, true)
	s.Input().SetHeld(common.KeyE, true)
	tickN(s, 5)

	world, _ := s.Angles()
	assert.Equal(t, float32(0), world)
	assert.True(t, s.World().ModelMatrix().ApproxEqualThreshold(mgl32.Ident4(), 1e-6))
}

func TestCharacterTranslateScaleAndReset(t *testing.T) {
	s := NewScene(quiet())

	s.Input().SetHeld(common.KeyUp, true)
	s.Input().SetHeld(common.KeyN, true)
	f := tickN(s, 2)
	s.Input().SetHeld(common.KeyUp, false)
	s.Input().SetHeld(common.KeyN, false)
	assertVec3InDelta(t, mgl32.Vec3{0, 0.2, 0.2}, s.Character().Position(), 1e-6)
	assertVec3InDelta(t, f.LightPosition, s.Character().Position(), 1e-6)

	s.Input().SetHeld(common.KeyL, true)
	s.Tick()
	s.Input().SetHeld(common.KeyL, false)
	assert.InDelta(t, 1.01, s.Character().ModelMatrix().At(0, 0), 1e-6)

	s.Input().SetHeld(common.KeyK, true)
	s.Tick()
	s.Input().SetHeld(common.KeyK, false)
	assert.InDelta(t, 1.01*0.99, s.Character().ModelMatrix().At(0, 0), 1e-6)

	// B rebuilds from the angle and drops the accumulated translation and scale
	s.Input().SetHeld(common.KeyB, true)
	s.Tick()
	assert.Equal(t, mgl32.Vec3{}, s.Character().Position())
	assert.True(t, s.Character().ModelMatrix().ApproxEqualThreshold(common.YawMatrix(-1), 1e-6))
}

func TestCharacterLeftRight(t *testing.T) {
	s := NewScene(quiet(), WithTranslateStep(1))

	s.Input().SetHeld(common.KeyRight, true)
	tickN(s, 3)
	s.Input().SetHeld(common.KeyRight, false)
	s.Input().SetHeld(common.KeyLeft, true)
	s.Input().SetHeld(common.KeyDown, true)
	s.Input().SetHeld(common.KeyM, true)
	s.Tick()

	assertVec3InDelta(t, mgl32.Vec3{2, -1, -1}, s.Character().Position(), 1e-6)
}

func TestPolygonModeAndSmooth(t *testing.T) {
	s := NewScene(quiet())
	assert.Equal(t, frame.PolygonFill, s.PolygonMode())

	s.Input().SetHeld(common.Key2, true)
	s.Tick()
	s.Input().SetHeld(common.Key2, false)
	f := s.Tick()
	assert.Equal(t, frame.PolygonLine, f.PolygonMode)

	s.Input().SetHeld(common.Key1, true)
	s.Input().SetHeld(common.Key3, true)
	s.Tick()
	assert.Equal(t, frame.PolygonPoint, s.PolygonMode())

	s.Input().SetHeld(common.Key4, true)
	assert.True(t, s.Tick().Smooth)
	s.Input().SetHeld(common.Key4, false)
	assert.False(t, s.Tick().Smooth)
	assert.False(t, s.Smooth())
}

func TestPresentationEdgeToggle(t *testing.T) {
	s := NewScene(quiet())

	s.Input().SetHeld(common.KeySpace, true)
	f := tickN(s, 5)
	assert.True(t, s.Presentation().Active())
	assert.True(t, f.Presenting)
	assert.Equal(t, uint64(5), s.Presentation().Ticks())
	assert.InDelta(t, 0.025, f.PresentationElapsed, 1e-12)

	s.Input().SetHeld(common.KeySpace, false)
	s.Tick()
	s.Input().SetHeld(common.KeySpace, true)
	f = s.Tick()
	assert.False(t, f.Presenting)
	assert.Equal(t, 0.0, f.PresentationElapsed)
}

func TestPresentationLevelToggleOscillates(t *testing.T) {
	s := NewScene(quiet(), WithPresentationToggle(ToggleLevel))

	s.Input().SetHeld(common.KeySpace, true)
	for i := 1; i <= 4; i++ {
		s.Tick()
		assert.Equal(t, i%2 == 1, s.Presentation().Active(), "tick %d", i)
	}
}

func TestPresentationOverridesManualMovement(t *testing.T) {
	s := NewScene(quiet())
	ctrl := s.Camera().Controller()

	s.Input().SetHeld(common.KeyW, true)
	s.Input().SetHeld(common.KeySpace, true)
	f := s.Tick()

	pose := presentation.DefaultPath().Sample(0.005)
	assert.Equal(t, pose.CameraPosition, ctrl.Position())
	assert.Equal(t, pose.CameraTarget, ctrl.Target())
	assert.Equal(t, pose.CameraPosition, f.CameraPosition)
	assert.Equal(t, pose.BoatPosition, s.Boat().Position())
	assert.Equal(t, s.Boat().ModelMatrix(), f.Boat)
	assert.Equal(t, ctrl.ViewMatrix(), f.View)
}

func TestMouseLookAppliedAtTickStart(t *testing.T) {
	s := NewScene(quiet())
	s.MouseLook().CursorMoved(100, 100)
	s.MouseLook().CursorMoved(110, 100)

	s.Tick()
	expected := common.FrontFromAngles(0, -87)
	assertVec3InDelta(t, expected, s.Camera().Controller().Front(), 1e-5)

	// without new samples the camera is not rotated again
	s.Camera().Controller().SetTarget(mgl32.Vec3{0, 3, 0})
	front := s.Camera().Controller().Front()
	s.Tick()
	assert.Equal(t, front, s.Camera().Controller().Front())
}

func TestFrameContents(t *testing.T) {
	s := NewScene(quiet())
	assert.Equal(t, frame.Frame{}, s.LastFrame())

	f := s.Tick()
	assert.Equal(t, uint64(1), f.Tick)
	assert.Equal(t, uint64(1), s.Ticks())
	assert.Equal(t, f, s.LastFrame())

	cam := s.Camera()
	assert.Equal(t, cam.ViewMatrix(), f.View)
	assert.Equal(t, cam.ProjectionMatrix(), f.Projection)
	assert.Equal(t, cam.ViewProjectionMatrix(), f.ViewProjection)
	assert.Equal(t, common.NormalMatrix(f.View, f.Character), f.Normal)
	assert.Equal(t, mgl32.Ident4(), f.World)
	assert.Equal(t, mgl32.Ident4(), f.Streetlight)
	assert.False(t, f.Presenting)
}

func TestDegenerateCameraLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	eye := mgl32.Vec3{1, 1, 1}
	cam := camera.NewCamera(camera.WithController(camera.NewCameraController(
		camera.WithPosition(eye),
		camera.WithTarget(eye),
	)))
	s := NewScene(WithCamera(cam), WithLogger(log.New(&buf, "", 0)))

	f := tickN(s, 3)
	assert.Equal(t, 1, strings.Count(buf.String(), "degenerate"))
	for _, v := range f.View {
		require.False(t, math.IsNaN(float64(v)), "view matrix contains NaN")
	}
}

func TestCameraWithoutControllerGetsDefault(t *testing.T) {
	s := NewScene(quiet(), WithCamera(camera.NewCamera()))
	require.NotNil(t, s.Camera().Controller())
	assert.Equal(t, mgl32.Vec3{0, 3, 10}, s.Camera().Controller().Position())
}

func TestParseToggleMode(t *testing.T) {
	m, err := ParseToggleMode("Level")
	require.NoError(t, err)
	assert.Equal(t, ToggleLevel, m)

	m, err = ParseToggleMode("")
	require.NoError(t, err)
	assert.Equal(t, ToggleEdge, m)

	_, err = ParseToggleMode("sometimes")
	assert.Error(t, err)

	assert.Equal(t, "edge", ToggleEdge.String())
	assert.Equal(t, "level", ToggleLevel.String())
}

func TestLampFollowsCharacterAndToggle(t *testing.T) {
	s := NewScene(quiet())
	f := s.Tick()
	assert.False(t, f.Lamp.Enabled)
	assert.Equal(t, light.LightTypeDirectional, f.Sun.Type)
	assert.True(t, f.Sun.Enabled)
	assert.InDelta(t, f.Sun.Direction.Y(), f.Sun.Direction.Z(), 1e-6)

	s.Input().SetHeld(common.KeyZ, true)
	s.Input().SetHeld(common.KeyRight, true)
	f = s.Tick()
	assert.True(t, f.Lamp.Enabled)
	assert.Equal(t, light.LightTypePoint, f.Lamp.Type)
	assertVec3InDelta(t, mgl32.Vec3{0.1, 0, 0}, f.Lamp.Position, 1e-6)
	assert.Equal(t, f.Lamp.Position, f.LightPosition)
	assert.True(t, s.Lamp().Enabled())
}

func TestLampStartingStateSeedsToggle(t *testing.T) {
	lamp := light.NewLight(light.LightTypePoint, light.WithColor(mgl32.Vec3{1, 0.8, 0.6}))
	sun := light.NewLight(light.LightTypeDirectional, light.WithDirection(mgl32.Vec3{1, 1, 0}))
	s := NewScene(quiet(), WithLamp(lamp), WithSun(sun))
	assert.True(t, s.LightActive())
	assert.Same(t, sun, s.Sun())

	s.Input().SetHeld(common.KeyZ, true)
	f := s.Tick()
	assert.False(t, f.LightActive)
	assert.False(t, lamp.Enabled())
	assert.Equal(t, mgl32.Vec3{1, 0.8, 0.6}, f.Lamp.Color)
}
