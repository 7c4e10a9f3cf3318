package game_object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	g := NewGameObject(WithName("boat"))
	assert.Equal(t, "boat", g.Name())
	assert.True(t, g.Enabled())
	assert.Equal(t, mgl32.Ident4(), g.ModelMatrix())
	assert.Equal(t, mgl32.Vec3{}, g.Position())

	g.SetEnabled(false)
	assert.False(t, g.Enabled())
	assert.False(t, NewGameObject(WithEnabled(false)).Enabled())
}

func TestTranslateIsRelativeAndLocal(t *testing.T) {
	g := NewGameObject()
	g.Translate(mgl32.Vec3{0, 0, 0.1})
	g.Translate(mgl32.Vec3{0, 0, 0.1})
	assert.InDelta(t, 0.2, g.Position().Z(), 1e-6)

	// after a scale, local translations are scaled too
	g.Scale(2)
	g.Translate(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 2, g.Position().X(), 1e-6)
}

func TestScaleAccumulates(t *testing.T) {
	g := NewGameObject()
	for i := 0; i < 10; i++ {
		g.Scale(1.01)
	}
	m := g.ModelMatrix()
	assert.InDelta(t, 1.104622, m.At(0, 0), 1e-5)
	assert.InDelta(t, m.At(0, 0), m.At(1, 1), 1e-6)
	assert.InDelta(t, m.At(0, 0), m.At(2, 2), 1e-6)
}

func TestSetYawDiscardsPreviousTransform(t *testing.T) {
	g := NewGameObject()
	g.Translate(mgl32.Vec3{3, 4, 5})
	g.Scale(0.5)

	g.SetYaw(90)
	assert.Equal(t, mgl32.Vec3{}, g.Position())
	assert.True(t, g.ModelMatrix().ApproxEqualThreshold(mgl32.HomogRotate3DY(mgl32.DegToRad(90)), 1e-6))
}

func TestSetTranslation(t *testing.T) {
	g := NewGameObject(WithModelMatrix(mgl32.Scale3D(3, 3, 3)))
	g.SetTranslation(mgl32.Vec3{2, 0, 3})
	assert.Equal(t, mgl32.Translate3D(2, 0, 3), g.ModelMatrix())
	assert.Equal(t, mgl32.Vec3{2, 0, 3}, g.Position())
}
