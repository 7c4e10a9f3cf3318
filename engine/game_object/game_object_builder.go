package game_object

import "github.com/go-gl/mathgl/mgl32"

// GameObjectBuilderOption is a functional option for configuring a GameObject.
type GameObjectBuilderOption func(*gameObject)

// WithName sets the object's display name.
//
// Parameters:
//   - name: the name used in logs
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithName(name string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.name = name
	}
}

// WithModelMatrix sets the initial model matrix instead of identity.
//
// Parameters:
//   - m: the starting model matrix
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithModelMatrix(m mgl32.Mat4) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.model = m
	}
}

// WithEnabled sets whether the object starts enabled.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled = enabled
	}
}
