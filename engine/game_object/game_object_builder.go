package game_object

import (
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithName sets the name of the GameObject. Drawable names are prefixed with it.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled = enabled
	}
}

// WithTransform sets the initial world transform.
//
// Parameters:
//   - m: the world transform
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the transform
func WithTransform(m mgl32.Mat4) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform = m
	}
}

// WithPart appends a part with an identity local transform.
//
// Parameters:
//   - name: the part name
//   - materials: the materials covering the part's mesh
//
// Returns:
//   - GameObjectBuilderOption: functional option to add the part
func WithPart(name string, materials ...material.Material) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.parts = append(obj.parts, Part{Name: name, Local: mgl32.Ident4(), Materials: materials})
	}
}
