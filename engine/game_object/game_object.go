package game_object

import (
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flight/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// Part is one mesh of a GameObject, placed relative to the object's transform.
type Part struct {
	Name      string
	Local     mgl32.Mat4
	Materials []material.Material
}

type gameObject struct {
	name      string
	enabled   bool
	transform mgl32.Mat4
	parts     []Part
}

// GameObject defines the interface for a drawable scene entity. The object owns its
// world transform and a list of parts; the scene writes the transform once per tick
// from the model that drives the entity and reads it back when building a frame.
type GameObject interface {
	// Name returns the object's name.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Transform returns the object's world transform.
	//
	// Returns:
	//   - mgl32.Mat4: the world transform
	Transform() mgl32.Mat4

	// SetTransform replaces the object's world transform.
	//
	// Parameters:
	//   - m: the new world transform
	SetTransform(m mgl32.Mat4)

	// Parts returns the object's parts in draw order.
	//
	// Returns:
	//   - []Part: the parts
	Parts() []Part

	// SetPartTransform replaces the local transform of the named part.
	//
	// Parameters:
	//   - name: the part name
	//   - local: the transform relative to the object
	//
	// Returns:
	//   - bool: false if no part has that name
	SetPartTransform(name string, local mgl32.Mat4) bool

	// Drawables returns one renderer drawable per part with the object transform
	// applied. A disabled object yields nothing.
	//
	// Returns:
	//   - []renderer.Drawable: the drawables
	Drawables() []renderer.Drawable
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new, enabled GameObject with an identity transform,
// configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		enabled:   true,
		transform: mgl32.Ident4(),
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled = enabled
}

func (g *gameObject) Transform() mgl32.Mat4 {
	return g.transform
}

func (g *gameObject) SetTransform(m mgl32.Mat4) {
	g.transform = m
}

func (g *gameObject) Parts() []Part {
	return g.parts
}

func (g *gameObject) SetPartTransform(name string, local mgl32.Mat4) bool {
	for i := range g.parts {
		if g.parts[i].Name == name {
			g.parts[i].Local = local
			return true
		}
	}
	return false
}

func (g *gameObject) Drawables() []renderer.Drawable {
	if !g.enabled {
		return nil
	}
	out := make([]renderer.Drawable, 0, len(g.parts))
	for _, p := range g.parts {
		out = append(out, renderer.Drawable{
			Name:      g.name + "." + p.Name,
			Model:     g.transform.Mul4(p.Local),
			Materials: p.Materials,
		})
	}
	return out
}
