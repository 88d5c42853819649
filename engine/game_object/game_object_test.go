package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flight/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawablesComposePartTransforms(t *testing.T) {
	hull := material.NewMaterial(material.WithName("hull"))
	obj := NewGameObject(
		WithName("plane"),
		WithPart("body", hull),
		WithPart("propeller"),
	)
	obj.SetTransform(mgl32.Translate3D(1, 2, 3))
	require.True(t, obj.SetPartTransform("propeller", mgl32.Translate3D(0, 0, 4)))

	d := obj.Drawables()
	require.Len(t, d, 2)
	assert.Equal(t, "plane.body", d[0].Name)
	assert.Equal(t, []material.Material{hull}, d[0].Materials)
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), d[0].Model)
	assert.Equal(t, mgl32.Vec3{1, 2, 7}, d[1].Model.Col(3).Vec3())
}

func TestUnknownPart(t *testing.T) {
	obj := NewGameObject(WithPart("body"))
	assert.False(t, obj.SetPartTransform("wing", mgl32.Ident4()))
	assert.Equal(t, mgl32.Ident4(), obj.Parts()[0].Local)
}

func TestDisabledObjectHasNoDrawables(t *testing.T) {
	obj := NewGameObject(WithPart("body"), WithEnabled(false))
	assert.Empty(t, obj.Drawables())

	obj.SetEnabled(true)
	assert.Len(t, obj.Drawables(), 1)
}

func TestDefaults(t *testing.T) {
	obj := NewGameObject(WithTransform(mgl32.Scale3D(2, 2, 2)))
	assert.True(t, obj.Enabled())
	assert.Equal(t, mgl32.Scale3D(2, 2, 2), obj.Transform())
	assert.Empty(t, obj.Name())
}
