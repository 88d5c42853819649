package light

import "github.com/go-gl/mathgl/mgl32"

// Reference rig values for the stock plane model.
const (
	ReferenceStrobeInterval float32 = 0.5
	ReferenceIntensity      float32 = 1.0
)

var (
	red   = mgl32.Vec3{1, 0, 0}
	green = mgl32.Vec3{0, 1, 0}
	white = mgl32.Vec3{1, 1, 1}
)

// ReferenceSpecs describes the six lamps of the stock plane: navigation lights on
// both wing tips, a white strobe next to each, a white tail light on the rudder and
// a red anti-collision strobe on top of it.
//
// Returns:
//   - []Spec: the lamps in mount order
func ReferenceSpecs() []Spec {
	falloff := Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.01}
	return []Spec{
		{
			Name: "left-nav", Type: LightTypeSpot,
			Mount: mgl32.Vec3{4.335, -0.1395, 1.03}, Direction: mgl32.Vec3{1, 0, 0},
			Color: red, Intensity: ReferenceIntensity, Attenuation: falloff,
			InnerConeDeg: 50, OuterConeDeg: 70,
		},
		{
			Name: "left-strobe", Type: LightTypePoint,
			Mount: mgl32.Vec3{4.3, -0.147, 0.45}, Direction: mgl32.Vec3{1, 0, 0},
			Color: white, Intensity: ReferenceIntensity, Attenuation: falloff,
			StrobeInterval: ReferenceStrobeInterval,
		},
		{
			Name: "right-nav", Type: LightTypeSpot,
			Mount: mgl32.Vec3{-4.335, -0.1395, 1.03}, Direction: mgl32.Vec3{-1, 0, 0},
			Color: green, Intensity: ReferenceIntensity, Attenuation: falloff,
			InnerConeDeg: 50, OuterConeDeg: 70,
		},
		{
			Name: "right-strobe", Type: LightTypePoint,
			Mount: mgl32.Vec3{-4.3, -0.147, 0.45}, Direction: mgl32.Vec3{-1, 0, 0},
			Color: white, Intensity: ReferenceIntensity, Attenuation: falloff,
			StrobeInterval: ReferenceStrobeInterval,
		},
		{
			Name: "tail", Type: LightTypeSpot,
			Mount: mgl32.Vec3{0, 1.35, -3.918}, Direction: mgl32.Vec3{0, 0, 1},
			Color: white, Intensity: ReferenceIntensity, Attenuation: falloff,
			InnerConeDeg: 60, OuterConeDeg: 80,
		},
		{
			Name: "beacon", Type: LightTypePoint,
			Mount: mgl32.Vec3{0, 1.4022, -3.5}, Direction: mgl32.Vec3{0, 1, 0},
			Color: red, Intensity: ReferenceIntensity, Attenuation: falloff,
			StrobeInterval: ReferenceStrobeInterval,
		},
	}
}

// ReferenceRig builds the lamps of ReferenceSpecs.
//
// Returns:
//   - []Light: the lamps in mount order
func ReferenceRig() []Light {
	return NewLights(ReferenceSpecs())
}

// DayPreset is the stock daylight preset.
func DayPreset() Preset {
	return Preset{
		Name:          "day",
		Ambient:       mgl32.Vec3{0.35, 0.35, 0.4},
		LightColor:    mgl32.Vec3{1, 0.98, 0.92},
		LightPosition: mgl32.Vec3{0, 200, 200},
		Ka:            0.3,
		Kd:            0.8,
		Ks:            0.4,
	}
}

// NightPreset is the stock night preset: dim blue moonlight.
func NightPreset() Preset {
	return Preset{
		Name:          "night",
		Ambient:       mgl32.Vec3{0.03, 0.03, 0.08},
		LightColor:    mgl32.Vec3{0.25, 0.3, 0.5},
		LightPosition: mgl32.Vec3{0, -200, 200},
		Ka:            0.1,
		Kd:            0.3,
		Ks:            0.1,
	}
}
