package light

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithName is an option builder that sets the lamp identifier.
//
// Parameters:
//   - name: the lamp name
//
// Returns:
//   - LightBuilderOption: a function that applies the name option to a lightImpl
func WithName(name string) LightBuilderOption {
	return func(l *lightImpl) {
		l.name = name
	}
}

// WithMount is an option builder that sets the plane-local mount position of the light.
//
// Parameters:
//   - mount: position relative to the plane origin
//
// Returns:
//   - LightBuilderOption: a function that applies the mount option to a lightImpl
func WithMount(mount mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.mount = mount
	}
}

// WithDirection is an option builder that sets the plane-local cone axis of the light.
// The direction is normalized before storing; a zero vector is ignored.
//
// Parameters:
//   - dir: the local direction
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(dir mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		if dir.Len() > 0 {
			l.mountDirection = dir.Normalize()
		}
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - color: color as (r, g, b)
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(color mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = color
	}
}

// WithIntensity is an option builder that sets the base intensity.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.baseIntensity = intensity
	}
}

// WithAttenuation is an option builder that sets the distance falloff triple.
//
// Parameters:
//   - constant, linear, quadratic: falloff coefficients
//
// Returns:
//   - LightBuilderOption: a function that applies the attenuation option to a lightImpl
func WithAttenuation(constant, linear, quadratic float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.attenuation = Attenuation{Constant: constant, Linear: linear, Quadratic: quadratic}
	}
}

// WithStrobe is an option builder that makes the light blink on a square wave:
// on for interval seconds, then off for interval seconds.
//
// Parameters:
//   - interval: half-period in seconds
//
// Returns:
//   - LightBuilderOption: a function that applies the strobe option to a lightImpl
func WithStrobe(interval float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.strobe = true
		l.strobeInterval = interval
	}
}

// WithSpotCone is an option builder that sets the inner and outer cone half-angles
// for spot lights. Angles are specified in degrees and converted to cosines internally,
// which is the format required by the GPU shader.
//
// Parameters:
//   - innerDeg: inner cone half-angle in degrees
//   - outerDeg: outer cone half-angle in degrees
//
// Returns:
//   - LightBuilderOption: a function that applies the spot cone option to a lightImpl
func WithSpotCone(innerDeg, outerDeg float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.innerCone = cosDeg(innerDeg)
		l.outerCone = cosDeg(outerDeg)
	}
}

// WithEnabled is an option builder that sets whether the lamp is installed.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// cosDeg converts an angle in degrees to the cosine of that angle in radians.
func cosDeg(deg float32) float32 {
	return math32.Cos(deg * math32.Pi / 180.0)
}
