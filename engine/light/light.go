// Package light holds the lamps mounted on the plane body, their strobe
// schedule and the global day/night lighting presets.
package light

import (
	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypePoint represents a light that emits in all directions from a position.
	// Attenuates with distance only.
	LightTypePoint LightType = iota

	// LightTypeSpot represents a light that emits in a cone from a position along a direction.
	// Attenuates with both distance and angle from the cone axis, controlled by inner
	// and outer cone angles.
	LightTypeSpot
)

func (t LightType) String() string {
	switch t {
	case LightTypePoint:
		return "point"
	case LightTypeSpot:
		return "spot"
	default:
		return "unknown"
	}
}

// Attenuation is the constant/linear/quadratic falloff triple of a point light.
type Attenuation struct {
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

// Factor returns 1 / (c + l·d + q·d²). A non-positive denominator yields zero.
func (a Attenuation) Factor(distance float32) float32 {
	denom := a.Constant + a.Linear*distance + a.Quadratic*distance*distance
	if denom <= 0 || !common.Finite(denom) {
		return 0
	}
	return 1 / denom
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	name      string
	lightType LightType

	mount          mgl32.Vec3
	mountDirection mgl32.Vec3
	position       mgl32.Vec3
	direction      mgl32.Vec3

	color         mgl32.Vec3
	baseIntensity float32
	intensity     float32
	attenuation   Attenuation

	strobe         bool
	strobeInterval float32

	innerCone float32 // stored as cos(angle in radians)
	outerCone float32 // stored as cos(angle in radians)
	enabled   bool
}

// Light defines a single lamp mounted on the plane body.
//
// The mount position and direction are constant and expressed in the plane's
// local space. The world position and direction are derived from the plane
// transform by the owning Array every frame; they are never set directly.
// Spot-only properties (cone angles) are ignored for point lights.
type Light interface {
	// Name returns the lamp's identifier.
	//
	// Returns:
	//   - string: the lamp name
	Name() string

	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: point or spot
	Type() LightType

	// Mount returns the lamp position in plane-local space.
	//
	// Returns:
	//   - mgl32.Vec3: local mount position
	Mount() mgl32.Vec3

	// MountDirection returns the lamp's cone axis in plane-local space.
	//
	// Returns:
	//   - mgl32.Vec3: normalized local direction
	MountDirection() mgl32.Vec3

	// Position returns the world-space position computed by the last Array update.
	//
	// Returns:
	//   - mgl32.Vec3: world position
	Position() mgl32.Vec3

	// Direction returns the world-space cone axis computed by the last Array update.
	//
	// Returns:
	//   - mgl32.Vec3: normalized world direction
	Direction() mgl32.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// BaseIntensity returns the configured intensity: the steady value for
	// non-strobe lamps and the "on" value for strobes.
	//
	// Returns:
	//   - float32: the base intensity
	BaseIntensity() float32

	// Intensity returns the current intensity after strobe scheduling.
	//
	// Returns:
	//   - float32: the current intensity
	Intensity() float32

	// Attenuation returns the falloff triple.
	//
	// Returns:
	//   - Attenuation: constant, linear and quadratic coefficients
	Attenuation() Attenuation

	// Strobe reports whether the lamp blinks, and its half-period in seconds.
	// A strobe with a non-positive interval behaves like a steady lamp.
	//
	// Returns:
	//   - bool: true for strobe lamps
	//   - float32: the on (and off) duration in seconds
	Strobe() (bool, float32)

	// InnerCone returns the cosine of the inner cone half-angle for spot lights.
	//
	// Returns:
	//   - float32: cos(inner half-angle)
	InnerCone() float32

	// OuterCone returns the cosine of the outer cone half-angle for spot lights.
	//
	// Returns:
	//   - float32: cos(outer half-angle)
	OuterCone() float32

	// Enabled returns whether this lamp is installed. Disabled lamps are skipped
	// when the array builds the frame's light list.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// Attenuate returns the current intensity scaled by the distance falloff.
	//
	// Parameters:
	//   - distance: distance from the lamp in world units
	//
	// Returns:
	//   - float32: attenuated intensity
	Attenuate(distance float32) float32

	// SpotFactor returns the cone falloff toward point in [0, 1]: 1 inside the
	// inner cone, 0 outside the outer cone, smoothly interpolated between.
	// Point lights always return 1.
	//
	// Parameters:
	//   - point: world-space point being lit
	//
	// Returns:
	//   - float32: the cone factor
	SpotFactor(point mgl32.Vec3) float32

	// Contribution returns the RGB light arriving at point: color times
	// attenuated intensity times the spot factor.
	//
	// Parameters:
	//   - point: world-space point being lit
	//
	// Returns:
	//   - mgl32.Vec3: the RGB contribution
	Contribution(point mgl32.Vec3) mgl32.Vec3

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - color: color as (r, g, b)
	SetColor(color mgl32.Vec3)

	// SetBaseIntensity sets the steady (or strobe "on") intensity.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetBaseIntensity(intensity float32)

	// SetSpotCone sets the inner and outer cone half-angles for spot lights.
	// Angles are specified in degrees and stored internally as cosines.
	//
	// Parameters:
	//   - innerDeg: inner cone half-angle in degrees
	//   - outerDeg: outer cone half-angle in degrees
	SetSpotCone(innerDeg, outerDeg float32)

	// SetEnabled enables or disables the lamp.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// bind recomputes the world position (w = 1) and direction (w = 0) from the
	// plane transform.
	bind(planeTransform mgl32.Mat4)

	// schedule sets the current intensity from the shared strobe clock.
	schedule(accumTime float64)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied. The world position starts at the mount position
// until the first Array update binds it to a plane transform.
//
// Parameters:
//   - lightType: the kind of light to create (point or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:      lightType,
		mountDirection: mgl32.Vec3{0, 0, 1},
		color:          mgl32.Vec3{1, 1, 1},
		baseIntensity:  1.0,
		attenuation:    Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.01},
		innerCone:      cosDeg(25),
		outerCone:      cosDeg(35),
		enabled:        true,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.outerCone > l.innerCone {
		l.innerCone, l.outerCone = l.outerCone, l.innerCone
	}
	l.position = l.mount
	l.direction = l.mountDirection
	l.intensity = l.baseIntensity
	return l
}

func (l *lightImpl) Name() string {
	return l.name
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Mount() mgl32.Vec3 {
	return l.mount
}

func (l *lightImpl) MountDirection() mgl32.Vec3 {
	return l.mountDirection
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) BaseIntensity() float32 {
	return l.baseIntensity
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Attenuation() Attenuation {
	return l.attenuation
}

func (l *lightImpl) Strobe() (bool, float32) {
	return l.strobe, l.strobeInterval
}

func (l *lightImpl) InnerCone() float32 {
	return l.innerCone
}

func (l *lightImpl) OuterCone() float32 {
	return l.outerCone
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) Attenuate(distance float32) float32 {
	if distance < 0 {
		distance = -distance
	}
	return l.intensity * l.attenuation.Factor(distance)
}

func (l *lightImpl) SpotFactor(point mgl32.Vec3) float32 {
	if l.lightType != LightTypeSpot {
		return 1
	}
	toPoint := point.Sub(l.position)
	if toPoint.Len() == 0 {
		return 1
	}
	cos := toPoint.Normalize().Dot(l.direction)
	if l.innerCone == l.outerCone {
		if cos >= l.innerCone {
			return 1
		}
		return 0
	}
	t := common.Clamp((cos-l.outerCone)/(l.innerCone-l.outerCone), 0, 1)
	return t * t * (3 - 2*t)
}

func (l *lightImpl) Contribution(point mgl32.Vec3) mgl32.Vec3 {
	d := point.Sub(l.position).Len()
	return l.color.Mul(l.Attenuate(d) * l.SpotFactor(point))
}

func (l *lightImpl) SetColor(color mgl32.Vec3) {
	l.color = color
}

func (l *lightImpl) SetBaseIntensity(intensity float32) {
	l.baseIntensity = intensity
	if on, interval := l.Strobe(); !on || interval <= 0 {
		l.intensity = intensity
	}
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.innerCone = cosDeg(innerDeg)
	l.outerCone = cosDeg(outerDeg)
	if l.outerCone > l.innerCone {
		l.innerCone, l.outerCone = l.outerCone, l.innerCone
	}
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) bind(planeTransform mgl32.Mat4) {
	l.position = common.TransformPoint(planeTransform, l.mount)
	l.direction = common.TransformDirection(planeTransform, l.mountDirection)
}

func (l *lightImpl) schedule(accumTime float64) {
	if !l.strobe {
		l.intensity = l.baseIntensity
		return
	}
	l.intensity = StrobeIntensity(l.baseIntensity, l.strobeInterval, accumTime)
}
