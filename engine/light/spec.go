package light

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-flight/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Spec is the plain description of one lamp. Cone angles stay in degrees so a
// Spec survives a round trip through a config file unchanged.
type Spec struct {
	Name           string
	Type           LightType
	Mount          mgl32.Vec3
	Direction      mgl32.Vec3
	Color          mgl32.Vec3
	Intensity      float32
	Attenuation    Attenuation
	StrobeInterval float32 // 0 for a steady lamp
	InnerConeDeg   float32
	OuterConeDeg   float32
}

// ParseLightType maps "point" or "spot" to its LightType.
//
// Parameters:
//   - name: the type name
//
// Returns:
//   - LightType: the parsed type
//   - error: error if the name is not a known type
func ParseLightType(name string) (LightType, error) {
	switch name {
	case "point":
		return LightTypePoint, nil
	case "spot":
		return LightTypeSpot, nil
	default:
		return 0, fmt.Errorf("light: unknown type %q", name)
	}
}

// Validate checks the falloff, strobe interval, intensity and spot cone.
//
// Returns:
//   - error: every violation joined, or nil
func (s Spec) Validate() error {
	var errs []error
	a := s.Attenuation
	if a.Constant < 0 || a.Linear < 0 || a.Quadratic < 0 {
		errs = append(errs, fmt.Errorf("light: lamp %q: attenuation %v has a negative term", s.Name, a))
	} else if a.Constant == 0 && a.Linear == 0 && a.Quadratic == 0 {
		errs = append(errs, fmt.Errorf("light: lamp %q: attenuation is all zero", s.Name))
	}
	if s.StrobeInterval < 0 || !common.Finite(s.StrobeInterval) {
		errs = append(errs, fmt.Errorf("light: lamp %q: strobe interval %v must be a finite value >= 0", s.Name, s.StrobeInterval))
	}
	if s.Intensity < 0 || !common.Finite(s.Intensity) {
		errs = append(errs, fmt.Errorf("light: lamp %q: intensity %v must be a finite value >= 0", s.Name, s.Intensity))
	}
	if s.Type == LightTypeSpot && (s.InnerConeDeg < 0 || s.OuterConeDeg < s.InnerConeDeg || s.OuterConeDeg >= 180) {
		errs = append(errs, fmt.Errorf("light: lamp %q: cone %v/%v outside 0 <= inner <= outer < 180", s.Name, s.InnerConeDeg, s.OuterConeDeg))
	}
	return errors.Join(errs...)
}

// New builds the lamp the Spec describes.
//
// Returns:
//   - Light: the lamp
func (s Spec) New() Light {
	opts := []LightBuilderOption{
		WithName(s.Name),
		WithMount(s.Mount),
		WithDirection(s.Direction),
		WithColor(s.Color),
		WithIntensity(s.Intensity),
		WithAttenuation(s.Attenuation.Constant, s.Attenuation.Linear, s.Attenuation.Quadratic),
	}
	if s.StrobeInterval > 0 {
		opts = append(opts, WithStrobe(s.StrobeInterval))
	}
	if s.Type == LightTypeSpot {
		opts = append(opts, WithSpotCone(s.InnerConeDeg, s.OuterConeDeg))
	}
	return NewLight(s.Type, opts...)
}

// NewLights builds one lamp per Spec, in order.
//
// Parameters:
//   - specs: the lamp descriptions
//
// Returns:
//   - []Light: the lamps
func NewLights(specs []Spec) []Light {
	lights := make([]Light, 0, len(specs))
	for _, s := range specs {
		lights = append(lights, s.New())
	}
	return lights
}
