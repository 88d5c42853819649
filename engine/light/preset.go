package light

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Preset is a named, complete bundle of global lighting parameters. Presets are
// swapped as a whole; fields are never mixed between presets.
type Preset struct {
	Name          string
	Ambient       mgl32.Vec3
	LightColor    mgl32.Vec3
	LightPosition mgl32.Vec3
	Ka            float32
	Kd            float32
	Ks            float32
}

// Validate checks that the shading coefficients lie in [0, 1].
//
// Returns:
//   - error: a description of the first offending coefficient, or nil
func (p Preset) Validate() error {
	for _, c := range []struct {
		name  string
		value float32
	}{{"ka", p.Ka}, {"kd", p.Kd}, {"ks", p.Ks}} {
		if c.value < 0 || c.value > 1 || c.value != c.value {
			return fmt.Errorf("light: preset %q: %s = %v outside [0, 1]", p.Name, c.name, c.value)
		}
	}
	return nil
}
