package light

import "math"

// StrobeIntensity evaluates the square-wave strobe schedule. The lamp is on for
// the first interval seconds of every 2·interval period of the shared clock and
// off for the rest. A non-positive interval means the lamp never blinks.
//
// Parameters:
//   - base: the "on" intensity
//   - interval: half-period in seconds
//   - accumTime: the shared strobe clock in seconds
//
// Returns:
//   - float32: base while on, 0 while off
func StrobeIntensity(base, interval float32, accumTime float64) float32 {
	if interval <= 0 {
		return base
	}
	period := 2 * float64(interval)
	phase := math.Mod(accumTime, period)
	if phase < 0 {
		phase += period
	}
	if phase < float64(interval) {
		return base
	}
	return 0
}
