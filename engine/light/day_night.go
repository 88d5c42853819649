package light

import (
	"fmt"

	"github.com/rs/zerolog"
)

type dayNightImpl struct {
	log zerolog.Logger

	day   Preset
	night Preset
	isDay bool
}

// DayNight selects between the day and night presets. The active preset and the
// planet's night-side emission flag are both derived from a single isDay bit, so
// a toggle changes them together. Switching is a hard cut with no fade.
type DayNight interface {
	// Toggle switches between day and night.
	//
	// Returns:
	//   - bool: true if it is now day
	Toggle() bool

	// SetDay selects day or night directly.
	//
	// Parameters:
	//   - day: true for the day preset
	SetDay(day bool)

	// IsDay reports whether the day preset is active.
	//
	// Returns:
	//   - bool: true during the day
	IsDay() bool

	// Active returns the active preset.
	//
	// Returns:
	//   - Preset: day or night
	Active() Preset

	// Emission reports whether the planet's night-side materials self-illuminate.
	// It is on exactly when the night preset is active.
	//
	// Returns:
	//   - bool: the emission flag
	Emission() bool

	// Presets returns both presets.
	//
	// Returns:
	//   - day, night: the configured presets
	Presets() (day, night Preset)
}

var _ DayNight = &dayNightImpl{}

// NewDayNight creates the day/night model, starting in the day preset. Both
// presets are validated.
//
// Parameters:
//   - day: the day preset
//   - night: the night preset
//   - options: functional options to configure the model
//
// Returns:
//   - DayNight: the newly created model
//   - error: a validation error for either preset
func NewDayNight(day, night Preset, options ...DayNightBuilderOption) (DayNight, error) {
	if err := day.Validate(); err != nil {
		return nil, fmt.Errorf("day preset: %w", err)
	}
	if err := night.Validate(); err != nil {
		return nil, fmt.Errorf("night preset: %w", err)
	}
	d := &dayNightImpl{
		log:   zerolog.Nop(),
		day:   day,
		night: night,
		isDay: true,
	}
	for _, option := range options {
		option(d)
	}
	return d, nil
}

func (d *dayNightImpl) Toggle() bool {
	d.SetDay(!d.isDay)
	return d.isDay
}

func (d *dayNightImpl) SetDay(day bool) {
	d.isDay = day
	d.log.Info().Str("preset", d.Active().Name).Bool("emission", d.Emission()).Msg("lighting preset changed")
}

func (d *dayNightImpl) IsDay() bool {
	return d.isDay
}

func (d *dayNightImpl) Active() Preset {
	if d.isDay {
		return d.day
	}
	return d.night
}

func (d *dayNightImpl) Emission() bool {
	return !d.isDay
}

func (d *dayNightImpl) Presets() (day, night Preset) {
	return d.day, d.night
}

// DayNightBuilderOption is a functional option for configuring a DayNight model.
type DayNightBuilderOption func(*dayNightImpl)

// WithDayNightLogger sets the logger used by the day/night model.
func WithDayNightLogger(log zerolog.Logger) DayNightBuilderOption {
	return func(d *dayNightImpl) {
		d.log = log
	}
}

// WithNight starts the model in the night preset.
func WithNight() DayNightBuilderOption {
	return func(d *dayNightImpl) {
		d.isDay = false
	}
}
