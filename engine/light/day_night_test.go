package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayNightToggleFlipsPresetAndEmissionTogether(t *testing.T) {
	dn, err := NewDayNight(DayPreset(), NightPreset())
	require.NoError(t, err)

	assert.True(t, dn.IsDay())
	assert.Equal(t, "day", dn.Active().Name)
	assert.False(t, dn.Emission())

	for i := 0; i < 5; i++ {
		wasDay := dn.IsDay()
		wasEmission := dn.Emission()
		wasPreset := dn.Active().Name

		dn.Toggle()

		assert.NotEqual(t, wasDay, dn.IsDay())
		assert.NotEqual(t, wasEmission, dn.Emission())
		assert.NotEqual(t, wasPreset, dn.Active().Name)
		assert.Equal(t, !dn.IsDay(), dn.Emission())
	}
}

func TestDayNightStartAtNight(t *testing.T) {
	dn, err := NewDayNight(DayPreset(), NightPreset(), WithNight())
	require.NoError(t, err)
	assert.Equal(t, NightPreset(), dn.Active())
	assert.True(t, dn.Emission())
}

func TestPresetValidate(t *testing.T) {
	assert.NoError(t, DayPreset().Validate())
	assert.NoError(t, NightPreset().Validate())

	bad := DayPreset()
	bad.Kd = 1.5
	assert.ErrorContains(t, bad.Validate(), "kd")

	_, err := NewDayNight(DayPreset(), bad)
	assert.ErrorContains(t, err, "night preset")
}
