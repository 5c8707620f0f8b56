package server

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/lumen-home/light/mocks"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
	"github.com/lumen-home/light/providers"
	"github.com/lumen-home/light/systems/fanout"
	"github.com/lumen-home/light/systems/light"
	"github.com/stretchr/testify/assert"
)

func testLightsConfig() []*providers.RawLight {
	return []*providers.RawLight{
		{
			Name:       "light.desk",
			ColorModes: []enums.ColorMode{enums.ColorModeHS},
		},
		{
			Name:       "light.shelf",
			ColorModes: []enums.ColorMode{enums.ColorModeBrightness},
		},
		{
			Name:       "hall.switch",
			ColorModes: []enums.ColorMode{enums.ColorModeOnOff},
		},
	}
}

// Tests lights registration, invalid definitions are skipped.
func TestStateRegistration(t *testing.T) {
	cfg := append(testLightsConfig(), &providers.RawLight{
		Name:       "light.bad",
		ColorModes: []enums.ColorMode{enums.ColorModeOnOff, enums.ColorModeHS},
	})

	logged := 0
	logCallback := func(msg string) {
		if "Skipping light with invalid capabilities" == msg {
			logged++
		}
	}
	s := newServerState(mocks.FakeNewSettings(logCallback, cfg), fanout.NewFanOut())

	assert.Equal(t, 3, len(s.GetAllLights()), "invalid light skipped")
	assert.Equal(t, 1, logged, "skip logged")
	assert.Nil(t, s.GetDevice("light.bad"), "invalid light not registered")
}

// Tests lights list is sorted and snapshots are complete.
func TestStateGetAllLights(t *testing.T) {
	s := newServerState(mocks.FakeNewSettings(nil, testLightsConfig()), fanout.NewFanOut())

	lights := s.GetAllLights()
	assert.Equal(t, 3, len(lights), "count")
	assert.Equal(t, "hall.switch", lights[0].ID, "sorted first")
	assert.Equal(t, "light.desk", lights[1].ID, "sorted second")

	for _, l := range lights {
		assert.NotNil(t, l.State, "%s state", l.ID)
		assert.NotNil(t, l.Capabilities, "%s capabilities", l.ID)
		assert.Equal(t, commandNames(), l.Commands, "%s commands", l.ID)
		assert.NotEqual(t, int64(0), l.LastSeen, "%s last seen", l.ID)
	}
}

// Tests single light lookup.
func TestStateGetLight(t *testing.T) {
	s := newServerState(mocks.FakeNewSettings(nil, testLightsConfig()), fanout.NewFanOut())

	l := s.GetLight("Light.Desk")
	assert.NotNil(t, l, "case-insensitive lookup")
	assert.False(t, l.State.On, "starts off")

	assert.Nil(t, s.GetLight("light.unknown"), "unknown light")
}

// Tests glob patterns against registered IDs.
func TestStateMatch(t *testing.T) {
	s := newServerState(mocks.FakeNewSettings(nil, testLightsConfig()), fanout.NewFanOut())

	assert.Equal(t, 1, len(s.Match("light.desk")), "exact")
	assert.Equal(t, 2, len(s.Match("light.*")), "prefix glob")
	assert.Equal(t, 3, len(s.Match("*")), "match all")
	assert.Equal(t, 0, len(s.Match("garage.*")), "no matches")
	assert.Equal(t, 0, len(s.Match("[")), "broken pattern")
}

// Tests state snapshots refresh after device updates.
func TestStateCacheInvalidation(t *testing.T) {
	s := newServerState(mocks.FakeNewSettings(nil, testLightsConfig()), fanout.NewFanOut())

	before := s.GetLight("light.shelf")
	assert.False(t, before.State.On, "starts off")

	dev := s.GetDevice("light.shelf")
	brightness := uint8(180)
	assert.NoError(t, dev.TurnOn(&device.CommandParams{Brightness: &brightness}))
	time.Sleep(1 * time.Second)

	after := s.GetLight("light.shelf")
	assert.True(t, after.State.On, "update visible")
	assert.Equal(t, uint8(180), *after.State.Brightness, "brightness visible")

	expected := &light.StateAttributes{
		EntityID:   "light.shelf",
		On:         true,
		ColorMode:  enums.ColorModeBrightness,
		Brightness: &brightness,
	}
	assert.True(t, cmp.Equal(expected, after.State), cmp.Diff(expected, after.State))
}
