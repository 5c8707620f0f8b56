package virtual

import (
	"testing"

	"github.com/lumen-home/light/mocks"
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/plugins/device"
	"github.com/lumen-home/light/plugins/device/enums"
	"github.com/lumen-home/light/providers"
	"github.com/stretchr/testify/assert"
)

func uint8Ptr(v uint8) *uint8 {
	return &v
}

// Tests construction validates declared modes.
func TestConstructValidation(t *testing.T) {
	_, err := NewVirtualLight(&ConstructVirtualLight{
		Logger: mocks.FakeNewLogger(nil),
		Config: &providers.RawLight{
			Name:       "light.bad",
			ColorModes: []enums.ColorMode{enums.ColorModeOnOff, enums.ColorModeHS},
		},
	})
	assert.Error(t, err)
	assert.IsType(t, &enums.ErrInvalidCapabilitySet{}, err)
}

// Tests declared modes raise the matching legacy feature bits.
func TestConstructFeatures(t *testing.T) {
	l, err := NewVirtualLight(&ConstructVirtualLight{
		Logger: mocks.FakeNewLogger(nil),
		Config: &providers.RawLight{
			Name:       "light.desk",
			ColorModes: []enums.ColorMode{enums.ColorModeHS, enums.ColorModeColorTemp},
			Features:   []enums.LightFeature{enums.FeatureTransition},
		},
	})
	assert.NoError(t, err)

	features := l.SupportedFeatures()
	assert.True(t, features.Has(enums.FeatureTransition), "configured bit")
	assert.True(t, features.Has(enums.FeatureColor), "derived color bit")
	assert.True(t, features.Has(enums.FeatureBrightness), "derived brightness bit")
	assert.True(t, features.Has(enums.FeatureColorTemp), "derived ct bit")
}

// Tests default mireds bounds.
func TestConstructMiredsDefaults(t *testing.T) {
	l, err := NewVirtualLight(&ConstructVirtualLight{
		Logger: mocks.FakeNewLogger(nil),
		Config: &providers.RawLight{
			Name:       "light.desk",
			ColorModes: []enums.ColorMode{enums.ColorModeColorTemp},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, device.DefaultMinMireds, l.MinMireds())
	assert.Equal(t, device.DefaultMaxMireds, l.MaxMireds())
}

// Tests state applies on turn-on and clears on turn-off.
func TestTurnOnOff(t *testing.T) {
	updates := make(chan *common.MsgLightUpdate, 10)
	l, err := NewVirtualLight(&ConstructVirtualLight{
		Logger:  mocks.FakeNewLogger(nil),
		Updates: updates,
		Config: &providers.RawLight{
			Name:       "light.desk",
			ColorModes: []enums.ColorMode{enums.ColorModeHS},
		},
	})
	assert.NoError(t, err)
	assert.False(t, l.IsOn(), "starts off")

	hs := common.HS{Hue: 120, Saturation: 100}
	err = l.TurnOn(&device.CommandParams{
		Brightness: uint8Ptr(200),
		HSColor:    &hs,
	})
	assert.NoError(t, err)
	assert.True(t, l.IsOn(), "turned on")
	assert.Equal(t, enums.ColorModeHS, l.ColorMode(), "hs mode")

	brightness, ok := l.Brightness()
	assert.True(t, ok, "brightness set")
	assert.Equal(t, uint8(200), brightness)

	got, ok := l.HSColor()
	assert.True(t, ok, "color set")
	assert.Equal(t, hs, got)

	assert.NoError(t, l.TurnOff(&device.CommandParams{}))
	assert.False(t, l.IsOn(), "turned off")

	assert.Equal(t, 2, len(updates), "two updates published")
	msg := <-updates
	assert.Equal(t, "light.desk", msg.EntityID)
}

// Tests white request folds into brightness with white mode.
func TestTurnOnWhite(t *testing.T) {
	l, err := NewVirtualLight(&ConstructVirtualLight{
		Logger: mocks.FakeNewLogger(nil),
		Config: &providers.RawLight{
			Name:       "light.desk",
			ColorModes: []enums.ColorMode{enums.ColorModeHS, enums.ColorModeWhite},
		},
	})
	assert.NoError(t, err)

	assert.NoError(t, l.TurnOn(&device.CommandParams{White: uint8Ptr(90)}))
	assert.Equal(t, enums.ColorModeWhite, l.ColorMode(), "white mode")

	brightness, ok := l.Brightness()
	assert.True(t, ok)
	assert.Equal(t, uint8(90), brightness, "white becomes brightness")
}

// Tests plain turn-on picks a sensible reported mode.
func TestTurnOnDefaultMode(t *testing.T) {
	l, err := NewVirtualLight(&ConstructVirtualLight{
		Logger: mocks.FakeNewLogger(nil),
		Config: &providers.RawLight{
			Name:       "light.switch",
			ColorModes: []enums.ColorMode{enums.ColorModeOnOff},
		},
	})
	assert.NoError(t, err)

	assert.NoError(t, l.TurnOn(&device.CommandParams{}))
	assert.Equal(t, enums.ColorModeOnOff, l.ColorMode())
}
