package enums

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests valid supported-modes sets.
func TestValidateColorModesSuccess(t *testing.T) {
	in := [][]ColorMode{
		{ColorModeOnOff},
		{ColorModeBrightness},
		{ColorModeColorTemp},
		{ColorModeHS},
		{ColorModeHS, ColorModeColorTemp},
		{ColorModeRGB, ColorModeRGBW, ColorModeRGBWW},
		{ColorModeRGBWW, ColorModeWhite},
		{ColorModeHS, ColorModeXY, ColorModeWhite},
	}

	for k, v := range in {
		assert.NoError(t, ValidateColorModes(v), "set %d", k)
	}
}

// Tests supported-modes sets violating the exclusivity rules.
func TestValidateColorModesFailure(t *testing.T) {
	in := [][]ColorMode{
		{},
		{ColorModeUnknown},
		{ColorModeHS, ColorModeUnknown},
		{ColorModeOnOff, ColorModeHS},
		{ColorModeOnOff, ColorModeBrightness},
		{ColorModeBrightness, ColorModeColorTemp},
		{ColorModeWhite},
		{ColorModeWhite, ColorModeColorTemp},
		{ColorModeWhite, ColorModeBrightness},
	}

	for k, v := range in {
		err := ValidateColorModes(v)
		assert.Error(t, err, "set %d", k)
		assert.IsType(t, &ErrInvalidCapabilitySet{}, err, "set %d type", k)
	}
}

// Tests color mode name parsing round trip.
func TestColorModeString(t *testing.T) {
	for mode, name := range colorModeNames {
		parsed, err := ColorModeString(name)
		assert.NoError(t, err, name)
		assert.Equal(t, mode, parsed, name)
	}

	_, err := ColorModeString("magic")
	assert.Error(t, err, "unknown name")
}

// Tests color mode json marshaling.
func TestColorModeJSON(t *testing.T) {
	data, err := json.Marshal(ColorModeColorTemp)
	assert.NoError(t, err, "marshal")
	assert.Equal(t, `"color_temp"`, string(data), "marshal value")

	var mode ColorMode
	assert.NoError(t, json.Unmarshal([]byte(`"rgbww"`), &mode), "unmarshal")
	assert.Equal(t, ColorModeRGBWW, mode, "unmarshal value")

	assert.Error(t, json.Unmarshal([]byte(`42`), &mode), "not a string")
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &mode), "unknown value")
}

// Tests modes sorting by name.
func TestSortColorModes(t *testing.T) {
	in := []ColorMode{ColorModeXY, ColorModeColorTemp, ColorModeHS}
	out := SortColorModes(in)

	assert.Equal(t, []ColorMode{ColorModeColorTemp, ColorModeHS, ColorModeXY}, out, "sorted")
	assert.Equal(t, []ColorMode{ColorModeXY, ColorModeColorTemp, ColorModeHS}, in, "input untouched")
}

// Tests capability predicates.
func TestModePredicates(t *testing.T) {
	assert.True(t, BrightnessSupported([]ColorMode{ColorModeBrightness}), "brightness")
	assert.True(t, BrightnessSupported([]ColorMode{ColorModeHS}), "hs brightness")
	assert.False(t, BrightnessSupported([]ColorMode{ColorModeOnOff}), "onoff brightness")

	assert.True(t, ColorSupported([]ColorMode{ColorModeXY}), "xy color")
	assert.False(t, ColorSupported([]ColorMode{ColorModeColorTemp}), "ct color")

	assert.True(t, ColorTempSupported([]ColorMode{ColorModeColorTemp, ColorModeHS}), "ct")
	assert.False(t, ColorTempSupported([]ColorMode{ColorModeHS}), "no ct")
}

// Tests legacy feature bits to modes inference.
func TestColorModesFromFeatures(t *testing.T) {
	in := []struct {
		features LightFeature
		expected []ColorMode
	}{
		{0, []ColorMode{ColorModeOnOff}},
		{FeatureEffect | FeatureFlash, []ColorMode{ColorModeOnOff}},
		{FeatureBrightness, []ColorMode{ColorModeBrightness}},
		{FeatureColorTemp, []ColorMode{ColorModeColorTemp}},
		{FeatureColor, []ColorMode{ColorModeHS}},
		{FeatureWhiteValue, []ColorMode{ColorModeRGBW}},
		{FeatureColorTemp | FeatureColor | FeatureBrightness,
			[]ColorMode{ColorModeColorTemp, ColorModeHS}},
	}

	for k, v := range in {
		assert.Equal(t, v.expected, ColorModesFromFeatures(v.features), "case %d", k)
	}
}

// Tests modes to legacy feature bits inference.
func TestFeaturesFromColorModes(t *testing.T) {
	assert.Equal(t, FeatureEffect, FeaturesFromColorModes(FeatureEffect, nil), "nil modes")

	out := FeaturesFromColorModes(0, []ColorMode{ColorModeHS, ColorModeColorTemp})
	assert.True(t, out.Has(FeatureColor), "color bit")
	assert.True(t, out.Has(FeatureBrightness), "brightness bit")
	assert.True(t, out.Has(FeatureColorTemp), "ct bit")

	out = FeaturesFromColorModes(FeatureTransition, []ColorMode{ColorModeOnOff})
	assert.Equal(t, FeatureTransition, out, "onoff raises nothing")
}

// Tests light feature name parsing.
func TestLightFeatureString(t *testing.T) {
	for feature, name := range featureNames {
		parsed, err := LightFeatureString(name)
		assert.NoError(t, err, name)
		assert.Equal(t, feature, parsed, name)
	}

	_, err := LightFeatureString("magic")
	assert.Error(t, err, "unknown name")
}

// Tests command name parsing.
func TestCommandString(t *testing.T) {
	for cmd, name := range commandNames {
		parsed, err := CommandString(name)
		assert.NoError(t, err, name)
		assert.Equal(t, cmd, parsed, name)
	}

	_, err := CommandString("blink")
	assert.Error(t, err, "unknown name")
}
