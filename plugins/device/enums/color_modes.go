// Package enums contains enumerations and capability rules for light devices.
package enums

import (
	"fmt"
	"sort"
)

// ColorMode describes enum with known light color modes.
type ColorMode int

const (
	// ColorModeUnknown describes ambiguous color mode.
	ColorModeUnknown ColorMode = iota
	// ColorModeOnOff describes on/off-only mode. Must be the only supported mode.
	ColorModeOnOff
	// ColorModeBrightness describes brightness-only mode. Must be the only supported mode.
	ColorModeBrightness
	// ColorModeColorTemp describes color-temperature mode, in mireds.
	ColorModeColorTemp
	// ColorModeHS describes hue/saturation mode.
	ColorModeHS
	// ColorModeXY describes CIE 1931 chromaticity mode.
	ColorModeXY
	// ColorModeRGB describes red/green/blue mode.
	ColorModeRGB
	// ColorModeRGBW describes red/green/blue plus white channel mode.
	ColorModeRGBW
	// ColorModeRGBWW describes red/green/blue plus cold/warm white channels mode.
	ColorModeRGBWW
	// ColorModeWhite describes white mode. Must not be the only supported mode.
	ColorModeWhite
)

var colorModeNames = map[ColorMode]string{
	ColorModeUnknown:    "unknown",
	ColorModeOnOff:      "onoff",
	ColorModeBrightness: "brightness",
	ColorModeColorTemp:  "color_temp",
	ColorModeHS:         "hs",
	ColorModeXY:         "xy",
	ColorModeRGB:        "rgb",
	ColorModeRGBW:       "rgbw",
	ColorModeRGBWW:      "rgbww",
	ColorModeWhite:      "white",
}

var colorModeValues = map[string]ColorMode{}

func init() {
	for k, v := range colorModeNames {
		colorModeValues[v] = k
	}
}

// ColorModesBrightness contains set of modes supporting brightness.
var ColorModesBrightness = []ColorMode{ColorModeBrightness, ColorModeColorTemp,
	ColorModeHS, ColorModeXY, ColorModeRGB, ColorModeRGBW, ColorModeRGBWW, ColorModeWhite}

// ColorModesColor contains set of multi-channel color modes.
var ColorModesColor = []ColorMode{ColorModeHS, ColorModeXY, ColorModeRGB,
	ColorModeRGBW, ColorModeRGBWW}

// String returns color mode name.
func (i ColorMode) String() string {
	name, ok := colorModeNames[i]
	if !ok {
		return colorModeNames[ColorModeUnknown]
	}

	return name
}

// ColorModeString returns color mode enum from its name.
func ColorModeString(s string) (ColorMode, error) {
	mode, ok := colorModeValues[s]
	if !ok {
		return ColorModeUnknown, fmt.Errorf("%s does not belong to ColorMode values", s)
	}

	return mode, nil
}

// MarshalJSON implements json marshaller.
func (i ColorMode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, i.String())), nil
}

// UnmarshalJSON implements json un-marshaller.
func (i *ColorMode) UnmarshalJSON(data []byte) error {
	l := len(data)
	if l < 2 || data[0] != '"' || data[l-1] != '"' {
		return fmt.Errorf("ColorMode should be a string, got %s", string(data))
	}

	var err error
	*i, err = ColorModeString(string(data[1 : l-1]))
	return err
}

// MarshalYAML implements yaml marshaller.
func (i ColorMode) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// UnmarshalYAML implements yaml un-marshaller.
func (i *ColorMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	var err error
	*i, err = ColorModeString(s)
	return err
}

// SliceContainsColorMode checks whether slice contains certain color mode.
func SliceContainsColorMode(s []ColorMode, e ColorMode) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}

	return false
}

// SortColorModes returns a name-sorted copy of the modes set.
func SortColorModes(modes []ColorMode) []ColorMode {
	result := make([]ColorMode, len(modes))
	copy(result, modes)
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})

	return result
}

// BrightnessSupported tests whether the modes set supports brightness.
func BrightnessSupported(modes []ColorMode) bool {
	for _, v := range modes {
		if SliceContainsColorMode(ColorModesBrightness, v) {
			return true
		}
	}

	return false
}

// ColorSupported tests whether the modes set supports multi-channel color.
func ColorSupported(modes []ColorMode) bool {
	for _, v := range modes {
		if SliceContainsColorMode(ColorModesColor, v) {
			return true
		}
	}

	return false
}

// ColorTempSupported tests whether the modes set supports color temperature.
func ColorTempSupported(modes []ColorMode) bool {
	return SliceContainsColorMode(modes, ColorModeColorTemp)
}

// ValidateColorModes checks a declared supported-modes set against
// the mutual-exclusivity rules. The set must be non-empty, must not
// contain unknown, onoff and brightness are singletons and white
// requires at least one multi-channel color mode.
func ValidateColorModes(modes []ColorMode) error {
	invalid := &ErrInvalidCapabilitySet{Modes: modes}

	if len(modes) == 0 || SliceContainsColorMode(modes, ColorModeUnknown) {
		return invalid
	}

	if SliceContainsColorMode(modes, ColorModeOnOff) && len(modes) > 1 {
		return invalid
	}

	if SliceContainsColorMode(modes, ColorModeBrightness) && len(modes) > 1 {
		return invalid
	}

	if SliceContainsColorMode(modes, ColorModeWhite) && !ColorSupported(modes) {
		return invalid
	}

	return nil
}
